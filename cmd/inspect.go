package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sales-analysis-cli/internal/clean"
	"github.com/sells-group/sales-analysis-cli/internal/dataset"
	"github.com/sells-group/sales-analysis-cli/internal/report"
)

var inspectInput string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load a sales export and report what cleaning would remove",
	Long: `Dry run: loads the export, prints the pre-cleaning table info and the
per-stage removal counts the cleaner would apply. Writes no files.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tbl, err := dataset.Load(inspectInput, dataset.Options{Delimiter: cfg.Input.DelimiterRune()})
		if err != nil {
			return eris.Wrap(err, "inspect: load input")
		}

		printBrief(os.Stdout, "Before cleaning", report.BriefInfo(tbl))

		cleaned, audit := clean.Run(tbl)
		printAudit(os.Stdout, audit)
		printBrief(os.Stdout, "After cleaning", report.BriefInfo(cleaned))

		zap.L().Info("inspect complete",
			zap.Int("rows_in", tbl.Len()),
			zap.Int("rows_out", cleaned.Len()),
			zap.Int("rows_removed", audit.TotalRemoved()),
		)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectInput, "input", "", "path to the sales export (required)")
	_ = inspectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(inspectCmd)
}
