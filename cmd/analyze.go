package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sales-analysis-cli/internal/chart"
	"github.com/sells-group/sales-analysis-cli/internal/clean"
	"github.com/sells-group/sales-analysis-cli/internal/dataset"
	"github.com/sells-group/sales-analysis-cli/internal/report"
)

var (
	analyzeInput  string
	analyzeOutdir string
	analyzeShow   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Clean a sales export and render the analysis figures",
	Long: `Loads a sales-transaction CSV (or XLSX) export, applies the cleaning
rules, writes the descriptive figures as PNGs, and prints the
average-revenue-per-method summary table.

Examples:
  # Default output directory (figures/)
  sales-analysis analyze --input product_sales.csv

  # Custom output directory, open figures when done
  sales-analysis analyze --input product_sales.csv --outdir /tmp/figs --show`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		runID := uuid.NewString()
		log := zap.L().With(zap.String("run_id", runID))

		tbl, err := dataset.Load(analyzeInput, dataset.Options{Delimiter: cfg.Input.DelimiterRune()})
		if err != nil {
			return eris.Wrap(err, "analyze: load input")
		}
		log.Info("loaded input",
			zap.String("path", analyzeInput),
			zap.Int("rows", tbl.Len()),
			zap.Int("cols", len(tbl.Columns())),
		)

		printBrief(os.Stdout, "Before cleaning", report.BriefInfo(tbl))

		cleaned, audit := clean.Run(tbl)
		printAudit(os.Stdout, audit)

		printBrief(os.Stdout, "After cleaning", report.BriefInfo(cleaned))

		outdir := analyzeOutdir
		if outdir == "" {
			outdir = cfg.Figures.Outdir
		}
		outdir, err = chart.EnsureOutdir(outdir)
		if err != nil {
			return err
		}

		saved, err := renderFigures(cleaned, outdir)
		if err != nil {
			return err
		}

		metric := report.AvgRevenueByMethod(cleaned)
		printMetric(os.Stdout, metric)

		log.Info("analysis complete",
			zap.Int("rows_in", tbl.Len()),
			zap.Int("rows_out", cleaned.Len()),
			zap.Int("rows_removed", audit.TotalRemoved()),
			zap.Int("figures", len(saved)),
			zap.String("outdir", outdir),
		)

		if analyzeShow {
			chart.Show(saved...)
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "path to the sales export (required)")
	analyzeCmd.Flags().StringVar(&analyzeOutdir, "outdir", "", "directory for figures (default: config figures.outdir, \"figures\")")
	analyzeCmd.Flags().BoolVar(&analyzeShow, "show", false, "open saved figures in the platform viewer")
	_ = analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}

// renderFigures writes every figure that the cleaned table supports and
// returns the saved paths.
func renderFigures(t dataset.Table, outdir string) ([]string, error) {
	var saved []string

	path, err := chart.CountByMethod(report.CountByMethod(t), outdir)
	if err != nil {
		return nil, eris.Wrap(err, "analyze: count figure")
	}
	saved = append(saved, path)

	path, err = chart.RevenueHistogram(report.RevenueValues(t), outdir)
	if err != nil {
		return nil, eris.Wrap(err, "analyze: histogram figure")
	}
	saved = append(saved, path)

	path, err = chart.RevenueBoxplot(report.RevenueByMethod(t), outdir)
	if err != nil {
		return nil, eris.Wrap(err, "analyze: boxplot figure")
	}
	saved = append(saved, path)

	if weekly, ok := report.WeeklySeries(t); ok {
		path, err = chart.WeeklyRevenue(weekly, outdir)
		if err != nil {
			return nil, eris.Wrap(err, "analyze: weekly figure")
		}
		saved = append(saved, path)
	}

	path, err = chart.AvgRevenueBar(report.AvgRevenueByMethod(t), outdir)
	if err != nil {
		return nil, eris.Wrap(err, "analyze: metric figure")
	}
	saved = append(saved, path)

	return saved, nil
}

// printBrief writes the shape/null summary that brackets the cleaning run.
func printBrief(w io.Writer, note string, b report.Brief) {
	fmt.Fprintf(w, "\n=== Table info (%s) ===\n", note)
	fmt.Fprintf(w, "Shape: (%d, %d)\n", b.Rows, b.Cols)
	if b.HasRevenue {
		fmt.Fprintf(w, "Nulls in 'revenue': %d\n", b.RevenueNulls)
	}
	fmt.Fprintf(w, "Columns: %s\n", strings.Join(b.Columns, ", "))
}

// printAudit writes the per-stage removal counts, the tool's audit trail.
func printAudit(w io.Writer, audit clean.Report) {
	fmt.Fprintf(w, "Dropped %d rows with null 'revenue'.\n", audit.NullRevenue)
	fmt.Fprintf(w, "Filtered %d rows due to invalid 'sales_method' values.\n", audit.InvalidMethod)
	fmt.Fprintf(w, "Removed %d rows outside 'years_as_customer' bounds.\n", audit.OutOfBoundsYears)
}

// printMetric writes the summary table, already sorted descending by mean.
func printMetric(w io.Writer, metric []report.MethodRevenue) {
	fmt.Fprintln(w, "\nAverage revenue per customer by sales method:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "sales_method\tmean_revenue\tcustomers")
	for _, m := range metric {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\n", m.Method, m.Mean, m.N)
	}
	_ = tw.Flush()
}
