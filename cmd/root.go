package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sales-analysis-cli/internal/chart"
	"github.com/sells-group/sales-analysis-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sales-analysis",
	Short: "Pens & Printers sales analysis",
	Long:  "Cleans a sales-transaction export, renders descriptive charts, and prints the average-revenue-per-method summary.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		// Chart style is applied exactly once, before any stage runs.
		chart.Init(chart.Options{
			WidthIn:  cfg.Figures.WidthIn,
			HeightIn: cfg.Figures.HeightIn,
			DPI:      cfg.Figures.DPI,
		})

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
