package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mahmutensarsahin/literal-pooling-analysis/report"
)

// metricsCmd represents the metrics command
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Render the performance overview figure (" + report.MetricsFigureFile + ")",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.RunMetricsReport(reportConfig())
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
