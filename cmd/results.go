package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mahmutensarsahin/literal-pooling-analysis/report"
)

// resultsCmd represents the results command
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Render the real results and detailed analysis figures",
	Long: "Render " + report.ResultsFigureFile + " and " + report.DetailedFigureFile +
		" from the metrics CSV.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.RunResultsReport(reportConfig())
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}
