package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mahmutensarsahin/literal-pooling-analysis/report"
)

var (
	repoRoot  string
	csvPath   string
	perfLogs  []string
	outputDir string
	dpi       int
	logFormat string
)

// rootCmd renders every figure when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "literal-pooling-analysis",
	Short:         "Render C/C++ literal pooling benchmark charts from the metrics CSV",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.RunAll(reportConfig())
	},
}

// Execute runs the CLI and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Report failed")
	}
}

func reportConfig() report.Config {
	return report.Config{
		RepoRoot:  repoRoot,
		CSVPath:   csvPath,
		PerfLogs:  perfLogs,
		OutputDir: outputDir,
		DPI:       dpi,
		LogFormat: logFormat,
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&repoRoot, "root", ".", "Repository root the default input and output paths are relative to")
	flags.StringVar(&csvPath, "csv", "", "Metrics CSV (default <root>/metrics/results.csv)")
	flags.StringSliceVar(&perfLogs, "perf-log", nil, "perf_test log used to estimate total operations, first usable wins (default <root>/metrics/perf_test.out, <root>/metrics/performance_test/perf_test.out)")
	flags.StringVar(&outputDir, "out-dir", "", "Directory the PNG figures are written to (default <root>/assets/plots/test_diagrams)")
	flags.IntVar(&dpi, "dpi", report.DefaultDPI, "Raster resolution of the figures")
	flags.StringVar(&logFormat, "log-format", report.DefaultLogFormat, "Log format: 'json' or 'console'")
}
