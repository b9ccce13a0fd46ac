package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mahmutensarsahin/literal-pooling-analysis/metrics"
)

// RunMetricsReport renders performance_from_metrics.png.
func RunMetricsReport(cfg Config) error {
	return run(cfg, func(ix *metrics.Index, totalOps int64) []Figure {
		return []Figure{MetricsFigure(ix, totalOps)}
	})
}

// RunResultsReport renders real_performance_results.png and
// detailed_performance_analysis.png.
func RunResultsReport(cfg Config) error {
	return run(cfg, func(ix *metrics.Index, totalOps int64) []Figure {
		return []Figure{ResultsFigure(ix, totalOps), DetailedFigure(ix)}
	})
}

// RunAll renders every figure from a single load of the inputs.
func RunAll(cfg Config) error {
	return run(cfg, func(ix *metrics.Index, totalOps int64) []Figure {
		return []Figure{
			MetricsFigure(ix, totalOps),
			ResultsFigure(ix, totalOps),
			DetailedFigure(ix),
		}
	})
}

// run orchestrates one report: load, index, estimate, render, write.
func run(cfg Config, figures func(*metrics.Index, int64) []Figure) error {
	cfg = cfg.withDefaults()
	setupLog(cfg)
	initialLog(cfg)

	records, err := metrics.Load(cfg.CSVPath)
	if err != nil {
		return err
	}
	ix := metrics.NewIndex(records)
	log.Debug().Int("records", len(records)).Int("keys", ix.Len()).Msg("Loaded metrics")

	totalOps := metrics.TotalOps(cfg.PerfLogs...)
	log.Debug().Int64("total_ops", totalOps).Msg("Estimated total operations")

	for _, f := range figures(ix, totalOps) {
		start := time.Now()
		path, err := WriteFigure(f, cfg.OutputDir, cfg.DPI)
		if err != nil {
			return fmt.Errorf("failed to write figure: %w", err)
		}
		log.Info().
			Str("path", path).
			Dur("elapsed", time.Since(start)).
			Msg("Saved figure")
	}
	return nil
}

func initialLog(cfg Config) {
	log.Info().
		Str("root", cfg.RepoRoot).
		Str("csv", cfg.CSVPath).
		Strs("perf_logs", cfg.PerfLogs).
		Str("out_dir", cfg.OutputDir).
		Int("dpi", cfg.DPI).
		Msg("Starting report")
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stdout)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
}
