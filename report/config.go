package report

import (
	"path/filepath"
)

// Default run parameters, matching the repository layout the benchmark
// harness writes into.
const (
	DefaultDPI       = 300
	DefaultLogFormat = "console"
)

// Config defines the report parameters passed from CLI
type Config struct {
	RepoRoot  string   // repository root the default paths are relative to
	CSVPath   string   // metrics CSV produced by the harness (required)
	PerfLogs  []string // optional perf_test logs, first usable one wins
	OutputDir string   // directory the PNG figures are written to
	DPI       int      // raster resolution
	LogFormat string   // "json" or "console", default is "console"
}

// DefaultConfig returns the fixed layout relative to root:
// metrics/results.csv in, assets/plots/test_diagrams out.
func DefaultConfig(root string) Config {
	if root == "" {
		root = "."
	}
	metricsDir := filepath.Join(root, "metrics")
	return Config{
		RepoRoot: root,
		CSVPath:  filepath.Join(metricsDir, "results.csv"),
		PerfLogs: []string{
			filepath.Join(metricsDir, "perf_test.out"),
			filepath.Join(metricsDir, "performance_test", "perf_test.out"),
		},
		OutputDir: filepath.Join(root, "assets", "plots", "test_diagrams"),
		DPI:       DefaultDPI,
		LogFormat: DefaultLogFormat,
	}
}

// withDefaults fills every unset field from DefaultConfig(cfg.RepoRoot).
func (cfg Config) withDefaults() Config {
	def := DefaultConfig(cfg.RepoRoot)
	if cfg.RepoRoot == "" {
		cfg.RepoRoot = def.RepoRoot
	}
	if cfg.CSVPath == "" {
		cfg.CSVPath = def.CSVPath
	}
	if len(cfg.PerfLogs) == 0 {
		cfg.PerfLogs = def.PerfLogs
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.DPI <= 0 {
		cfg.DPI = def.DPI
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
	}
	return cfg
}
