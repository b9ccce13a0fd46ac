package report

import (
	"gonum.org/v1/plot/vg"

	"github.com/mahmutensarsahin/literal-pooling-analysis/metrics"
)

// Output file names under Config.OutputDir.
const (
	MetricsFigureFile  = "performance_from_metrics.png"
	ResultsFigureFile  = "real_performance_results.png"
	DetailedFigureFile = "detailed_performance_analysis.png"
)

// Figure is a titled grid of panels written to a single PNG.
type Figure struct {
	File   string
	Title  string
	Rows   int
	Cols   int
	Width  vg.Length
	Height vg.Length
	Panels []Panel // row-major
}

// MetricsFigure is the six-panel overview of every metric family.
func MetricsFigure(ix *metrics.Index, totalOps int64) Figure {
	return Figure{
		File:   MetricsFigureFile,
		Title:  "Performance Analysis from Real Metrics",
		Rows:   3,
		Cols:   2,
		Width:  16 * vg.Inch,
		Height: 18 * vg.Inch,
		Panels: []Panel{
			copyPoolPanel(ix),
			comparisonPanel(ix),
			throughputPanel(ix, totalOps, "Throughput (Millions ops/sec)", "strcmp"),
			memoryPanel(ix, "Memory Footprint", ".rodata (strings/data)", "Buffer RAM (hypothetical)", metrics.Human),
			optimizationPanel(ix, "Optimization Analysis (ns/op)", nsFormat),
			poolingPanel(ix, "Pooling"),
		},
	}
}

// ResultsFigure focuses on string comparison cost and memory footprint.
func ResultsFigure(ix *metrics.Index, totalOps int64) Figure {
	return Figure{
		File:   ResultsFigureFile,
		Title:  "C/C++ Constant Pool: Real Results (CSV)",
		Rows:   2,
		Cols:   2,
		Width:  16 * vg.Inch,
		Height: 12 * vg.Inch,
		Panels: []Panel{
			comparisonMicrosPanel(ix),
			throughputPanel(ix, totalOps, "Throughput (M ops/sec)", "strcmp()"),
			memoryPanel(ix, "Memory Footprint (Bytes)", ".rodata", "Buffer RAM", wholeBytes),
			memoryPiePanel(ix),
		},
	}
}

// DetailedFigure covers the per-binary breakdown on log scales.
func DetailedFigure(ix *metrics.Index) Figure {
	return Figure{
		File:   DetailedFigureFile,
		Title:  "Detailed Performance Analysis (CSV)",
		Rows:   2,
		Cols:   2,
		Width:  16 * vg.Inch,
		Height: 12 * vg.Inch,
		Panels: []Panel{
			copyPoolLogPanel(ix),
			optimizationPanel(ix, "Optimization Analysis (ns/op, log)", shortG),
			webServerPanel(ix),
			poolingPanel(ix, "Literal Pooling"),
		},
	}
}
