package report

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mahmutensarsahin/literal-pooling-analysis/metrics"
)

const (
	// logFloor is where zero or negative values sit on a log axis.
	logFloor = 1e-9

	// Hypothetical RAM of the buffer-copy approach in perf_test:
	// 50 strings copied into 256 byte buffers.
	bufferStrings   = 50
	bufferSize      = 256
	bufferRAMBytes  = bufferStrings * bufferSize
	bytesUnit       = "bytes"
	microsUnit      = "microseconds"
	speedupTemplate = "%.2fx faster"
)

type barItem struct {
	label string
	key   metrics.Key
	color string
}

// barPanel describes a bar panel over a fixed list of metrics. Metrics that
// are absent, hold text, or are NaN or infinite are left out of the panel.
type barPanel struct {
	title    string
	yLabel   string
	missing  string
	items    []barItem
	format   func(v float64, unit string) string
	speedup  bool
	logScale bool
}

func (bp barPanel) build(ix *metrics.Index) Panel {
	var bars []Bar
	var raw []float64
	for _, it := range bp.items {
		r, ok := ix.Lookup(it.key)
		if !ok {
			continue
		}
		v, ok := r.Value.Finite()
		if !ok {
			log.Debug().
				Str("metric", it.key.Metric).
				Str("value", r.Value.String()).
				Msg("Skipping non-numeric or non-finite bar value")
			continue
		}
		height := v
		if bp.logScale && height < logFloor {
			height = logFloor
		}
		bars = append(bars, Bar{
			Label: it.label,
			Value: height,
			Text:  bp.format(v, r.Unit),
			Color: hex(it.color),
		})
		raw = append(raw, v)
	}

	if len(bars) == 0 {
		log.Debug().Str("panel", bp.title).Msg("No data for panel, drawing placeholder")
		return placeholder(bp.title, bp.missing)
	}

	p := Panel{
		Kind:     KindBars,
		Title:    bp.title,
		YLabel:   bp.yLabel,
		Bars:     bars,
		LogScale: bp.logScale,
	}
	if bp.speedup && len(raw) == 2 {
		if s, ok := metrics.Speedup(raw[0], raw[1]); ok {
			p.Speedup = fmt.Sprintf(speedupTemplate, s)
		}
	}
	return p
}

func humanFormat(v float64, unit string) string {
	if unit == "" {
		unit = microsUnit
	}
	return metrics.Human(v, unit)
}

func wholeMicros(v float64, _ string) string { return fmt.Sprintf("%d µs", int64(v)) }

func nsFormat(v float64, _ string) string {
	if v < 0.01 {
		return fmt.Sprintf("%.3g ns", v)
	}
	return fmt.Sprintf("%.2f ns", v)
}

func shortG(v float64, _ string) string { return fmt.Sprintf("%.3g", v) }

func wholeMillis(v float64, _ string) string { return fmt.Sprintf("%.0f ms", v) }

// copyPoolPanel compares the buffer-copy run with the constant-pool run.
func copyPoolPanel(ix *metrics.Index) Panel {
	return barPanel{
		title:   "Processing Duration (perf_test)",
		yLabel:  microsUnit,
		missing: "perf_test copy/pool timings",
		items: []barItem{
			{"Copy", metrics.PerfKey(metrics.MetricCopyDuration), "#F44336"},
			{"Constant Pool", metrics.PerfKey(metrics.MetricPoolDuration), "#4CAF50"},
		},
		format:  humanFormat,
		speedup: true,
	}.build(ix)
}

// copyPoolLogPanel is copyPoolPanel on a log axis with whole-µs labels.
func copyPoolLogPanel(ix *metrics.Index) Panel {
	return barPanel{
		title:   "Processing Duration (log µs)",
		yLabel:  "µs",
		missing: "perf_test copy/pool timings",
		items: []barItem{
			{"Copy", metrics.PerfKey(metrics.MetricCopyDuration), "#EF5350"},
			{"Constant Pool", metrics.PerfKey(metrics.MetricPoolDuration), "#66BB6A"},
		},
		format:   wholeMicros,
		logScale: true,
	}.build(ix)
}

// comparisonPanel compares strcmp() against pointer equality.
func comparisonPanel(ix *metrics.Index) Panel {
	return barPanel{
		title:   "String Comparison Duration",
		yLabel:  microsUnit,
		missing: "string comparison timings",
		items: []barItem{
			{"strcmp", metrics.PerfKey(metrics.MetricStrcmpDuration), "#FF6B6B"},
			{"pointer", metrics.PerfKey(metrics.MetricPointerDuration), "#4ECDC4"},
		},
		format:  humanFormat,
		speedup: true,
	}.build(ix)
}

// comparisonMicrosPanel is comparisonPanel with whole-µs labels.
func comparisonMicrosPanel(ix *metrics.Index) Panel {
	return barPanel{
		title:   "String Comparison Duration (µs)",
		yLabel:  "µs",
		missing: "string comparison timings",
		items: []barItem{
			{"strcmp()", metrics.PerfKey(metrics.MetricStrcmpDuration), "#F44336"},
			{"pointer", metrics.PerfKey(metrics.MetricPointerDuration), "#4CAF50"},
		},
		format:  wholeMicros,
		speedup: true,
	}.build(ix)
}

// throughputPanel derives millions of comparisons per second from the
// comparison durations and the estimated total operation count.
func throughputPanel(ix *metrics.Index, totalOps int64, title, strcmpLabel string) Panel {
	items := []barItem{
		{strcmpLabel, metrics.PerfKey(metrics.MetricStrcmpDuration), "#9C27B0"},
		{"pointer", metrics.PerfKey(metrics.MetricPointerDuration), "#03A9F4"},
	}

	var bars []Bar
	for _, it := range items {
		d, ok := ix.Number(it.key)
		if !ok {
			continue
		}
		ops, ok := metrics.Throughput(totalOps, d)
		if !ok {
			continue
		}
		bars = append(bars, Bar{
			Label: it.label,
			Value: ops / 1e6,
			Text:  fmt.Sprintf("%.2fM", ops/1e6),
			Color: hex(it.color),
		})
	}
	if len(bars) == 0 {
		return placeholder(title, "ops/sec unavailable without positive comparison timings")
	}
	return Panel{
		Kind:   KindBars,
		Title:  title,
		YLabel: "M ops/sec",
		Bars:   bars,
	}
}

// memoryPanel puts the .rodata size next to the RAM the buffer-copy
// approach would need.
func memoryPanel(ix *metrics.Index, title, rodataLabel, bufferLabel string, format func(float64, string) string) Panel {
	ro, ok := ix.Number(metrics.PerfKey(metrics.MetricRodataSize))
	if !ok {
		return placeholder(title, ".rodata size")
	}
	return Panel{
		Kind:   KindBars,
		Title:  title,
		YLabel: bytesUnit,
		Bars: []Bar{
			{Label: rodataLabel, Value: ro, Text: format(ro, bytesUnit), Color: hex("#2196F3")},
			{Label: bufferLabel, Value: bufferRAMBytes, Text: format(bufferRAMBytes, bytesUnit), Color: hex("#FFC107")},
		},
	}
}

func wholeBytes(v float64, _ string) string { return fmt.Sprintf("%d B", int64(v)) }

// memoryPiePanel shows how .rodata and buffer RAM split the total.
func memoryPiePanel(ix *metrics.Index) Panel {
	const title = "Memory Distribution"
	ro, ok := ix.Number(metrics.PerfKey(metrics.MetricRodataSize))
	if !ok {
		return placeholder(title, ".rodata size")
	}
	shares, ok := metrics.MemorySplit(ro, bufferRAMBytes)
	if !ok {
		return placeholder(title, "positive memory sizes")
	}
	return Panel{
		Kind:  KindPie,
		Title: title,
		Slices: []Slice{
			{Label: fmt.Sprintf(".rodata %.1f%%", shares[0]), Value: ro, Color: hex("#2196F3")},
			{Label: fmt.Sprintf("Buffer RAM %.1f%%", shares[1]), Value: bufferRAMBytes, Color: hex("#FFC107")},
		},
	}
}

// optimizationPanel plots ns/op for direct, function and template access.
func optimizationPanel(ix *metrics.Index, title string, format func(float64, string) string) Panel {
	return barPanel{
		title:   title,
		yLabel:  "ns",
		missing: "optimization metrics",
		items: []barItem{
			{"direct", metrics.OptimizationKey(metrics.MetricAvgDirect), "#1E88E5"},
			{"function", metrics.OptimizationKey(metrics.MetricAvgFunction), "#43A047"},
			{"template", metrics.OptimizationKey(metrics.MetricAvgTemplate), "#FB8C00"},
		},
		format:   format,
		logScale: true,
	}.build(ix)
}

// webServerPanel compares the total request handling time of the three
// web server variants.
func webServerPanel(ix *metrics.Index) Panel {
	return barPanel{
		title:   "Web Server Total Time (ms)",
		yLabel:  "ms",
		missing: "web server timings",
		items: []barItem{
			{"Inefficient", metrics.WebServerKey(metrics.MetricInefficientTotalTime), "#E53935"},
			{"Optimized", metrics.WebServerKey(metrics.MetricOptimizedTotalTime), "#8E24AA"},
			{"Pooled", metrics.WebServerKey(metrics.MetricPooledTotalTime), "#039BE5"},
		},
		format: wholeMillis,
	}.build(ix)
}

// poolingPanel shows whether identical literals were deduplicated.
func poolingPanel(ix *metrics.Index, prefix string) Panel {
	const title = "Literal Pooling Deduplication"
	r, ok := ix.LiteralPoolingWorked()
	if !ok {
		return placeholder(title, "literal pooling flag")
	}
	if r.Value.Truthy() {
		return Panel{Kind: KindIndicator, Title: title, Message: prefix + ": YES", TextColor: colorPoolYes}
	}
	return Panel{Kind: KindIndicator, Title: title, Message: prefix + ": NO", TextColor: colorPoolNo}
}
