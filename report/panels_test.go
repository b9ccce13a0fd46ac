package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmutensarsahin/literal-pooling-analysis/metrics"
)

func record(k metrics.Key, raw, unit string) metrics.Record {
	return metrics.Record{
		Module: k.Module,
		File:   k.File,
		Binary: k.Binary,
		Metric: k.Metric,
		Value:  metrics.ParseValue(raw),
		Unit:   unit,
	}
}

func fullIndex() *metrics.Index {
	return metrics.NewIndex([]metrics.Record{
		record(metrics.PerfKey(metrics.MetricCopyDuration), "1000", "microseconds"),
		record(metrics.PerfKey(metrics.MetricPoolDuration), "10", "microseconds"),
		record(metrics.PerfKey(metrics.MetricStrcmpDuration), "1000000", "microseconds"),
		record(metrics.PerfKey(metrics.MetricPointerDuration), "250000", "microseconds"),
		record(metrics.PerfKey(metrics.MetricRodataSize), "12800", "bytes"),
		record(metrics.OptimizationKey(metrics.MetricAvgDirect), "0", "ns"),
		record(metrics.OptimizationKey(metrics.MetricAvgFunction), "1.5", "ns"),
		record(metrics.OptimizationKey(metrics.MetricAvgTemplate), "0.004", "ns"),
		record(metrics.BasicsKey(metrics.MetricLiteralPoolingWorked), "1", ""),
		record(metrics.WebServerKey(metrics.MetricInefficientTotalTime), "120", "ms"),
		record(metrics.WebServerKey(metrics.MetricOptimizedTotalTime), "80", "ms"),
		record(metrics.WebServerKey(metrics.MetricPooledTotalTime), "40", "ms"),
	})
}

func allFigures(ix *metrics.Index) []Figure {
	return []Figure{
		MetricsFigure(ix, metrics.DefaultTotalOps),
		ResultsFigure(ix, metrics.DefaultTotalOps),
		DetailedFigure(ix),
	}
}

func TestCopyPoolPanel(t *testing.T) {
	p := copyPoolPanel(fullIndex())

	require.Equal(t, KindBars, p.Kind)
	assert.Equal(t, []string{"Copy", "Constant Pool"}, p.Labels())
	assert.Equal(t, 1000.0, p.Bars[0].Value)
	assert.Equal(t, "1.0 ms", p.Bars[0].Text)
	assert.Equal(t, "10 µs", p.Bars[1].Text)
	assert.Equal(t, "100.00x faster", p.Speedup)
	assert.False(t, p.IsPlaceholder())
}

func TestBarPanel_SkipsNonNumericValue(t *testing.T) {
	ix := metrics.NewIndex([]metrics.Record{
		record(metrics.PerfKey(metrics.MetricCopyDuration), "n/a", "microseconds"),
		record(metrics.PerfKey(metrics.MetricPoolDuration), "10", "microseconds"),
	})

	p := copyPoolPanel(ix)
	require.Equal(t, KindBars, p.Kind)
	assert.Equal(t, []string{"Constant Pool"}, p.Labels())
	assert.Empty(t, p.Speedup)
}

func TestBarPanel_NoSpeedupForZeroImprovement(t *testing.T) {
	ix := metrics.NewIndex([]metrics.Record{
		record(metrics.PerfKey(metrics.MetricStrcmpDuration), "500", "microseconds"),
		record(metrics.PerfKey(metrics.MetricPointerDuration), "0", "microseconds"),
	})

	p := comparisonMicrosPanel(ix)
	require.Len(t, p.Bars, 2)
	assert.Equal(t, "500 µs", p.Bars[0].Text)
	assert.Equal(t, "0 µs", p.Bars[1].Text)
	assert.Empty(t, p.Speedup)
}

func TestOptimizationPanel_LogFloor(t *testing.T) {
	p := optimizationPanel(fullIndex(), "Optimization Analysis (ns/op)", nsFormat)

	require.Equal(t, KindBars, p.Kind)
	require.True(t, p.LogScale)
	require.Len(t, p.Bars, 3)

	assert.Equal(t, logFloor, p.Bars[0].Value)
	assert.Equal(t, "0 ns", p.Bars[0].Text)
	assert.Equal(t, "1.50 ns", p.Bars[1].Text)
	assert.Equal(t, "0.004 ns", p.Bars[2].Text)
	assert.Equal(t, 0.004, p.Bars[2].Value)
}

func TestThroughputPanel(t *testing.T) {
	t.Run("MillionsOfOpsPerSecond", func(t *testing.T) {
		p := throughputPanel(fullIndex(), 50_000_000, "Throughput", "strcmp")
		require.Len(t, p.Bars, 2)
		assert.InDelta(t, 50.0, p.Bars[0].Value, 1e-9)
		assert.Equal(t, "50.00M", p.Bars[0].Text)
		assert.InDelta(t, 200.0, p.Bars[1].Value, 1e-9)
		assert.Equal(t, "200.00M", p.Bars[1].Text)
	})

	t.Run("ZeroDurationIsSkipped", func(t *testing.T) {
		ix := metrics.NewIndex([]metrics.Record{
			record(metrics.PerfKey(metrics.MetricStrcmpDuration), "0", "microseconds"),
			record(metrics.PerfKey(metrics.MetricPointerDuration), "1000000", "microseconds"),
		})
		p := throughputPanel(ix, 1_000_000, "Throughput", "strcmp")
		assert.Equal(t, []string{"pointer"}, p.Labels())
	})

	t.Run("NoPositiveDuration", func(t *testing.T) {
		ix := metrics.NewIndex([]metrics.Record{
			record(metrics.PerfKey(metrics.MetricStrcmpDuration), "0", "microseconds"),
		})
		p := throughputPanel(ix, 1_000_000, "Throughput", "strcmp")
		assert.True(t, p.IsPlaceholder())
	})
}

func TestMemoryPanels(t *testing.T) {
	ix := fullIndex()

	bars := memoryPanel(ix, "Memory Footprint (Bytes)", ".rodata", "Buffer RAM", wholeBytes)
	require.Len(t, bars.Bars, 2)
	assert.Equal(t, "12800 B", bars.Bars[0].Text)
	assert.Equal(t, float64(bufferRAMBytes), bars.Bars[1].Value)

	human := memoryPanel(ix, "Memory Footprint", ".rodata", "Buffer RAM", metrics.Human)
	assert.Equal(t, "12.5 KiB", human.Bars[0].Text)

	pie := memoryPiePanel(ix)
	require.Equal(t, KindPie, pie.Kind)
	require.Len(t, pie.Slices, 2)
	assert.Equal(t, ".rodata 50.0%", pie.Slices[0].Label)
	assert.Equal(t, "Buffer RAM 50.0%", pie.Slices[1].Label)
}

func TestMemoryPiePanel_ZeroRodata(t *testing.T) {
	ix := metrics.NewIndex([]metrics.Record{
		record(metrics.PerfKey(metrics.MetricRodataSize), "0", "bytes"),
	})

	p := memoryPiePanel(ix)
	require.Equal(t, KindPie, p.Kind)
	assert.Equal(t, ".rodata 0.0%", p.Slices[0].Label)
	assert.Equal(t, "Buffer RAM 100.0%", p.Slices[1].Label)
}

func TestWebServerPanel(t *testing.T) {
	p := webServerPanel(fullIndex())
	assert.Equal(t, []string{"Inefficient", "Optimized", "Pooled"}, p.Labels())
	assert.Equal(t, "120 ms", p.Bars[0].Text)
	assert.Empty(t, p.Speedup)
}

func TestPoolingPanel(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		color string
	}{
		{"NumericTrue", "1", "Pooling: YES", "#2E7D32"},
		{"NumericFalse", "0", "Pooling: NO", "#C62828"},
		{"TextYes", "yes", "Pooling: YES", "#2E7D32"},
		{"TextTrueMixedCase", "True", "Pooling: YES", "#2E7D32"},
		{"OtherText", "maybe", "Pooling: NO", "#C62828"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := metrics.NewIndex([]metrics.Record{
				record(metrics.BasicsKey(metrics.MetricLiteralPoolingWorked), tt.raw, ""),
			})
			p := poolingPanel(ix, "Pooling")
			assert.Equal(t, KindIndicator, p.Kind)
			assert.Equal(t, tt.want, p.Message)
			assert.Equal(t, hex(tt.color), p.TextColor)
		})
	}
}

func TestFigures_EmptyIndexUsesPlaceholders(t *testing.T) {
	for _, f := range allFigures(metrics.NewIndex(nil)) {
		t.Run(f.File, func(t *testing.T) {
			require.NotEmpty(t, f.Panels)
			for _, p := range f.Panels {
				assert.True(t, p.IsPlaceholder(), p.Title)
				assert.Contains(t, p.Message, "No data found")
			}
		})
	}
}

func TestFigures_Layout(t *testing.T) {
	figs := allFigures(fullIndex())
	require.Len(t, figs, 3)

	files := []string{MetricsFigureFile, ResultsFigureFile, DetailedFigureFile}
	for i, f := range figs {
		assert.Equal(t, files[i], f.File)
		assert.NoError(t, f.validate())
		assert.Len(t, f.Panels, f.Rows*f.Cols, f.File)
		for _, p := range f.Panels {
			assert.False(t, p.IsPlaceholder(), "%s: %s", f.File, p.Title)
		}
	}

	assert.Equal(t, "Literal Pooling: YES", figs[2].Panels[3].Message)
}

func TestPanels_NonFiniteValues(t *testing.T) {
	for _, raw := range []string{"NaN", "inf", "-inf"} {
		t.Run(raw, func(t *testing.T) {
			ix := metrics.NewIndex([]metrics.Record{
				record(metrics.PerfKey(metrics.MetricCopyDuration), raw, "microseconds"),
				record(metrics.PerfKey(metrics.MetricPoolDuration), "10", "microseconds"),
				record(metrics.PerfKey(metrics.MetricStrcmpDuration), raw, "microseconds"),
				record(metrics.PerfKey(metrics.MetricRodataSize), raw, "bytes"),
			})

			copyPool := copyPoolPanel(ix)
			assert.Equal(t, []string{"Constant Pool"}, copyPool.Labels())
			assert.Empty(t, copyPool.Speedup)

			assert.Equal(t, []string{"Constant Pool"}, copyPoolLogPanel(ix).Labels())
			assert.True(t, comparisonPanel(ix).IsPlaceholder())
			assert.True(t, throughputPanel(ix, metrics.DefaultTotalOps, "Throughput", "strcmp").IsPlaceholder())
			assert.True(t, memoryPanel(ix, "Memory Footprint", ".rodata", "Buffer RAM", metrics.Human).IsPlaceholder())
			assert.True(t, memoryPiePanel(ix).IsPlaceholder())
		})
	}
}
