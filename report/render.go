package report

import (
	"fmt"
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	titleFontSize      = 14
	annotationFontSize = 10
	speedupFontSize    = 13
	messageFontSize    = 12
	indicatorFontSize  = 24
)

// newPlot draws the panel as a gonum plot fitted to a tile of w×h.
func (p Panel) newPlot(w, h vg.Length) (*plot.Plot, error) {
	switch p.Kind {
	case KindBars:
		return p.barPlot(w)
	case KindPie:
		return p.piePlot(w, h)
	case KindIndicator:
		return p.textPlot(p.TextColor, indicatorFontSize, true)
	case KindPlaceholder:
		return p.textPlot(colorPlainTxt, messageFontSize, false)
	default:
		return nil, fmt.Errorf("unknown panel kind %d", p.Kind)
	}
}

func newTitledPlot(title string) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = title
	pl.Title.TextStyle.Font.Size = vg.Points(titleFontSize)
	pl.Title.TextStyle.Font.Weight = xfont.WeightBold
	return pl
}

func textStyle(clr color.Color, size float64, bold bool) text.Style {
	f := font.From(plot.DefaultFont, vg.Points(size))
	if bold {
		f.Weight = xfont.WeightBold
	}
	return text.Style{
		Color:   clr,
		Font:    f,
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

func newLabels(xys plotter.XYs, labels []string, sty text.Style) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i] = sty
	}
	return l, nil
}

// textPlot is an axis-free panel with one centred caption.
func (p Panel) textPlot(clr color.Color, size float64, bold bool) (*plot.Plot, error) {
	pl := newTitledPlot(p.Title)
	pl.HideAxes()

	caption, err := newLabels(plotter.XYs{{X: 0.5, Y: 0.5}}, []string{p.Message}, textStyle(clr, size, bold))
	if err != nil {
		return nil, err
	}
	pl.Add(caption)
	pl.X.Min, pl.X.Max = 0, 1
	pl.Y.Min, pl.Y.Max = 0, 1
	return pl, nil
}

// barPlot draws one coloured bar per value on a nominal X axis, with the
// value annotation above each bar and the optional speedup overlay.
func (p Panel) barPlot(w vg.Length) (*plot.Plot, error) {
	if len(p.Bars) == 0 {
		return nil, fmt.Errorf("bar panel %q has no bars", p.Title)
	}

	pl := newTitledPlot(p.Title)
	pl.Y.Label.Text = p.YLabel

	width := w / vg.Length(2*len(p.Bars)+1)
	maxV, minV := math.Inf(-1), math.Inf(1)
	annotations := make(plotter.XYs, len(p.Bars))
	texts := make([]string, len(p.Bars))
	for i, b := range p.Bars {
		bar, err := plotter.NewBarChart(plotter.Values{b.Value}, width)
		if err != nil {
			return nil, fmt.Errorf("failed to create bar %q: %w", b.Label, err)
		}
		bar.XMin = float64(i)
		bar.Color = b.Color
		bar.LineStyle.Width = 0
		pl.Add(bar)

		maxV = math.Max(maxV, b.Value)
		minV = math.Min(minV, b.Value)
		annotations[i] = plotter.XY{X: float64(i), Y: b.Value}
		texts[i] = b.Text
	}

	valueStyle := textStyle(color.Black, annotationFontSize, true)
	valueStyle.YAlign = draw.YBottom
	values, err := newLabels(annotations, texts, valueStyle)
	if err != nil {
		return nil, err
	}
	values.Offset = vg.Point{Y: vg.Points(3)}
	pl.Add(values)

	if p.LogScale {
		pl.Y.Min = math.Max(minV/10, logFloor/10)
		pl.Y.Max = maxV * 10
		pl.Y.Scale = floorLogScale{Floor: pl.Y.Min}
		pl.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	} else {
		pl.Y.Min = math.Min(0, minV)
		pl.Y.Max = maxV * 1.15
		if pl.Y.Max <= pl.Y.Min {
			pl.Y.Max = pl.Y.Min + 1
		}
	}

	if p.Speedup != "" {
		overlay, err := newLabels(plotter.XYs{{X: 0.5, Y: maxV * 0.85}}, []string{p.Speedup},
			textStyle(colorSpeedup, speedupFontSize, true))
		if err != nil {
			return nil, err
		}
		pl.Add(overlay)
	}

	pl.NominalX(p.Labels()...)
	pl.X.Min = -0.5
	pl.X.Max = float64(len(p.Bars)) - 0.5
	return pl, nil
}

// floorLogScale is a log scale that maps values at or below Floor (bar
// bases at zero, for instance) onto the bottom of the axis instead of
// panicking like plot.LogScale.
type floorLogScale struct {
	Floor float64
}

var _ plot.Normalizer = floorLogScale{}

func (s floorLogScale) Normalize(min, max, x float64) float64 {
	min = math.Max(min, s.Floor)
	max = math.Max(max, min)
	x = math.Min(math.Max(x, min), max)
	if max == min {
		return 0
	}
	logMin := math.Log(min)
	return (math.Log(x) - logMin) / (math.Log(max) - logMin)
}
