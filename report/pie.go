package report

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// piePixelsPerPoint sets the go-chart raster size relative to the tile.
const piePixelsPerPoint = 2

func chartColor(c color.Color) drawing.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// piePlot renders the slices with go-chart and places the raster inside an
// axis-free gonum plot so it shares the figure's title and layout.
func (p Panel) piePlot(w, h vg.Length) (*plot.Plot, error) {
	if len(p.Slices) == 0 {
		return nil, fmt.Errorf("pie panel %q has no slices", p.Title)
	}

	values := make([]chart.Value, len(p.Slices))
	for i, s := range p.Slices {
		values[i] = chart.Value{
			Label: s.Label,
			Value: s.Value,
			Style: chart.Style{
				FillColor:   chartColor(s.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		}
	}

	side := int(piePixelsPerPoint * min(w, h).Points())
	pie := chart.PieChart{
		Width:  side,
		Height: side,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie %q: %w", p.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pie %q: %w", p.Title, err)
	}

	pl := newTitledPlot(p.Title)
	pl.HideAxes()
	pl.Add(plotter.NewImage(img, 0, 0, 1, 1))
	// Widen the shorter axis so the square raster keeps its aspect.
	pad := func(long, short vg.Length) float64 { return (float64(long/short) - 1) / 2 }
	pl.X.Min, pl.X.Max = 0, 1
	pl.Y.Min, pl.Y.Max = 0, 1
	if w > h {
		d := pad(w, h)
		pl.X.Min, pl.X.Max = -d, 1+d
	} else if h > w {
		d := pad(h, w)
		pl.Y.Min, pl.Y.Max = -d, 1+d
	}
	return pl, nil
}
