package report

import (
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PanelKind selects how a panel is drawn.
type PanelKind int

const (
	KindPlaceholder PanelKind = iota
	KindBars
	KindPie
	KindIndicator
)

func (k PanelKind) String() string {
	switch k {
	case KindBars:
		return "bars"
	case KindPie:
		return "pie"
	case KindIndicator:
		return "indicator"
	default:
		return "placeholder"
	}
}

// Bar is one annotated bar of a bar panel.
type Bar struct {
	Label string
	Value float64 // plotted height
	Text  string  // annotation drawn above the bar
	Color color.Color
}

// Slice is one wedge of a pie panel.
type Slice struct {
	Label string
	Value float64
	Color color.Color
}

// Panel is the resolved content of one chart region: what to draw, with
// every value and annotation already computed from the metrics index.
type Panel struct {
	Kind   PanelKind
	Title  string
	YLabel string

	Bars     []Bar
	LogScale bool
	Speedup  string // overlay such as "100.00x faster", empty when undefined

	Slices []Slice

	// Message is the centred caption of placeholder and indicator panels.
	Message   string
	TextColor color.Color
}

const noDataPrefix = "No data found"

func placeholder(title, what string) Panel {
	return Panel{
		Kind:    KindPlaceholder,
		Title:   title,
		Message: noDataPrefix + ": " + what,
	}
}

// IsPlaceholder reports whether the panel stands in for missing data.
func (p Panel) IsPlaceholder() bool {
	return p.Kind == KindPlaceholder && strings.HasPrefix(p.Message, noDataPrefix)
}

// Labels returns the bar labels in drawing order.
func (p Panel) Labels() []string {
	labels := make([]string, len(p.Bars))
	for i, b := range p.Bars {
		labels[i] = b.Label
	}
	return labels
}

func hex(s string) color.Color {
	return drawing.ColorFromHex(s)
}

var (
	colorSpeedup  = hex("#008000")
	colorPoolYes  = hex("#2E7D32")
	colorPoolNo   = hex("#C62828")
	colorPlainTxt = hex("#424242")
)
