package report

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	suptitleFontSize = 18
	suptitleStrip    = 0.7 * vg.Inch
	tilePad          = 0.3 * vg.Inch
	// cropMargin is kept around the drawn content after trimming.
	cropMargin = 0.1 * vg.Inch
)

func (f Figure) tiles() draw.Tiles {
	return draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadTop:    suptitleStrip,
		PadBottom: tilePad,
		PadLeft:   tilePad,
		PadRight:  tilePad,
		PadX:      tilePad,
		PadY:      tilePad,
	}
}

func (f Figure) tileSize() (w, h vg.Length) {
	t := f.tiles()
	w = (f.Width - t.PadLeft - t.PadRight - vg.Length(f.Cols-1)*t.PadX) / vg.Length(f.Cols)
	h = (f.Height - t.PadTop - t.PadBottom - vg.Length(f.Rows-1)*t.PadY) / vg.Length(f.Rows)
	return w, h
}

func (f Figure) validate() error {
	if f.Rows <= 0 || f.Cols <= 0 {
		return fmt.Errorf("figure %s: invalid grid %dx%d", f.File, f.Rows, f.Cols)
	}
	if len(f.Panels) > f.Rows*f.Cols {
		return fmt.Errorf("figure %s: %d panels do not fit a %dx%d grid", f.File, len(f.Panels), f.Rows, f.Cols)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("figure %s: invalid size %vx%v", f.File, f.Width, f.Height)
	}
	return nil
}

// Render rasterises the figure at dpi: the title on top, panels laid out
// row-major below it, and the result trimmed to its drawn content.
func (f Figure) Render(dpi int) (_ image.Image, err error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("figure %s: invalid dpi %d", f.File, dpi)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	tw, th := f.tileSize()
	plots := make([][]*plot.Plot, f.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, f.Cols)
	}
	for i, p := range f.Panels {
		pl, err := p.newPlot(tw, th)
		if err != nil {
			return nil, fmt.Errorf("figure %s: panel %q: %w", f.File, p.Title, err)
		}
		plots[i/f.Cols][i%f.Cols] = pl
	}

	// gonum reports layout problems by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("figure %s: failed to draw: %v", f.File, r)
		}
	}()

	img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	sty := textStyle(color.Black, suptitleFontSize, true)
	dc.FillText(sty, vg.Point{X: f.Width / 2, Y: f.Height - suptitleStrip/2}, f.Title)

	canvases := plot.Align(plots, f.tiles(), dc)
	for r, row := range plots {
		for c, pl := range row {
			if pl != nil {
				pl.Draw(canvases[r][c])
			}
		}
	}

	margin := int(cropMargin.Dots(float64(dpi)) + 0.5)
	return trim(img.Image(), color.White, margin), nil
}

// trim crops img to the bounding box of pixels that differ from bg,
// grown by margin pixels on each side.
func trim(img image.Image, bg color.Color, margin int) image.Image {
	b := img.Bounds()
	var isBackground func(x, y int) bool
	if rgba, ok := img.(*image.RGBA); ok {
		c := color.RGBAModel.Convert(bg).(color.RGBA)
		isBackground = func(x, y int) bool {
			p := rgba.Pix[rgba.PixOffset(x, y):]
			return p[0] == c.R && p[1] == c.G && p[2] == c.B && p[3] == c.A
		}
	} else {
		br, bgG, bb, ba := bg.RGBA()
		isBackground = func(x, y int) bool {
			r, g, bl, a := img.At(x, y).RGBA()
			return r == br && g == bgG && bl == bb && a == ba
		}
	}

	box := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isBackground(x, y) {
				continue
			}
			box.Min.X = min(box.Min.X, x)
			box.Min.Y = min(box.Min.Y, y)
			box.Max.X = max(box.Max.X, x+1)
			box.Max.Y = max(box.Max.Y, y+1)
		}
	}
	if box.Empty() {
		return img
	}

	box = box.Inset(-margin).Intersect(b)
	out := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	imagedraw.Draw(out, out.Bounds(), img, box.Min, imagedraw.Src)
	return out
}

// WriteFigure renders f and writes it as dir/f.File, creating dir as
// needed. The PNG is written to a temporary file first and renamed into
// place so a failed run never leaves a truncated figure behind.
func WriteFigure(f Figure, dir string, dpi int) (string, error) {
	img, err := f.Render(dpi)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, f.File)
	tmp, err := os.CreateTemp(dir, f.File+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := png.Encode(w, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move figure into place at %s: %w", path, err)
	}
	return path, nil
}
