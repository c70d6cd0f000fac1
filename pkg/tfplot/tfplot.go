// Package tfplot draws temperature factors against atom serial numbers
// and writes the picture as a PNG.
package tfplot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/golang/freetype"
	"github.com/golang/freetype/raster"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Options say how big the picture is. Sizes are in inches.
type Options struct {
	Title    string
	WidthIn  float64
	HeightIn float64
	DPI      float64 // 0 means DefaultDPI
}

const DefaultDPI = 100

// MaxPixels is the biggest width or height we will draw. MaxInches is
// the same at DefaultDPI.
const (
	MaxPixels = 8000
	MaxInches = MaxPixels / DefaultDPI
)

var (
	ErrTooFew  = errors.New("need at least two points to plot")
	ErrBadSize = errors.New("plot width and height must be positive and not too big")
)

const (
	fontSize = 10 // points
	margin   = 0.12
)

var (
	axisColour = color.Black
	lineColour = color.RGBA{R: 0x1f, G: 0x4e, B: 0xa8, A: 0xff}
)

// The Go Regular font is compiled in, so parsing only fails if the
// font data is broken.
var regular, fontErr = freetype.ParseFont(goregular.TTF)

// frame maps data coordinates onto the pixels of the plot area.
type frame struct {
	x0, y0, x1, y1         float64 // plot area in pixels, y0 at the bottom
	xmin, xmax, ymin, ymax float32
}

func (f frame) pt(x, y float32) fixed.Point26_6 {
	fx := f.x0 + (f.x1-f.x0)*float64(x-f.xmin)/float64(f.xmax-f.xmin)
	fy := f.y0 - (f.y0-f.y1)*float64(y-f.ymin)/float64(f.ymax-f.ymin)
	return fixed.Point26_6{X: fixed.Int26_6(fx * 64), Y: fixed.Int26_6(fy * 64)}
}

// bounds of column col. A flat range is widened so we do not divide
// by zero.
func bounds(mat [][]float32, col int) (lo, hi float32) {
	lo, hi = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	for _, row := range mat {
		lo = min(lo, row[col])
		hi = max(hi, row[col])
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// Image draws series, which has serial numbers in column 0 and
// temperature factors in column 1.
func Image(series *matrix.FMatrix2d, opt Options) (*image.RGBA, error) {
	if fontErr != nil {
		return nil, fontErr
	}
	if series == nil {
		return nil, ErrTooFew
	}
	if nr, nc := series.Size(); nr < 2 || nc < 2 {
		return nil, ErrTooFew
	}
	dpi := opt.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	if !(opt.WidthIn > 0) || !(opt.HeightIn > 0) || !(dpi > 0) {
		return nil, fmt.Errorf("%w: %gx%g at %g dpi", ErrBadSize, opt.WidthIn, opt.HeightIn, dpi)
	}
	wf, hf := opt.WidthIn*dpi, opt.HeightIn*dpi
	if wf > MaxPixels || hf > MaxPixels { // also catches +Inf before int()
		return nil, fmt.Errorf("%w: %.0fx%.0f pixels is more than %d", ErrBadSize, wf, hf, MaxPixels)
	}
	w, h := int(wf), int(hf)
	if w < 10 || h < 10 {
		return nil, fmt.Errorf("%w: %dx%d pixels is too small", ErrBadSize, w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	f := frame{
		x0: margin * float64(w), x1: (1 - margin) * float64(w),
		y0: (1 - margin) * float64(h), y1: margin * float64(h),
	}
	f.xmin, f.xmax = bounds(series.Mat, 0)
	f.ymin, f.ymax = bounds(series.Mat, 1)

	ras := raster.NewRasterizer(w, h)
	ras.UseNonZeroWinding = true
	paint := raster.NewRGBAPainter(img)
	stroke := func(p raster.Path, c color.Color) {
		ras.Clear()
		ras.AddStroke(p, fixed.I(1), nil, nil)
		paint.SetColor(c)
		ras.Rasterize(paint)
	}

	var axes raster.Path
	axes.Start(f.pt(f.xmin, f.ymax))
	axes.Add1(f.pt(f.xmin, f.ymin))
	axes.Add1(f.pt(f.xmax, f.ymin))
	stroke(axes, axisColour)

	var line raster.Path
	line.Start(f.pt(series.Mat[0][0], series.Mat[0][1]))
	for _, row := range series.Mat[1:] {
		line.Add1(f.pt(row[0], row[1]))
	}
	stroke(line, lineColour)

	if err := label(img, dpi, f, opt.Title); err != nil {
		return nil, err
	}
	return img, nil
}

// label writes the title and the axis extremes.
func label(img *image.RGBA, dpi float64, f frame, title string) error {
	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(regular)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	lineH := int(c.PointToFixed(fontSize) >> 6)
	txt := []struct {
		s    string
		x, y int
	}{
		{title, int(f.x0), int(f.y1) - lineH/2},
		{fmt.Sprintf("%g", f.xmin), int(f.x0), int(f.y0) + lineH + 2},
		{fmt.Sprintf("%g", f.xmax), int(f.x1) - 3*lineH, int(f.y0) + lineH + 2},
		{fmt.Sprintf("%.1f", f.ymin), 2, int(f.y0)},
		{fmt.Sprintf("%.1f", f.ymax), 2, int(f.y1) + lineH},
	}
	for _, t := range txt {
		if t.s == "" {
			continue
		}
		if _, err := c.DrawString(t.s, freetype.Pt(t.x, t.y)); err != nil {
			return err
		}
	}
	return nil
}

// Render draws series and writes it to w as a PNG.
func Render(w io.Writer, series *matrix.FMatrix2d, opt Options) error {
	img, err := Image(series, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
