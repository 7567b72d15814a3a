package figure

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Point is a position in data coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is a region of the figure in fractions of its size, origin at the
// bottom-left corner.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// DefaultSubplot is the region a single default subplot occupies.
var DefaultSubplot = Rect{Left: 0.125, Bottom: 0.11, Width: 0.775, Height: 0.77}

// TightPad is the padding, in points, used by tight layouts: 1.08 times a
// 10 pt font.
const TightPad = 1.08 * 10

// Axes maps a data rectangle onto a region of its figure. Axes draw no
// decorations; they only position and clip primitives.
type Axes struct {
	fig         *Figure
	rect        Rect
	xmin, xmax  float64
	ymin, ymax  float64
	aspectEqual bool
	layer       *gg.Context
}

// Figure returns the figure the axes belong to.
func (a *Axes) Figure() *Figure { return a.fig }

// SetXLim sets the data range shown horizontally.
func (a *Axes) SetXLim(lo, hi float64) error {
	if err := checkRange(lo, hi); err != nil {
		return fmt.Errorf("figure: x limits: %w", err)
	}
	a.xmin, a.xmax = lo, hi
	return nil
}

// SetYLim sets the data range shown vertically.
func (a *Axes) SetYLim(lo, hi float64) error {
	if err := checkRange(lo, hi); err != nil {
		return fmt.Errorf("figure: y limits: %w", err)
	}
	a.ymin, a.ymax = lo, hi
	return nil
}

// XLim returns the horizontal data range.
func (a *Axes) XLim() (lo, hi float64) { return a.xmin, a.xmax }

// YLim returns the vertical data range.
func (a *Axes) YLim() (lo, hi float64) { return a.ymin, a.ymax }

func checkRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("non-finite range [%v, %v]", lo, hi)
	}
	if lo == hi {
		return fmt.Errorf("empty range [%v, %v]", lo, hi)
	}
	return nil
}

// SetAspectEqual makes one data unit span the same number of pixels on
// both axes. The box shrinks about its centre to satisfy the ratio.
func (a *Axes) SetAspectEqual() {
	a.aspectEqual = true
}

// Box returns the pixel bounds of the axes: top-left corner and size.
func (a *Axes) Box() (x, y, w, h float64) {
	fw, fh := float64(a.fig.Width()), float64(a.fig.Height())
	x = a.rect.Left * fw
	w = a.rect.Width * fw
	h = a.rect.Height * fh
	y = (1 - a.rect.Bottom - a.rect.Height) * fh

	if a.aspectEqual {
		want := math.Abs(a.ymax-a.ymin) / math.Abs(a.xmax-a.xmin)
		if h/w > want {
			nh := w * want
			y += (h - nh) / 2
			h = nh
		} else {
			nw := h / want
			x += (w - nw) / 2
			w = nw
		}
	}
	return x, y, w, h
}

// PixelBox returns the axes box snapped to whole pixels and limited to
// the figure. Drawing outside it is discarded.
func (a *Axes) PixelBox() image.Rectangle {
	x, y, w, h := a.Box()
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	return r.Intersect(image.Rect(0, 0, a.fig.Width(), a.fig.Height()))
}

// ToPixel maps a data point to pixel coordinates (origin top-left, y down).
func (a *Axes) ToPixel(p Point) (px, py float64) {
	x, y, w, h := a.Box()
	px = x + (p.X-a.xmin)/(a.xmax-a.xmin)*w
	py = y + h - (p.Y-a.ymin)/(a.ymax-a.ymin)*h
	return px, py
}

// Scale returns how many pixels one data unit spans on each axis.
func (a *Axes) Scale() (sx, sy float64) {
	_, _, w, h := a.Box()
	return w / math.Abs(a.xmax-a.xmin), h / math.Abs(a.ymax-a.ymin)
}
