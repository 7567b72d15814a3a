// Package figure provides an explicit drawing target for fixed artwork:
// a figure measured in inches at a given resolution, axes that map data
// coordinates onto it, and a small set of primitives drawn through gg.
//
// A Figure is owned by the call that creates it. Nothing in this package
// keeps a "current figure"; every primitive is a method on the Axes it
// belongs to.
//
//	fig, err := figure.New(3, 3, 100, figure.WithTransparent())
//	if err != nil {
//	    return err
//	}
//	defer fig.Close()
//
//	ax := fig.AddAxes(figure.DefaultSubplot)
//	ax.SetXLim(0, 1)
//	ax.SetYLim(0, 1)
//	ax.SetAspectEqual()
//	err = ax.Line(figure.Pt(0, 0), figure.Pt(1, 1), figure.LineStyle{Width: 2, Color: palette.Black})
package figure

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
)

// Sentinel errors for figure construction and export.
var (
	// ErrInvalidSize is returned for non-positive or non-finite figure sizes.
	ErrInvalidSize = errors.New("figure: invalid size")

	// ErrInvalidDPI is returned for non-positive or non-finite resolutions.
	ErrInvalidDPI = errors.New("figure: invalid dpi")

	// ErrUnsupportedFormat is returned when an output path has an extension
	// no encoder is registered for.
	ErrUnsupportedFormat = errors.New("figure: unsupported output format")

	// ErrClosed is returned when drawing on or exporting a closed figure.
	ErrClosed = errors.New("figure: closed")
)

// pointsPerInch is the typographic point used for widths and font sizes.
const pointsPerInch = 72.0

// Option configures a Figure during creation.
type Option func(*options)

type options struct {
	face        gg.RGBA
	transparent bool
}

func defaultOptions() options {
	return options{face: gg.RGBA{R: 1, G: 1, B: 1, A: 1}}
}

// WithFaceColor sets the colour the figure is cleared to. Default: white.
func WithFaceColor(c gg.RGBA) Option {
	return func(o *options) {
		o.face = c
	}
}

// WithTransparent clears the figure to fully transparent pixels instead of
// the face colour.
func WithTransparent() Option {
	return func(o *options) {
		o.transparent = true
	}
}

// Figure is a raster drawing target sized in inches.
type Figure struct {
	widthIn, heightIn float64
	dpi               float64
	dc                *gg.Context
	transparent       bool
	axes              []*Axes
	closed            bool
}

// New creates a figure of widthIn x heightIn inches rendered at dpi dots
// per inch. The pixel size is the rounded product of both.
func New(widthIn, heightIn, dpi float64, opts ...Option) (*Figure, error) {
	if !positive(widthIn) || !positive(heightIn) {
		return nil, fmt.Errorf("%w: %vx%v in", ErrInvalidSize, widthIn, heightIn)
	}
	if !positive(dpi) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDPI, dpi)
	}
	w := int(math.Round(widthIn * dpi))
	h := int(math.Round(heightIn * dpi))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d px", ErrInvalidSize, w, h)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dc := gg.NewContext(w, h)
	if o.transparent {
		dc.Clear()
	} else {
		dc.ClearWithColor(o.face)
	}

	ggart.Logger().Debug("figure created",
		"width_in", widthIn, "height_in", heightIn, "dpi", dpi,
		"width_px", w, "height_px", h, "transparent", o.transparent)

	return &Figure{
		widthIn:     widthIn,
		heightIn:    heightIn,
		dpi:         dpi,
		dc:          dc,
		transparent: o.transparent,
	}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Width returns the figure width in pixels.
func (f *Figure) Width() int { return f.dc.Width() }

// Height returns the figure height in pixels.
func (f *Figure) Height() int { return f.dc.Height() }

// DPI returns the resolution the figure was created with.
func (f *Figure) DPI() float64 { return f.dpi }

// SizeInches returns the physical figure size.
func (f *Figure) SizeInches() (w, h float64) { return f.widthIn, f.heightIn }

// Transparent reports whether the figure was created without a face colour.
func (f *Figure) Transparent() bool { return f.transparent }

// Points converts a length in points to pixels at the figure's dpi.
func (f *Figure) Points(pt float64) float64 {
	return pt * f.dpi / pointsPerInch
}

// Image returns a snapshot of the rendered pixels.
func (f *Figure) Image() image.Image {
	return f.dc.Image()
}

// Axes returns the axes added to the figure, in creation order.
func (f *Figure) Axes() []*Axes {
	return f.axes
}

// AddAxes adds axes covering rect, given as fractions of the figure with
// the origin at the bottom-left corner.
func (f *Figure) AddAxes(rect Rect) *Axes {
	ax := &Axes{
		fig:  f,
		rect: rect,
		xmin: 0, xmax: 1,
		ymin: 0, ymax: 1,
	}
	f.axes = append(f.axes, ax)
	return ax
}

// TightAxes adds axes filling the figure minus padPt points on every side.
func (f *Figure) TightAxes(padPt float64) *Axes {
	px := f.Points(padPt)
	fx := px / float64(f.Width())
	fy := px / float64(f.Height())
	return f.AddAxes(Rect{Left: fx, Bottom: fy, Width: 1 - 2*fx, Height: 1 - 2*fy})
}

// Close releases the drawing context. Close is idempotent.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	var errs []error
	for _, ax := range f.axes {
		if ax.layer != nil {
			errs = append(errs, ax.layer.Close())
			ax.layer = nil
		}
	}
	errs = append(errs, f.dc.Close())
	return errors.Join(errs...)
}
