// Package logo draws the pyts logo: the letters p, y, t and s built from
// arcs and round-capped lines, with a colour-graded time series running
// through them.
//
// Draw order is fixed: letter arcs, letter lines, the series, then a small
// corrective patch near the "s".
//
// Make shows the logo through Options.Viewer, which defaults to
// display.Nop. Pass WithViewer(window.Viewer{}) from package
// display/window to open it in a desktop window.
package logo

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/display"
	"github.com/gogpu/ggart/figure"
	"github.com/gogpu/ggart/palette"
)

// View bounds framing every letter and the series.
const (
	XMin, XMax = -0.25, 1.25
	YMin, YMax = -0.65, 0.25
)

// Options configures the logo.
type Options struct {
	// Colormap names the gradient used for the series.
	Colormap string
	// Color is the letter colour.
	Color string
	// OutputFile, when non-empty, is written before the logo is shown.
	// The format follows the extension.
	OutputFile string
	DPI        float64
	// Width, Height are the figure size in inches.
	Width, Height float64
	// LineWidth is the stroke width of letters and series, in points.
	LineWidth float64
	// Viewer receives the finished image. Nil means display.Nop.
	Viewer display.Viewer
}

// DefaultOptions returns the settings the logo was designed with.
func DefaultOptions() Options {
	return Options{
		Colormap:  "jet",
		Color:     "darkslategray",
		DPI:       400,
		Width:     5,
		Height:    3,
		LineWidth: 20,
	}
}

// Option modifies Options.
type Option func(*Options)

// WithColormap sets the series gradient.
func WithColormap(name string) Option {
	return func(o *Options) { o.Colormap = name }
}

// WithColor sets the letter colour.
func WithColor(spec string) Option {
	return func(o *Options) { o.Color = spec }
}

// WithOutputFile saves the logo to path.
func WithOutputFile(path string) Option {
	return func(o *Options) { o.OutputFile = path }
}

// WithDPI sets the resolution.
func WithDPI(dpi float64) Option {
	return func(o *Options) { o.DPI = dpi }
}

// WithViewer sets where the finished logo is shown.
func WithViewer(v display.Viewer) Option {
	return func(o *Options) { o.Viewer = v }
}

// Render draws the logo into a new figure. The caller owns the figure and
// must Close it.
func Render(o Options) (*figure.Figure, error) {
	fg, err := palette.Parse(o.Color)
	if err != nil {
		return nil, fmt.Errorf("logo: color: %w", err)
	}
	cmap, err := colormap.Get(o.Colormap)
	if err != nil {
		return nil, fmt.Errorf("logo: %w", err)
	}
	if !(o.LineWidth > 0) {
		return nil, fmt.Errorf("logo: line width must be positive, got %v", o.LineWidth)
	}

	fig, err := figure.New(o.Width, o.Height, o.DPI, figure.WithFaceColor(palette.White))
	if err != nil {
		return nil, fmt.Errorf("logo: %w", err)
	}
	if err := draw(fig, o, fg, cmap); err != nil {
		_ = fig.Close()
		return nil, fmt.Errorf("logo: %w", err)
	}
	ggart.Logger().Debug("logo rendered", "cmap", cmap.Name(), "width", fig.Width(), "height", fig.Height())
	return fig, nil
}

func draw(fig *figure.Figure, o Options, fg gg.RGBA, cmap colormap.Colormap) error {
	ax := fig.TightAxes(figure.TightPad)
	if err := ax.SetXLim(XMin, XMax); err != nil {
		return err
	}
	if err := ax.SetYLim(YMin, YMax); err != nil {
		return err
	}

	for _, s := range layers(letterforms()) {
		if err := s.draw(ax, o.LineWidth, fg); err != nil {
			return fmt.Errorf("letters: %w", err)
		}
	}

	if err := drawSeries(ax, o.LineWidth, cmap); err != nil {
		return fmt.Errorf("series: %w", err)
	}

	patch := figure.LineStyle{Width: patchWidthScale * o.LineWidth, Color: fg, Cap: gg.LineCapButt}
	if err := ax.Arc(patchArc, patch); err != nil {
		return fmt.Errorf("patch: %w", err)
	}
	if err := ax.Rectangle(patchRectOrigin.X, patchRectOrigin.Y, patchRectW, patchRectH, palette.White); err != nil {
		return fmt.Errorf("patch: %w", err)
	}
	return nil
}

// seriesNorm spreads the gradient over the series; the tail past 1.1
// saturates at the top colour.
var seriesNorm = colormap.Normalize{Min: -0.2, Max: 1.1}

// SeriesPoints samples the time series over its domain.
func SeriesPoints() []figure.Point {
	xs := Linspace(SeriesStart, SeriesEnd, SeriesSamples)
	ys := TimeSeriesSlice(xs)
	pts := make([]figure.Point, len(xs))
	for i := range xs {
		pts[i] = figure.Pt(xs[i], ys[i])
	}
	return pts
}

// SeriesColors returns one colour per segment of pts, keyed by the
// x-coordinate of the segment's first point.
func SeriesColors(pts []figure.Point, cmap colormap.Colormap) []gg.RGBA {
	if len(pts) < 2 {
		return nil
	}
	colors := make([]gg.RGBA, len(pts)-1)
	for i := range colors {
		colors[i] = cmap.At(seriesNorm.Apply(pts[i].X))
	}
	return colors
}

func drawSeries(ax *figure.Axes, width float64, cmap colormap.Colormap) error {
	pts := SeriesPoints()
	st := figure.LineStyle{Width: width, Cap: gg.LineCapRound}
	return ax.Segments(pts, SeriesColors(pts, cmap), st)
}

// Make renders the logo, saves it when an output file is set, and shows
// it through the configured viewer.
func Make(opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fig, err := Render(o)
	if err != nil {
		return err
	}
	defer func() { _ = fig.Close() }()

	if o.OutputFile != "" {
		if err := fig.Save(o.OutputFile); err != nil {
			return fmt.Errorf("logo: %w", err)
		}
	}

	v := o.Viewer
	if v == nil {
		v = display.Nop
	}
	return v.Show("pyts", fig.Image())
}
