// Package ribbon draws a "Fork me on GitHub" corner ribbon: a diagonal
// band across the top-right corner of a square image, a label rotated
// along the band and two dashed stitch lines near its edges.
//
// The image background is transparent so the ribbon can be overlaid on a
// page corner.
//
// Make shows the ribbon through Options.Viewer, which defaults to
// display.Nop. Pass WithViewer(window.Viewer{}) from package
// display/window to open it in a desktop window.
package ribbon

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/display"
	"github.com/gogpu/ggart/figure"
	"github.com/gogpu/ggart/palette"
)

// Breakpoints of the band in data coordinates. The view spans
// [Left, Right] on both axes.
const (
	Left   = 0.3
	Center = 0.4
	Right  = 0.6
)

// Label placement, stitch geometry and the width of the band outline,
// which is stroked in the band colour. Widths are in points.
const (
	labelX, labelY = 0.475, 0.475
	labelRotation  = -45
	stitchOffset   = 0.005
	stitchWidth    = 0.6
	bandEdgeWidth  = 1.0
)

// Options configures the ribbon.
type Options struct {
	// Background is the band colour.
	Background string
	// TextColor colours the label and the stitches.
	TextColor string
	Text      string
	// FontSize is in points.
	FontSize float64
	// Width, Height are the figure size in inches.
	Width, Height float64
	// OutputFile, when non-empty, is written before the ribbon is shown.
	// The format follows the extension.
	OutputFile string
	DPI        float64
	// Viewer receives the finished image. Nil means display.Nop.
	Viewer display.Viewer
}

// DefaultOptions returns the standard ribbon.
func DefaultOptions() Options {
	return Options{
		Background: "darkslategray",
		TextColor:  "white",
		Text:       "Fork me on GitHub",
		FontSize:   14,
		Width:      3,
		Height:     3,
		DPI:        400,
	}
}

// Option modifies Options.
type Option func(*Options)

// WithBackground sets the band colour.
func WithBackground(spec string) Option {
	return func(o *Options) { o.Background = spec }
}

// WithTextColor sets the label and stitch colour.
func WithTextColor(spec string) Option {
	return func(o *Options) { o.TextColor = spec }
}

// WithText sets the label.
func WithText(s string) Option {
	return func(o *Options) { o.Text = s }
}

// WithFontSize sets the label size in points.
func WithFontSize(pt float64) Option {
	return func(o *Options) { o.FontSize = pt }
}

// WithFigureSize sets the image size in inches.
func WithFigureSize(w, h float64) Option {
	return func(o *Options) { o.Width, o.Height = w, h }
}

// WithOutputFile saves the ribbon to path.
func WithOutputFile(path string) Option {
	return func(o *Options) { o.OutputFile = path }
}

// WithDPI sets the resolution.
func WithDPI(dpi float64) Option {
	return func(o *Options) { o.DPI = dpi }
}

// WithViewer sets where the finished ribbon is shown.
func WithViewer(v display.Viewer) Option {
	return func(o *Options) { o.Viewer = v }
}

// Band returns the vertices of the ribbon band.
func Band() []figure.Point {
	return []figure.Point{
		figure.Pt(Left, Right),
		figure.Pt(Center, Right),
		figure.Pt(Right, Center),
		figure.Pt(Right, Left),
	}
}

// Stitches returns the two dashed lines running along the band's long
// edges, pulled slightly inside so they do not sit on the edge itself.
func Stitches() [2][2]figure.Point {
	return [2][2]figure.Point{
		{figure.Pt(Left+stitchOffset, Right), figure.Pt(Right, Left+stitchOffset)},
		{figure.Pt(Center-stitchOffset, Right), figure.Pt(Right, Center-stitchOffset)},
	}
}

// Render draws the ribbon into a new figure. The caller owns the figure
// and must Close it.
func Render(o Options) (*figure.Figure, error) {
	bg, err := palette.Parse(o.Background)
	if err != nil {
		return nil, fmt.Errorf("ribbon: background: %w", err)
	}
	fg, err := palette.Parse(o.TextColor)
	if err != nil {
		return nil, fmt.Errorf("ribbon: text color: %w", err)
	}
	if !(o.FontSize > 0) {
		return nil, fmt.Errorf("ribbon: font size must be positive, got %v", o.FontSize)
	}

	fig, err := figure.New(o.Width, o.Height, o.DPI, figure.WithTransparent())
	if err != nil {
		return nil, fmt.Errorf("ribbon: %w", err)
	}
	if err := draw(fig, o, bg, fg); err != nil {
		_ = fig.Close()
		return nil, fmt.Errorf("ribbon: %w", err)
	}
	ggart.Logger().Debug("ribbon rendered", "text", o.Text, "width", fig.Width(), "height", fig.Height())
	return fig, nil
}

func draw(fig *figure.Figure, o Options, bg, fg gg.RGBA) error {
	ax := fig.AddAxes(figure.DefaultSubplot)
	if err := ax.SetXLim(Left, Right); err != nil {
		return err
	}
	if err := ax.SetYLim(Left, Right); err != nil {
		return err
	}
	ax.SetAspectEqual()

	edge := figure.LineStyle{Width: bandEdgeWidth, Color: bg, Cap: gg.LineCapButt}
	if err := ax.Patch(Band(), bg, edge); err != nil {
		return fmt.Errorf("band: %w", err)
	}

	label := figure.TextStyle{Size: o.FontSize, Color: fg, Rotation: labelRotation}
	if err := ax.Text(figure.Pt(labelX, labelY), o.Text, label); err != nil {
		return fmt.Errorf("label: %w", err)
	}

	stitch := figure.LineStyle{Width: stitchWidth, Color: fg, Cap: gg.LineCapButt, Dashed: true}
	for _, s := range Stitches() {
		if err := ax.Line(s[0], s[1], stitch); err != nil {
			return fmt.Errorf("stitch: %w", err)
		}
	}
	return nil
}

// Make renders the ribbon, saves it when an output file is set, and shows
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
			return fmt.Errorf("ribbon: %w", err)
		}
	}

	v := o.Viewer
	if v == nil {
		v = display.Nop
	}
	return v.Show(o.Text, fig.Image())
}
