package figure

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// TextStyle describes a label.
type TextStyle struct {
	// Size is the font size in points.
	Size  float64
	Color gg.RGBA
	// Rotation is in degrees, counter-clockwise, about the anchor.
	Rotation float64
}

var boldSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(gobold.TTF)
})

// Text draws s centred on the data point at, in the bundled Go Bold face.
// Horizontal centring uses the advance width, vertical centring the
// font's ascent and descent.
func (a *Axes) Text(at Point, s string, st TextStyle) error {
	src, err := boldSource()
	if err != nil {
		return fmt.Errorf("figure: bold font: %w", err)
	}
	if !(st.Size > 0) {
		return fmt.Errorf("figure: font size must be positive, got %v", st.Size)
	}
	if s == "" {
		return nil
	}

	face := src.Face(a.fig.Points(st.Size))
	w, _ := text.Measure(s, face)
	m := face.Metrics()
	return a.draw(func(dc *gg.Context) error {
		px, py := a.ToPixel(at)
		dc.Push()
		defer dc.Pop()
		dc.SetFont(face)
		dc.SetFillBrush(gg.Solid(st.Color))
		dc.Translate(px, py)
		// Pixel space has y down, so a counter-clockwise turn is negative.
		dc.Rotate(-st.Rotation * math.Pi / 180)
		dc.DrawString(s, -w/2, (m.Ascent-m.Descent)/2)
		return nil
	})
}
