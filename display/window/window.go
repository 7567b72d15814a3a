// Package window shows images in a desktop window using fyne.
//
// It is kept apart from package display because fyne needs cgo and a
// windowing system; renderers and their tests never import it.
package window

import (
	"errors"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/display"
)

// DefaultMaxSize is the largest window side a Viewer opens by default.
const DefaultMaxSize = 800

// ErrNilImage is returned by Show when there is nothing to show.
var ErrNilImage = errors.New("window: nil image")

// Viewer shows images in a desktop window and blocks until it is closed.
// A process can run only one Show, since fyne owns the main loop for the
// lifetime of the program.
type Viewer struct {
	// MaxSize caps the initial window side in pixels; the image is scaled
	// down to fit. Zero means DefaultMaxSize.
	MaxSize int
}

var _ display.Viewer = Viewer{}

// Show implements display.Viewer.
func (v Viewer) Show(title string, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	maxSide := v.MaxSize
	if maxSide == 0 {
		maxSide = DefaultMaxSize
	}
	b := img.Bounds()
	w, h := fit(b.Dx(), b.Dy(), maxSide)

	ggart.Logger().Info("opening viewer", "title", title, "width", w, "height", h)

	a := app.New()
	win := a.NewWindow(title)
	pic := canvas.NewImageFromImage(img)
	pic.FillMode = canvas.ImageFillContain
	pic.ScaleMode = canvas.ImageScaleSmooth
	win.SetContent(pic)
	win.Resize(fyne.NewSize(float32(w), float32(h)))
	win.CenterOnScreen()
	win.ShowAndRun()
	return nil
}

// fit scales (w, h) down to fit inside maxSide x maxSide, keeping the
// aspect ratio. Sizes already inside the box are returned unchanged.
func fit(w, h, maxSide int) (int, int) {
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return w, h
	}
	if w >= h {
		return maxSide, max(1, h*maxSide/w)
	}
	return max(1, w*maxSide/h), maxSide
}
