// Package display shows rendered artwork to the user.
//
// Renderers never open windows themselves; they hand the finished image to
// a Viewer. Library callers get Nop by default. The desktop window lives in
// package display/window so that only programs which show images link the
// GUI toolkit.
package display

import (
	"image"
)

// Viewer presents an image. Show may block until the user dismisses it.
type Viewer interface {
	Show(title string, img image.Image) error
}

// ViewerFunc adapts a function to the Viewer interface.
type ViewerFunc func(title string, img image.Image) error

// Show calls fn(title, img).
func (fn ViewerFunc) Show(title string, img image.Image) error {
	return fn(title, img)
}

// Nop is a Viewer that discards the image.
var Nop Viewer = ViewerFunc(func(string, image.Image) error { return nil })
