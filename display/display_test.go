package display

import (
	"image"
	"testing"
)

func TestViewerFunc(t *testing.T) {
	var gotTitle string
	var gotImg image.Image
	v := ViewerFunc(func(title string, img image.Image) error {
		gotTitle, gotImg = title, img
		return nil
	})
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := v.Show("logo", img); err != nil {
		t.Fatal(err)
	}
	if gotTitle != "logo" || gotImg != img {
		t.Errorf("ViewerFunc received (%q, %v)", gotTitle, gotImg)
	}
}

func TestNop(t *testing.T) {
	if err := Nop.Show("x", nil); err != nil {
		t.Errorf("Nop.Show() = %v, want nil", err)
	}
}
