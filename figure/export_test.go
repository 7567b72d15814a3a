package figure

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"logo.png", PNG},
		{"out/LOGO.PNG", PNG},
		{"ribbon.jpg", JPEG},
		{"ribbon.jpeg", JPEG},
		{"a.gif", GIF},
		{"a.bmp", BMP},
		{"a.tif", TIFF},
		{"a.tiff", TIFF},
		{"doc.pdf", PDF},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if err != nil {
			t.Errorf("FormatForPath(%q) error = %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	for _, bad := range []string{"logo.svg", "logo", "archive.tar.gz"} {
		if _, err := FormatForPath(bad); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatForPath(%q) error = %v, want ErrUnsupportedFormat", bad, err)
		}
	}
}

func TestSaveFormats(t *testing.T) {
	dir := t.TempDir()
	f := newTestFigure(t, 1, 1, 30, WithTransparent())
	ax := unitAxes(t, f)
	if err := ax.Rectangle(0.2, 0.2, 0.6, 0.6, red); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"a.png", "a.jpg", "a.gif", "a.bmp", "a.tiff", "a.pdf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := f.Save(path); err != nil {
				t.Fatalf("Save(%q) error = %v", name, err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Size() == 0 {
				t.Errorf("%s is empty", name)
			}
		})
	}
}

func TestSavePNGRoundTrip(t *testing.T) {
	f := newTestFigure(t, 2, 1, 25)
	path := filepath.Join(t.TempDir(), "fig.png")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("decoded size = %dx%d, want 50x25", b.Dx(), b.Dy())
	}
}

func TestEncodePDFHeader(t *testing.T) {
	f := newTestFigure(t, 1, 1, 20)
	var buf bytes.Buffer
	if err := f.Encode(&buf, PDF); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestJPEGFlattensTransparency(t *testing.T) {
	f := newTestFigure(t, 1, 1, 20, WithTransparent())
	img := flatten(f.Image(), color.White)
	_, _, _, a := img.At(3, 3).RGBA()
	r, g, b, _ := img.At(3, 3).RGBA()
	if a != 0xffff || r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("flattened pixel = %v %v %v %v, want opaque white", r, g, b, a)
	}
}

func TestSaveErrors(t *testing.T) {
	f := newTestFigure(t, 1, 1, 10)
	dir := t.TempDir()

	if err := f.Save(filepath.Join(dir, "x.svg")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.svg) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x.svg")); !os.IsNotExist(err) {
		t.Error("unsupported format should not create a file")
	}

	missing := filepath.Join(dir, "no", "such", "dir", "x.png")
	if err := f.Save(missing); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Save into a missing directory error = %v, want os.ErrNotExist", err)
	}

	if err := f.Encode(&bytes.Buffer{}, Format("webp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(webp) error = %v, want ErrUnsupportedFormat", err)
	}
}
