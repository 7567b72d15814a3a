package colormap

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

func near(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func nearRGBA(a, b gg.RGBA) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

func TestJetEndpoints(t *testing.T) {
	jet, err := Get("jet")
	if err != nil {
		t.Fatalf("Get(jet) error = %v", err)
	}
	tests := []struct {
		t    float64
		want gg.RGBA
	}{
		{0, gg.RGBA{R: 0, G: 0, B: 0.5, A: 1}},
		{1, gg.RGBA{R: 0.5, G: 0, B: 0, A: 1}},
		{0.5, gg.RGBA{R: 0.49, G: 1, B: 0.48, A: 1}},
		{-3, gg.RGBA{R: 0, G: 0, B: 0.5, A: 1}},
		{7, gg.RGBA{R: 0.5, G: 0, B: 0, A: 1}},
	}
	for _, tt := range tests {
		got := jet.At(tt.t)
		if !nearRGBA(got, tt.want) {
			t.Errorf("jet.At(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}

func TestReversed(t *testing.T) {
	jet, _ := Get("jet")
	rev, err := Get("jet_r")
	if err != nil {
		t.Fatalf("Get(jet_r) error = %v", err)
	}
	if rev.Name() != "jet_r" {
		t.Errorf("Name() = %q, want jet_r", rev.Name())
	}
	for _, x := range []float64{0, 0.2, 0.7, 1} {
		if got, want := rev.At(x), jet.At(1-x); !nearRGBA(got, want) {
			t.Errorf("jet_r.At(%v) = %+v, want %+v", x, got, want)
		}
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	m, err := Get(" Hot ")
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if m.Name() != "hot" {
		t.Errorf("Name() = %q, want hot", m.Name())
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("rainbowish")
	if !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("Get error = %v, want ErrUnknownColormap", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"jet", "hot", "gray", "copper"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
	}
}

func TestNewSegmentedValidation(t *testing.T) {
	ok := []Anchor{a(0, 0), a(1, 1)}
	tests := []struct {
		name string
		ch   []Anchor
	}{
		{"single anchor", []Anchor{a(0, 0)}},
		{"does not start at 0", []Anchor{a(0.1, 0), a(1, 1)}},
		{"does not end at 1", []Anchor{a(0, 0), a(0.9, 1)}},
		{"unsorted", []Anchor{a(0, 0), a(0.6, 1), a(0.4, 1), a(1, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSegmented("bad", tt.ch, ok, ok); err == nil {
				t.Error("NewSegmented should reject the channel")
			}
		})
	}
}

func TestChannelDiscontinuity(t *testing.T) {
	ch := []Anchor{{X: 0, Below: 0, Above: 0}, {X: 0.5, Below: 0.2, Above: 0.8}, {X: 1, Below: 1, Above: 1}}
	if got := channelAt(ch, 0.25); !near(got, 0.1) {
		t.Errorf("channelAt(0.25) = %v, want 0.1", got)
	}
	if got := channelAt(ch, 0.75); !near(got, 0.9) {
		t.Errorf("channelAt(0.75) = %v, want 0.9", got)
	}
}

func TestNormalize(t *testing.T) {
	n := Normalize{Min: -0.2, Max: 1.1}
	tests := []struct{ in, want float64 }{
		{-0.2, 0},
		{1.1, 1},
		{0.45, 0.5},
		{1.2, 1.4 / 1.3},
	}
	for _, tt := range tests {
		if got := n.Apply(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := (Normalize{Min: 1, Max: 1}).Apply(5); got != 0 {
		t.Errorf("degenerate Apply = %v, want 0", got)
	}
}
