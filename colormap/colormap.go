// Package colormap provides named colour gradients for mapping scalar
// values to colours.
//
// Each gradient is a segmented colormap: a table of anchors per channel,
// sampled through a 256-entry lookup so that neighbouring values quantise
// the same way.
package colormap

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/cases"
)

// ErrUnknownColormap is returned by Get for names that are not registered.
var ErrUnknownColormap = errors.New("colormap: unknown colormap")

// Size is the number of entries in each colormap lookup table.
const Size = 256

// Colormap maps t in [0, 1] to a colour.
type Colormap interface {
	// Name returns the registered name, including an "_r" suffix for
	// reversed maps.
	Name() string

	// At returns the colour for t. Values outside [0, 1] are clamped.
	At(t float64) gg.RGBA
}

// Anchor is one breakpoint of a channel: at position X the channel takes
// value Below when approached from the left and Above from the right.
type Anchor struct {
	X, Below, Above float64
}

// Segmented is a colormap built from piecewise linear channel tables.
type Segmented struct {
	name    string
	lut     [Size]gg.RGBA
	reverse bool
}

// NewSegmented builds a colormap from channel tables. Each table must start
// at X=0, end at X=1 and be sorted by X.
func NewSegmented(name string, red, green, blue []Anchor) (*Segmented, error) {
	for _, ch := range [][]Anchor{red, green, blue} {
		if err := validate(ch); err != nil {
			return nil, fmt.Errorf("colormap %q: %w", name, err)
		}
	}
	m := &Segmented{name: name}
	for i := range Size {
		x := float64(i) / (Size - 1)
		m.lut[i] = gg.RGBA{
			R: channelAt(red, x),
			G: channelAt(green, x),
			B: channelAt(blue, x),
			A: 1,
		}
	}
	return m, nil
}

// Name implements Colormap.
func (m *Segmented) Name() string {
	if m.reverse {
		return m.name + "_r"
	}
	return m.name
}

// At implements Colormap.
func (m *Segmented) At(t float64) gg.RGBA {
	if math.IsNaN(t) {
		return gg.RGBA{}
	}
	t = min(max(t, 0), 1)
	if m.reverse {
		t = 1 - t
	}
	i := int(t * Size)
	if i >= Size {
		i = Size - 1
	}
	return m.lut[i]
}

// Reversed returns the same gradient traversed from 1 to 0.
func (m *Segmented) Reversed() *Segmented {
	r := *m
	r.reverse = !m.reverse
	return &r
}

func validate(ch []Anchor) error {
	if len(ch) < 2 {
		return errors.New("channel needs at least two anchors")
	}
	if ch[0].X != 0 || ch[len(ch)-1].X != 1 {
		return errors.New("channel must span [0, 1]")
	}
	for i := 1; i < len(ch); i++ {
		if ch[i].X < ch[i-1].X {
			return errors.New("channel anchors must be sorted")
		}
	}
	return nil
}

// channelAt interpolates between the Above value of the anchor left of x
// and the Below value of the anchor right of x.
func channelAt(ch []Anchor, x float64) float64 {
	if x <= ch[0].X {
		return ch[0].Above
	}
	for i := 1; i < len(ch); i++ {
		lo, hi := ch[i-1], ch[i]
		if x > hi.X {
			continue
		}
		if hi.X == lo.X {
			return hi.Below
		}
		f := (x - lo.X) / (hi.X - lo.X)
		return lo.Above + f*(hi.Below-lo.Above)
	}
	return ch[len(ch)-1].Below
}

var fold = cases.Fold()

// Get returns the colormap registered under name. A trailing "_r" selects
// the reversed gradient.
func Get(name string) (Colormap, error) {
	key := fold.String(strings.TrimSpace(name))
	reverse := false
	if base, ok := strings.CutSuffix(key, "_r"); ok {
		key, reverse = base, true
	}
	m, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	if reverse {
		return m.Reversed(), nil
	}
	return m, nil
}

// Names returns the registered colormap names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Normalize maps values linearly from [Min, Max] onto [0, 1]. Results are
// not clipped; Colormap.At clamps them.
type Normalize struct {
	Min, Max float64
}

// Apply returns the normalised value of v. A degenerate range maps
// everything to 0.
func (n Normalize) Apply(v float64) float64 {
	if n.Max == n.Min {
		return 0
	}
	return (v - n.Min) / (n.Max - n.Min)
}
