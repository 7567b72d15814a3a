// Package palette parses colour specifications into gg colours.
//
// Accepted forms:
//
//	darkslategray, DarkSlateGray   CSS/X11 colour names
//	#2f4f4f, #2f4f4f80, #fff       hex with optional alpha
//	k, w, r, g, b, c, m, y         single-letter shorthands
//	0.75                           grey level in [0, 1]
//	none, transparent              fully transparent
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrUnknownColor is returned when a specification matches none of the
// accepted forms.
var ErrUnknownColor = errors.New("palette: unknown color")

// Common colours used by the renderers.
var (
	White = gg.RGBA{R: 1, G: 1, B: 1, A: 1}
	Black = gg.RGBA{A: 1}
	None  = gg.RGBA{}
)

var shorthands = map[string]gg.RGBA{
	"b": {R: 0, G: 0, B: 1, A: 1},
	"g": {R: 0, G: 0.5, B: 0, A: 1},
	"r": {R: 1, G: 0, B: 0, A: 1},
	"c": {R: 0, G: 0.75, B: 0.75, A: 1},
	"m": {R: 0.75, G: 0, B: 0.75, A: 1},
	"y": {R: 0.75, G: 0.75, B: 0, A: 1},
	"k": Black,
	"w": White,
}

var fold = cases.Fold()

// Parse converts spec into a colour.
func Parse(spec string) (gg.RGBA, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return gg.RGBA{}, fmt.Errorf("%w: empty specification", ErrUnknownColor)
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	// Shorthands are case-sensitive; names are not.
	if c, ok := shorthands[s]; ok {
		return c, nil
	}

	name := fold.String(s)
	if name == "none" || name == "transparent" {
		return None, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return gg.FromColor(c), nil
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || v > 1 {
			return gg.RGBA{}, fmt.Errorf("%w: grey level %q outside [0, 1]", ErrUnknownColor, spec)
		}
		return gg.RGBA{R: v, G: v, B: v, A: 1}, nil
	}

	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, spec)
}

// MustParse is like Parse but panics on error.
// It is meant for package-level defaults that are known to be valid.
func MustParse(spec string) gg.RGBA {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (gg.RGBA, error) {
	alpha := 1.0
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q: %w", ErrUnknownColor, s, err)
	}
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}
