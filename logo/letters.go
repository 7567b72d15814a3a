package logo

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/figure"
)

// Radius is the base radius of the letter bowls.
const Radius = 0.2

// stroke is one piece of a letterform: either an arc or a straight line.
type stroke struct {
	arc    *figure.ArcSpec
	from   figure.Point
	to     figure.Point
	cap    gg.LineCap
	zorder int
}

func arcStroke(cx, cy, w, h, t1, t2 float64, c gg.LineCap, z int) stroke {
	return stroke{
		arc:    &figure.ArcSpec{Center: figure.Pt(cx, cy), Width: w, Height: h, Theta1: t1, Theta2: t2},
		cap:    c,
		zorder: z,
	}
}

func lineStroke(x0, y0, x1, y1 float64) stroke {
	return stroke{from: figure.Pt(x0, y0), to: figure.Pt(x1, y1), cap: gg.LineCapRound, zorder: 2}
}

// Stacking order of letter strokes; lower values draw first.
const (
	zArc  = 1
	zLine = 2
)

// letterforms returns the strokes of p, y, t and s, left to right.
func letterforms() [][]stroke {
	const r = Radius
	round, butt := gg.LineCapRound, gg.LineCapButt
	return [][]stroke{
		// p
		{
			arcStroke(0, 0, 2*r, 2*r, 0, 360, round, zArc),
			lineStroke(-0.2, -0.6, -0.2, 0.2),
		},
		// y
		{
			lineStroke(0.2, 0, 0.2, 0.15),
			lineStroke(0.6, 0.15, 0.6, -0.4),
			arcStroke(0.4, -0.4, 2*r, 2*r, -180, 0, round, zArc),
		},
		// t
		{
			arcStroke(0.7, -0.3, r, r, -165, -90, round, zArc),
			lineStroke(0.5, 0, 0.6, 0),
			lineStroke(0.7, -0.4, 0.9, -0.4),
		},
		// s
		{
			arcStroke(0.9, -0.275, 1.25*r, 1.25*r, -90, 91, round, zArc),
			arcStroke(0.9, -0.025, 1.25*r, 1.25*r, 181, -90, butt, zLine),
		},
	}
}

// layers flattens the letterforms into draw order: all strokes of a lower
// zorder first, creation order within a zorder.
func layers(letters [][]stroke) []stroke {
	var out []stroke
	for _, z := range []int{zArc, zLine} {
		for _, l := range letters {
			for _, s := range l {
				if s.zorder == z {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func (s stroke) draw(ax *figure.Axes, width float64, color gg.RGBA) error {
	st := figure.LineStyle{Width: width, Color: color, Cap: s.cap}
	if s.arc != nil {
		return ax.Arc(*s.arc, st)
	}
	return ax.Line(s.from, s.to, st)
}

// Corrective patch drawn over the junction of the series and the "s",
// where the round caps of the series would otherwise show through.
var (
	patchArc = figure.ArcSpec{
		Center: figure.Pt(0.854, -0.05),
		Width:  0.5 * Radius, Height: 0.3 * Radius,
		Theta1: 180, Theta2: -150,
	}
	patchRectOrigin        = figure.Pt(0.8312, -0.05)
	patchRectW, patchRectH = 0.1, 0.05
)

// patchWidthScale widens the patch arc relative to the letter strokes.
const patchWidthScale = 1.1
