package figure

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Dash pattern of a dashed line, in multiples of its width.
const (
	dashOn  = 3.7
	dashOff = 1.6
)

// LineStyle describes how a path is stroked.
type LineStyle struct {
	// Width is the stroke width in points.
	Width float64
	Color gg.RGBA
	Cap   gg.LineCap
	// Dashed strokes with a (3.7, 1.6) pattern scaled by the width.
	Dashed bool
}

func (a *Axes) applyStroke(dc *gg.Context, st LineStyle) {
	w := a.fig.Points(st.Width)
	s := gg.DefaultStroke().
		WithWidth(w).
		WithCap(st.Cap).
		WithJoin(gg.LineJoinRound)
	if st.Dashed {
		s = s.WithDashPattern(dashOn*w, dashOff*w)
	}
	dc.SetStroke(s)
	dc.SetStrokeBrush(gg.Solid(st.Color))
}

// draw runs fn on a transparent layer the size of the figure, then
// composites the part of the layer inside the axes box onto the figure.
func (a *Axes) draw(fn func(dc *gg.Context) error) error {
	if a.fig.closed {
		return ErrClosed
	}
	if a.layer == nil {
		a.layer = gg.NewContext(a.fig.Width(), a.fig.Height())
	}
	a.layer.Clear()
	if err := fn(a.layer); err != nil {
		return err
	}

	box := a.PixelBox()
	if box.Empty() {
		return nil
	}
	a.fig.dc.DrawImageEx(gg.ImageBufFromImage(a.layer.Image()), gg.DrawImageOptions{
		X:         float64(box.Min.X),
		Y:         float64(box.Min.Y),
		SrcRect:   &box,
		Opacity:   1,
		BlendMode: gg.BlendNormal,
	})
	return nil
}

func (a *Axes) moveTo(dc *gg.Context, p Point) {
	dc.MoveTo(a.ToPixel(p))
}

func (a *Axes) lineTo(dc *gg.Context, p Point) {
	dc.LineTo(a.ToPixel(p))
}

// Polygon fills the closed polygon through pts.
func (a *Axes) Polygon(pts []Point, fill gg.RGBA) error {
	return a.polygon(pts, fill, nil)
}

// Patch fills the closed polygon through pts and strokes its outline with
// edge on top of the fill.
func (a *Axes) Patch(pts []Point, fill gg.RGBA, edge LineStyle) error {
	return a.polygon(pts, fill, &edge)
}

func (a *Axes) polygon(pts []Point, fill gg.RGBA, edge *LineStyle) error {
	if len(pts) < 3 {
		return fmt.Errorf("figure: polygon needs at least 3 vertices, got %d", len(pts))
	}
	return a.draw(func(dc *gg.Context) error {
		a.moveTo(dc, pts[0])
		for _, p := range pts[1:] {
			a.lineTo(dc, p)
		}
		dc.ClosePath()
		dc.SetFillRule(gg.FillRuleNonZero)
		dc.SetFillBrush(gg.Solid(fill))
		if edge == nil {
			return dc.Fill()
		}
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		a.applyStroke(dc, *edge)
		return dc.Stroke()
	})
}

// Rectangle fills the rectangle with lower-left corner (x, y).
func (a *Axes) Rectangle(x, y, w, h float64, fill gg.RGBA) error {
	return a.Polygon([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, fill)
}

// Line strokes the segment p0-p1.
func (a *Axes) Line(p0, p1 Point, st LineStyle) error {
	return a.Polyline([]Point{p0, p1}, st)
}

// Polyline strokes the open path through pts.
func (a *Axes) Polyline(pts []Point, st LineStyle) error {
	if len(pts) < 2 {
		return fmt.Errorf("figure: polyline needs at least 2 points, got %d", len(pts))
	}
	return a.draw(func(dc *gg.Context) error {
		a.moveTo(dc, pts[0])
		for _, p := range pts[1:] {
			a.lineTo(dc, p)
		}
		a.applyStroke(dc, st)
		return dc.Stroke()
	})
}

// Segments strokes consecutive pairs of pts as independent segments,
// segment i taking colors[i]. st.Color is ignored. Each segment gets its
// own caps, so round caps blend neighbouring colours into a smooth line.
func (a *Axes) Segments(pts []Point, colors []gg.RGBA, st LineStyle) error {
	if len(pts) < 2 {
		return fmt.Errorf("figure: segments need at least 2 points, got %d", len(pts))
	}
	if len(colors) != len(pts)-1 {
		return fmt.Errorf("figure: %d segments but %d colors", len(pts)-1, len(colors))
	}
	return a.draw(func(dc *gg.Context) error {
		for i := range colors {
			st.Color = colors[i]
			a.moveTo(dc, pts[i])
			a.lineTo(dc, pts[i+1])
			a.applyStroke(dc, st)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("figure: segment %d: %w", i, err)
			}
		}
		return nil
	})
}

// ArcSpec is an elliptical arc in data coordinates. Width and Height are
// the full axes of the ellipse. Theta1 and Theta2 are degrees measured
// counter-clockwise; Theta2 is unwrapped so the arc always runs
// counter-clockwise from Theta1 for at most one full turn.
type ArcSpec struct {
	Center         Point
	Width, Height  float64
	Theta1, Theta2 float64
}

// Circle returns a full circular arc of the given radius.
func Circle(center Point, r float64) ArcSpec {
	return ArcSpec{Center: center, Width: 2 * r, Height: 2 * r, Theta1: 0, Theta2: 360}
}

// sweep returns the start and end angles in degrees with end in
// (start, start+360].
func (s ArcSpec) sweep() (start, end float64) {
	start, end = s.Theta1, s.Theta2
	for end <= start {
		end += 360
	}
	for end > start+360 {
		end -= 360
	}
	return start, end
}

// paramAngle converts a true angle on the ellipse to its parametric angle.
func (s ArcSpec) paramAngle(deg float64) float64 {
	rad := deg * math.Pi / 180
	if s.Width == s.Height {
		return rad
	}
	t := math.Atan2(s.Width*math.Sin(rad), s.Height*math.Cos(rad))
	// Keep the parametric angle in the same turn as the true angle.
	for t < rad-math.Pi {
		t += 2 * math.Pi
	}
	for t > rad+math.Pi {
		t -= 2 * math.Pi
	}
	return t
}

// beziers approximates the arc with cubic Bezier curves of at most a
// quarter turn each. Every curve is four data-space points.
func (s ArcSpec) beziers() [][4]Point {
	start, end := s.sweep()
	t1, t2 := s.paramAngle(start), s.paramAngle(end)
	if end-start == 360 {
		t2 = t1 + 2*math.Pi
	}
	for t2 <= t1 {
		t2 += 2 * math.Pi
	}

	rx, ry := s.Width/2, s.Height/2
	n := int(math.Ceil((t2 - t1) / (math.Pi / 2)))
	step := (t2 - t1) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	curves := make([][4]Point, 0, n)
	for i := range n {
		a1 := t1 + float64(i)*step
		a2 := a1 + step
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)
		p0 := Point{s.Center.X + rx*cos1, s.Center.Y + ry*sin1}
		p3 := Point{s.Center.X + rx*cos2, s.Center.Y + ry*sin2}
		p1 := Point{p0.X - k*rx*sin1, p0.Y + k*ry*cos1}
		p2 := Point{p3.X + k*rx*sin2, p3.Y - k*ry*cos2}
		curves = append(curves, [4]Point{p0, p1, p2, p3})
	}
	return curves
}

// Arc strokes an elliptical arc.
func (a *Axes) Arc(spec ArcSpec, st LineStyle) error {
	if !(spec.Width > 0) || !(spec.Height > 0) {
		return fmt.Errorf("figure: arc needs positive width and height, got %vx%v", spec.Width, spec.Height)
	}
	return a.draw(func(dc *gg.Context) error {
		for i, c := range spec.beziers() {
			if i == 0 {
				a.moveTo(dc, c[0])
			}
			x1, y1 := a.ToPixel(c[1])
			x2, y2 := a.ToPixel(c[2])
			x3, y3 := a.ToPixel(c[3])
			dc.CubicTo(x1, y1, x2, y2, x3, y3)
		}
		a.applyStroke(dc, st)
		return dc.Stroke()
	})
}
