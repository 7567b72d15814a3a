package logo

import (
	"math"
)

// Term is one piece of the logo's time series. Eval returns exactly 0
// outside the term's interval.
type Term interface {
	Interval() (lo, hi float64)
	Eval(x float64) float64
}

// Bump is a semicircular arc y = Baseline + sqrt(Radius² - (x-Center)²)
// restricted to the closed interval [Lo, Hi], optionally negated.
type Bump struct {
	Center, Radius, Baseline float64
	Lo, Hi                   float64
	Negate                   bool
}

// Interval implements Term.
func (b Bump) Interval() (lo, hi float64) { return b.Lo, b.Hi }

// Eval implements Term. The radicand is clamped at zero so points on the
// interval edge never produce NaN.
func (b Bump) Eval(x float64) float64 {
	if x < b.Lo || x > b.Hi {
		return 0
	}
	d := x - b.Center
	y := b.Baseline + math.Sqrt(math.Max(b.Radius*b.Radius-d*d, 0))
	if b.Negate {
		return -y
	}
	return y
}

// Step is a constant Value on the closed interval [Lo, Hi].
type Step struct {
	Lo, Hi, Value float64
}

// Interval implements Term.
func (s Step) Interval() (lo, hi float64) { return s.Lo, s.Hi }

// Eval implements Term.
func (s Step) Eval(x float64) float64 {
	if x < s.Lo || x > s.Hi {
		return 0
	}
	return s.Value
}

// Zero contributes nothing. It stands for the "t", whose stretch of the
// series is flat.
type Zero struct {
	Lo, Hi float64
}

// Interval implements Term.
func (z Zero) Interval() (lo, hi float64) { return z.Lo, z.Hi }

// Eval implements Term.
func (Zero) Eval(float64) float64 { return 0 }

// The terms of the series, one per letter. Coordinates are tuned by eye
// against the letterforms and must not be rounded.
var (
	TermP = Bump{Center: 0, Radius: 0.2, Baseline: 0, Lo: -0.2, Hi: 0.2}
	TermY = Bump{Center: 0.4, Radius: 0.2, Baseline: 0, Lo: 0.2, Hi: 0.6, Negate: true}
	TermT = Zero{Lo: 0.6, Hi: 0.775}
	TermS = Bump{Center: 0.9, Radius: 0.125, Baseline: -0.025, Lo: 0.775, Hi: 0.9}
	// TermSTail lifts the tail of the series after the "s".
	TermSTail = Step{Lo: 0.9, Hi: 1.2, Value: 0.1}
)

// Terms lists the pieces summed by TimeSeries, in letter order.
var Terms = []Term{TermP, TermY, TermT, TermS, TermSTail}

// Domain of the sampled series.
const (
	SeriesStart   = -0.2
	SeriesEnd     = 1.2
	SeriesSamples = 800
)

// TimeSeries returns the y coordinate of the logo's series at x.
func TimeSeries(x float64) float64 {
	var y float64
	for _, t := range Terms {
		y += t.Eval(x)
	}
	return y
}

// TimeSeriesSlice evaluates TimeSeries at every x.
func TimeSeriesSlice(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = TimeSeries(x)
	}
	return ys
}

// Maximum returns the element-wise maximum of xs and 0.
func Maximum(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Max(x, 0)
	}
	return out
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields [start]; n <= 0 yields nil.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
