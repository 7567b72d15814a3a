package logo

import (
	"math"
	"slices"
	"testing"
)

const eps = 1e-6

func TestMaximum(t *testing.T) {
	got := Maximum([]float64{-1, 0, 2})
	if want := []float64{0, 0, 2}; !slices.Equal(got, want) {
		t.Errorf("Maximum = %v, want %v", got, want)
	}
	if got := Maximum(nil); len(got) != 0 {
		t.Errorf("Maximum(nil) = %v, want empty", got)
	}
}

func TestLinspace(t *testing.T) {
	xs := Linspace(SeriesStart, SeriesEnd, SeriesSamples)
	if len(xs) != SeriesSamples {
		t.Fatalf("len = %d, want %d", len(xs), SeriesSamples)
	}
	if xs[0] != SeriesStart || xs[len(xs)-1] != SeriesEnd {
		t.Errorf("endpoints = %v, %v", xs[0], xs[len(xs)-1])
	}
	if !slices.IsSorted(xs) {
		t.Error("Linspace not increasing")
	}

	if got := Linspace(0, 1, 5); !slices.Equal(got, []float64{0, 0.25, 0.5, 0.75, 1}) {
		t.Errorf("Linspace(0, 1, 5) = %v", got)
	}
	if got := Linspace(3, 9, 1); !slices.Equal(got, []float64{3}) {
		t.Errorf("Linspace(3, 9, 1) = %v", got)
	}
	if got := Linspace(0, 1, 0); got != nil {
		t.Errorf("Linspace(0, 1, 0) = %v, want nil", got)
	}
}

func TestTermsZeroOutsideInterval(t *testing.T) {
	for _, term := range Terms {
		lo, hi := term.Interval()
		for _, x := range []float64{lo - 1, lo - 1e-9, hi + 1e-9, hi + 1, -5, 5} {
			if x >= lo && x <= hi {
				continue
			}
			if got := term.Eval(x); got != 0 {
				t.Errorf("%T.Eval(%v) = %v, want 0 outside [%v, %v]", term, x, got, lo, hi)
			}
		}
	}
}

func TestTermsNeverNaN(t *testing.T) {
	for _, x := range Linspace(-1, 2, 3001) {
		for _, term := range Terms {
			if v := term.Eval(x); math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%T.Eval(%v) = %v", term, x, v)
			}
		}
	}
}

func TestBumpEdges(t *testing.T) {
	// At the interval edges the radicand is zero, leaving the baseline.
	if got := TermP.Eval(-0.2); math.Abs(got) > eps {
		t.Errorf("TermP(-0.2) = %v, want 0", got)
	}
	if got := TermS.Eval(0.775); math.Abs(got-(-0.025)) > eps {
		t.Errorf("TermS(0.775) = %v, want -0.025", got)
	}
	// Negated bump dips below the axis.
	if got := TermY.Eval(0.4); math.Abs(got+0.2) > eps {
		t.Errorf("TermY(0.4) = %v, want -0.2", got)
	}
}

func TestTimeSeriesValues(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0.2},
		{0.2, 0},
		{0.4, -0.2},
		{0.6, 0},
		{0.7, 0},
		// Top of the s bump (-0.025 + 0.125) plus the tail step.
		{0.9, 0.2},
		{1.0, 0.1},
		{1.2, 0.1},
		{1.3, 0},
		{-0.3, 0},
	}
	for _, tt := range tests {
		if got := TimeSeries(tt.x); math.Abs(got-tt.want) > eps {
			t.Errorf("TimeSeries(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestTimeSeriesContinuousAtPY(t *testing.T) {
	const h = 1e-9
	left, mid, right := TimeSeries(0.2-h), TimeSeries(0.2), TimeSeries(0.2+h)
	if math.Abs(left-mid) > 1e-3 || math.Abs(right-mid) > 1e-3 {
		t.Errorf("discontinuity at 0.2: %v, %v, %v", left, mid, right)
	}
}

func TestTimeSeriesSlice(t *testing.T) {
	xs := []float64{0, 0.4, 1}
	got := TimeSeriesSlice(xs)
	for i, x := range xs {
		if got[i] != TimeSeries(x) {
			t.Errorf("TimeSeriesSlice[%d] = %v, want %v", i, got[i], TimeSeries(x))
		}
	}
}
