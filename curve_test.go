package imgdraw

import (
	"testing"
)

func TestCubicBez_Eval(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(10, 0)},
		{"t=0.5", 0.5, Pt(5, 7.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Eval(tt.t)
			if !pointsEqual(got, tt.expect, testEps) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestCubicBez_Subdivide(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(3, 9), Pt(7, 9), Pt(10, 0))
	left, right := c.Subdivide()

	// Halves share the curve midpoint and cover the original endpoints.
	mid := c.Eval(0.5)
	if !pointsEqual(left.P3, mid, testEps) {
		t.Errorf("left.P3 = %v, want midpoint %v", left.P3, mid)
	}
	if !pointsEqual(right.P0, mid, testEps) {
		t.Errorf("right.P0 = %v, want midpoint %v", right.P0, mid)
	}
	if !pointsEqual(left.P0, c.P0, testEps) || !pointsEqual(right.P3, c.P3, testEps) {
		t.Error("subdivision does not preserve endpoints")
	}

	// The left half evaluates to the same points as the original.
	for _, u := range []float64{0.25, 0.5, 0.75} {
		want := c.Eval(u / 2)
		if got := left.Eval(u); !pointsEqual(got, want, 1e-6) {
			t.Errorf("left.Eval(%v) = %v, want %v", u, got, want)
		}
	}
}

func TestCubicBez_Flatness(t *testing.T) {
	tests := []struct {
		name string
		c    CubicBez
		flat bool // flatness within flatnessTolerance
	}{
		{
			name: "controls on chord",
			c:    NewCubicBez(Pt(0, 0), Pt(3, 0), Pt(7, 0), Pt(10, 0)),
			flat: true,
		},
		{
			name: "high arc",
			c:    NewCubicBez(Pt(0, 0), Pt(3, 9), Pt(7, 9), Pt(10, 0)),
			flat: false,
		},
		{
			name: "all points coincident",
			c:    NewCubicBez(Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)),
			flat: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Flatness() <= flatnessTolerance*flatnessTolerance
			if got != tt.flat {
				t.Errorf("Flatness() = %v, flat = %v, want %v", tt.c.Flatness(), got, tt.flat)
			}
		})
	}
}

func TestSegment_CubicForLine(t *testing.T) {
	s := Line(Pt(0, 0), Pt(9, 3))
	c := s.Cubic()

	// A line's cubic form must evaluate on the chord everywhere.
	for _, u := range []float64{0, 0.3, 0.5, 0.8, 1} {
		want := s.Start.Lerp(s.End, u)
		if got := c.Eval(u); !pointsEqual(got, want, 1e-9) {
			t.Errorf("Eval(%v) = %v, want on-chord %v", u, got, want)
		}
	}
}

func squarePath(w, h float64) CurvePath {
	return CurvePath{Segments: []Segment{
		Line(Pt(0, 0), Pt(w, 0)),
		Line(Pt(w, 0), Pt(w, h)),
		Line(Pt(w, h), Pt(0, h)),
		Line(Pt(0, h), Pt(0, 0)),
	}}
}

func TestCurvePath_ContiguousClosed(t *testing.T) {
	p := squarePath(10, 10)
	if !p.Contiguous(epsilon) {
		t.Error("square path should be contiguous")
	}
	if !p.Closed(epsilon) {
		t.Error("square path should be closed")
	}

	open := CurvePath{Segments: []Segment{
		Line(Pt(0, 0), Pt(10, 0)),
		Line(Pt(10, 0), Pt(10, 10)),
	}}
	if open.Closed(epsilon) {
		t.Error("open path should not be closed")
	}

	gap := CurvePath{Segments: []Segment{
		Line(Pt(0, 0), Pt(10, 0)),
		Line(Pt(11, 0), Pt(10, 10)),
	}}
	if gap.Contiguous(epsilon) {
		t.Error("path with a gap should not be contiguous")
	}

	if (CurvePath{}).Closed(epsilon) {
		t.Error("empty path should not be closed")
	}
}
