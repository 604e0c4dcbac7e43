package imgdraw

// Curve types for the traced-outline model.
// The CubicBez primitives follow de Casteljau patterns, adapted for Go idioms.

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Flatness returns the squared maximum perpendicular deviation of the
// control points from the chord P0-P3. When the chord is degenerate
// (coincident endpoints), the squared control-point distance from P0 is
// used instead.
func (c CubicBez) Flatness() float64 {
	chord := c.P3.Sub(c.P0)
	chordLenSq := chord.LengthSquared()
	if chordLenSq < epsilon*epsilon {
		d1 := c.P1.Sub(c.P0).LengthSquared()
		d2 := c.P2.Sub(c.P0).LengthSquared()
		return max(d1, d2)
	}

	// Squared perpendicular distance of a control point from the chord:
	// cross(chord, point-P0)^2 / |chord|^2
	cross1 := chord.Cross(c.P1.Sub(c.P0))
	cross2 := chord.Cross(c.P2.Sub(c.P0))
	return max(cross1*cross1, cross2*cross2) / chordLenSq
}

// -------------------------------------------------------------------
// Segment and CurvePath
// -------------------------------------------------------------------

// SegmentKind tags a Segment as either a straight line or a cubic Bezier.
type SegmentKind uint8

const (
	// SegLine is a straight segment between Start and End.
	SegLine SegmentKind = iota
	// SegCurve is a cubic Bezier segment; C1 and C2 are its control points.
	SegCurve
)

// Segment is one piece of a traced outline: either a straight segment
// (two endpoints) or a cubic Bezier (start, two control points, end).
type Segment struct {
	Kind   SegmentKind
	Start  Point
	End    Point
	C1, C2 Point // control points, SegCurve only
}

// Line creates a straight segment.
func Line(start, end Point) Segment {
	return Segment{Kind: SegLine, Start: start, End: end}
}

// Curve creates a cubic Bezier segment.
func Curve(start, c1, c2, end Point) Segment {
	return Segment{Kind: SegCurve, Start: start, C1: c1, C2: c2, End: end}
}

// Cubic returns the segment as a CubicBez. For SegLine segments the control
// points are placed on the chord, which evaluates to the same line.
func (s Segment) Cubic() CubicBez {
	if s.Kind == SegLine {
		return CubicBez{
			P0: s.Start,
			P1: s.Start.Lerp(s.End, 1.0/3.0),
			P2: s.Start.Lerp(s.End, 2.0/3.0),
			P3: s.End,
		}
	}
	return CubicBez{P0: s.Start, P1: s.C1, P2: s.C2, P3: s.End}
}

// CurvePath is an ordered, closed sequence of segments forming one traced
// outline. Closed means the last segment's endpoint equals the first
// segment's start point within floating tolerance.
type CurvePath struct {
	Segments []Segment
}

// Start returns the starting point of the path.
// The zero value of Point is returned for an empty path.
func (p CurvePath) Start() Point {
	if len(p.Segments) == 0 {
		return Point{}
	}
	return p.Segments[0].Start
}

// Contiguous reports whether every segment starts where the previous one
// ends, within eps.
func (p CurvePath) Contiguous(eps float64) bool {
	for i := 1; i < len(p.Segments); i++ {
		if !p.Segments[i-1].End.Approx(p.Segments[i].Start, eps) {
			return false
		}
	}
	return true
}

// Closed reports whether the last segment ends at the path's start point,
// within eps. An empty path is not closed.
func (p CurvePath) Closed(eps float64) bool {
	if len(p.Segments) == 0 {
		return false
	}
	last := p.Segments[len(p.Segments)-1]
	return last.End.Approx(p.Start(), eps)
}
