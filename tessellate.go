package imgdraw

import "fmt"

// epsilon is the coincident-point tolerance: consecutive tessellated points
// closer than this (per axis) are merged to avoid zero-length sub-edges.
const epsilon = 1e-4

const (
	// flatnessTolerance is the maximum allowed deviation (in pixels) of a
	// curve from its chord before adaptive tessellation subdivides further.
	flatnessTolerance = 0.25

	// maxSubdivisionDepth bounds adaptive recursion so tessellation
	// terminates even on pathological curve data.
	maxSubdivisionDepth = 16
)

// Method selects how curved segments are approximated by straight edges.
type Method uint8

const (
	// Adaptive subdivides each curve recursively until it deviates from a
	// straight chord by less than the flatness tolerance. More points where
	// curvature is high, fewer where the curve is already flat.
	Adaptive Method = iota
	// Fixed subdivides each curve into a constant number of straight
	// sub-segments by uniform parametric sampling.
	Fixed
)

// String returns the method name as used in configuration.
func (m Method) String() string {
	switch m {
	case Adaptive:
		return "adaptive"
	case Fixed:
		return "fixed"
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

// TessellationConfig selects the tessellation policy for one pipeline run.
type TessellationConfig struct {
	Method Method
	// Resolution is the number of straight sub-segments per curved segment.
	// Used by Fixed only; must be positive.
	Resolution int
}

// Tessellate converts a curve path into a polyline approximating it.
//
// Straight segments are always emitted as a single chord regardless of
// method. The output point order matches the input segment order, and the
// path stays implicitly closed: the closing edge comes from the source
// path's first/last point equality, not from duplicating a point.
//
// Returns [ErrDegenerateCurve] if a curved segment cannot be resolved
// within the recursion budget, and [ErrInvalidInput] for a non-positive
// Fixed resolution.
func Tessellate(path CurvePath, cfg TessellationConfig) (Polyline, error) {
	if cfg.Method == Fixed && cfg.Resolution < 1 {
		return nil, fmt.Errorf("%w: fixed tessellation resolution %d, must be >= 1",
			ErrInvalidInput, cfg.Resolution)
	}
	if len(path.Segments) == 0 {
		return nil, nil
	}

	pl := make(Polyline, 0, len(path.Segments)*4)
	emit := func(p Point) {
		if n := len(pl); n > 0 && pl[n-1].Approx(p, epsilon) {
			return
		}
		pl = append(pl, p)
	}

	emit(path.Start())
	for i, seg := range path.Segments {
		if seg.Kind == SegLine {
			emit(seg.End)
			continue
		}
		c := seg.Cubic()
		switch cfg.Method {
		case Fixed:
			for k := 1; k <= cfg.Resolution; k++ {
				emit(c.Eval(float64(k) / float64(cfg.Resolution)))
			}
		default:
			if err := subdivideAdaptive(c, 0, emit); err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
		}
	}
	// A fully collapsed path merges down to a single point; keep the
	// closing point so a tessellated path is never shorter than 2 points.
	if len(pl) == 1 {
		pl = append(pl, path.Segments[len(path.Segments)-1].End)
	}
	return pl, nil
}

// subdivideAdaptive recursively halves the curve until it is flat enough to
// emit as a chord, then emits its endpoint. The start point is assumed to
// be already emitted.
func subdivideAdaptive(c CubicBez, depth int, emit func(Point)) error {
	flatSq := c.Flatness()
	if flatSq <= flatnessTolerance*flatnessTolerance {
		emit(c.P3)
		return nil
	}
	if depth >= maxSubdivisionDepth {
		// Exhausting the budget with a still-unflat curve means the
		// geometry is broken (NaN/Inf coordinates or a collapsed segment
		// whose deviation never shrinks). Surface it instead of emitting
		// misleading points.
		if !(flatSq >= 0) || c.P0.Approx(c.P3, epsilon) {
			return ErrDegenerateCurve
		}
		emit(c.P3)
		return nil
	}
	left, right := c.Subdivide()
	if err := subdivideAdaptive(left, depth+1, emit); err != nil {
		return err
	}
	return subdivideAdaptive(right, depth+1, emit)
}
