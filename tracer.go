package imgdraw

import (
	"fmt"

	"github.com/dennwc/gotrace"
)

// CornerThresholdMax is the largest meaningful corner-detection threshold.
// At 0 the tracer emits polygons only; at the maximum it emits no corners
// at all (curve-only output). The scale is potrace's alphamax.
const CornerThresholdMax = 4.0 / 3.0

// TraceOptions are the shape-quality parameters handed to the tracing
// backend.
type TraceOptions struct {
	// MinFeatureSize suppresses connected regions below this pixel area
	// (potrace turdsize).
	MinFeatureSize int

	// OptTolerance controls segment-merging aggressiveness during curve
	// optimization. Lower values preserve more detail.
	OptTolerance float64

	// CornerThreshold controls where output prefers sharp corners over
	// smooth curves, in [0, CornerThresholdMax].
	CornerThreshold float64
}

// Tracer converts a binary pixel mask into closed vector outlines. It is
// the seam for substituting tracing backends: the rest of the pipeline
// depends only on the [CurvePath] model, never on a backend's native
// structures.
//
// A Tracer must return paths in a stable order and must report an error
// rather than returning zero paths for a mask that has foreground pixels.
type Tracer interface {
	Trace(mask *Mask, opts TraceOptions) ([]CurvePath, error)
}

// NewPotraceTracer returns the default Tracer, backed by the potrace port
// github.com/dennwc/gotrace.
func NewPotraceTracer() Tracer {
	return potraceTracer{}
}

type potraceTracer struct{}

func (potraceTracer) Trace(mask *Mask, opts TraceOptions) ([]CurvePath, error) {
	if mask == nil || mask.W == 0 || mask.H == 0 {
		return nil, fmt.Errorf("%w: empty mask", ErrInvalidInput)
	}

	bm := gotrace.NewBitmap(mask.W, mask.H)
	ink := 0
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			if mask.At(x, y) {
				bm.Set(x, y, true)
				ink++
			}
		}
	}
	if ink == 0 {
		// Nothing to trace; an empty result is valid, not a failure.
		return nil, nil
	}

	params := gotrace.Defaults
	params.TurdSize = opts.MinFeatureSize
	params.AlphaMax = opts.CornerThreshold
	params.OptiCurve = true
	params.OptTolerance = opts.OptTolerance

	paths, err := gotrace.Trace(bm, &params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTraceFailure, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: backend returned no paths for a non-empty mask (%d foreground pixels)",
			ErrTraceFailure, ink)
	}

	out := make([]CurvePath, 0, len(paths))
	for i, p := range paths {
		cp := normalizePath(p, float64(mask.H))
		if len(cp.Segments) == 0 {
			logger().Debug("tracer: dropping path with no segments", "path", i)
			continue
		}
		out = append(out, cp)
	}
	return out, nil
}

// normalizePath converts one potrace path into the CurvePath model.
//
// Potrace encodes a closed curve as a segment list where the path start is
// the endpoint (Pnt[2]) of the last segment. A corner segment contributes
// two straight edges through its vertex Pnt[1]; a bezier segment carries
// control points Pnt[0], Pnt[1] and endpoint Pnt[2]. Potrace's y axis
// points up, so coordinates are flipped into image space (origin top-left)
// using the mask height.
func normalizePath(p gotrace.Path, h float64) CurvePath {
	if len(p.Curve) == 0 {
		return CurvePath{}
	}

	flip := func(pt gotrace.Point) Point {
		return Point{X: pt.X, Y: h - pt.Y}
	}

	start := flip(p.Curve[len(p.Curve)-1].Pnt[2])
	segs := make([]Segment, 0, len(p.Curve)*2)
	cur := start
	for _, s := range p.Curve {
		end := flip(s.Pnt[2])
		switch s.Type {
		case gotrace.TypeCorner:
			vertex := flip(s.Pnt[1])
			segs = append(segs, Line(cur, vertex), Line(vertex, end))
		case gotrace.TypeBezier:
			segs = append(segs, Curve(cur, flip(s.Pnt[0]), flip(s.Pnt[1]), end))
		}
		cur = end
	}
	return CurvePath{Segments: segs}
}
