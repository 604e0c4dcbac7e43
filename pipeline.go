package imgdraw

import (
	"fmt"
	"image"
	"sync"
)

// Config is the full set of tunable parameters for one pipeline run. It is
// immutable for the duration of a run: every stage receives it by value and
// never mutates it.
type Config struct {
	// Threshold is the binarization cutoff in [0, 255]; pixels strictly
	// darker than it are traced.
	Threshold int

	// MinFeatureSize suppresses traced regions below this pixel area.
	MinFeatureSize int

	// OptTolerance is the tracer's curve-optimization tolerance.
	OptTolerance float64

	// CornerThreshold is the tracer's corner-detection threshold in
	// [0, CornerThresholdMax].
	CornerThreshold float64

	// Tessellation selects the curve-to-polyline policy.
	Tessellation TessellationConfig

	// ScaleFactor rescales the output; must be > 0.
	ScaleFactor float64

	// Offset is an explicit origin offset applied after scaling.
	Offset Point

	// SkipBorder enables dropping polylines that trace the image border.
	SkipBorder bool

	// BorderPixelTolerance is the max distance (pixels) from an image edge
	// for a path to count as hugging that edge.
	BorderPixelTolerance float64

	// BorderDimensionRatio is the minimum fraction of the image extent a
	// path's bounding box must span to be a border candidate.
	BorderDimensionRatio float64
}

// DefaultConfig returns the standard parameter set.
func DefaultConfig() Config {
	return Config{
		Threshold:            128,
		MinFeatureSize:       2,
		OptTolerance:         0.3,
		CornerThreshold:      1.0,
		Tessellation:         TessellationConfig{Method: Adaptive, Resolution: 15},
		ScaleFactor:          1.1,
		SkipBorder:           true,
		BorderPixelTolerance: 5,
		BorderDimensionRatio: 0.95,
	}
}

// Validate checks every parameter range. It returns an error wrapping
// [ErrInvalidInput] naming the first offending parameter.
func (c Config) Validate() error {
	switch {
	case c.Threshold < 0 || c.Threshold > 255:
		return fmt.Errorf("%w: threshold %d outside [0, 255]", ErrInvalidInput, c.Threshold)
	case c.MinFeatureSize < 0:
		return fmt.Errorf("%w: min feature size %d is negative", ErrInvalidInput, c.MinFeatureSize)
	case c.OptTolerance < 0:
		return fmt.Errorf("%w: optimization tolerance %g is negative", ErrInvalidInput, c.OptTolerance)
	case c.CornerThreshold < 0 || c.CornerThreshold > CornerThresholdMax:
		return fmt.Errorf("%w: corner threshold %g outside [0, %g]",
			ErrInvalidInput, c.CornerThreshold, CornerThresholdMax)
	case c.Tessellation.Method == Fixed && c.Tessellation.Resolution < 1:
		return fmt.Errorf("%w: fixed tessellation resolution %d, must be >= 1",
			ErrInvalidInput, c.Tessellation.Resolution)
	case c.ScaleFactor <= 0:
		return fmt.Errorf("%w: scale factor %g, must be > 0", ErrInvalidInput, c.ScaleFactor)
	case c.BorderPixelTolerance < 0:
		return fmt.Errorf("%w: border pixel tolerance %g is negative",
			ErrInvalidInput, c.BorderPixelTolerance)
	case c.BorderDimensionRatio <= 0 || c.BorderDimensionRatio > 1:
		return fmt.Errorf("%w: border dimension ratio %g outside (0, 1]",
			ErrInvalidInput, c.BorderDimensionRatio)
	}
	return nil
}

// Pipeline sequences binarization, tracing, tessellation, border filtering
// and scaling over one immutable Config.
//
// A Pipeline is safe for concurrent use: Run shares no mutable state
// between calls.
type Pipeline struct {
	cfg     Config
	tracer  Tracer
	workers int
}

// NewPipeline creates a pipeline for the given configuration. The config is
// validated once here; an invalid config wraps [ErrInvalidInput].
func NewPipeline(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Pipeline{
		cfg:     cfg,
		tracer:  o.tracer,
		workers: o.workers,
	}, nil
}

// Config returns the pipeline's configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Run executes the full pipeline on a grayscale image and returns the
// final ordered polyline list in output coordinates.
//
// Binarization and trace failures abort the run. An empty result — no
// foreground, everything filtered as border, or every path collapsing
// below two points — is a valid outcome and returns a nil error with an
// empty (non-nil) slice.
func (p *Pipeline) Run(img *image.Gray) ([]Polyline, error) {
	mask, err := Binarize(img, p.cfg.Threshold)
	if err != nil {
		return nil, err
	}

	paths, err := p.tracer.Trace(mask, TraceOptions{
		MinFeatureSize:  p.cfg.MinFeatureSize,
		OptTolerance:    p.cfg.OptTolerance,
		CornerThreshold: p.cfg.CornerThreshold,
	})
	if err != nil {
		return nil, err
	}
	logger().Info("trace complete", "paths", len(paths),
		"width", mask.W, "height", mask.H)

	polylines, err := p.tessellateAll(paths)
	if err != nil {
		return nil, err
	}

	if p.cfg.SkipBorder {
		before := len(polylines)
		polylines = FilterBorders(polylines, float64(mask.W), float64(mask.H),
			p.cfg.BorderDimensionRatio, p.cfg.BorderPixelTolerance)
		if len(polylines) == 0 && before > 0 {
			logger().Warn("border filter removed every polyline")
		}
	}

	return ScaleAll(polylines, p.cfg.ScaleFactor, p.cfg.Offset), nil
}

// tessellateAll converts every curve path into a polyline, fanning out
// across workers when configured. Each task owns its input path and writes
// only its own result slot, so results always land in original path order.
// Paths that collapse below two points are skipped.
func (p *Pipeline) tessellateAll(paths []CurvePath) ([]Polyline, error) {
	results := make([]Polyline, len(paths))
	errs := make([]error, len(paths))

	if p.workers > 1 && len(paths) > 1 {
		sem := make(chan struct{}, p.workers)
		var wg sync.WaitGroup
		for i, path := range paths {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, path CurvePath) {
				defer wg.Done()
				defer func() { <-sem }()
				results[i], errs[i] = Tessellate(path, p.cfg.Tessellation)
			}(i, path)
		}
		wg.Wait()
	} else {
		for i, path := range paths {
			results[i], errs[i] = Tessellate(path, p.cfg.Tessellation)
		}
	}

	out := make([]Polyline, 0, len(paths))
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("tessellate path %d: %w", i, err)
		}
		if len(results[i]) < 2 {
			logger().Debug("skipping path with fewer than 2 points", "path", i)
			continue
		}
		out = append(out, results[i])
	}
	return out, nil
}
