package imgdraw

// Option configures a Pipeline during creation.
// Use functional options to customize Pipeline behavior.
//
// Example:
//
//	// Default potrace backend, sequential tessellation
//	p, err := imgdraw.NewPipeline(cfg)
//
//	// Custom tracing backend (dependency injection)
//	p, err := imgdraw.NewPipeline(cfg, imgdraw.WithTracer(myTracer))
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	tracer  Tracer
	workers int
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		tracer:  NewPotraceTracer(),
		workers: 1,
	}
}

// WithTracer sets a custom tracing backend for the Pipeline.
// Use this to substitute the default potrace-based backend.
//
// Example:
//
//	p, err := imgdraw.NewPipeline(cfg, imgdraw.WithTracer(stubTracer))
func WithTracer(t Tracer) Option {
	return func(o *pipelineOptions) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithWorkers sets the number of goroutines used to tessellate independent
// curve paths. Tessellation tasks share no mutable state and results are
// reassembled in original path order, so downstream stages see a stable
// ordering regardless of worker count. Values below 2 keep tessellation
// sequential.
func WithWorkers(n int) Option {
	return func(o *pipelineOptions) {
		if n > 1 {
			o.workers = n
		}
	}
}
