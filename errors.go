package imgdraw

import "errors"

// Error kinds for the pipeline. Callers are expected to test with
// [errors.Is]; stage code wraps these with fmt.Errorf("...: %w", ...) to
// attach the offending parameter or path index.
var (
	// ErrInvalidInput indicates a malformed image/mask or an out-of-range
	// configuration value.
	ErrInvalidInput = errors.New("imgdraw: invalid input")

	// ErrTraceFailure indicates the tracing backend reported an internal
	// error, or returned zero paths for a mask that has foreground pixels.
	ErrTraceFailure = errors.New("imgdraw: trace failure")

	// ErrDegenerateCurve indicates tessellation could not resolve a segment
	// within its recursion budget. This signals broken curve data rather
	// than a tuning problem and is fatal.
	ErrDegenerateCurve = errors.New("imgdraw: degenerate curve")
)
