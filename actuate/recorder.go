package actuate

// Recorder is an in-memory Actuator for tests and dry runs. It records the
// exact sequence of pointer operations instead of injecting input.
type Recorder struct {
	W, H int

	// Ops holds the recorded operations in call order.
	Ops []RecordedOp
}

// RecordedOp is one recorded actuator operation.
type RecordedOp struct {
	// Name is "move", "down" or "up".
	Name string
	X, Y int
}

// NewRecorder creates a Recorder reporting the given screen size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Move(x, y int) error {
	r.Ops = append(r.Ops, RecordedOp{Name: "move", X: x, Y: y})
	return nil
}

func (r *Recorder) PenDown() error {
	r.Ops = append(r.Ops, RecordedOp{Name: "down"})
	return nil
}

func (r *Recorder) PenUp() error {
	r.Ops = append(r.Ops, RecordedOp{Name: "up"})
	return nil
}

func (r *Recorder) ScreenSize() (int, int, error) {
	return r.W, r.H, nil
}
