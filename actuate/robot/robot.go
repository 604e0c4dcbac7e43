// Package robot provides a robotgo-backed pointer actuator. It is kept in
// its own leaf package so that library consumers who only vectorize images
// never link robotgo's cgo dependencies.
package robot

import (
	rg "github.com/go-vgo/robotgo"

	"github.com/flawnn/img-to-drawing/actuate"
)

// New returns an actuate.Actuator that drives the real system pointer via
// robotgo. Moving the pointer manually during a replay will fight the
// driver; prefer a preview render when in doubt.
func New() actuate.Actuator {
	return actuator{}
}

type actuator struct{}

func (actuator) Move(x, y int) error {
	rg.Move(x, y)
	return nil
}

func (actuator) PenDown() error {
	rg.Toggle("left")
	return nil
}

func (actuator) PenUp() error {
	rg.Toggle("left", "up")
	return nil
}

func (actuator) ScreenSize() (int, int, error) {
	w, h := rg.GetScreenSize()
	return w, h, nil
}
