// Package actuate compiles pipeline output into pointer-drawing actions and
// replays them through a pluggable actuator, with a warm-up delay before
// the first action and a fixed pace between actions.
package actuate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	imgdraw "github.com/flawnn/img-to-drawing"
)

// ErrEmptyPlan indicates there is nothing to draw: no polylines, or a plan
// whose bounding box has negligible size.
var ErrEmptyPlan = errors.New("actuate: empty or degenerate drawing plan")

// ActionKind distinguishes pen-up repositioning from pen-down drawing.
type ActionKind uint8

const (
	// MoveTo repositions the pointer with the pen up.
	MoveTo ActionKind = iota
	// DragTo moves the pointer with the pen down, drawing a stroke.
	DragTo
)

// Action is one pointer motion.
type Action struct {
	Kind ActionKind
	P    imgdraw.Point
}

// Plan is an ordered list of pointer actions: one MoveTo to each polyline's
// start followed by DragTo actions along it.
type Plan []Action

// minMoveDistance filters out sub-pixel redundant drags that tessellation
// can produce across segment boundaries.
const minMoveDistance = 1e-4

// Compile converts polylines into a drawing plan, one pen-down stroke per
// polyline. Polylines with fewer than 2 points are skipped.
func Compile(polylines []imgdraw.Polyline) Plan {
	var plan Plan
	for _, pl := range polylines {
		if len(pl) < 2 {
			continue
		}
		plan = append(plan, Action{Kind: MoveTo, P: pl[0]})
		pen := pl[0]
		for _, p := range pl[1:] {
			if math.Abs(p.X-pen.X) <= minMoveDistance && math.Abs(p.Y-pen.Y) <= minMoveDistance {
				continue
			}
			plan = append(plan, Action{Kind: DragTo, P: p})
			pen = p
		}
	}
	return plan
}

// BoundingBox returns the bounding box of all plan points. ok is false for
// an empty plan.
func (p Plan) BoundingBox() (bb imgdraw.Rect, ok bool) {
	if len(p) == 0 {
		return imgdraw.Rect{}, false
	}
	bb = imgdraw.NewRect(p[0].P, p[0].P)
	for _, a := range p[1:] {
		bb = bb.ExpandToInclude(a.P)
	}
	return bb, true
}

// Center translates the plan so its bounding box is centered on a screen of
// the given size. The plan's coordinates are first normalized to its own
// bounding box, so drawings land centered regardless of where the source
// image content sat.
//
// Returns ErrEmptyPlan when the plan is empty or its bounding box has
// negligible size, since such a plan cannot be drawn meaningfully.
func Center(plan Plan, screenW, screenH int) (Plan, error) {
	bb, ok := plan.BoundingBox()
	if !ok {
		return nil, ErrEmptyPlan
	}
	if bb.Width() <= 1e-3 || bb.Height() <= 1e-3 {
		return nil, fmt.Errorf("%w: bounding box %gx%g", ErrEmptyPlan, bb.Width(), bb.Height())
	}

	offX := (float64(screenW) - bb.Width()) / 2.0
	offY := (float64(screenH) - bb.Height()) / 2.0

	out := make(Plan, len(plan))
	for i, a := range plan {
		out[i] = Action{
			Kind: a.Kind,
			P: imgdraw.Pt(
				a.P.X-bb.Min.X+offX,
				a.P.Y-bb.Min.Y+offY,
			),
		}
	}
	return out, nil
}

// Actuator is the device seam: it injects pointer motion and button state.
// Implementations live outside the core pipeline (see the robot
// subpackage for a robotgo-backed one).
type Actuator interface {
	// Move positions the pointer at screen coordinates (x, y).
	Move(x, y int) error
	// PenDown presses the primary button.
	PenDown() error
	// PenUp releases the primary button.
	PenUp() error
	// ScreenSize returns the target screen dimensions in pixels.
	ScreenSize() (width, height int, err error)
}

// Driver replays a plan through an Actuator with pacing.
type Driver struct {
	// Actuator performs the pointer motion.
	Actuator Actuator
	// WarmUp is the delay before the first action, giving the user time to
	// focus the target drawing window.
	WarmUp time.Duration
	// Pace is the pause between consecutive actions.
	Pace time.Duration
}

// Replay executes the plan. MoveTo actions lift the pen before moving;
// DragTo actions press it first. The pen is always released on return,
// including on error or cancellation.
func (d *Driver) Replay(ctx context.Context, plan Plan) error {
	if len(plan) == 0 {
		return ErrEmptyPlan
	}

	if d.WarmUp > 0 {
		select {
		case <-time.After(d.WarmUp):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	penDown := false
	defer func() {
		if penDown {
			_ = d.Actuator.PenUp()
		}
	}()

	for i, a := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch a.Kind {
		case MoveTo:
			if penDown {
				if err := d.Actuator.PenUp(); err != nil {
					return fmt.Errorf("action %d: pen up: %w", i, err)
				}
				penDown = false
			}
		case DragTo:
			if !penDown {
				if err := d.Actuator.PenDown(); err != nil {
					return fmt.Errorf("action %d: pen down: %w", i, err)
				}
				penDown = true
			}
		}
		x := int(math.Round(a.P.X))
		y := int(math.Round(a.P.Y))
		if err := d.Actuator.Move(x, y); err != nil {
			return fmt.Errorf("action %d: move to (%d, %d): %w", i, x, y, err)
		}
		if d.Pace > 0 {
			select {
			case <-time.After(d.Pace):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	if penDown {
		penDown = false
		if err := d.Actuator.PenUp(); err != nil {
			return fmt.Errorf("final pen up: %w", err)
		}
	}
	return nil
}
