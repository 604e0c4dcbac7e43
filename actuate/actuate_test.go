package actuate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imgdraw "github.com/flawnn/img-to-drawing"
)

func TestCompile(t *testing.T) {
	polylines := []imgdraw.Polyline{
		{imgdraw.Pt(0, 0), imgdraw.Pt(10, 0), imgdraw.Pt(10, 10)},
		{imgdraw.Pt(50, 50)}, // too short, skipped
		{imgdraw.Pt(20, 20), imgdraw.Pt(30, 20)},
	}

	plan := Compile(polylines)
	require.Len(t, plan, 5)

	assert.Equal(t, MoveTo, plan[0].Kind)
	assert.Equal(t, imgdraw.Pt(0, 0), plan[0].P)
	assert.Equal(t, DragTo, plan[1].Kind)
	assert.Equal(t, DragTo, plan[2].Kind)
	assert.Equal(t, MoveTo, plan[3].Kind)
	assert.Equal(t, imgdraw.Pt(20, 20), plan[3].P)
	assert.Equal(t, DragTo, plan[4].Kind)
}

func TestCompile_FiltersRedundantMoves(t *testing.T) {
	polylines := []imgdraw.Polyline{
		{imgdraw.Pt(0, 0), imgdraw.Pt(0, 5e-5), imgdraw.Pt(10, 0)},
	}
	plan := Compile(polylines)
	// The sub-tolerance second point is dropped.
	require.Len(t, plan, 2)
	assert.Equal(t, imgdraw.Pt(10, 0), plan[1].P)
}

func TestCenter(t *testing.T) {
	plan := Compile([]imgdraw.Polyline{
		{imgdraw.Pt(100, 200), imgdraw.Pt(140, 220)},
	})

	centered, err := Center(plan, 1000, 500)
	require.NoError(t, err)
	require.Len(t, centered, 2)

	bb, ok := centered.BoundingBox()
	require.True(t, ok)
	// A 40x20 drawing centered on 1000x500.
	assert.InDelta(t, 480, bb.Min.X, 1e-9)
	assert.InDelta(t, 240, bb.Min.Y, 1e-9)
	assert.InDelta(t, 520, bb.Max.X, 1e-9)
	assert.InDelta(t, 260, bb.Max.Y, 1e-9)
}

func TestCenter_DegeneratePlan(t *testing.T) {
	_, err := Center(nil, 800, 600)
	assert.ErrorIs(t, err, ErrEmptyPlan)

	// Single-point strokes have a negligible bounding box.
	dot := Plan{{Kind: MoveTo, P: imgdraw.Pt(5, 5)}, {Kind: DragTo, P: imgdraw.Pt(5.0001, 5)}}
	_, err = Center(dot, 800, 600)
	assert.ErrorIs(t, err, ErrEmptyPlan)
}

func TestDriver_Replay(t *testing.T) {
	rec := NewRecorder(800, 600)
	d := &Driver{Actuator: rec}

	plan := Compile([]imgdraw.Polyline{
		{imgdraw.Pt(0, 0), imgdraw.Pt(10, 0)},
		{imgdraw.Pt(20, 20), imgdraw.Pt(30, 30)},
	})
	require.NoError(t, d.Replay(context.Background(), plan))

	want := []RecordedOp{
		{Name: "move", X: 0, Y: 0},
		{Name: "down"},
		{Name: "move", X: 10, Y: 0},
		{Name: "up"},
		{Name: "move", X: 20, Y: 20},
		{Name: "down"},
		{Name: "move", X: 30, Y: 30},
		{Name: "up"},
	}
	assert.Equal(t, want, rec.Ops)
}

func TestDriver_ReplayRoundsCoordinates(t *testing.T) {
	rec := NewRecorder(800, 600)
	d := &Driver{Actuator: rec}

	plan := Plan{{Kind: MoveTo, P: imgdraw.Pt(1.6, 2.4)}}
	require.NoError(t, d.Replay(context.Background(), plan))
	assert.Equal(t, []RecordedOp{{Name: "move", X: 2, Y: 2}}, rec.Ops)
}

func TestDriver_ReplayEmptyPlan(t *testing.T) {
	d := &Driver{Actuator: NewRecorder(800, 600)}
	assert.ErrorIs(t, d.Replay(context.Background(), nil), ErrEmptyPlan)
}

func TestDriver_WarmUpCancellation(t *testing.T) {
	rec := NewRecorder(800, 600)
	d := &Driver{Actuator: rec, WarmUp: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Replay(ctx, Plan{{Kind: MoveTo, P: imgdraw.Pt(0, 0)}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.Ops, "no actions should run after cancellation")
}

func TestDriver_CancellationLiftsPen(t *testing.T) {
	rec := NewRecorder(800, 600)
	d := &Driver{Actuator: rec, Pace: time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	var plan Plan
	plan = append(plan, Action{Kind: DragTo, P: imgdraw.Pt(1, 1)})
	for i := 0; i < 1000; i++ {
		plan = append(plan, Action{Kind: DragTo, P: imgdraw.Pt(float64(i), 2)})
	}
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	err := d.Replay(ctx, plan)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotEmpty(t, rec.Ops)
	assert.Equal(t, "up", rec.Ops[len(rec.Ops)-1].Name, "pen must be lifted on cancellation")
}
