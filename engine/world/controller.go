package world

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/wand/engine/ui"
)

// Axes is the slice of an input source a controller reads. Axis returns
// +1 while pos is held, -1 while neg is held and 0 otherwise.
type Axes interface {
	Axis(pos, neg string) float64
}

// CameraController moves the active camera: WASD pans, Q/E turns around
// the vertical axis, Z/X zooms in and out.
type CameraController struct {
	MoveSpeed float32 // world units per tick
	RotSpeed  float32 // radians per tick
	ZoomSpeed float32 // zoom factor per tick

	state *State
	input Axes
}

func NewCameraController(state *State, input Axes) *CameraController {
	return &CameraController{
		MoveSpeed: 0.05,
		RotSpeed:  0.03,
		ZoomSpeed: 1.02,
		state:     state,
		input:     input,
	}
}

func (cc *CameraController) Tick() {
	if cc.input == nil {
		return
	}
	e, cam, ok := cc.state.ActiveCamera()
	if !ok {
		return
	}
	t, ok := cc.state.Transform(e)
	if !ok {
		return
	}

	speed := cc.MoveSpeed
	dx := float32(cc.input.Axis("d", "a")) * speed
	dy := float32(cc.input.Axis("w", "s")) * speed
	if dx != 0 || dy != 0 {
		t.Translate(mgl32.Vec3{dx, dy, 0})
	}

	if r := cc.input.Axis("q", "e"); r != 0 {
		t.Rotate(mgl32.Vec3{0, 1, 0}, float32(r)*cc.RotSpeed)
	}

	if z := cc.input.Axis("z", "x"); z != 0 {
		if cam.Kind == Orthographic {
			cam.SetZoom(cam.Zoom * float32(math.Pow(float64(cc.ZoomSpeed), z)))
		} else {
			// Dolly: a perspective camera zooms by walking forward.
			t.Translate(t.Rotation.Rotate(mgl32.Vec3{0, 0, -float32(z) * speed}))
		}
	}
}

// Dispatch rebinds the input source.
func (cc *CameraController) Dispatch(data any) error {
	in, ok := data.(Axes)
	if !ok {
		return fmt.Errorf("%w: camera controller got %T", ui.ErrDispatchTypeMismatch, data)
	}
	cc.input = in
	return nil
}
