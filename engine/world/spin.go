package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/wand/engine/ui"
)

// Spin turns one entity around an axis every tick.
type Spin struct {
	Axis  mgl32.Vec3
	Speed float32 // radians per tick

	state  *State
	entity Entity
}

func NewSpin(state *State, e Entity, axis mgl32.Vec3, speed float32) *Spin {
	return &Spin{Axis: axis, Speed: speed, state: state, entity: e}
}

func (s *Spin) Tick() {
	if t, ok := s.state.Transform(s.entity); ok && s.Speed != 0 {
		t.Rotate(s.Axis, s.Speed)
	}
}

// Dispatch accepts a new speed as float32 or float64.
func (s *Spin) Dispatch(data any) error {
	switch v := data.(type) {
	case float32:
		s.Speed = v
	case float64:
		s.Speed = float32(v)
	default:
		return fmt.Errorf("%w: spin got %T", ui.ErrDispatchTypeMismatch, data)
	}
	return nil
}
