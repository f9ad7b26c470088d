package world

import "github.com/go-gl/mathgl/mgl32"

// Transform places an entity: scale, then rotate, then translate.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() *Transform {
	return &Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform) Translate(d mgl32.Vec3) { t.Position = t.Position.Add(d) }

// Rotate turns the transform by angle radians around axis, in world space.
func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	if axis.Len() == 0 {
		return
	}
	t.Rotation = mgl32.QuatRotate(angle, axis.Normalize()).Mul(t.Rotation).Normalize()
}

// Matrix is the model matrix T·R·S.
func (t *Transform) Matrix() mgl32.Mat4 {
	return t.isometry().Mul4(mgl32.Scale3D(t.Scale.Elem()))
}

// View is the inverse of the rigid part of the transform. Scale is ignored
// so a camera entity never skews what it looks at.
func (t *Transform) View() mgl32.Mat4 { return t.isometry().Inv() }

func (t *Transform) isometry() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.Elem()).Mul4(t.Rotation.Mat4())
}
