package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects how a Camera maps view space to clip space.
type Projection uint8

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// MinZoom bounds Camera.SetZoom from below.
const MinZoom = 0.05

// Camera is the projection half of a view. Its placement lives in the
// entity's Transform.
type Camera struct {
	Kind Projection

	FovY   float32 // radians, perspective only
	Aspect float32

	HalfW, HalfH float32 // orthographic extents in world units
	Zoom         float32 // 1 = no zoom, orthographic only

	Near, Far float32

	proj  mgl32.Mat4
	dirty bool
}

// NewPerspective returns a perspective camera with fovy in radians.
func NewPerspective(fovy, aspect, near, far float32) *Camera {
	c := &Camera{Kind: Perspective, FovY: fovy, Aspect: aspect, Near: near, Far: far, Zoom: 1}
	c.Recalculate()
	return c
}

// NewOrtho returns an orthographic camera one world unit per pixel of a
// width×height viewport.
func NewOrtho(width, height int) *Camera {
	c := &Camera{
		Kind: Orthographic,
		Near: -1, Far: 1,
		Zoom: 1,
	}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *Camera) SetViewportPixels(w, h int) {
	c.HalfW = float32(w) * 0.5
	c.HalfH = float32(h) * 0.5
	if h > 0 {
		c.Aspect = float32(w) / float32(h)
	}
	c.dirty = true
}

// SetAspect updates the width/height ratio. Non-positive or non-finite
// ratios are ignored.
func (c *Camera) SetAspect(aspect float32) {
	if !(aspect > 0) || math.IsInf(float64(aspect), 0) {
		return
	}
	c.Aspect = aspect
	if c.Kind == Orthographic {
		c.HalfW = c.HalfH * aspect
	}
	c.dirty = true
}

func (c *Camera) SetZoom(z float32) {
	if z < MinZoom {
		z = MinZoom
	}
	c.Zoom = z
	c.dirty = true
}

// Matrix returns the projection matrix.
func (c *Camera) Matrix() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.proj
}

func (c *Camera) Recalculate() {
	switch c.Kind {
	case Orthographic:
		z := c.Zoom
		c.proj = mgl32.Ortho(-c.HalfW/z, c.HalfW/z, -c.HalfH/z, c.HalfH/z, c.Near, c.Far)
	default:
		c.proj = mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
	}
	c.dirty = false
}

// ProjectSize converts a world-space length seen at depth (distance along
// the view axis) into normalized device units of the vertical axis.
func (c *Camera) ProjectSize(size, depth float32) float32 {
	if c.Kind == Orthographic {
		if c.HalfH == 0 {
			return 0
		}
		return size * c.Zoom / c.HalfH
	}
	depth = float32(math.Abs(float64(depth)))
	if depth < c.Near {
		depth = c.Near
	}
	if depth == 0 {
		return 0
	}
	cot := 1 / float32(math.Tan(float64(c.FovY)/2))
	return size * cot / depth
}
