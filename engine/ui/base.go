package ui

import "math"

// Spacing describes a padding or margin: per axis a fraction of the parent
// extent bounded by a minimum and a maximum, in pixels.
type Spacing struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// Uniform returns a spacing of frac on both axes bounded by [lo, hi].
func Uniform(frac, lo, hi float64) Spacing {
	return Spacing{X: frac, Y: frac, MinX: lo, MaxX: hi, MinY: lo, MaxY: hi}
}

// alongX resolves the horizontal spacing against extent.
func (s Spacing) alongX(extent float64) float64 { return clamp(extent*s.X, s.MinX, s.MaxX) }

// alongY resolves the vertical spacing against extent.
func (s Spacing) alongY(extent float64) float64 { return clamp(extent*s.Y, s.MinY, s.MaxY) }

// CanvasMeta carries the surface dimensions into a scene resize.
type CanvasMeta struct {
	W, H float64
}

// clamp raises v to lo then caps it at hi; when lo > hi the result is hi.
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Fraction keeps a fractional size inside [0, 1]. NaN becomes 0.
func Fraction(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, 0, 1)
}

func nonNegative(v float64) float64 { return math.Max(v, 0) }

// Share returns the rect at (left, top) covering wf×hf of the area that
// reaches to (right, bottom). An inverted area yields an empty rect.
func Share(left, top, right, bottom, wf, hf float64) Rect {
	return Rect{
		X: left,
		Y: top,
		W: wf * nonNegative(right-left),
		H: hf * nonNegative(bottom-top),
	}
}
