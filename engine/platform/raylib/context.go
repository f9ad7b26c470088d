// Package rlhost runs the toolkit in a raylib window, drawing each canvas
// call straight through raylib's immediate-mode API.
package rlhost

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/hubastard/wand/engine/canvas"
	"github.com/hubastard/wand/engine/colors"
)

// Raylib's bundled font has no metrics API; these approximate a Latin face.
const (
	ascentRatio  = 0.8
	descentRatio = 0.2
)

// Context implements canvas.Context2D on top of raylib. Calls are only
// valid between BeginDrawing and EndDrawing.
type Context struct {
	font  rl.Font
	clear color.RGBA

	stroke   color.RGBA
	fill     color.RGBA
	cfont    canvas.Font
	align    string
	baseline string

	path canvas.Path
}

func NewContext(clear colors.Color) *Context {
	return &Context{
		font:     rl.GetFontDefault(),
		clear:    clear.RGBA(),
		stroke:   rl.Black,
		fill:     rl.Black,
		cfont:    canvas.DefaultFont,
		align:    "start",
		baseline: "alphabetic",
	}
}

func (c *Context) SetStrokeStyle(style string) {
	if col, err := colors.Parse(style); err == nil {
		c.stroke = col.RGBA()
	}
}

func (c *Context) SetFillStyle(style string) {
	if col, err := colors.Parse(style); err == nil {
		c.fill = col.RGBA()
	}
}

func (c *Context) SetFont(font string) {
	if f, err := canvas.ParseFont(font); err == nil {
		c.cfont = f
	}
}

func (c *Context) SetTextAlign(align string)       { c.align = align }
func (c *Context) SetTextBaseline(baseline string) { c.baseline = baseline }

func rect(x, y, w, h float64) rl.Rectangle {
	return rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
}

func (c *Context) StrokeRect(x, y, w, h float64) { rl.DrawRectangleLinesEx(rect(x, y, w, h), 1, c.stroke) }
func (c *Context) FillRect(x, y, w, h float64)   { rl.DrawRectangleRec(rect(x, y, w, h), c.fill) }

// ClearRect paints the window background, raylib has no transparent
// framebuffer.
func (c *Context) ClearRect(x, y, w, h float64) { rl.DrawRectangleRec(rect(x, y, w, h), c.clear) }

func (c *Context) BeginPath()          { c.path.Reset() }
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(x, y) }
func (c *Context) LineTo(x, y float64) { c.path.LineTo(x, y) }

func (c *Context) Arc(x, y, radius, startAngle, endAngle float64) {
	c.path.Ellipse(x, y, radius, radius, 0, startAngle, endAngle)
}

func (c *Context) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64) {
	c.path.Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle)
}

func (c *Context) Stroke() {
	for _, sub := range c.path.Subpaths() {
		if len(sub) < 2 {
			continue
		}
		rl.DrawLineStrip(vectors(sub), c.stroke)
	}
}

// Fill fans each subpath from its first vertex, which is exact for the
// convex shapes the toolkit emits.
func (c *Context) Fill() {
	rl.DisableBackfaceCulling()
	defer rl.EnableBackfaceCulling()
	for _, sub := range c.path.Subpaths() {
		if len(sub) < 3 {
			continue
		}
		v := vectors(sub)
		for i := 2; i < len(v); i++ {
			rl.DrawTriangle(v[0], v[i-1], v[i], c.fill)
		}
	}
}

func (c *Context) size() float32    { return float32(c.cfont.Size) }
func (c *Context) spacing() float32 { return c.size() / 10 }

func (c *Context) MeasureText(s string) canvas.TextMetrics {
	v := rl.MeasureTextEx(c.font, s, c.size(), c.spacing())
	return canvas.TextMetrics{Width: float64(v.X)}
}

func (c *Context) FillText(s string, x, y float64) {
	size := float64(c.size())
	x += canvas.AlignOffset(c.align, c.MeasureText(s).Width)
	// raylib anchors text at its top-left corner.
	ascent, descent := size*ascentRatio, size*descentRatio
	y += canvas.BaselineOffset(c.baseline, ascent, descent) - ascent
	rl.DrawTextEx(c.font, s, rl.NewVector2(float32(x), float32(y)), c.size(), c.spacing(), c.fill)
}

func vectors(pts []canvas.Point) []rl.Vector2 {
	out := make([]rl.Vector2, len(pts))
	for i, p := range pts {
		out[i] = rl.NewVector2(p[0], p[1])
	}
	return out
}
