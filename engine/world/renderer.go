package world

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/canvas"
	"github.com/hubastard/wand/engine/ui"
)

// Viewport is the pixel rect the world is drawn into.
type Viewport struct {
	X, Y, W, H float64
}

// Matrix maps normalized device coordinates onto the viewport with Y
// pointing down: T(x, y+h, 0) · FlipY · S(w/2, h/2, 1) · T(1, 1, 0).
func (v Viewport) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(float32(v.X), float32(v.Y+v.H), 0).
		Mul4(mgl32.Diag4(mgl32.Vec4{1, -1, 1, 1})).
		Mul4(mgl32.Scale3D(float32(v.W/2), float32(v.H/2), 1)).
		Mul4(mgl32.Translate3D(1, 1, 0))
}

// RenderingSystem projects the world through the active camera onto a
// canvas.Context2D. It draws nothing while no context is attached.
type RenderingSystem struct {
	state    *State
	ctx      canvas.Context2D
	viewport Viewport
	vpm      mgl32.Mat4
}

func NewRenderingSystem(state *State) *RenderingSystem {
	return &RenderingSystem{state: state, vpm: mgl32.Ident4()}
}

// Attach binds the context the next Tick draws into.
func (r *RenderingSystem) Attach(ctx canvas.Context2D) { r.ctx = ctx }
func (r *RenderingSystem) Detach()                     { r.ctx = nil }
func (r *RenderingSystem) Viewport() Viewport          { return r.viewport }

// Dispatch accepts a Viewport. It rebuilds the viewport matrix and fits the
// active perspective camera to the new aspect ratio.
func (r *RenderingSystem) Dispatch(data any) error {
	vp, ok := data.(Viewport)
	if !ok {
		ui.Logger().Debug("dispatch ignored", zap.String("system", "renderer"), zap.String("payload", fmt.Sprintf("%T", data)))
		return fmt.Errorf("%w: renderer got %T", ui.ErrDispatchTypeMismatch, data)
	}
	r.viewport = vp
	r.vpm = vp.Matrix()
	if _, cam, ok := r.state.ActiveCamera(); ok && cam.Kind == Perspective && vp.H > 0 {
		cam.SetAspect(float32(vp.W / vp.H))
	}
	ui.Logger().Debug("viewport set",
		zap.Float64("x", vp.X), zap.Float64("y", vp.Y),
		zap.Float64("w", vp.W), zap.Float64("h", vp.H))
	return nil
}

// frame is the per-Tick projection state.
type frame struct {
	ctx  canvas.Context2D
	cam  *Camera
	view mgl32.Mat4
	vp   mgl32.Mat4
	half float64 // viewport h/2, NDC to pixels
}

func (f *frame) project(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

// projectSize is the pixel length of size world units seen at the position
// of at.
func (f *frame) projectSize(size float32, at mgl32.Vec3) float64 {
	depth := mgl32.TransformCoordinate(at, f.view).Z()
	return float64(f.cam.ProjectSize(size, depth)) * f.half
}

type polygon struct {
	depth   float32
	a, b, c mgl32.Vec3
	color   string
}

// Tick draws meshes in entity order, then every polygon farthest first,
// then shapes, then widgets.
func (r *RenderingSystem) Tick() {
	if r.ctx == nil {
		return
	}
	camEntity, cam, ok := r.state.ActiveCamera()
	if !ok {
		return
	}
	camT, ok := r.state.Transform(camEntity)
	if !ok {
		return
	}
	view := camT.View()
	f := &frame{
		ctx:  r.ctx,
		cam:  cam,
		view: view,
		vp:   r.vpm.Mul4(cam.Matrix()).Mul4(view),
		half: r.viewport.H / 2,
	}

	var polygons []polygon
	for _, e := range r.state.meshEntities() {
		t, ok := r.state.Transform(e)
		if !ok {
			continue
		}
		mvp := f.vp.Mul4(t.Matrix())
		switch m := r.state.meshes[e].(type) {
		case *LineMesh:
			f.drawLines(mvp, m)
		case *PolygonMesh:
			polygons = appendPolygons(polygons, f, mvp, m)
		case *BrushMesh:
			for _, b := range m.Brushes {
				f.drawBrush(mvp, t.Position, b)
			}
		}
	}

	slices.SortStableFunc(polygons, func(a, b polygon) int { return cmp.Compare(b.depth, a.depth) })
	for _, p := range polygons {
		f.drawPolygon(p)
	}

	for _, sh := range r.state.shapes {
		f.drawShape(sh)
	}

	r.drawWidgets(f)
}

func (f *frame) drawLines(mvp mgl32.Mat4, m *LineMesh) {
	if len(m.Vertices) == 0 {
		return
	}
	breaks := m.Breaks
	next := func() int {
		if len(breaks) == 0 {
			return len(m.Vertices) - 1
		}
		b := breaks[0]
		breaks = breaks[1:]
		return b
	}
	cut := next()

	f.ctx.SetStrokeStyle("white")
	f.ctx.BeginPath()
	first := true
	for i, v := range m.Vertices {
		p := f.project(mvp, v)
		if first {
			f.ctx.MoveTo(float64(p.X()), float64(p.Y()))
			first = false
		} else {
			f.ctx.LineTo(float64(p.X()), float64(p.Y()))
		}
		if i == cut {
			cut = next()
			first = true
		}
	}
	f.ctx.Stroke()
}

func appendPolygons(out []polygon, f *frame, mvp mgl32.Mat4, m *PolygonMesh) []polygon {
	n := len(m.Vertices)
	for _, tri := range m.Triangles {
		if tri.A < 0 || tri.B < 0 || tri.C < 0 || tri.A >= n || tri.B >= n || tri.C >= n {
			continue
		}
		a := f.project(mvp, m.Vertices[tri.A])
		b := f.project(mvp, m.Vertices[tri.B])
		c := f.project(mvp, m.Vertices[tri.C])
		out = append(out, polygon{
			depth: (a.Z() + b.Z() + c.Z()) / 3,
			a:     a,
			b:     b,
			c:     c,
			color: tri.Color,
		})
	}
	return out
}

func (f *frame) drawPolygon(p polygon) {
	f.ctx.BeginPath()
	f.ctx.SetFillStyle(p.color)
	f.ctx.SetStrokeStyle(p.color)
	f.ctx.MoveTo(float64(p.a.X()), float64(p.a.Y()))
	f.ctx.LineTo(float64(p.b.X()), float64(p.b.Y()))
	f.ctx.LineTo(float64(p.c.X()), float64(p.c.Y()))
	f.ctx.LineTo(float64(p.a.X()), float64(p.a.Y()))
	f.ctx.Stroke()
	f.ctx.Fill()
}

func (f *frame) drawBrush(mvp mgl32.Mat4, origin mgl32.Vec3, b Brush) {
	var stroke, fill string
	var action Action
	switch b := b.(type) {
	case *LinesBrush:
		stroke, fill, action = b.Stroke, b.Fill, b.Action
	case *SphereBrush:
		stroke, fill, action = b.Stroke, b.Fill, b.Action
	default:
		return
	}
	if stroke != "" {
		f.ctx.SetStrokeStyle(stroke)
	}
	if fill != "" {
		f.ctx.SetFillStyle(fill)
	}

	f.ctx.BeginPath()
	switch b := b.(type) {
	case *LinesBrush:
		for i, v := range b.Vertices {
			p := f.project(mvp, v)
			if i == 0 {
				f.ctx.MoveTo(float64(p.X()), float64(p.Y()))
			} else {
				f.ctx.LineTo(float64(p.X()), float64(p.Y()))
			}
		}
	case *SphereBrush:
		p := f.project(mvp, b.Center)
		f.ctx.Arc(float64(p.X()), float64(p.Y()), f.projectSize(b.Radius, origin), 0, 2*math.Pi)
	}
	if action&ActionFill != 0 {
		f.ctx.Fill()
	}
	if action&ActionStroke != 0 {
		f.ctx.Stroke()
	}
}

func (f *frame) drawShape(sh Shape) {
	f.ctx.SetStrokeStyle("white")
	switch sh := sh.(type) {
	case *LineShape:
		b := f.project(f.vp, sh.Begin)
		e := f.project(f.vp, sh.End)
		f.ctx.BeginPath()
		f.ctx.MoveTo(float64(b.X()), float64(b.Y()))
		f.ctx.LineTo(float64(e.X()), float64(e.Y()))
		f.ctx.Stroke()
	case *CircleShape:
		c := f.project(f.vp, sh.Center)
		f.ctx.BeginPath()
		f.ctx.Ellipse(float64(c.X()), float64(c.Y()), sh.Radius, sh.Radius, 0, 0, 2*math.Pi)
		f.ctx.Stroke()
	}
}

func (r *RenderingSystem) drawWidgets(f *frame) {
	entities := r.state.widgetEntities()
	if len(entities) == 0 {
		return
	}
	f.ctx.SetTextAlign("center")
	f.ctx.SetTextBaseline("middle")
	f.ctx.SetFillStyle("grey")
	f.ctx.SetStrokeStyle("darkgreen")
	for _, e := range entities {
		t, ok := r.state.Transform(e)
		if !ok {
			continue
		}
		pos := f.project(f.vp, t.Position)
		scale := f.projectSize(1, t.Position)
		at := func(off mgl32.Vec3) (float64, float64) {
			// Screen Y points down, world Y up.
			return float64(pos.X()) + float64(off.X())*scale, float64(pos.Y()) - float64(off.Y())*scale
		}
		switch w := r.state.widgets[e].(type) {
		case *TextWidget:
			x, y := at(w.Offset)
			f.ctx.FillText(w.Text, x, y)
		case *FramedTextWidget:
			x, y := at(w.Offset)
			fw, fh := float64(w.Width)*scale, float64(w.Height)*scale
			f.ctx.FillText(w.Text, x, y)
			f.ctx.StrokeRect(x-fw/2, y-fh/2, fw, fh)
		}
	}
}
