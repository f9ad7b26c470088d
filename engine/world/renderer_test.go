package world

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hubastard/wand/engine/canvas"
	"github.com/hubastard/wand/engine/ui"
)

var approx = cmpopts.EquateApprox(0, 1e-3)

func TestViewportMatrix(t *testing.T) {
	m := Viewport{X: 100, Y: 120, W: 40, H: 20}.Matrix()
	tests := []struct {
		in, want mgl32.Vec3
	}{
		{mgl32.Vec3{1, -1, 1}, mgl32.Vec3{140, 140, 1}},
		{mgl32.Vec3{-1, 1, 1}, mgl32.Vec3{100, 120, 1}},
		{mgl32.Vec3{-1, -1, 1}, mgl32.Vec3{100, 140, 1}},
		{mgl32.Vec3{1, 1, 1}, mgl32.Vec3{140, 120, 1}},
	}
	for _, tt := range tests {
		if got := mgl32.TransformCoordinate(tt.in, m); !got.ApproxEqual(tt.want) {
			t.Errorf("viewport(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// orthoWorld is a world seen by a 200×100 orthographic camera at the
// origin, drawn into a matching viewport: world (x, y) lands on pixel
// (100+x, 50-y).
func orthoWorld(t *testing.T) (*World, *RenderingSystem) {
	t.Helper()
	w := New()
	cam := w.State.Spawn()
	w.State.AttachCamera(cam, NewOrtho(200, 100))
	r := NewRenderingSystem(w.State)
	w.State.RegisterRenderer(RendererName, r)
	if err := r.Dispatch(Viewport{W: 200, H: 100}); err != nil {
		t.Fatal(err)
	}
	return w, r
}

func render(w *World, r *RenderingSystem) *canvas.Recorder {
	rec := canvas.NewRecorder()
	r.Attach(rec)
	defer r.Detach()
	w.RenderTick()
	return rec
}

func TestRendererAspect(t *testing.T) {
	w := New()
	w.AttachDefaultCamera()
	r := NewRenderingSystem(w.State)
	if err := r.Dispatch(Viewport{X: 10, Y: 10, W: 300, H: 150}); err != nil {
		t.Fatal(err)
	}
	_, cam, _ := w.State.ActiveCamera()
	if cam.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", cam.Aspect)
	}
	if got := r.Viewport(); got != (Viewport{X: 10, Y: 10, W: 300, H: 150}) {
		t.Errorf("Viewport() = %+v", got)
	}

	// A zero-height viewport leaves the aspect alone.
	if err := r.Dispatch(Viewport{W: 300}); err != nil {
		t.Fatal(err)
	}
	if cam.Aspect != 2 {
		t.Errorf("Aspect after empty viewport = %v, want 2", cam.Aspect)
	}
}

func TestRendererRejectsOtherPayloads(t *testing.T) {
	r := NewRenderingSystem(NewState())
	for _, payload := range []any{"hello", [4]float64{0, 0, 1, 1}, nil} {
		if err := r.Dispatch(payload); !errors.Is(err, ui.ErrDispatchTypeMismatch) {
			t.Errorf("Dispatch(%T) = %v, want ErrDispatchTypeMismatch", payload, err)
		}
	}
}

func TestRendererNeedsContextAndCamera(t *testing.T) {
	w, r := orthoWorld(t)
	w.State.AddShape(&LineShape{End: mgl32.Vec3{1, 1, 0}})
	w.RenderTick() // nothing attached

	rec := canvas.NewRecorder()
	r.Attach(rec)
	w.State.SetActiveCamera(0)
	w.RenderTick()
	if n := len(rec.Ops()); n != 0 {
		t.Errorf("drew %d ops without an active camera", n)
	}
}

func TestRendererShapes(t *testing.T) {
	w, r := orthoWorld(t)
	w.State.AddShape(&LineShape{Begin: mgl32.Vec3{-50, 0, 0}, End: mgl32.Vec3{50, 25, 0}})
	w.State.AddShape(&CircleShape{Radius: 7})

	rec := render(w, r)
	want := []canvas.Op{
		{Name: "SetStrokeStyle", Text: "white"},
		{Name: "BeginPath"},
		{Name: "MoveTo", Args: []float64{50, 50}},
		{Name: "LineTo", Args: []float64{150, 25}},
		{Name: "Stroke"},
		{Name: "SetStrokeStyle", Text: "white"},
		{Name: "BeginPath"},
		{Name: "Ellipse", Args: []float64{100, 50, 7, 7, 0, 0, 2 * math.Pi}},
		{Name: "Stroke"},
	}
	if diff := cmp.Diff(want, rec.Ops(), approx, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererLineMeshBreaks(t *testing.T) {
	w, r := orthoWorld(t)
	e := w.State.Spawn()
	w.State.AttachMesh(e, Cube(10))

	rec := render(w, r)
	if got := rec.Count("MoveTo"); got != 6 {
		t.Errorf("MoveTo count = %d, want 6", got)
	}
	if got := rec.Count("LineTo"); got != 12 {
		t.Errorf("LineTo count = %d, want 12", got)
	}
	if got := rec.Count("Stroke"); got != 1 {
		t.Errorf("Stroke count = %d, want 1", got)
	}
	// The back face starts at its bottom-left corner.
	first := rec.Filter("MoveTo")[0]
	if diff := cmp.Diff([]float64{95, 55}, first.Args, approx); diff != "" {
		t.Errorf("first corner mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererPaintsFarthestPolygonFirst(t *testing.T) {
	w, r := orthoWorld(t)
	tri := func(z float32, color string) *PolygonMesh {
		return &PolygonMesh{
			Vertices:  []mgl32.Vec3{{0, 0, z}, {10, 0, z}, {0, 10, z}},
			Triangles: []Triangle{{A: 0, B: 1, C: 2, Color: color}},
		}
	}
	near := w.State.Spawn()
	w.State.AttachMesh(near, tri(0.5, "blue"))
	far := w.State.Spawn()
	w.State.AttachMesh(far, tri(-0.8, "red"))
	bad := w.State.Spawn()
	w.State.AttachMesh(bad, &PolygonMesh{Triangles: []Triangle{{A: 0, B: 1, C: 5, Color: "green"}}})

	rec := render(w, r)
	var fills []string
	for _, op := range rec.Filter("SetFillStyle") {
		fills = append(fills, op.Text)
	}
	if diff := cmp.Diff([]string{"red", "blue"}, fills); diff != "" {
		t.Errorf("paint order mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererBrushes(t *testing.T) {
	w, r := orthoWorld(t)
	e := w.State.Spawn()
	w.State.AttachMesh(e, &BrushMesh{Brushes: []Brush{
		&SphereBrush{Stroke: "yellow", Fill: "black", Radius: 10, Action: ActionFill | ActionStroke},
		&LinesBrush{Vertices: []mgl32.Vec3{{0, 0, 0}, {20, 0, 0}}, Action: ActionStroke},
	}})

	rec := render(w, r)
	want := []canvas.Op{
		{Name: "SetStrokeStyle", Text: "yellow"},
		{Name: "SetFillStyle", Text: "black"},
		{Name: "BeginPath"},
		{Name: "Arc", Args: []float64{100, 50, 10, 0, 2 * math.Pi}},
		{Name: "Fill"},
		{Name: "Stroke"},
		{Name: "BeginPath"},
		{Name: "MoveTo", Args: []float64{100, 50}},
		{Name: "LineTo", Args: []float64{120, 50}},
		{Name: "Stroke"},
	}
	if diff := cmp.Diff(want, rec.Ops(), approx, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererWidgets(t *testing.T) {
	w, r := orthoWorld(t)
	label := w.State.Spawn()
	tr, _ := w.State.Transform(label)
	tr.Position = mgl32.Vec3{10, 10, 0}
	w.State.AttachWidget(label, &TextWidget{Text: "cube"})

	framed := w.State.Spawn()
	w.State.AttachWidget(framed, &FramedTextWidget{Offset: mgl32.Vec3{0, 5, 0}, Text: "box", Width: 20, Height: 10})

	rec := render(w, r)
	want := []canvas.Op{
		{Name: "SetTextAlign", Text: "center"},
		{Name: "SetTextBaseline", Text: "middle"},
		{Name: "SetFillStyle", Text: "grey"},
		{Name: "SetStrokeStyle", Text: "darkgreen"},
		{Name: "FillText", Text: "cube", Args: []float64{110, 40}},
		{Name: "FillText", Text: "box", Args: []float64{100, 45}},
		{Name: "StrokeRect", Args: []float64{90, 40, 20, 10}},
	}
	if diff := cmp.Diff(want, rec.Ops(), approx, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererPerspectiveShrinksWithDistance(t *testing.T) {
	w := New()
	w.AttachDefaultCamera()
	r := NewRenderingSystem(w.State)
	w.State.RegisterRenderer(RendererName, r)
	if err := r.Dispatch(Viewport{W: 200, H: 200}); err != nil {
		t.Fatal(err)
	}
	near := w.State.Spawn()
	w.State.AttachMesh(near, &BrushMesh{Brushes: []Brush{&SphereBrush{Radius: 1, Action: ActionStroke}}})
	far := w.State.Spawn()
	ft, _ := w.State.Transform(far)
	ft.Position = mgl32.Vec3{0, 0, -5}
	w.State.AttachMesh(far, &BrushMesh{Brushes: []Brush{&SphereBrush{Radius: 1, Action: ActionStroke}}})

	rec := render(w, r)
	arcs := rec.Filter("Arc")
	if len(arcs) != 2 {
		t.Fatalf("got %d arcs, want 2", len(arcs))
	}
	// The origin sits at the camera distance; the second sphere twice as far.
	if nearR, farR := arcs[0].Args[2], arcs[1].Args[2]; math.Abs(nearR-2*farR) > 1e-3 {
		t.Errorf("radii %v and %v, want a 2:1 ratio", nearR, farR)
	}
	// Both centres project onto the middle of the viewport.
	for _, a := range arcs {
		if diff := cmp.Diff([]float64{100, 100}, a.Args[:2], approx); diff != "" {
			t.Errorf("centre mismatch (-want +got):\n%s", diff)
		}
	}
}
