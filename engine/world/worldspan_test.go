package world

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hubastard/wand/engine/canvas"
	"github.com/hubastard/wand/engine/ui"
)

func TestWorldSpanResize(t *testing.T) {
	span := NewWorldSpan("world", 0.5, 1)
	w, h, fit := span.OnResize(10, 20, 410, 220)
	if w != 0 || h != 0 || !fit {
		t.Errorf("OnResize() = %v, %v, %v, want 0, 0, true", w, h, fit)
	}
	if diff := cmp.Diff(ui.Rect{X: 10, Y: 20, W: 200, H: 200}, span.Rect()); diff != "" {
		t.Errorf("rect mismatch (-want +got):\n%s", diff)
	}
	if got := span.Renderer().Viewport(); got != (Viewport{X: 10, Y: 20, W: 200, H: 200}) {
		t.Errorf("renderer viewport = %+v", got)
	}
	if _, cam, _ := span.World().State.ActiveCamera(); cam.Aspect != 1 {
		t.Errorf("camera aspect = %v, want 1", cam.Aspect)
	}
}

func TestWorldSpanInSection(t *testing.T) {
	section := ui.NewSection(nil, "view", 1, 1, 0)
	span := NewWorldSpan("world", 1, 1)
	section.AddSpan(span)
	section.OnResize(0, 0, 200, 60)

	if diff := cmp.Diff(ui.Rect{X: 2, Y: 4, W: 196, H: 52}, span.Rect()); diff != "" {
		t.Errorf("rect mismatch (-want +got):\n%s", diff)
	}
}

func TestWorldSpanBindsContextPerCall(t *testing.T) {
	span := NewWorldSpan("world", 1, 1)
	span.OnResize(0, 0, 100, 100)
	e := span.World().State.Spawn()
	span.World().State.AttachMesh(e, Cube(1))

	rec := canvas.NewRecorder()
	span.RenderTick(rec)
	if rec.Count("Stroke") != 1 {
		t.Fatalf("cube not drawn: %v", rec.Ops())
	}
	if span.Renderer().ctx != nil {
		t.Error("context still bound after RenderTick")
	}

	rec.Reset()
	span.World().RenderTick()
	if n := len(rec.Ops()); n != 0 {
		t.Errorf("renderer drew %d ops into a released context", n)
	}
}

func TestWorldSpanTickRunsSystems(t *testing.T) {
	var trace []string
	span := NewWorldSpan("world", 1, 1)
	span.World().State.RegisterSystem("count", &countingSystem{"count", &trace})
	span.Tick()
	span.Tick()
	if len(trace) != 2 {
		t.Errorf("system ran %d times, want 2", len(trace))
	}
}

func TestWorldSpanCaption(t *testing.T) {
	span := NewWorldSpan("world", 1, 1)
	span.OnResize(0, 0, 100, 50)
	if err := span.Dispatch(3); !errors.Is(err, ui.ErrDispatchTypeMismatch) {
		t.Errorf("Dispatch(int) = %v, want ErrDispatchTypeMismatch", err)
	}
	if err := span.Dispatch("60 fps"); err != nil {
		t.Fatal(err)
	}
	if span.Caption() != "60 fps" {
		t.Errorf("Caption() = %q", span.Caption())
	}

	rec := canvas.NewRecorder()
	span.RenderTick(rec)
	want := []canvas.Op{{Name: "FillText", Text: "60 fps", Args: []float64{50, captionInset}}}
	if diff := cmp.Diff(want, rec.Filter("FillText")); diff != "" {
		t.Errorf("caption mismatch (-want +got):\n%s", diff)
	}
}

func TestWorldSpanRegistersInState(t *testing.T) {
	state := ui.NewState()
	section := ui.NewSection(state, "view", 1, 1, 0)
	ref := section.RegisterSpan(NewWorldSpan("world", 1, 1))
	got, ok := state.FetchSpan("world")
	if !ok || got != ref {
		t.Fatalf("FetchSpan(world) = %v, %v", got, ok)
	}
	if err := got.Dispatch("hello"); err != nil {
		t.Fatal(err)
	}
	if span := got.Span().(*WorldSpan); span.Caption() != "hello" {
		t.Errorf("Caption() = %q", span.Caption())
	}
}
