package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hubastard/wand/engine/canvas"
)

func TestSectionTakesFractions(t *testing.T) {
	s := NewSection(nil, "half", 0.5, 0.25, 0)
	w, h, fit := s.OnResize(10, 20, 210, 420)
	if !fit {
		t.Error("section refused its placement")
	}
	if w != 100 || h != 100 {
		t.Errorf("advance = (%v, %v), want (100, 100)", w, h)
	}
	if diff := cmp.Diff(Rect{X: 10, Y: 20, W: 100, H: 100}, s.Rect()); diff != "" {
		t.Errorf("rect mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionFractionsClamped(t *testing.T) {
	s := NewSection(nil, "big", 2, -1, 0)
	if w, h := s.Fractions(); w != 1 || h != 0 {
		t.Errorf("Fractions() = (%v, %v), want (1, 0)", w, h)
	}
}

func TestSectionDefaultPadding(t *testing.T) {
	s := NewSection(nil, "pad", 1, 1, 0.5)
	s.OnResize(0, 0, 200, 60)
	want := Rect{X: 2, Y: 4, W: 196, H: 52}
	if diff := cmp.Diff(want, s.Container().Bounds()); diff != "" {
		t.Errorf("container bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionRenderOutlinesThenChildren(t *testing.T) {
	s := NewSection(nil, "s", 1, 1, 0)
	s.AddSpan(newFake("child", 0, 0))
	s.OnResize(0, 0, 50, 40)

	rec := canvas.NewRecorder()
	s.RenderTick(rec)
	want := []canvas.Op{
		{Name: "SetStrokeStyle", Text: "#07ce88"},
		{Name: "StrokeRect", Args: []float64{0, 0, 50, 40}},
		{Name: "FillText", Text: "child", Args: []float64{0, 0}},
	}
	if diff := cmp.Diff(want, rec.Ops()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionRegisterNamesInState(t *testing.T) {
	st := NewState()
	parent := NewSection(st, "parent", 1, 1, 0)

	named := NewSection(st, "named", 1, 1, 0)
	anon := NewSection(st, "anon", 1, 1, 0)
	parent.RegisterSection(named)
	parent.AddSection(anon)
	ref := parent.RegisterSpan(newFake("cursor", 0, 0))
	parent.AddSpan(newFake("hidden", 0, 0))

	if got, ok := st.FetchSection("named"); !ok || got != named {
		t.Errorf("FetchSection(named) = %v, %v", got, ok)
	}
	if _, ok := st.FetchSection("anon"); ok {
		t.Error("AddSection named the child")
	}
	if got, ok := st.FetchSpan("cursor"); !ok || got != ref {
		t.Errorf("FetchSpan(cursor) = %v, %v", got, ok)
	}
	if _, ok := st.FetchSpan("hidden"); ok {
		t.Error("AddSpan named the span")
	}
	if n := len(parent.Container().Items()); n != 4 {
		t.Errorf("items = %d, want 4", n)
	}
}

func TestSectionDispatch(t *testing.T) {
	s := NewSection(nil, "s", 1, 1, 0)
	child := newFake("child", 0, 0)
	s.AddSpan(child)
	s.OnResize(0, 0, 100, 100)

	hits := 0
	s.OnEvent = func(got *Section, ev *Event) {
		if got != s {
			t.Errorf("hook got section %q", got.Name())
		}
		hits++
	}

	s.DispatchEvent(NewMouseMove(100, 50))
	if hits != 0 || len(child.events) != 0 {
		t.Fatalf("edge event reached the section")
	}

	ev := NewMouseMove(50, 50)
	s.DispatchEvent(ev)
	if hits != 1 || len(child.events) != 1 {
		t.Errorf("hits = %d, child events = %d, want 1 and 1", hits, len(child.events))
	}
	if ev.Consumed {
		t.Error("section consumed the event")
	}
}

func TestNestedSectionsPlacedInsideParent(t *testing.T) {
	outer := NewSection(nil, "outer", 1, 1, 0.1)
	left := NewSection(nil, "left", 0.5, 1, 0)
	right := NewSection(nil, "right", 0.5, 1, 0)
	outer.AddSection(left)
	outer.AddSection(right)
	outer.OnResize(0, 0, 400, 200)

	inner := outer.Container().Bounds()
	for _, s := range []*Section{left, right} {
		if !s.Rect().Within(inner) {
			t.Errorf("%s rect %+v escapes %+v", s.Name(), s.Rect(), inner)
		}
	}
	if left.Rect().Right() != right.Rect().Left() {
		t.Errorf("right does not follow left: %+v then %+v", left.Rect(), right.Rect())
	}
}
