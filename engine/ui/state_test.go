package ui

import (
	"runtime"
	"testing"
)

// buildTree registers a span and a section under names, checks they resolve
// while the tree is alive, then lets the whole tree go.
func buildTree(t *testing.T, st *State) {
	t.Helper()
	scene := NewScene(st, "")
	section := NewSection(st, "panel", 1, 1, 0)
	scene.RegisterSection(section)
	ref := section.RegisterSpan(NewTextSpan("cursor", "|", 1, 1))

	got, ok := st.FetchSpan("cursor")
	if !ok || got != ref {
		t.Fatalf("FetchSpan(cursor) = %v, %v; want the registered ref", got, ok)
	}
	if s, ok := st.FetchSection("panel"); !ok || s != section {
		t.Fatalf("FetchSection(panel) = %v, %v", s, ok)
	}
	runtime.KeepAlive(scene)
}

func TestStateDoesNotKeepNodesAlive(t *testing.T) {
	st := NewState()
	buildTree(t, st)

	runtime.GC()
	runtime.GC()

	if _, ok := st.FetchSpan("cursor"); ok {
		t.Error("dropped span still resolves")
	}
	if _, ok := st.FetchSection("panel"); ok {
		t.Error("dropped section still resolves")
	}
	if sections, spans := st.Len(); sections != 0 || spans != 0 {
		t.Errorf("Len() = %d, %d after eviction", sections, spans)
	}
}

func TestStateLastWriteWins(t *testing.T) {
	st := NewState()
	first := NewSection(st, "dup", 1, 1, 0)
	second := NewSection(st, "dup", 1, 1, 0)
	st.RegisterSection(first)
	st.RegisterSection(second)

	got, ok := st.FetchSection("dup")
	if !ok || got != second {
		t.Errorf("FetchSection(dup) = %p, want the later section %p", got, second)
	}
	if sections, _ := st.Len(); sections != 1 {
		t.Errorf("Len() sections = %d, want 1", sections)
	}
	runtime.KeepAlive(first)
}

func TestStateUnknownName(t *testing.T) {
	st := NewState()
	if _, ok := st.FetchSpan("nope"); ok {
		t.Error("unknown span resolved")
	}
	if _, ok := st.FetchSection("nope"); ok {
		t.Error("unknown section resolved")
	}
}
