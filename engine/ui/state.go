package ui

import (
	"weak"

	"go.uber.org/zap"
)

// State is a name registry over the live tree. It never keeps a node alive:
// once the tree drops a section or span, fetching its name reports absent.
// Names are last-write-wins. Not safe for concurrent use.
type State struct {
	sections map[string]weak.Pointer[Section]
	spans    map[string]weak.Pointer[SpanRef]
}

func NewState() *State {
	return &State{
		sections: make(map[string]weak.Pointer[Section]),
		spans:    make(map[string]weak.Pointer[SpanRef]),
	}
}

func (st *State) RegisterSection(s *Section) {
	if _, ok := st.sections[s.Name()]; ok {
		logger.Debug("section name rebound", zap.String("name", s.Name()))
	}
	st.sections[s.Name()] = weak.Make(s)
}

func (st *State) RegisterSpan(r *SpanRef) {
	if _, ok := st.spans[r.Name()]; ok {
		logger.Debug("span name rebound", zap.String("name", r.Name()))
	}
	st.spans[r.Name()] = weak.Make(r)
}

// FetchSection returns the live section registered under name.
func (st *State) FetchSection(name string) (*Section, bool) {
	return fetch(st.sections, name)
}

// FetchSpan returns the live span handle registered under name.
func (st *State) FetchSpan(name string) (*SpanRef, bool) {
	return fetch(st.spans, name)
}

// Len counts live entries, evicting collected ones on the way.
func (st *State) Len() (sections, spans int) {
	return sweep(st.sections), sweep(st.spans)
}

func fetch[T any](m map[string]weak.Pointer[T], name string) (*T, bool) {
	wp, ok := m[name]
	if !ok {
		return nil, false
	}
	v := wp.Value()
	if v == nil {
		delete(m, name)
		return nil, false
	}
	return v, true
}

func sweep[T any](m map[string]weak.Pointer[T]) int {
	for name, wp := range m {
		if wp.Value() == nil {
			delete(m, name)
		}
	}
	return len(m)
}
