package core

import "github.com/hubastard/wand/engine/canvas"

// manualClock advances only when told to.
type manualClock struct{ now int64 }

func (c *manualClock) NowMs() int64     { return c.now }
func (c *manualClock) Advance(ms int64) { c.now += ms }

type fakeSurface struct {
	rec  *canvas.Recorder
	w, h float64
}

func (s *fakeSurface) Context() canvas.Context2D { return s.rec }
func (s *fakeSurface) Size() (float64, float64)  { return s.w, s.h }

type fakeHost struct {
	surfaces map[string]*fakeSurface
	clock    *manualClock
}

func newFakeHost(id string, w, h float64) *fakeHost {
	return &fakeHost{
		surfaces: map[string]*fakeSurface{id: {rec: canvas.NewRecorder(), w: w, h: h}},
		clock:    &manualClock{},
	}
}

func (h *fakeHost) Surface(id string) (Surface, bool) {
	s, ok := h.surfaces[id]
	if !ok {
		return nil, false
	}
	return s, true
}

func (h *fakeHost) Clock() Clock { return h.clock }
