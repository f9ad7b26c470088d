// Package platform holds what the window backends share: a Host over one
// raster surface and the translation of key codes to DOM key names.
package platform

import (
	"github.com/hubastard/wand/engine/canvas"
	"github.com/hubastard/wand/engine/core"
	"github.com/hubastard/wand/engine/text"
)

// RasterSurface is a core.Surface backed by a software canvas.
type RasterSurface struct {
	r *canvas.Raster
}

func NewRasterSurface(w, h int, faces *text.Faces) *RasterSurface {
	return &RasterSurface{r: canvas.NewRaster(w, h, faces)}
}

func (s *RasterSurface) Context() canvas.Context2D { return s.r }
func (s *RasterSurface) Raster() *canvas.Raster    { return s.r }

func (s *RasterSurface) Size() (float64, float64) {
	w, h := s.r.Size()
	return float64(w), float64(h)
}

// Resize reallocates the canvas when the size changed. It reports whether
// it did.
func (s *RasterSurface) Resize(w, h int) bool {
	if cw, ch := s.r.Size(); cw == w && ch == h {
		return false
	}
	s.r.Resize(w, h)
	return true
}

// Host exposes a single surface under one canvas id.
type Host struct {
	id      string
	surface core.Surface
	clock   core.Clock
}

// NewHost serves surface as canvas id. A nil clock means a SystemClock.
func NewHost(id string, surface core.Surface, clock core.Clock) *Host {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	return &Host{id: id, surface: surface, clock: clock}
}

func (h *Host) Surface(id string) (core.Surface, bool) {
	if id != h.id || h.surface == nil {
		return nil, false
	}
	return h.surface, true
}

func (h *Host) Clock() core.Clock { return h.clock }
