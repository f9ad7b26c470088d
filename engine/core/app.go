package core

import "github.com/hubastard/wand/engine/canvas"

// Surface is a host canvas: a 2D drawing context plus its current size in
// pixels. The size is re-read on every resize.
type Surface interface {
	Context() canvas.Context2D
	Size() (w, h float64)
}

// Host resolves canvases by id and supplies the frame clock.
type Host interface {
	Surface(id string) (Surface, bool)
	Clock() Clock
}

// Window is the platform side of the run loop.
type Window interface {
	PollEvents()    // emits queued events through the callback
	Present() error // shows the frame drawn into the surface
	ShouldClose() bool
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize reports the new framebuffer size. The application re-reads
// the surface rather than trusting W and H.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventKey carries a DOM-style key name ("a", "ArrowUp", "Escape").
type EventKey struct {
	Key  string
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
