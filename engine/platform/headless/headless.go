// Package headless runs the toolkit without a display: events are scripted,
// time is manual and frames land in an in-memory canvas that can be saved
// as PNG.
package headless

import (
	"fmt"
	"image"

	"github.com/hubastard/wand/engine/assets"
	"github.com/hubastard/wand/engine/core"
	"github.com/hubastard/wand/engine/platform"
	"github.com/hubastard/wand/engine/text"
)

// ManualClock only moves when told to.
type ManualClock struct{ now int64 }

func (c *ManualClock) NowMs() int64     { return c.now }
func (c *ManualClock) Advance(ms int64) { c.now += ms }
func (c *ManualClock) Set(ms int64)     { c.now = ms }

// Window is a core.Window fed from a queue. It closes once a queued
// EventCloseRequested has been delivered, or after Close.
type Window struct {
	surface *platform.RasterSurface
	host    *platform.Host
	clock   *ManualClock
	onEv    func(core.Event)

	queue  []core.Event
	closed bool
	title  string
	frames int

	// FrameMs advances the clock on every Present when non-zero.
	FrameMs int64
}

// New builds a w×h window serving canvasID. faces may be nil.
func New(canvasID string, w, h int, faces *text.Faces) *Window {
	surface := platform.NewRasterSurface(w, h, faces)
	clock := &ManualClock{}
	return &Window{
		surface: surface,
		host:    platform.NewHost(canvasID, surface, clock),
		clock:   clock,
	}
}

// FromConfig sizes the window by cfg and advances 16 ms per frame.
func FromConfig(cfg core.Config, faces *text.Faces) *Window {
	win := New(cfg.CanvasID, cfg.Width, cfg.Height, faces)
	win.title = cfg.Title
	win.FrameMs = 16
	return win
}

func (w *Window) Host() *platform.Host                 { return w.host }
func (w *Window) Clock() *ManualClock                  { return w.clock }
func (w *Window) Title() string                        { return w.title }
func (w *Window) Frames() int                          { return w.frames }
func (w *Window) ShouldClose() bool                    { return w.closed }
func (w *Window) SetTitle(t string)                    { w.title = t }
func (w *Window) SetEventCallback(cb func(core.Event)) { w.onEv = cb }
func (w *Window) Close()                               { w.closed = true }

// Push queues events for the next PollEvents.
func (w *Window) Push(evs ...core.Event) { w.queue = append(w.queue, evs...) }

// Resize reallocates the canvas and queues the matching event.
func (w *Window) Resize(width, height int) {
	if w.surface.Resize(width, height) {
		w.Push(core.EventResize{W: width, H: height})
	}
}

func (w *Window) PollEvents() {
	queue := w.queue
	w.queue = nil
	for _, ev := range queue {
		if _, ok := ev.(core.EventCloseRequested); ok {
			w.closed = true
		}
		if w.onEv != nil {
			w.onEv(ev)
		}
	}
}

func (w *Window) Present() error {
	w.frames++
	w.clock.Advance(w.FrameMs)
	return nil
}

// Frame returns the canvas contents.
func (w *Window) Frame() *image.RGBA { return w.surface.Raster().Image() }

// Snapshot writes the current frame to path as PNG.
func (w *Window) Snapshot(path string) error {
	if err := assets.WritePNG(path, w.Frame()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
