package core

import "math"

// DefaultFPSWindow is the number of ticks averaged per estimate.
const DefaultFPSWindow = 10

// FpsCounter estimates frames per second over fixed windows of ticks.
type FpsCounter struct {
	clock  Clock
	window uint32
	seen   uint32
	start  int64
	last   uint32
}

// NewFpsCounter starts the first window now. A zero window uses
// DefaultFPSWindow.
func NewFpsCounter(clock Clock, window uint32) *FpsCounter {
	if window == 0 {
		window = DefaultFPSWindow
	}
	return &FpsCounter{clock: clock, window: window, start: clock.NowMs()}
}

// Tick counts one frame and closes the window when it is full.
func (f *FpsCounter) Tick() {
	f.seen++
	if f.seen < f.window {
		return
	}
	now := f.clock.NowMs()
	if elapsed := now - f.start; elapsed > 0 {
		f.last = uint32(min(math.Round(1000*float64(f.window)/float64(elapsed)), math.MaxUint32))
	}
	f.seen = 0
	f.start = now
}

// Get returns the estimate of the last closed window, 0 before the first.
func (f *FpsCounter) Get() uint32 { return f.last }
