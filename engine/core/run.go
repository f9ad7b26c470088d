package core

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// RunOptions bounds and observes a run. The zero value runs until the window
// closes.
type RunOptions struct {
	MaxFrames int // stop after this many frames when > 0

	// Title, when set, is shown with the fps estimate whenever it changes.
	Title string

	AfterFrame func(frame int)
}

// Run executes the main loop: poll events, tick, present. Per-frame errors
// are logged and the loop keeps going.
func Run(app *Application, win Window, opts RunOptions) error {
	if opts.MaxFrames < 0 {
		return fmt.Errorf("max frames %d: %w", opts.MaxFrames, ErrBadConfig)
	}

	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := app.Logger()
	win.SetEventCallback(func(ev Event) {
		if err := app.Handle(ev); err != nil {
			log.Error("event dropped", zap.String("event", fmt.Sprintf("%T", ev)), zap.Error(err))
		}
	})

	var shownFps uint32
	frame := 0
	for ; !win.ShouldClose() && !app.Closed(); frame++ {
		if opts.MaxFrames > 0 && frame >= opts.MaxFrames {
			break
		}
		win.PollEvents()

		if err := app.Tick(); err != nil {
			log.Error("tick failed", zap.Int("frame", frame), zap.Error(err))
		}
		if err := win.Present(); err != nil {
			log.Error("present failed", zap.Int("frame", frame), zap.Error(err))
		}

		if fps := app.Fps(); opts.Title != "" && fps != shownFps {
			shownFps = fps
			win.SetTitle(fmt.Sprintf("%s | %d fps", opts.Title, fps))
		}
		if opts.AfterFrame != nil {
			opts.AfterFrame(frame)
		}
	}

	log.Info("run loop exit", zap.Int("frames", frame))
	return nil
}
