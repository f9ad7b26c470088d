package rlhost

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/canvas"
	"github.com/hubastard/wand/engine/core"
	"github.com/hubastard/wand/engine/platform"
)

// ErrNotReady is returned when raylib fails to open its window.
var ErrNotReady = errors.New("rlhost: window is not ready")

// Surface is the raylib screen.
type Surface struct{ ctx *Context }

func (s *Surface) Context() canvas.Context2D { return s.ctx }

func (s *Surface) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

// Window implements core.Window. Each frame runs from PollEvents, which
// begins drawing, to Present, which ends it.
type Window struct {
	surface *Surface
	host    *platform.Host
	onEv    func(core.Event)
	log     *zap.Logger

	held      map[int32]string // key code to the name it was pressed as
	mouse     rl.Vector2
	closeSent bool
	drawing   bool
}

// New opens a resizable raylib window sized by cfg.
func New(cfg core.Config, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	flags := uint32(rl.FlagWindowResizable)
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, ErrNotReady
	}
	// Escape is an ordinary key; closing is the window's call.
	rl.SetExitKey(0)
	if !cfg.VSync {
		rl.SetTargetFPS(60)
	}
	log.Info("raylib window ready", zap.Int("width", rl.GetScreenWidth()), zap.Int("height", rl.GetScreenHeight()))

	surface := &Surface{ctx: NewContext(cfg.ClearColor)}
	return &Window{
		surface: surface,
		host:    platform.NewHost(cfg.CanvasID, surface, nil),
		log:     log,
		held:    map[int32]string{},
		mouse:   rl.GetMousePosition(),
	}, nil
}

func (w *Window) Host() *platform.Host                 { return w.host }
func (w *Window) ShouldClose() bool                    { return rl.WindowShouldClose() }
func (w *Window) SetTitle(t string)                    { rl.SetWindowTitle(t) }
func (w *Window) SetEventCallback(cb func(core.Event)) { w.onEv = cb }

func (w *Window) emit(ev core.Event) {
	if w.onEv != nil {
		w.onEv(ev)
	}
}

// PollEvents turns the input state raylib gathered during the last
// EndDrawing into events, then begins the next frame.
func (w *Window) PollEvents() {
	if rl.IsWindowResized() {
		ev := core.EventResize{W: rl.GetScreenWidth(), H: rl.GetScreenHeight()}
		w.log.Debug("window resized", zap.Int("width", ev.W), zap.Int("height", ev.H))
		w.emit(ev)
	}
	if m := rl.GetMousePosition(); !rl.Vector2Equals(m, w.mouse) {
		w.mouse = m
		w.emit(core.EventMouseMove{X: float64(m.X), Y: float64(m.Y)})
	}

	mods := currentMods()
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		name := platform.KeyName(int(k), mods&core.ModShift != 0)
		if name == "" {
			continue
		}
		w.held[k] = name
		w.emit(core.EventKey{Key: name, Down: true, Mods: mods})
	}
	for k, name := range w.held {
		if rl.IsKeyDown(k) {
			continue
		}
		delete(w.held, k)
		w.emit(core.EventKey{Key: name, Mods: mods})
	}

	if rl.WindowShouldClose() && !w.closeSent {
		w.closeSent = true
		w.emit(core.EventCloseRequested{})
	}

	rl.BeginDrawing()
	rl.ClearBackground(w.surface.ctx.clear)
	w.drawing = true
}

// Present ends the frame begun by PollEvents.
func (w *Window) Present() error {
	if !w.drawing {
		return errors.New("rlhost: present without a frame")
	}
	rl.EndDrawing()
	w.drawing = false
	return nil
}

func (w *Window) Close() { rl.CloseWindow() }

func currentMods() core.Mod {
	var out core.Mod
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		out |= core.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		out |= core.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		out |= core.ModAlt
	}
	if rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		out |= core.ModSuper
	}
	return out
}
