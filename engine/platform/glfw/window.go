// Package glfwhost runs the toolkit in a GLFW window: frames are painted by
// a software canvas and presented through OpenGL.
package glfwhost

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/core"
	glbackend "github.com/hubastard/wand/engine/gfx/gl"
	"github.com/hubastard/wand/engine/platform"
	"github.com/hubastard/wand/engine/text"
)

// Window implements core.Window and serves its canvas through Host.
type Window struct {
	w         *glfw.Window
	onEv      func(core.Event)
	surface   *platform.RasterSurface
	host      *platform.Host
	presenter *glbackend.Presenter
	log       *zap.Logger
	held      map[glfw.Key]string // key to the name it was pressed as

	fbW, fbH int
}

// New opens the window. It must be called on the main thread before any GL
// calls; faces may be nil.
func New(cfg core.Config, faces *text.Faces, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Info("gl ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	presenter, err := glbackend.NewPresenter(cfg.ClearColor)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	w, h := win.GetSize()
	surface := platform.NewRasterSurface(w, h, faces)
	gw := &Window{
		w:         win,
		surface:   surface,
		host:      platform.NewHost(cfg.CanvasID, surface, nil),
		presenter: presenter,
		log:       log,
		held:      map[glfw.Key]string{},
	}
	gw.fbW, gw.fbH = win.GetFramebufferSize()

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		if gw.surface.Resize(w, h) {
			gw.emit(core.EventResize{W: w, H: h})
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.fbW, gw.fbH = w, h
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		gw.onKey(key, action, mods)
	})

	return gw, nil
}

func (g *Window) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

func (g *Window) onKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		name, ok := g.held[key]
		if !ok {
			return
		}
		delete(g.held, key)
		g.emit(core.EventKey{Key: name, Mods: translateMods(mods)})
		return
	}
	name, ok := g.held[key]
	if !ok {
		name = platform.KeyName(int(key), mods&glfw.ModShift != 0)
		if name == "" {
			return
		}
		g.held[key] = name
	}
	g.emit(core.EventKey{Key: name, Down: true, Mods: translateMods(mods)})
}

// Host serves the window canvas under the configured canvas id.
func (g *Window) Host() *platform.Host                 { return g.host }
func (g *Window) PollEvents()                          { glfw.PollEvents() }
func (g *Window) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *Window) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *Window) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Present uploads the canvas and swaps buffers.
func (g *Window) Present() error {
	g.presenter.Upload(g.surface.Raster().Image())
	g.presenter.Draw(g.fbW, g.fbH)
	g.w.SwapBuffers()
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Close releases GL objects and the window.
func (g *Window) Close() {
	g.presenter.Shutdown()
	g.w.Destroy()
	glfw.Terminate()
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
