package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/profiler"
	"github.com/hubastard/wand/engine/ui"
)

// Application owns the scenes of one canvas and drives their resize, tick
// and dispatch. Exactly one scene is active at a time.
type Application struct {
	surface Surface
	log     *zap.Logger
	margin  ui.Spacing

	state  *ui.State
	scenes map[string]*ui.Scene
	paths  []string // insertion order
	active string

	input *Input
	fps   *FpsCounter
	meta  ui.CanvasMeta

	closed bool
}

// New binds an application to the host canvas canvasID, or cfg.CanvasID
// when canvasID is empty. A nil log silences logging.
func New(host Host, canvasID string, cfg Config, log *zap.Logger) (*Application, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ui.SetLogger(log)
	if canvasID == "" {
		canvasID = cfg.CanvasID
	}
	surface, ok := host.Surface(canvasID)
	if !ok {
		return nil, fmt.Errorf("canvas %q: %w", canvasID, ErrSurfaceUnavailable)
	}

	margin := cfg.SceneMargin
	if margin == (ui.Spacing{}) {
		margin = ui.DefaultMargin
	}
	a := &Application{
		surface: surface,
		log:     log.Named("app"),
		margin:  margin,
		state:   ui.NewState(),
		scenes:  make(map[string]*ui.Scene),
		input:   NewInput(),
		fps:     NewFpsCounter(host.Clock(), cfg.FPSWindow),
	}
	a.insert(ui.NewSceneWithMargin(a.state, "", margin))
	a.OnResize()
	a.log.Info("application ready", zap.String("canvas", canvasID),
		zap.Float64("w", a.meta.W), zap.Float64("h", a.meta.H))
	return a, nil
}

func (a *Application) insert(s *ui.Scene) {
	a.scenes[s.Path()] = s
	a.paths = append(a.paths, s.Path())
	a.active = s.Path()
}

func (a *Application) remove(path string) {
	delete(a.scenes, path)
	for i, p := range a.paths {
		if p == path {
			a.paths = append(a.paths[:i], a.paths[i+1:]...)
			break
		}
	}
}

// Register adds scene and makes it active. While the default scene is
// active it is replaced. A path that already has a scene is ignored.
func (a *Application) Register(scene *ui.Scene) {
	switch {
	case a.active == "":
		a.remove("")
	case a.scenes[scene.Path()] != nil:
		a.log.Debug("scene already registered", zap.String("path", scene.Path()))
		return
	}
	a.insert(scene)
	a.log.Debug("scene registered", zap.String("path", scene.Path()))
	scene.OnResize(a.meta)
}

// Navigate activates a registered scene and lays it out.
func (a *Application) Navigate(path string) error {
	scene, ok := a.scenes[path]
	if !ok {
		return fmt.Errorf("navigate %q: %w", path, ErrUnknownScene)
	}
	a.active = path
	scene.OnResize(a.meta)
	return nil
}

func (a *Application) activeScene() (*ui.Scene, error) {
	scene, ok := a.scenes[a.active]
	if !ok {
		return nil, fmt.Errorf("path %q: %w", a.active, ErrNoActiveScene)
	}
	return scene, nil
}

// OnResize re-reads the surface size and lays out the active scene.
// Inactive scenes are laid out when they become active.
func (a *Application) OnResize() {
	w, h := a.surface.Size()
	a.meta = ui.CanvasMeta{W: w, H: h}
	if scene, ok := a.scenes[a.active]; ok {
		scene.OnResize(a.meta)
	}
}

// Tick advances every scene, counts the frame, then renders the active
// scene.
func (a *Application) Tick() error {
	defer profiler.Start("app.tick")()
	for _, p := range a.paths {
		a.scenes[p].Tick()
	}
	a.fps.Tick()
	return a.RenderTick()
}

// RenderTick clears the whole surface and paints the active scene.
func (a *Application) RenderTick() error {
	defer profiler.Start("app.render")()
	scene, err := a.activeScene()
	if err != nil {
		return err
	}
	ctx := a.surface.Context()
	ctx.ClearRect(0, 0, a.meta.W, a.meta.H)
	scene.RenderTick(ctx)
	return nil
}

// Draw is RenderTick.
func (a *Application) Draw() error { return a.RenderTick() }

// OnMouseMove dispatches a pointer move into the active scene.
func (a *Application) OnMouseMove(x, y float64) error {
	scene, err := a.activeScene()
	if err != nil {
		return err
	}
	scene.DispatchEvent(ui.NewMouseMove(x, y))
	return nil
}

func (a *Application) OnKeyDown(k string) { a.input.OnKeyDown(k) }
func (a *Application) OnKeyUp(k string)   { a.input.OnKeyUp(k) }

// Handle routes a host event.
func (a *Application) Handle(ev Event) error {
	switch e := ev.(type) {
	case EventResize:
		a.OnResize()
	case EventMouseMove:
		return a.OnMouseMove(e.X, e.Y)
	case EventKey:
		a.input.Handle(e)
	case EventCloseRequested:
		a.closed = true
	}
	return nil
}

// Closed reports whether the host asked to close.
func (a *Application) Closed() bool { return a.closed }

// NewScene returns a scene bound to this application's state with the
// configured margin. It still has to be registered.
func (a *Application) NewScene(path string) *ui.Scene {
	return ui.NewSceneWithMargin(a.state, path, a.margin)
}

func (a *Application) NewSection(name string, wf, hf, padding float64) *ui.Section {
	return ui.NewSection(a.state, name, wf, hf, padding)
}

func (a *Application) NewSectionWithContainer(name string, wf, hf float64, c *ui.Container) *ui.Section {
	return ui.NewSectionWithContainer(a.state, name, wf, hf, c)
}

func (a *Application) State() *ui.State    { return a.state }
func (a *Application) Fps() uint32         { return a.fps.Get() }
func (a *Application) Input() *Input       { return a.input }
func (a *Application) ActivePath() string  { return a.active }
func (a *Application) Meta() ui.CanvasMeta { return a.meta }
func (a *Application) Logger() *zap.Logger { return a.log }
func (a *Application) Surface() Surface    { return a.surface }

func (a *Application) Scene(path string) (*ui.Scene, bool) {
	s, ok := a.scenes[path]
	return s, ok
}
