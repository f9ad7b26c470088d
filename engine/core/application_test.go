package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hubastard/wand/engine/canvas"
	"github.com/hubastard/wand/engine/ui"
)

// traceSpan appends what happens to it to a shared trace.
type traceSpan struct {
	ui.SpanBase
	trace *[]string
}

func (s *traceSpan) Tick() { *s.trace = append(*s.trace, "tick "+s.Name()) }

func (s *traceSpan) RenderTick(canvas.Context2D) {
	*s.trace = append(*s.trace, "render "+s.Name())
}

func (s *traceSpan) OnResize(_, _, _, _ float64) (float64, float64, bool) { return 0, 0, true }

// panicSpan fails every logical update.
type panicSpan struct{ ui.SpanBase }

func (s *panicSpan) Tick() { panic("boom") }

func (s *panicSpan) OnResize(_, _, _, _ float64) (float64, float64, bool) { return 0, 0, true }

func newApp(t *testing.T) (*Application, *fakeHost) {
	t.Helper()
	host := newFakeHost("canvas", 800, 600)
	app, err := New(host, "canvas", DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return app, host
}

func TestNewSurfaceUnavailable(t *testing.T) {
	host := newFakeHost("canvas", 10, 10)
	_, err := New(host, "missing", DefaultConfig(), nil)
	if !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("New() err = %v, want ErrSurfaceUnavailable", err)
	}
}

func TestNewFallsBackToConfigCanvas(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CanvasID = "main"
	if _, err := New(newFakeHost("main", 10, 10), "", cfg, nil); err != nil {
		t.Errorf("New() = %v", err)
	}
}

func TestNewStartsOnDefaultScene(t *testing.T) {
	app, _ := newApp(t)
	if app.ActivePath() != "" {
		t.Errorf("ActivePath() = %q, want default", app.ActivePath())
	}
	scene, ok := app.Scene("")
	if !ok {
		t.Fatal("no default scene")
	}
	if diff := cmp.Diff(ui.Rect{X: 20, Y: 20, W: 760, H: 560}, scene.Rect()); diff != "" {
		t.Errorf("default scene not laid out (-want +got):\n%s", diff)
	}
	if app.Fps() != 0 {
		t.Errorf("Fps() = %d before any window closed", app.Fps())
	}
}

func TestRegister(t *testing.T) {
	app, _ := newApp(t)

	a := app.NewScene("/a")
	app.Register(a)
	if app.ActivePath() != "/a" {
		t.Fatalf("ActivePath() = %q, want /a", app.ActivePath())
	}
	if _, ok := app.Scene(""); ok {
		t.Error("default scene survived the first registration")
	}
	if diff := cmp.Diff(ui.Rect{X: 20, Y: 20, W: 760, H: 560}, a.Rect()); diff != "" {
		t.Errorf("registered scene not laid out (-want +got):\n%s", diff)
	}

	app.Register(app.NewScene("/b"))
	if app.ActivePath() != "/b" {
		t.Fatalf("ActivePath() = %q, want /b", app.ActivePath())
	}

	app.Register(app.NewScene("/a"))
	if app.ActivePath() != "/b" {
		t.Errorf("duplicate path changed the active scene to %q", app.ActivePath())
	}
	if got, _ := app.Scene("/a"); got != a {
		t.Error("duplicate path replaced the registered scene")
	}
}

func TestNavigate(t *testing.T) {
	app, host := newApp(t)
	a, b := app.NewScene("/a"), app.NewScene("/b")
	app.Register(a)
	app.Register(b)

	host.surfaces["canvas"].w = 400
	app.OnResize()
	if a.Rect().W != 760 {
		t.Fatalf("inactive scene was re-laid: %+v", a.Rect())
	}

	if err := app.Navigate("/a"); err != nil {
		t.Fatal(err)
	}
	if app.ActivePath() != "/a" || a.Rect().W != 360 {
		t.Errorf("after Navigate: active %q, rect %+v", app.ActivePath(), a.Rect())
	}
	if err := app.Navigate("/nope"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Navigate(/nope) = %v, want ErrUnknownScene", err)
	}
}

func TestTickOrder(t *testing.T) {
	app, host := newApp(t)
	var trace []string

	active := app.NewScene("/active")
	other := app.NewScene("/other")
	app.Register(other)
	app.Register(active)
	if err := app.Navigate("/active"); err != nil {
		t.Fatal(err)
	}
	other.AddSpan(&traceSpan{SpanBase: ui.NewSpanBase("o"), trace: &trace})
	active.AddSpan(&traceSpan{SpanBase: ui.NewSpanBase("a"), trace: &trace})

	rec := host.surfaces["canvas"].rec
	if err := app.Tick(); err != nil {
		t.Fatal(err)
	}

	want := []string{"tick o", "tick a", "render a"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("tick trace mismatch (-want +got):\n%s", diff)
	}
	first := rec.Ops()[0]
	if diff := cmp.Diff(canvas.Op{Name: "ClearRect", Args: []float64{0, 0, 800, 600}}, first); diff != "" {
		t.Errorf("frame does not start with a full clear (-want +got):\n%s", diff)
	}
}

func TestDrawIsRenderTick(t *testing.T) {
	app, host := newApp(t)
	rec := host.surfaces["canvas"].rec
	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}
	if rec.Count("ClearRect") != 1 || rec.Count("StrokeRect") != 1 {
		t.Errorf("Draw ops = %+v", rec.Ops())
	}
}

func TestMouseMoveReachesActiveSceneOnly(t *testing.T) {
	app, _ := newApp(t)
	hits := map[string]int{}
	for _, path := range []string{"/a", "/b"} {
		scene := app.NewScene(path)
		s := app.NewSection("full"+path, 1, 1, 0)
		s.OnEvent = func(*ui.Section, *ui.Event) { hits[path]++ }
		scene.RegisterSection(s)
		app.Register(scene)
	}
	if err := app.Navigate("/a"); err != nil {
		t.Fatal(err)
	}
	if err := app.OnMouseMove(100, 100); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"/a": 1}, hits); diff != "" {
		t.Errorf("hits mismatch (-want +got):\n%s", diff)
	}

	if err := app.Handle(EventMouseMove{X: 5, Y: 5}); err != nil {
		t.Fatal(err)
	}
	if hits["/a"] != 1 {
		t.Error("event outside the scene rect was delivered")
	}
}

func TestNameLookupThroughState(t *testing.T) {
	app, _ := newApp(t)
	scene := app.NewScene("/")
	section := app.NewSection("panel", 1, 1, 0)
	scene.RegisterSection(section)
	ref := section.RegisterSpan(ui.NewTextSpan("cursor", "|", 1, 1))
	app.Register(scene)

	got, ok := app.State().FetchSpan("cursor")
	if !ok || got != ref {
		t.Errorf("FetchSpan(cursor) = %v, %v", got, ok)
	}
	if got, ok := app.State().FetchSection("panel"); !ok || got != section {
		t.Errorf("FetchSection(panel) = %v, %v", got, ok)
	}
}

func TestTickSurvivesPanickingSpan(t *testing.T) {
	app, _ := newApp(t)
	var trace []string
	scene := app.NewScene("/")
	scene.AddSpan(&panicSpan{SpanBase: ui.NewSpanBase("bad")})
	scene.AddSpan(&traceSpan{SpanBase: ui.NewSpanBase("good"), trace: &trace})
	app.Register(scene)

	for i := 0; i < 2; i++ {
		if err := app.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"tick good", "render good", "tick good", "render good"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestFpsAfterTenTicks(t *testing.T) {
	app, host := newApp(t)
	for i := 0; i < 10; i++ {
		host.clock.Advance(10)
		if err := app.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if app.Fps() != 100 {
		t.Errorf("Fps() = %d, want 100", app.Fps())
	}
}

func TestHandle(t *testing.T) {
	app, host := newApp(t)

	_ = app.Handle(EventKey{Key: "a", Down: true})
	_ = app.Handle(EventKey{Key: "a"})
	if !app.Input().KeyDown("a") || app.Input().KeyDown("a") {
		t.Error("key events did not reach the input latch")
	}

	host.surfaces["canvas"].w, host.surfaces["canvas"].h = 100, 100
	_ = app.Handle(EventResize{W: 1, H: 1})
	if diff := cmp.Diff(ui.CanvasMeta{W: 100, H: 100}, app.Meta()); diff != "" {
		t.Errorf("resize did not re-read the surface (-want +got):\n%s", diff)
	}

	if app.Closed() {
		t.Fatal("closed before any request")
	}
	_ = app.Handle(EventCloseRequested{})
	if !app.Closed() {
		t.Error("close request ignored")
	}
}

func TestNoActiveScene(t *testing.T) {
	app := &Application{scenes: map[string]*ui.Scene{}, active: "/gone"}
	if err := app.RenderTick(); !errors.Is(err, ErrNoActiveScene) {
		t.Errorf("RenderTick() = %v, want ErrNoActiveScene", err)
	}
	if err := app.OnMouseMove(1, 1); !errors.Is(err, ErrNoActiveScene) {
		t.Errorf("OnMouseMove() = %v, want ErrNoActiveScene", err)
	}
}
