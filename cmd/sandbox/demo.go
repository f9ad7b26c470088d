package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/core"
	"github.com/hubastard/wand/engine/ui"
	"github.com/hubastard/wand/engine/world"
)

const (
	rootPath  = "/"
	aboutPath = "/about"

	worldSpanName = "world"
	spinName      = "spin"
	cameraName    = "camera"

	spinSpeed = 0.01 // radians per tick
	spinStep  = 0.002
)

// demo is the sandbox content: a root scene with a title, a 3D viewport and
// the stats column, and an about scene. Tab toggles between them, Escape
// quits, ArrowUp and ArrowDown change the spin speed.
type demo struct {
	world *world.WorldSpan
	speed float32

	tabHeld bool
}

func buildDemo(app *core.Application, stats *ui.Section) *demo {
	d := &demo{speed: spinSpeed}

	about := app.NewScene(aboutPath)
	info := app.NewSectionWithContainer("about", 1, 1, ui.NewContainer(ui.Spacing{}, ui.ScrollY))
	for i, line := range []string{
		"wand sandbox",
		"WASD pans, Q/E turns, Z/X zooms",
		"ArrowUp/ArrowDown change the spin",
		"Tab switches scene, Escape quits",
	} {
		row := app.NewSection(fmt.Sprintf("about.%d", i), 1, 1/float64(4-i), 0)
		row.AddSpan(ui.NewTextSpan(fmt.Sprintf("about.line%d", i), line, 1, 1))
		info.AddSection(row)
	}
	about.RegisterSection(info)

	root := app.NewScene(rootPath)
	header := app.NewSection("header", 1, 0.12, 0)
	header.RegisterSpan(ui.NewTextSpan("title", "wand", 1, 1))
	root.RegisterSection(header)

	viewport := app.NewSection("viewport", 0.7, 1, 0)
	d.world = world.NewWorldSpan(worldSpanName, 1, 1)
	viewport.RegisterSpan(d.world)
	viewport.OnEvent = func(_ *ui.Section, ev *ui.Event) {
		r := d.world.Rect()
		_ = d.world.Dispatch(fmt.Sprintf("%.0f, %.0f", ev.Pos.X-r.X, ev.Pos.Y-r.Y))
	}
	root.RegisterSection(viewport)
	root.RegisterSection(stats)

	populate(d.world.World(), app.Input())

	app.Register(about)
	app.Register(root)
	return d
}

// populate fills w with a spinning cube, a pyramid and a brushed sphere,
// plus a few overlays, and binds the camera controller to input.
func populate(w *world.World, input world.Axes) {
	st := w.State

	cube := st.Spawn()
	st.AttachMesh(cube, world.Cube(1))
	st.AttachWidget(cube, &world.TextWidget{Offset: mgl32.Vec3{0, 0.9, 0}, Text: "cube"})
	st.RegisterSystem(spinName, world.NewSpin(st, cube, mgl32.Vec3{0.3, 1, 0}, spinSpeed))

	pyramid := st.Spawn()
	if t, ok := st.Transform(pyramid); ok {
		t.Translate(mgl32.Vec3{-1.8, -0.5, 0})
	}
	st.AttachMesh(pyramid, world.Pyramid(1, 1.2, "crimson", "orange", "gold", "teal", "navy", "navy"))
	st.AttachWidget(pyramid, &world.FramedTextWidget{
		Offset: mgl32.Vec3{0, -0.3, 0},
		Text:   "pyramid",
		Width:  1, Height: 0.25,
	})

	sphere := st.Spawn()
	if t, ok := st.Transform(sphere); ok {
		t.Translate(mgl32.Vec3{1.8, 0, 0})
	}
	st.AttachMesh(sphere, &world.BrushMesh{Brushes: []world.Brush{
		&world.SphereBrush{Stroke: "white", Fill: "steelblue", Radius: 0.4, Action: world.ActionFill | world.ActionStroke},
		&world.LinesBrush{
			Stroke:   "gold",
			Vertices: []mgl32.Vec3{{-0.6, -0.6, 0}, {0.6, -0.6, 0}, {0, 0.7, 0}, {-0.6, -0.6, 0}},
			Action:   world.ActionStroke,
		},
	}})

	st.AddShape(&world.LineShape{Begin: mgl32.Vec3{-3, -1, 0}, End: mgl32.Vec3{3, -1, 0}})
	st.AddShape(&world.CircleShape{Radius: 6})

	st.RegisterSystem(cameraName, world.NewCameraController(st, input))
}

func (d *demo) update(app *core.Application) {
	in := app.Input()

	if in.KeyDown("Escape") {
		_ = app.Handle(core.EventCloseRequested{})
		return
	}

	tab := in.KeyDown("Tab")
	if tab && !d.tabHeld {
		next := aboutPath
		if app.ActivePath() == aboutPath {
			next = rootPath
		}
		if err := app.Navigate(next); err != nil {
			app.Logger().Warn("navigate failed", zap.String("path", next), zap.Error(err))
		}
	}
	d.tabHeld = tab

	if a := in.Axis("ArrowUp", "ArrowDown"); a != 0 {
		d.speed += float32(a) * spinStep
		if spin, ok := d.world.World().State.System(spinName); ok {
			_ = spin.Dispatch(d.speed)
		}
	}
}
