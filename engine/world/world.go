// Package world is a small entity store with cameras, meshes, shapes and
// widgets, plus a renderer that projects them onto a canvas.Context2D. It is
// what WorldSpan embeds into the UI tree.
package world

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Entity identifies a world object. The zero Entity is never spawned.
type Entity uint32

// System is a named unit of per-frame work. Logic systems run on Tick,
// renderer systems on RenderTick.
type System interface {
	Tick()
	Dispatch(data any) error
}

// State holds the components of every entity and the registered systems.
type State struct {
	next Entity

	transforms map[Entity]*Transform
	meshes     map[Entity]Mesh
	cameras    map[Entity]*Camera
	widgets    map[Entity]Widget
	shapes     []Shape

	activeCamera Entity

	systems   namedSystems
	renderers namedSystems
}

func NewState() *State {
	return &State{
		transforms: map[Entity]*Transform{},
		meshes:     map[Entity]Mesh{},
		cameras:    map[Entity]*Camera{},
		widgets:    map[Entity]Widget{},
	}
}

// Spawn allocates an entity with an identity transform.
func (s *State) Spawn() Entity {
	s.next++
	s.transforms[s.next] = NewTransform()
	return s.next
}

// Despawn drops every component of e.
func (s *State) Despawn(e Entity) {
	delete(s.transforms, e)
	delete(s.meshes, e)
	delete(s.cameras, e)
	delete(s.widgets, e)
	if s.activeCamera == e {
		s.activeCamera = 0
	}
}

func (s *State) Transform(e Entity) (*Transform, bool) {
	t, ok := s.transforms[e]
	return t, ok
}

func (s *State) SetTransform(e Entity, t *Transform) { s.transforms[e] = t }
func (s *State) AttachMesh(e Entity, m Mesh)         { s.meshes[e] = m }
func (s *State) AttachWidget(e Entity, w Widget)     { s.widgets[e] = w }
func (s *State) AddShape(sh Shape)                   { s.shapes = append(s.shapes, sh) }
func (s *State) Shapes() []Shape                     { return s.shapes }

// AttachCamera gives e a camera. The first camera becomes active.
func (s *State) AttachCamera(e Entity, c *Camera) {
	s.cameras[e] = c
	if s.activeCamera == 0 {
		s.activeCamera = e
	}
}

func (s *State) SetActiveCamera(e Entity) { s.activeCamera = e }

// ActiveCamera returns the active camera entity and its camera.
func (s *State) ActiveCamera() (Entity, *Camera, bool) {
	c, ok := s.cameras[s.activeCamera]
	return s.activeCamera, c, ok
}

// meshEntities returns the entities with a mesh, in spawn order.
func (s *State) meshEntities() []Entity { return sortedKeys(s.meshes) }

func (s *State) widgetEntities() []Entity { return sortedKeys(s.widgets) }

func sortedKeys[V any](m map[Entity]V) []Entity {
	out := make([]Entity, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// RegisterSystem adds a logic system. A name registered twice is replaced
// in place.
func (s *State) RegisterSystem(name string, sys System) { s.systems.put(name, sys) }

// RegisterRenderer adds a renderer system.
func (s *State) RegisterRenderer(name string, sys System) { s.renderers.put(name, sys) }

func (s *State) System(name string) (System, bool)   { return s.systems.get(name) }
func (s *State) Renderer(name string) (System, bool) { return s.renderers.get(name) }

// Tick runs the logic systems in registration order.
func (s *State) Tick() { s.systems.tick() }

// RenderTick runs the renderer systems in registration order.
func (s *State) RenderTick() { s.renderers.tick() }

type namedSystems struct {
	names  []string
	byName map[string]System
}

func (n *namedSystems) put(name string, sys System) {
	if n.byName == nil {
		n.byName = map[string]System{}
	}
	if _, ok := n.byName[name]; !ok {
		n.names = append(n.names, name)
	}
	n.byName[name] = sys
}

func (n *namedSystems) get(name string) (System, bool) {
	sys, ok := n.byName[name]
	return sys, ok
}

func (n *namedSystems) tick() {
	for _, name := range n.names {
		n.byName[name].Tick()
	}
}

// World wraps a State.
type World struct {
	State *State
}

func New() *World { return &World{State: NewState()} }

// DefaultCameraDistance is how far along +Z the default camera sits.
const DefaultCameraDistance = 5

// AttachDefaultCamera spawns a 45° perspective camera looking down -Z at
// the origin and makes it active.
func (w *World) AttachDefaultCamera() Entity {
	e := w.State.Spawn()
	t, _ := w.State.Transform(e)
	t.Position = mgl32.Vec3{0, 0, DefaultCameraDistance}
	w.State.AttachCamera(e, NewPerspective(mgl32.DegToRad(45), 1, 0.1, 100))
	w.State.SetActiveCamera(e)
	return e
}

func (w *World) Tick()       { w.State.Tick() }
func (w *World) RenderTick() { w.State.RenderTick() }
