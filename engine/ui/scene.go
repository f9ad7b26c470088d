package ui

import (
	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/canvas"
)

// DefaultMargin insets a scene from the canvas edges by 20% of each
// dimension, kept between 10 and 20 px.
var DefaultMargin = Spacing{X: 0.2, Y: 0.2, MinX: 10, MaxX: 20, MinY: 10, MaxY: 20}

// Scene is the root of one UI tree, addressed by a path.
type Scene struct {
	path   string
	margin Spacing

	rect      Rect
	container *Container
	state     *State
}

func NewScene(state *State, path string) *Scene {
	return NewSceneWithMargin(state, path, DefaultMargin)
}

func NewSceneWithMargin(state *State, path string, margin Spacing) *Scene {
	return NewSceneWithContainer(state, path, margin, NewContainer(Spacing{}, ScrollNone))
}

func NewSceneWithContainer(state *State, path string, margin Spacing, c *Container) *Scene {
	if c == nil {
		c = NewContainer(Spacing{}, ScrollNone)
	}
	return &Scene{path: path, margin: margin, container: c, state: state}
}

func (s *Scene) Path() string          { return s.path }
func (s *Scene) Rect() Rect            { return s.rect }
func (s *Scene) Margin() Spacing       { return s.margin }
func (s *Scene) Container() *Container { return s.container }

func (s *Scene) RegisterSection(child *Section) {
	if s.state != nil {
		s.state.RegisterSection(child)
	}
	s.AddSection(child)
}

func (s *Scene) AddSection(child *Section) {
	s.container.Register(SectionContent(child))
}

func (s *Scene) RegisterSpan(span Span) *SpanRef {
	ref := NewSpanRef(span)
	if s.state != nil {
		s.state.RegisterSpan(ref)
	}
	s.container.Register(SpanContent(ref))
	return ref
}

func (s *Scene) AddSpan(span Span) *SpanRef {
	ref := NewSpanRef(span)
	s.container.Register(SpanContent(ref))
	return ref
}

// OnResize insets the scene inside the canvas and lays out the tree.
//
// The horizontal margin offsets x and shrinks the height while the vertical
// margin offsets y and shrinks the width.
func (s *Scene) OnResize(meta CanvasMeta) {
	mx := s.margin.alongX(meta.W)
	my := s.margin.alongY(meta.H)
	s.rect = Rect{
		X: mx,
		Y: my,
		W: nonNegative(meta.W - 2*my),
		H: nonNegative(meta.H - 2*mx),
	}
	logger.Debug("resizing scene",
		zap.String("path", s.path),
		zap.Float64("canvas_w", meta.W), zap.Float64("canvas_h", meta.H),
		zap.Float64("w", s.rect.W), zap.Float64("h", s.rect.H))
	s.container.OnResize(s.rect.X, s.rect.Y, s.rect.W, s.rect.H)
}

func (s *Scene) Tick() { s.container.Tick() }

func (s *Scene) RenderTick(ctx canvas.Context2D) {
	drawOutline(ctx, s.rect)
	s.container.RenderTick(ctx)
}

// DispatchEvent drops events outside the scene rect.
func (s *Scene) DispatchEvent(ev *Event) {
	if !s.rect.Contains(ev.Pos) {
		return
	}
	s.container.DispatchEvent(ev)
}
