package ui

import (
	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/canvas"
)

// Section container padding. Only the fraction comes from the caller; the
// bounds pin the resolved padding to 2px horizontally and 4px vertically.
const (
	sectionPadMinX = 2
	sectionPadMaxX = 2
	sectionPadMinY = 4
	sectionPadMaxY = 4
)

const outlineColor = "#07ce88"

// Section is a named interior node. It takes a fraction of the space its
// parent offers and lays its own children out with a Container.
type Section struct {
	name          string
	width, height float64
	order         uint8

	rect      Rect
	container *Container
	state     *State

	// OnEvent, when set, observes every event that hits the section.
	OnEvent func(s *Section, ev *Event)
}

// NewSection creates a section whose container flows children with the
// given padding fraction.
func NewSection(state *State, name string, wf, hf, padding float64) *Section {
	c := NewContainer(Spacing{
		X: padding, Y: padding,
		MinX: sectionPadMinX, MaxX: sectionPadMaxX,
		MinY: sectionPadMinY, MaxY: sectionPadMaxY,
	}, ScrollNone)
	return NewSectionWithContainer(state, name, wf, hf, c)
}

// NewSectionWithContainer creates a section around a caller-built container.
func NewSectionWithContainer(state *State, name string, wf, hf float64, c *Container) *Section {
	if c == nil {
		c = NewContainer(Spacing{}, ScrollNone)
	}
	return &Section{
		name:      name,
		width:     Fraction(wf),
		height:    Fraction(hf),
		container: c,
		state:     state,
	}
}

func (s *Section) Name() string          { return s.name }
func (s *Section) Rect() Rect            { return s.rect }
func (s *Section) Container() *Container { return s.container }
func (s *Section) Order() uint8          { return s.order }
func (s *Section) SetOrder(o uint8)      { s.order = o }

// Fractions returns the share of the offered width and height the section
// takes.
func (s *Section) Fractions() (w, h float64) { return s.width, s.height }

// RegisterSection records child by name in the state, then adds it.
func (s *Section) RegisterSection(child *Section) {
	if s.state != nil {
		s.state.RegisterSection(child)
	}
	s.AddSection(child)
}

// AddSection adds child without naming it in the state.
func (s *Section) AddSection(child *Section) {
	s.container.Register(SectionContent(child))
}

// RegisterSpan records span by name in the state, then adds it.
func (s *Section) RegisterSpan(span Span) *SpanRef {
	ref := NewSpanRef(span)
	if s.state != nil {
		s.state.RegisterSpan(ref)
	}
	s.container.Register(SpanContent(ref))
	return ref
}

// AddSpan adds span without naming it in the state.
func (s *Section) AddSpan(span Span) *SpanRef {
	ref := NewSpanRef(span)
	s.container.Register(SpanContent(ref))
	return ref
}

// OnResize takes its fractions of the offered space at (left, top) and lays
// out the children inside.
func (s *Section) OnResize(left, top, right, bottom float64) (float64, float64, bool) {
	logger.Debug("resizing section", zap.String("section", s.name))
	s.rect = Share(left, top, right, bottom, s.width, s.height)
	s.container.OnResize(s.rect.X, s.rect.Y, s.rect.W, s.rect.H)
	return s.rect.W, s.rect.H, true
}

func (s *Section) Tick() { s.container.Tick() }

func (s *Section) RenderTick(ctx canvas.Context2D) {
	drawOutline(ctx, s.rect)
	s.container.RenderTick(ctx)
}

// DispatchEvent routes ev to the children when it hits the section.
func (s *Section) DispatchEvent(ev *Event) {
	if !s.rect.Contains(ev.Pos) {
		return
	}
	s.container.DispatchEvent(ev)
	s.consumeEvent(ev)
}

// consumeEvent traces the hit. It leaves Consumed untouched.
func (s *Section) consumeEvent(ev *Event) {
	logger.Debug("event on section", zap.String("section", s.name), zap.Stringer("type", ev.Type))
	if s.OnEvent != nil {
		s.OnEvent(s, ev)
	}
}

func drawOutline(ctx canvas.Context2D, r Rect) {
	ctx.SetStrokeStyle(outlineColor)
	ctx.StrokeRect(r.X, r.Y, r.W, r.H)
}
