package ui

import (
	"errors"

	"github.com/hubastard/wand/engine/canvas"
)

// ErrDispatchTypeMismatch is returned by Span.Dispatch for payloads the span
// does not understand. It is never fatal.
var ErrDispatchTypeMismatch = errors.New("ui: dispatch payload of unexpected type")

// Span is a leaf drawable.
type Span interface {
	Name() string
	// OnResize receives the container cursor as (left, top) and the
	// container's far edges. It replies with the cursor advance and whether
	// it accepts the placement.
	OnResize(left, top, right, bottom float64) (w, h float64, fit bool)
	Tick()
	RenderTick(ctx canvas.Context2D)
	DispatchEvent(ev *Event)
	Dispatch(data any) error
	Order() uint8
}

// SpanBase carries the name and draw order and gives no-op defaults for the
// optional parts of Span.
type SpanBase struct {
	name  string
	order uint8
}

func NewSpanBase(name string) SpanBase { return SpanBase{name: name} }

func (b *SpanBase) Name() string           { return b.name }
func (b *SpanBase) Order() uint8           { return b.order }
func (b *SpanBase) SetOrder(o uint8)       { b.order = o }
func (b *SpanBase) Tick()                  {}
func (b *SpanBase) DispatchEvent(_ *Event) {}
func (b *SpanBase) Dispatch(_ any) error   { return ErrDispatchTypeMismatch }

func (b *SpanBase) RenderTick(canvas.Context2D) {}

// SpanRef is the shared handle to a Span. Containers hold it strongly, the
// State registry only weakly.
type SpanRef struct {
	span Span
}

func NewSpanRef(s Span) *SpanRef { return &SpanRef{span: s} }

func (r *SpanRef) Span() Span   { return r.span }
func (r *SpanRef) Name() string { return r.span.Name() }

// Dispatch forwards an opaque payload to the span.
func (r *SpanRef) Dispatch(data any) error { return r.span.Dispatch(data) }
