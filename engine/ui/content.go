package ui

import "github.com/hubastard/wand/engine/canvas"

// Content is one entry of a Container: either a Section or a Span. The
// zero Content is empty and ignored by every operation.
type Content struct {
	section *Section
	span    *SpanRef
}

func SectionContent(s *Section) Content { return Content{section: s} }
func SpanContent(r *SpanRef) Content    { return Content{span: r} }

// Section returns the wrapped section, or nil for a span.
func (c Content) Section() *Section { return c.section }

// Span returns the wrapped span handle, or nil for a section.
func (c Content) Span() *SpanRef { return c.span }

func (c Content) Name() string {
	switch {
	case c.section != nil:
		return c.section.Name()
	case c.span != nil:
		return c.span.Name()
	}
	return ""
}

func (c Content) OnResize(left, top, right, bottom float64) (float64, float64, bool) {
	switch {
	case c.section != nil:
		return c.section.OnResize(left, top, right, bottom)
	case c.span != nil:
		return c.span.span.OnResize(left, top, right, bottom)
	}
	return 0, 0, true
}

func (c Content) Tick() {
	switch {
	case c.section != nil:
		c.section.Tick()
	case c.span != nil:
		c.span.span.Tick()
	}
}

func (c Content) RenderTick(ctx canvas.Context2D) {
	switch {
	case c.section != nil:
		c.section.RenderTick(ctx)
	case c.span != nil:
		c.span.span.RenderTick(ctx)
	}
}

func (c Content) DispatchEvent(ev *Event) {
	switch {
	case c.section != nil:
		c.section.DispatchEvent(ev)
	case c.span != nil:
		c.span.span.DispatchEvent(ev)
	}
}

// Order is the draw-order key; lower values paint first.
func (c Content) Order() uint8 {
	switch {
	case c.section != nil:
		return c.section.Order()
	case c.span != nil:
		return c.span.span.Order()
	}
	return 0
}
