package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/canvas"
	"github.com/hubastard/wand/engine/ui"
)

// RendererName is the key the WorldSpan renderer is registered under.
const RendererName = "renderer"

const (
	captionFont  = "12px Arial"
	captionInset = 4
)

// WorldSpan is a span that hosts a World. It takes wf×hf of the space its
// container offers and, like TextSpan, never advances the cursor.
type WorldSpan struct {
	ui.SpanBase
	world    *World
	renderer *RenderingSystem

	caption string
	rect    ui.Rect

	width, height float64
}

// NewWorldSpan builds a world with a default perspective camera and a
// RenderingSystem registered as "renderer".
func NewWorldSpan(name string, wf, hf float64) *WorldSpan {
	w := New()
	w.AttachDefaultCamera()
	r := NewRenderingSystem(w.State)
	w.State.RegisterRenderer(RendererName, r)
	return &WorldSpan{
		SpanBase: ui.NewSpanBase(name),
		world:    w,
		renderer: r,
		width:    ui.Fraction(wf),
		height:   ui.Fraction(hf),
	}
}

func (s *WorldSpan) World() *World              { return s.world }
func (s *WorldSpan) Renderer() *RenderingSystem { return s.renderer }
func (s *WorldSpan) Caption() string            { return s.caption }
func (s *WorldSpan) Rect() ui.Rect              { return s.rect }
func (s *WorldSpan) Tick()                      { s.world.Tick() }

// RenderTick draws the world into ctx, then the caption along the top edge.
// The context is bound to the renderer only for the duration of the call.
func (s *WorldSpan) RenderTick(ctx canvas.Context2D) {
	s.renderer.Attach(ctx)
	defer s.renderer.Detach()
	s.world.RenderTick()

	if s.caption == "" {
		return
	}
	ctx.SetFont(captionFont)
	ctx.SetTextAlign("center")
	ctx.SetTextBaseline("top")
	ctx.SetFillStyle("white")
	ctx.FillText(s.caption, s.rect.X+s.rect.W/2, s.rect.Y+captionInset)
}

func (s *WorldSpan) OnResize(left, top, right, bottom float64) (float64, float64, bool) {
	s.rect = ui.Share(left, top, right, bottom, s.width, s.height)
	if sys, ok := s.world.State.Renderer(RendererName); ok {
		if err := sys.Dispatch(Viewport{X: s.rect.X, Y: s.rect.Y, W: s.rect.W, H: s.rect.H}); err != nil {
			ui.Logger().Warn("viewport rejected", zap.String("span", s.Name()), zap.Error(err))
		}
	}
	return 0, 0, true
}

// Dispatch accepts a string payload as the new caption.
func (s *WorldSpan) Dispatch(data any) error {
	text, ok := data.(string)
	if !ok {
		return fmt.Errorf("%w: world span %q got %T", ui.ErrDispatchTypeMismatch, s.Name(), data)
	}
	s.caption = text
	return nil
}
