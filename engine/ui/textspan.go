package ui

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/canvas"
)

const (
	textFamily    = "Arial"
	textMinPx     = 10
	textMaxPx     = 20
	textFillRatio = 0.8
	textFitCapPx  = 100
)

// TextSpan centres one line of text in its rect. The font size is fitted
// to 80% of the rect width, clamped to [10, 20] px, and cached until the
// next resize or text change.
type TextSpan struct {
	SpanBase
	text string
	rect Rect

	width, height float64

	font string // cached "{px}px Arial"; empty means stale
}

// NewTextSpan returns a span sized wf×hf of the space its container offers.
func NewTextSpan(name, text string, wf, hf float64) *TextSpan {
	return &TextSpan{
		SpanBase: NewSpanBase(name),
		text:     text,
		width:    Fraction(wf),
		height:   Fraction(hf),
	}
}

func (s *TextSpan) Text() string { return s.text }
func (s *TextSpan) Rect() Rect   { return s.rect }

// Font returns the cached font, empty until the first render after a resize.
func (s *TextSpan) Font() string { return s.font }

// SetText replaces the text. The font cache survives if nothing changed.
func (s *TextSpan) SetText(text string) {
	if text == s.text {
		return
	}
	s.text = text
	s.font = ""
}

// Dispatch accepts a string payload as new text.
func (s *TextSpan) Dispatch(data any) error {
	text, ok := data.(string)
	if !ok {
		logger.Debug("dispatch ignored", zap.String("span", s.Name()), zap.String("payload", fmt.Sprintf("%T", data)))
		return fmt.Errorf("%w: text span %q got %T", ErrDispatchTypeMismatch, s.Name(), data)
	}
	s.SetText(text)
	return nil
}

// OnResize sizes the span but does not advance the container cursor, so
// sibling spans stack at the same origin.
func (s *TextSpan) OnResize(left, top, right, bottom float64) (float64, float64, bool) {
	s.rect = Share(left, top, right, bottom, s.width, s.height)
	s.font = ""
	return 0, 0, true
}

func (s *TextSpan) RenderTick(ctx canvas.Context2D) {
	if s.font == "" {
		target := math.Min(textFillRatio*s.rect.W, textFitCapPx)
		size := BestFitSize(ctx, s.text, target, textFamily)
		size = max(min(size, textMaxPx), textMinPx)
		s.font = fontString(size, textFamily)
	}
	ctx.SetFont(s.font)
	ctx.SetTextAlign("center")
	ctx.SetTextBaseline("middle")
	ctx.SetFillStyle("white")
	ctx.FillText(s.text, s.rect.X+s.rect.W/2, s.rect.Y+s.rect.H/2)
}
