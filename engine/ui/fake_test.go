package ui

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hubastard/wand/engine/canvas"
)

// fakeSpan records what the tree does to it.
type fakeSpan struct {
	SpanBase

	// reply answers the n-th OnResize call of the current layout pass.
	reply func(n int) (w, h float64, fit bool)

	offers  []Rect // each offer as (left, top, right-left, bottom-top)
	ticks   int
	events  []*Event
	consume bool
	panics  bool
	trace   *[]string

	tickPanics bool
}

func newFake(name string, w, h float64) *fakeSpan {
	return &fakeSpan{
		SpanBase: NewSpanBase(name),
		reply:    func(int) (float64, float64, bool) { return w, h, true },
	}
}

func (p *fakeSpan) OnResize(left, top, right, bottom float64) (float64, float64, bool) {
	p.offers = append(p.offers, RectLTRB(left, top, right, bottom))
	return p.reply(len(p.offers))
}

func (p *fakeSpan) Tick() {
	if p.tickPanics {
		panic("fake " + p.Name())
	}
	p.ticks++
}

func (p *fakeSpan) RenderTick(ctx canvas.Context2D) {
	if p.panics {
		panic("fake " + p.Name())
	}
	if p.trace != nil {
		*p.trace = append(*p.trace, p.Name())
	}
	ctx.FillText(p.Name(), 0, 0)
}

func (p *fakeSpan) DispatchEvent(ev *Event) {
	p.events = append(p.events, ev)
	if p.consume {
		ev.Consume()
	}
}

// observeLogs routes the tree logger into an in-memory core for the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}
