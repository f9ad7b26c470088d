package ui

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/hubastard/wand/engine/canvas"
)

// ErrLayoutNoFit is logged when an item never accepts its placement within
// MaxFitAttempts. The last reply is used anyway.
var ErrLayoutNoFit = errors.New("ui: layout did not converge")

// MaxFitAttempts bounds the size negotiation with a single item.
const MaxFitAttempts = 8

// Scroll is a container's wrap policy: how the cursor advances after each
// child.
type Scroll uint8

const (
	// ScrollX advances horizontally.
	ScrollX Scroll = iota
	// ScrollY advances vertically.
	ScrollY
	// ScrollNone flows left to right and wraps to a new row.
	ScrollNone
)

func (s Scroll) String() string {
	switch s {
	case ScrollX:
		return "x"
	case ScrollY:
		return "y"
	case ScrollNone:
		return "none"
	}
	return fmt.Sprintf("scroll(%d)", uint8(s))
}

// Container lays out an ordered list of Content inside a padded rect.
type Container struct {
	scroll  Scroll
	padding Spacing

	left, top, right, bottom float64
	cursor                   Position

	items []Content
}

func NewContainer(padding Spacing, scroll Scroll) *Container {
	return &Container{padding: padding, scroll: scroll}
}

// Register appends item. Draw and dispatch follow insertion order.
func (c *Container) Register(item Content) { c.items = append(c.items, item) }

func (c *Container) Items() []Content { return c.items }
func (c *Container) Scroll() Scroll   { return c.scroll }
func (c *Container) Padding() Spacing { return c.padding }

// Bounds is the padded rect computed by the last OnResize.
func (c *Container) Bounds() Rect { return RectLTRB(c.left, c.top, c.right, c.bottom) }

// OnResize lays the container out in the rect at (x, y) sized w×h.
//
// Both paddings are resolved against the width. Each padding is capped at
// half its extent so the inner rect never inverts.
func (c *Container) OnResize(x, y, w, h float64) {
	w, h = nonNegative(w), nonNegative(h)
	padX := math.Min(c.padding.alongX(w), w/2)
	padY := math.Min(c.padding.alongY(w), h/2)
	c.left = x + padX
	c.top = y + padY
	c.right = x + w - padX
	c.bottom = y + h - padY
	c.cursor = Position{X: c.left, Y: c.top}

	for _, item := range c.items {
		iw, ih := c.negotiate(item)
		c.advance(iw, ih)
	}
}

// negotiate offers the cursor to item until it fits or attempts run out.
func (c *Container) negotiate(item Content) (w, h float64) {
	for attempt := 1; ; attempt++ {
		var fit bool
		w, h, fit = item.OnResize(c.cursor.X, c.cursor.Y, c.right, c.bottom)
		logger.Debug("resize item",
			zap.String("item", item.Name()),
			zap.Float64("x", c.cursor.X), zap.Float64("y", c.cursor.Y),
			zap.Float64("w", w), zap.Float64("h", h), zap.Bool("fit", fit))
		if fit {
			return w, h
		}
		if attempt == MaxFitAttempts {
			logger.Warn("layout gave up", zap.String("item", item.Name()),
				zap.Int("attempts", attempt), zap.Error(ErrLayoutNoFit))
			return w, h
		}
	}
}

func (c *Container) advance(w, h float64) {
	switch c.scroll {
	case ScrollX:
		c.cursor.X += w
		if c.cursor.Y >= c.bottom {
			c.cursor.Y = c.top
		}
	case ScrollY:
		c.cursor.Y += h
		if c.cursor.X >= c.right {
			c.cursor.X = c.left
		}
	default:
		c.cursor.X += w
		if c.cursor.X >= c.right {
			c.cursor.X = c.left
			c.cursor.Y += h
		}
	}
}

// Tick forwards the logical update to every item. A panicking item is
// logged and skipped.
func (c *Container) Tick() {
	for _, item := range c.items {
		tickItem(item)
	}
}

func tickItem(item Content) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("tick panic", zap.String("item", item.Name()), zap.Any("panic", r))
		}
	}()
	item.Tick()
}

// RenderTick paints items in insertion order, or by ascending Order when
// any item asks for one. A panicking item is logged and skipped.
func (c *Container) RenderTick(ctx canvas.Context2D) {
	for _, item := range c.drawOrder() {
		renderItem(ctx, item)
	}
}

func (c *Container) drawOrder() []Content {
	ordered := false
	for _, item := range c.items {
		if item.Order() != 0 {
			ordered = true
			break
		}
	}
	if !ordered {
		return c.items
	}
	out := make([]Content, len(c.items))
	copy(out, c.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out
}

func renderItem(ctx canvas.Context2D, item Content) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("render panic", zap.String("item", item.Name()), zap.Any("panic", r))
		}
	}()
	item.RenderTick(ctx)
}

// DispatchEvent forwards ev to every item when it lands inside the padded
// rect. The container itself never consumes.
func (c *Container) DispatchEvent(ev *Event) {
	if !ev.Pos.InArea(c.left, c.top, c.right, c.bottom) {
		return
	}
	for _, item := range c.items {
		item.DispatchEvent(ev)
	}
}
