package ui

// Position is a point in canvas pixels.
type Position struct{ X, Y float64 }

// InRect reports whether p lies strictly inside the rect at (x, y) sized w×h.
func (p Position) InRect(x, y, w, h float64) bool {
	return p.X > x && p.X < x+w && p.Y > y && p.Y < y+h
}

// InArea reports whether p lies strictly inside the given edges.
func (p Position) InArea(left, top, right, bottom float64) bool {
	return p.X > left && p.X < right && p.Y > top && p.Y < bottom
}

// Rect is a laid-out rectangle in canvas pixels.
type Rect struct{ X, Y, W, H float64 }

// RectLTRB builds a Rect from its edges.
func RectLTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains is the strict hit-test used for event routing.
func (r Rect) Contains(p Position) bool { return p.InRect(r.X, r.Y, r.W, r.H) }

// Within reports whether r lies inside outer, edges included.
func (r Rect) Within(outer Rect) bool {
	return r.W >= 0 && r.H >= 0 &&
		r.Left() >= outer.Left() && r.Top() >= outer.Top() &&
		r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

type EventType uint8

const (
	MouseMove EventType = iota
)

func (t EventType) String() string {
	switch t {
	case MouseMove:
		return "mouse-move"
	default:
		return "unknown"
	}
}

// Event travels down the tree for one dispatch pass. Any visited node may
// set Consumed; later siblings observe it.
type Event struct {
	Type     EventType
	Pos      Position
	Consumed bool
}

func NewMouseMove(x, y float64) *Event {
	return &Event{Type: MouseMove, Pos: Position{X: x, Y: y}}
}

func (e *Event) Consume() { e.Consumed = true }
