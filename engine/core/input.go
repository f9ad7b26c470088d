package core

// Input buffers keyboard state between ticks. A key pressed and released
// within one frame is latched, so the next KeyDown still sees it once.
type Input struct {
	down  map[string]struct{}
	latch map[string]struct{}
	up    map[string]struct{}
}

func NewInput() *Input {
	return &Input{
		down:  map[string]struct{}{},
		latch: map[string]struct{}{},
		up:    map[string]struct{}{},
	}
}

func (in *Input) OnKeyDown(k string) {
	in.down[k] = struct{}{}
	delete(in.up, k)
}

func (in *Input) OnKeyUp(k string) {
	if _, ok := in.down[k]; ok {
		delete(in.down, k)
		in.latch[k] = struct{}{}
	}
	in.up[k] = struct{}{}
}

// KeyDown reports whether k is held, or was pressed and released since the
// last query. The latch is consumed by the query.
func (in *Input) KeyDown(k string) bool {
	if _, ok := in.down[k]; ok {
		return true
	}
	if _, ok := in.latch[k]; ok {
		delete(in.latch, k)
		return true
	}
	return false
}

// KeyUp reports whether k has been released and not pressed since.
func (in *Input) KeyUp(k string) bool {
	_, ok := in.up[k]
	return ok
}

// Axis maps two keys onto -1, 0 or +1. Holding both cancels out.
func (in *Input) Axis(pos, neg string) float64 {
	var v float64
	if in.KeyDown(pos) {
		v++
	}
	if in.KeyDown(neg) {
		v--
	}
	return v
}

// Handle feeds key events; other events are ignored.
func (in *Input) Handle(ev Event) {
	if e, ok := ev.(EventKey); ok {
		if e.Down {
			in.OnKeyDown(e.Key)
		} else {
			in.OnKeyUp(e.Key)
		}
	}
}
