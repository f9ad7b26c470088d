package core

import "time"

// Clock reports milliseconds since an arbitrary epoch. Consecutive readings
// never go backwards.
type Clock interface {
	NowMs() int64
}

// SystemClock reads the monotonic clock relative to its creation.
type SystemClock struct{ start time.Time }

func NewSystemClock() *SystemClock { return &SystemClock{start: time.Now()} }

func (c *SystemClock) NowMs() int64 { return time.Since(c.start).Milliseconds() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() int64

func (f ClockFunc) NowMs() int64 { return f() }
