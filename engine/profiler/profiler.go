//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// Init must be called once before the first frame with the ring capacity in
// scope events. Events past capacity overwrite the oldest.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it.
//
//	defer profiler.Start("app.tick")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	open := time.Now().UnixNano()
	ring.push(entry{at: open, scope: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < open {
			end = open
		}
		ring.push(entry{at: end, scope: id})
	}
}

// Report aggregates the recorded scopes, slowest total first.
func Report() []Scope {
	evs := ring.snapshot()
	names := frameNames()

	stats := map[int]*Scope{}
	var stack []entry
	for _, e := range evs {
		if e.open {
			stack = append(stack, e)
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1].scope != e.scope {
			continue
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s, ok := stats[e.scope]
		if !ok {
			s = &Scope{Name: names[e.scope]}
			stats[e.scope] = s
		}
		d := time.Duration(e.at - top.at)
		s.Count++
		s.Total += d
		s.Max = max(s.Max, d)
	}

	out := make([]Scope, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// WriteSpeedscope dumps the ring as an evented speedscope profile.
func WriteSpeedscope(path string) error {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return errors.New("profiler: no events to dump")
	}
	doc, err := speedscope(evs, frameNames())
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}

// ---------- event ring ----------

type entry struct {
	at    int64
	scope int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []entry
}

func (r *eventRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]entry, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e entry) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot keeps write order.
func (r *eventRing) snapshot() []entry {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]entry, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var ring eventRing

// ---------- scope names ----------

var (
	namesMu sync.Mutex
	names   []string
	index   = map[string]int{}
)

func intern(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(names)
	index[name] = id
	names = append(names, name)
	return id
}

func frameNames() []string {
	namesMu.Lock()
	defer namesMu.Unlock()
	return append([]string(nil), names...)
}

// ---------- speedscope ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"` // "evented"
	Name       string    `json:"name"`
	Unit       string    `json:"unit"` // "microseconds"
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

func speedscope(evs []entry, frames []string) (*ssFile, error) {
	base := evs[0].at
	var endUS, lastUS int64 = 0, -1

	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 64)
	for _, e := range evs {
		at := max((e.at-base)/1000, lastUS)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.scope})
			stack = append(stack, e.scope)
		} else {
			// A close whose open was overwritten by the ring is dropped.
			if len(stack) == 0 || stack[len(stack)-1] != e.scope {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.scope})
		}
		lastUS = at
		endUS = max(endUS, at)
	}
	// Speedscope wants balanced events.
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}
	if len(out) == 0 {
		return nil, errors.New("profiler: no balanced scopes")
	}

	fs := make([]ssFrame, len(frames))
	for i, n := range frames {
		fs[i] = ssFrame{Name: n}
	}
	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "wand frames",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   out,
		}},
		Exporter: "wand-profiler",
		Name:     "wand capture",
	}, nil
}
