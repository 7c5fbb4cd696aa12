package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Gauge is a value that moves both ways, e.g. open websocket connections.
type Gauge struct {
	value int64
}

func (g *Gauge) Inc() { atomic.AddInt64(&g.value, 1) }
func (g *Gauge) Dec() { atomic.AddInt64(&g.value, -1) }

func (g *Gauge) Load() int64 {
	return atomic.LoadInt64(&g.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry hands out named counters and gauges and reports them together.
type Registry struct {
	mu       sync.Mutex
	counters map[string]*Counter
	gauges   map[string]*Gauge
}

// Default is the process wide registry reported by the health endpoint.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*Counter),
		gauges:   make(map[string]*Gauge),
	}
}

// Counter returns the counter registered under name, creating it on first use.
func (r *Registry) Counter(name string) *Counter {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.counters[name]
	if !ok {
		c = &Counter{}
		r.counters[name] = c
	}
	return c
}

func (r *Registry) Gauge(name string) *Gauge {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.gauges[name]
	if !ok {
		g = &Gauge{}
		r.gauges[name] = g
	}
	return g
}

type Sample struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Snapshot returns every metric sorted by name.
func (r *Registry) Snapshot() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Sample, 0, len(r.counters)+len(r.gauges))
	for name, c := range r.counters {
		out = append(out, Sample{Name: name, Value: int64(c.Load())})
	}
	for name, g := range r.gauges {
		out = append(out, Sample{Name: name, Value: g.Load()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
