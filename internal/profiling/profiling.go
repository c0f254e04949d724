// Package profiling is a lightweight per-frame profiler for render ticks.
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Frame accumulates named durations for the frame in progress
type Frame struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	now    func() time.Time
}

// NewFrame creates a profiler reading time from now. Nil means time.Now.
func NewFrame(now func() time.Time) *Frame {
	if now == nil {
		now = time.Now
	}
	return &Frame{totals: make(map[string]time.Duration), now: now}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer f.Track("scheduler.render")()
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		d := f.now().Sub(start)
		f.mu.Lock()
		f.totals[name] += d
		f.mu.Unlock()
	}
}

// Reset clears the current totals. Call at the start of each frame.
func (f *Frame) Reset() {
	f.mu.Lock()
	clear(f.totals)
	f.mu.Unlock()
}

// Get returns the total recorded under name this frame
func (f *Frame) Get(name string) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totals[name]
}

// Snapshot returns a copy of the current totals
func (f *Frame) Snapshot() map[string]time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]time.Duration, len(f.totals))
	for k, v := range f.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, largest first.
// Example: "scheduler.render:4.2ms, torus.draw:2.1ms"
func (f *Frame) TopN(n int) string {
	ss := f.Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+FormatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders d in milliseconds with one decimal, dropping ".0"
func FormatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
