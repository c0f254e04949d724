package scheduler_test

import (
	"errors"
	"testing"
	"time"

	"surfview/internal/eventloop"
	"surfview/internal/profiling"
	"surfview/internal/scheduler"
	"surfview/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type call struct {
	width, height int
	elapsed       float64
}

type recorder struct {
	calls  []call
	failAt int
	panics bool
}

func (r *recorder) Render(width, height int, elapsed float64) error {
	r.calls = append(r.calls, call{width, height, elapsed})
	if r.failAt > 0 && len(r.calls) == r.failAt {
		if r.panics {
			panic("shader exploded")
		}
		return errors.New("context lost")
	}
	return nil
}

func TestDefaultCadenceIsSixtyPerSecond(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch)
	r := &recorder{}
	target := surface.NewOffscreen("c", 800, 600)

	h := s.Start(r, target, nil)
	loop.Advance(time.Second)

	assert.Len(t, r.calls, 60)
	assert.Equal(t, 60, h.Frames())
	assert.Equal(t, 60, target.Invalidations)
	assert.Equal(t, 800, r.calls[0].width)
	assert.Equal(t, 600, r.calls[0].height)
	assert.InDelta(t, 1.0/60, r.calls[0].elapsed, 1e-6)
}

func TestThrottleCapsFastWakeups(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch, scheduler.WithPeriod(time.Millisecond))
	r := &recorder{}

	h := s.Start(r, surface.NewOffscreen("c", 1, 1), nil)
	loop.Advance(time.Second)

	assert.LessOrEqual(t, len(r.calls), 61)
	assert.GreaterOrEqual(t, len(r.calls), 55)
	assert.Equal(t, 1000, h.Frames()+h.Skipped())

	for i := 1; i < len(r.calls); i++ {
		gap := r.calls[i].elapsed - r.calls[i-1].elapsed
		assert.GreaterOrEqual(t, gap, 1.0/60-1e-9, "draw %d came too early", i)
	}
}

func TestElapsedMeasuredFromSharedStart(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch)

	loop.Advance(5 * time.Second)
	r := &recorder{}
	s.Start(r, surface.NewOffscreen("c", 1, 1), nil)
	loop.Advance(100 * time.Millisecond)

	require.NotEmpty(t, r.calls)
	assert.InDelta(t, 5+1.0/60, r.calls[0].elapsed, 1e-6)
	for i := 1; i < len(r.calls); i++ {
		assert.GreaterOrEqual(t, r.calls[i].elapsed, r.calls[i-1].elapsed)
	}
}

func TestSizeReadAtPaintTime(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch)
	r := &recorder{}
	target := surface.NewOffscreen("c", 800, 600)

	s.Start(r, target, nil)
	loop.Advance(20 * time.Millisecond)
	target.SetSize(1024, 768)
	loop.Advance(20 * time.Millisecond)

	require.Len(t, r.calls, 2)
	assert.Equal(t, 800, r.calls[0].width)
	assert.Equal(t, 1024, r.calls[1].width)
	assert.Equal(t, 768, r.calls[1].height)
}

// manual hands every callback to the test instead of running it
type manual struct {
	now       time.Time
	intervals []func()
	cleared   int
	frames    []func()
}

func (m *manual) Now() time.Time { return m.now }

func (m *manual) SetInterval(_ time.Duration, fn func()) func() {
	m.intervals = append(m.intervals, fn)
	return func() { m.cleared++ }
}

func (m *manual) RequestAnimationFrame(fn func()) { m.frames = append(m.frames, fn) }

func (m *manual) runFrames() {
	frames := m.frames
	m.frames = nil
	for _, fn := range frames {
		fn()
	}
}

func TestStopDropsQueuedFrames(t *testing.T) {
	p := &manual{now: epoch}
	s := scheduler.New(p, epoch)
	r := &recorder{}

	h := s.Start(r, surface.NewOffscreen("c", 1, 1), nil)
	require.Len(t, p.intervals, 1)

	p.now = epoch.Add(time.Second)
	p.intervals[0]()
	require.Len(t, p.frames, 1)

	h.Stop()
	h.Stop()
	assert.Equal(t, 1, p.cleared)
	assert.False(t, h.Alive())
	assert.Equal(t, 0, s.Active())

	// the platform could not unqueue these
	p.runFrames()
	p.intervals[0]()
	p.runFrames()

	assert.Empty(t, r.calls)
}

func TestWakeupsCoalesceWhilePaintPending(t *testing.T) {
	p := &manual{now: epoch}
	s := scheduler.New(p, epoch)
	s.Start(&recorder{}, surface.NewOffscreen("c", 1, 1), nil)

	p.intervals[0]()
	p.intervals[0]()
	p.intervals[0]()
	assert.Len(t, p.frames, 1)
}

func TestRenderErrorStopsSchedule(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch)
	r := &recorder{failAt: 3}

	var errs []error
	var h *scheduler.Handle
	h = s.Start(r, surface.NewOffscreen("c", 1, 1), func(err error) {
		assert.False(t, h.Alive(), "handle must be stopped before the error is reported")
		errs = append(errs, err)
	})
	loop.Advance(time.Second)

	assert.Len(t, r.calls, 3)
	require.Len(t, errs, 1)

	var rerr *scheduler.RenderError
	require.ErrorAs(t, errs[0], &rerr)
	assert.Equal(t, 3, rerr.Frame)
	assert.EqualError(t, rerr.Err, "context lost")
	assert.Equal(t, 0, loop.ActiveIntervals())
	assert.Equal(t, 2, h.Frames())
}

func TestRenderPanicBecomesError(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch)
	r := &recorder{failAt: 1, panics: true}

	var got error
	s.Start(r, surface.NewOffscreen("c", 1, 1), func(err error) { got = err })
	loop.Advance(time.Second)

	require.Error(t, got)
	assert.Contains(t, got.Error(), "shader exploded")
	assert.Len(t, r.calls, 1)
}

func TestWithFrameRate(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch, scheduler.WithFrameRate(30))
	r := &recorder{}

	s.Start(r, surface.NewOffscreen("c", 1, 1), nil)
	loop.Advance(time.Second)

	assert.Len(t, r.calls, 30)
}

type tracked struct {
	profiler *profiling.Frame
}

func (r *tracked) Render(int, int, float64) error {
	defer r.profiler.Track("inner.draw")()
	return nil
}

func TestWithProfilerShared(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	shared := profiling.NewFrame(loop.Now)
	s := scheduler.New(loop, epoch, scheduler.WithProfiler(shared))
	require.Same(t, shared, s.Profiler())

	s.Start(&tracked{profiler: shared}, surface.NewOffscreen("c", 1, 1), nil)
	loop.Advance(time.Second / 60)

	snap := shared.Snapshot()
	assert.Contains(t, snap, "scheduler.render")
	assert.Contains(t, snap, "inner.draw")
}

func TestHandleIDsAreUnique(t *testing.T) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch)
	a := s.Start(&recorder{}, surface.NewOffscreen("c", 1, 1), nil)
	b := s.Start(&recorder{}, surface.NewOffscreen("c", 1, 1), nil)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, s.Active())
	a.Stop()
	assert.Equal(t, 1, s.Active())
}

func BenchmarkPaint(b *testing.B) {
	loop := eventloop.NewVirtual(epoch)
	s := scheduler.New(loop, epoch, scheduler.WithPeriod(time.Millisecond))
	s.Start(&nopRenderable{}, surface.NewOffscreen("c", 800, 600), nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		loop.Advance(time.Millisecond)
	}
}

type nopRenderable struct{}

func (nopRenderable) Render(int, int, float64) error { return nil }
