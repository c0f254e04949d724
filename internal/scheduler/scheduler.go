// Package scheduler drives a renderable at a bounded frame rate.
//
// A running schedule wakes on a fixed interval, asks the platform for the
// next paint opportunity and, at paint time, draws only if at least one
// frame interval has passed since the last accepted draw. Every queued
// callback checks the handle's liveness first, so Stop takes effect
// immediately even for callbacks the platform has already queued.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"surfview/internal/logging"
	"surfview/internal/profiling"
	"surfview/internal/renderable"
)

// DefaultFrameRate is the target cadence in frames per second
const DefaultFrameRate = 60

const renderTask = "scheduler.render"

// Platform is the set of event-loop primitives a schedule runs on.
// All callbacks must be invoked on a single goroutine.
type Platform interface {
	Now() time.Time
	SetInterval(period time.Duration, fn func()) (clear func())
	RequestAnimationFrame(fn func())
}

// Target reports the drawable size at paint time
type Target interface {
	Size() (width, height int)
}

// RenderError wraps a failed render call
type RenderError struct {
	Frame int
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render frame %d: %v", e.Frame, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Scheduler issues schedules that share one animation clock
type Scheduler struct {
	platform Platform
	start    time.Time

	period   time.Duration
	minFrame time.Duration

	logger   *slog.Logger
	profiler *profiling.Frame

	nextID uint64
	active int
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithFrameRate sets both the wake-up period and the minimum spacing
// between draws to one frame at fps
func WithFrameRate(fps int) Option {
	return func(s *Scheduler) {
		if fps <= 0 {
			return
		}
		s.period = time.Second / time.Duration(fps)
		s.minFrame = s.period
	}
}

// WithPeriod overrides the wake-up period only
func WithPeriod(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.period = d
		}
	}
}

// WithMinFrameInterval overrides the minimum spacing between accepted draws only
func WithMinFrameInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d >= 0 {
			s.minFrame = d
		}
	}
}

// WithLogger sets the logger; the shared logging logger is used otherwise
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProfiler shares a profiler with renderables that track their own
// sections
func WithProfiler(f *profiling.Frame) Option {
	return func(s *Scheduler) {
		if f != nil {
			s.profiler = f
		}
	}
}

// New creates a scheduler whose elapsed time is measured from start
func New(p Platform, start time.Time, opts ...Option) *Scheduler {
	frame := time.Second / DefaultFrameRate
	s := &Scheduler{
		platform: p,
		start:    start,
		period:   frame,
		minFrame: frame,
		logger:   logging.Logger(),
		profiler: profiling.NewFrame(p.Now),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartTime returns the instant elapsed time is measured from
func (s *Scheduler) StartTime() time.Time {
	return s.start
}

// Active returns how many schedules are live
func (s *Scheduler) Active() int {
	return s.active
}

// Profiler returns the per-frame profiler render calls are tracked in
func (s *Scheduler) Profiler() *profiling.Frame {
	return s.profiler
}

// Start begins animating r. onError is called at most once, after the
// schedule has already stopped, if a render call fails.
func (s *Scheduler) Start(r renderable.Renderable, target Target, onError func(error)) *Handle {
	s.nextID++
	h := &Handle{
		id:      s.nextID,
		s:       s,
		r:       r,
		target:  target,
		onError: onError,
		alive:   true,
	}
	s.active++
	h.clear = s.platform.SetInterval(s.period, h.wake)
	s.logger.Debug("animation started", "handle", h.id, "period", s.period)
	return h
}

// Handle identifies one running schedule
type Handle struct {
	id      uint64
	s       *Scheduler
	r       renderable.Renderable
	target  Target
	onError func(error)

	alive   bool
	pending bool
	clear   func()

	lastDraw time.Time
	drawn    bool
	frames   int
	skipped  int
}

// ID returns the handle's identifier, unique per scheduler
func (h *Handle) ID() uint64 { return h.id }

// Renderable returns the renderable this schedule drives
func (h *Handle) Renderable() renderable.Renderable { return h.r }

// Alive reports whether the schedule can still issue render calls
func (h *Handle) Alive() bool { return h.alive }

// Frames returns the number of accepted draws
func (h *Handle) Frames() int { return h.frames }

// Skipped returns the number of paint opportunities dropped by the throttle
func (h *Handle) Skipped() int { return h.skipped }

// Stop cancels the schedule. Once it returns no further render call is made
// for this handle, including from callbacks already queued. Idempotent.
func (h *Handle) Stop() {
	if !h.alive {
		return
	}
	h.alive = false
	if h.clear != nil {
		h.clear()
	}
	h.s.active--
	h.s.logger.Debug("animation stopped", "handle", h.id, "frames", h.frames, "skipped", h.skipped)
}

func (h *Handle) wake() {
	if !h.alive || h.pending {
		return
	}
	h.pending = true
	h.s.platform.RequestAnimationFrame(h.paint)
}

func (h *Handle) paint() {
	h.pending = false
	if !h.alive {
		return
	}

	now := h.s.platform.Now()
	if h.drawn && now.Sub(h.lastDraw) < h.s.minFrame {
		h.skipped++
		return
	}
	h.drawn = true
	h.lastDraw = now

	width, height := h.target.Size()
	elapsed := now.Sub(h.s.start).Seconds()

	h.s.profiler.Reset()
	stop := h.s.profiler.Track(renderTask)
	err := h.render(width, height, elapsed)
	stop()

	if err != nil {
		h.Stop()
		rerr := &RenderError{Frame: h.frames + 1, Err: err}
		h.s.logger.Error("render failed", "handle", h.id, "err", rerr)
		if h.onError != nil {
			h.onError(rerr)
		}
		return
	}
	h.frames++

	if inv, ok := h.target.(interface{ Invalidate() }); ok {
		inv.Invalidate()
	}

	if d := h.s.profiler.Get(renderTask); d > h.s.minFrame {
		h.s.logger.Debug("slow frame", "handle", h.id, "duration", profiling.FormatMs(d), "top", h.s.profiler.TopN(5))
	}
}

func (h *Handle) render(width, height int, elapsed float64) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return h.r.Render(width, height, elapsed)
}
