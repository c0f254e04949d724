// Package eventloop provides the single-threaded callback loops the
// animation scheduler runs on: a real-time loop for desktop hosts, a
// virtual-time loop for tests and a browser loop for wasm builds.
//
// Every loop runs its callbacks one at a time on a single goroutine, so
// state touched only from callbacks needs no locking.
package eventloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultIdle = 4 * time.Millisecond

// Loop runs posted tasks, interval callbacks and frame callbacks on the
// goroutine that calls Run. On desktop that must be the locked main thread
// so GL calls made from callbacks hit the current context.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}

	// only touched on the loop goroutine
	frames []func()

	poll    func() bool
	present func()
	idle    time.Duration
}

// Option configures a Loop
type Option func(*Loop)

// WithPoll installs a hook called once per iteration before tasks run.
// Returning false makes Run return. Hosts pump window events here.
func WithPoll(fn func() bool) Option {
	return func(l *Loop) { l.poll = fn }
}

// WithPresent installs a hook called after each batch of frame callbacks,
// the point where a host swaps buffers.
func WithPresent(fn func()) Option {
	return func(l *Loop) { l.present = fn }
}

// WithIdle bounds how long Run sleeps between polls when nothing is queued
func WithIdle(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.idle = d
		}
	}
}

// New creates a loop
func New(opts ...Option) *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		idle: defaultIdle,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Post queues fn to run on the loop goroutine. Safe from any goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Now returns the current wall-clock time
func (l *Loop) Now() time.Time {
	return time.Now()
}

// SetInterval posts fn to the loop every period until the returned clear
// function is called. Ticks posted before clear but not yet run are dropped.
func (l *Loop) SetInterval(period time.Duration, fn func()) (clear func()) {
	if period <= 0 {
		period = time.Millisecond
	}
	ticker := time.NewTicker(period)
	done := make(chan struct{})
	var cleared atomic.Bool

	go func() {
		for {
			select {
			case <-ticker.C:
				l.Post(func() {
					if !cleared.Load() {
						fn()
					}
				})
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cleared.Store(true)
			ticker.Stop()
			close(done)
		})
	}
}

// RequestAnimationFrame schedules fn for the next paint opportunity.
// Must be called on the loop goroutine.
func (l *Loop) RequestAnimationFrame(fn func()) {
	l.frames = append(l.frames, fn)
}

// Run processes callbacks until ctx is done or the poll hook returns false
func (l *Loop) Run(ctx context.Context) error {
	idle := time.NewTicker(l.idle)
	defer idle.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.poll != nil && !l.poll() {
			return nil
		}
		l.drain()
		if len(l.frames) > 0 {
			l.paint()
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-idle.C:
		}
	}
}

func (l *Loop) drain() {
	l.mu.Lock()
	tasks := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
}

// paint runs the frame callbacks requested so far. Callbacks requested while
// painting wait for the next opportunity.
func (l *Loop) paint() {
	frames := l.frames
	l.frames = nil
	for _, fn := range frames {
		fn()
	}
	if l.present != nil {
		l.present()
	}
}
