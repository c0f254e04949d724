// Package controller sequences the surface lifecycle: it acquires the
// drawing surface, constructs the default renderable, animates it, swaps
// it for other kinds on request and turns every failure into a terminal
// state.
//
// A Controller is not safe for concurrent use. All methods, and the
// scheduler callbacks it installs, run on one event-loop goroutine.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"surfview/internal/logging"
	"surfview/internal/renderable"
	"surfview/internal/scheduler"
	"surfview/internal/surface"
)

// FailureMessage is what hosts show in place of the surface once the
// controller reaches a terminal state. Details go to the log.
const FailureMessage = "Something went wrong."

var (
	ErrNotRunning = errors.New("controller is not running")
	ErrUnmounted  = errors.New("controller is unmounted")
)

// Factory constructs renderables by kind. *renderable.Registry implements it.
type Factory interface {
	Known(kind renderable.Kind) bool
	Create(kind renderable.Kind, drawableID string) (renderable.Renderable, error)
}

// Controller owns the drawing surface, the active renderable and its schedule
type Controller struct {
	drawable surface.Drawable
	factory  Factory
	platform scheduler.Platform

	defaultKind renderable.Kind
	schedOpts   []scheduler.Option
	logger      *slog.Logger
	listeners   []func(State)

	initialized bool
	unmounted   bool

	handle *surface.Handle
	sched  *scheduler.Scheduler
	state  State
}

// Option configures a Controller
type Option func(*Controller)

// WithDefaultKind sets the kind constructed on activation
func WithDefaultKind(kind renderable.Kind) Option {
	return func(c *Controller) { c.defaultKind = kind }
}

// WithSchedulerOptions passes options to the animation scheduler
func WithSchedulerOptions(opts ...scheduler.Option) Option {
	return func(c *Controller) { c.schedOpts = append(c.schedOpts, opts...) }
}

// WithLogger sets the logger; the shared logging logger is used otherwise
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// OnStateChange registers fn to be called after every transition
func OnStateChange(fn func(State)) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, fn) }
}

// New creates a controller for drawable d. Nothing happens until Activate.
func New(d surface.Drawable, f Factory, p scheduler.Platform, opts ...Option) *Controller {
	c := &Controller{
		drawable:    d,
		factory:     f,
		platform:    p,
		defaultKind: renderable.Torus,
		logger:      logging.Logger(),
		state:       Uninitialized{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Surface returns the acquired surface handle, nil before a successful activation
func (c *Controller) Surface() *surface.Handle {
	return c.handle
}

// StartTime returns the animation clock origin, zero before activation
func (c *Controller) StartTime() time.Time {
	if c.sched == nil {
		return time.Time{}
	}
	return c.sched.StartTime()
}

// Unmounted reports whether Unmount was called
func (c *Controller) Unmounted() bool {
	return c.unmounted
}

// Activate runs the one-shot initialization. Later calls do nothing, so
// hosts may call it from activation hooks that fire repeatedly.
func (c *Controller) Activate() {
	if c.initialized || c.unmounted {
		return
	}
	c.initialized = true

	c.sched = scheduler.New(c.platform, c.platform.Now(),
		append([]scheduler.Option{scheduler.WithLogger(c.logger)}, c.schedOpts...)...)

	h, err := surface.Acquire(c.drawable)
	if err != nil {
		c.logger.Error("failed to initialize rendering context", "err", err)
		c.setState(ContextFailed{Err: err})
		return
	}
	c.handle = h
	c.logger.Info("rendering context established", "drawable", h.ID())

	kind := c.defaultKind
	if !c.factory.Known(kind) {
		err := fmt.Errorf("%w: %q", renderable.ErrUnknownKind, kind)
		c.logger.Error("failed to initialize surface", "kind", kind, "err", err)
		c.setState(SurfaceFailed{Kind: kind, Err: err})
		return
	}

	r, err := c.factory.Create(kind, h.ID())
	if err != nil {
		c.logger.Error("failed to initialize surface", "kind", kind, "err", err)
		c.setState(SurfaceFailed{Kind: kind, Err: err})
		return
	}
	c.run(kind, r)
}

// Swap replaces the running renderable with a new one of the given kind.
// It returns an error only when the request is rejected outright: unknown
// kind, not running, or unmounted. A construction failure is not returned;
// it stops the current animation and moves the controller to Errored.
func (c *Controller) Swap(kind renderable.Kind) error {
	if c.unmounted {
		return ErrUnmounted
	}
	if !c.factory.Known(kind) {
		return fmt.Errorf("%w: %q", renderable.ErrUnknownKind, kind)
	}
	running, ok := c.state.(Running)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRunning, c.state)
	}

	next, err := c.factory.Create(kind, c.handle.ID())
	if err != nil {
		c.retire(running)
		c.logger.Error("failed to swap surface", "from", running.Kind, "to", kind, "err", err)
		c.setState(Errored{Message: fmt.Sprintf("swap to %s", kind), Err: err})
		return nil
	}

	c.logger.Info("swapping surface", "from", running.Kind, "to", kind)
	c.retire(running)
	c.run(kind, next)
	return nil
}

// Unmount stops animation, frees the active renderable and releases the
// surface. The controller cannot be reactivated; hosts create a new one.
func (c *Controller) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true
	if running, ok := c.state.(Running); ok {
		c.retire(running)
	}
	if c.handle != nil {
		c.handle.Release()
	}
	c.listeners = nil
	c.logger.Debug("controller unmounted", "state", c.state)
}

func (c *Controller) run(kind renderable.Kind, r renderable.Renderable) {
	var anim *scheduler.Handle
	anim = c.sched.Start(r, c.handle, func(err error) {
		c.renderFailed(anim, err)
	})
	c.setState(Running{Kind: kind, Renderable: r, Animation: anim})
}

// retire stops a schedule before its renderable is released
func (c *Controller) retire(running Running) {
	running.Animation.Stop()
	renderable.Dispose(running.Renderable)
}

func (c *Controller) renderFailed(anim *scheduler.Handle, err error) {
	running, ok := c.state.(Running)
	if !ok || running.Animation != anim {
		return
	}
	c.retire(running)
	c.setState(Errored{Message: fmt.Sprintf("render %s", running.Kind), Err: err})
}

func (c *Controller) setState(s State) {
	c.state = s
	if Terminal(s) {
		c.logger.Warn("surface controller stopped", "state", s)
	} else {
		c.logger.Debug("surface controller state", "state", s)
	}
	for _, fn := range c.listeners {
		fn(s)
	}
}
