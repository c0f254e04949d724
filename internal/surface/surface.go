// Package surface acquires rendering contexts for drawables and keeps the
// id-addressed registry renderable constructors bind through.
package surface

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContext reports that the platform could not produce a rendering
	// context, e.g. no GPU or GL/WebGL support.
	ErrNoContext = errors.New("rendering context unavailable")

	// ErrAlreadyBound reports a second acquisition on the same drawable
	ErrAlreadyBound = errors.New("drawable already has a bound context")
)

// ContextAttributes are the creation flags requested from a drawable
type ContextAttributes struct {
	Antialias bool
	Depth     bool
}

// Context is the platform rendering context a drawable hands out: a
// *GLContext on desktop, the WebGL context js.Value in the browser.
type Context any

// Drawable is a canvas-like element that can bind one rendering context
type Drawable interface {
	ID() string
	Size() (width, height int)
	// GetContext binds and returns the drawable's context. It must fail
	// with ErrAlreadyBound when called again before Release.
	GetContext(attrs ContextAttributes) (Context, error)
}

// Bound is implemented by drawables that can return their bound context
// to later callers, the way a canvas returns the same context twice.
type Bound interface {
	BoundContext() (Context, bool)
}

// Invalidator is implemented by drawables that present only after a draw
type Invalidator interface {
	Invalidate()
}

// Releaser is implemented by drawables that can unbind their context
type Releaser interface {
	Release()
}

// ContextError wraps a failed context acquisition
type ContextError struct {
	ID  string
	Err error
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("acquire context for %q: %v", e.ID, e.Err)
}

func (e *ContextError) Unwrap() error {
	return e.Err
}

// DefaultAttributes are the attributes Acquire requests
var DefaultAttributes = ContextAttributes{Antialias: true, Depth: true}

// Handle owns a drawable together with its acquired context.
// The context is set once by Acquire and never changes afterwards.
type Handle struct {
	drawable Drawable
	ctx      Context
	released bool
}

// Acquire binds an antialiased context to d. Call it at most once per drawable.
func Acquire(d Drawable) (h *Handle, err error) {
	if d == nil {
		return nil, &ContextError{Err: ErrNoContext}
	}

	defer func() {
		if r := recover(); r != nil {
			h = nil
			err = &ContextError{ID: d.ID(), Err: fmt.Errorf("%w: %v", ErrNoContext, r)}
		}
	}()

	ctx, err := d.GetContext(DefaultAttributes)
	if err != nil {
		return nil, &ContextError{ID: d.ID(), Err: err}
	}
	if ctx == nil {
		return nil, &ContextError{ID: d.ID(), Err: ErrNoContext}
	}
	return &Handle{drawable: d, ctx: ctx}, nil
}

// Context returns the acquired context
func (h *Handle) Context() Context {
	return h.ctx
}

// Drawable returns the underlying drawable
func (h *Handle) Drawable() Drawable {
	return h.drawable
}

// ID returns the drawable id
func (h *Handle) ID() string {
	return h.drawable.ID()
}

// Size returns the current drawable size
func (h *Handle) Size() (int, int) {
	return h.drawable.Size()
}

// Invalidate marks the drawable as needing presentation
func (h *Handle) Invalidate() {
	if inv, ok := h.drawable.(Invalidator); ok {
		inv.Invalidate()
	}
}

// Release unbinds the context. Safe to call more than once.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	if r, ok := h.drawable.(Releaser); ok {
		r.Release()
	}
}
