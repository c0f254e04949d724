// Package renderable defines the contract for externally supplied surface
// objects and the factory that constructs them by kind.
package renderable

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects which renderable variant to construct
type Kind string

const (
	Torus    Kind = "Torus"
	Triforce Kind = "Triforce"
)

// Renderable draws one frame into the drawable it was constructed for
type Renderable interface {
	Render(width, height int, elapsedSeconds float64) error
}

// Disposer is implemented by renderables holding resources that must be
// freed once they stop being animated
type Disposer interface {
	Dispose()
}

// Dispose frees r if it implements Disposer
func Dispose(r Renderable) {
	if d, ok := r.(Disposer); ok {
		d.Dispose()
	}
}

// Constructor binds a new renderable to the drawable with the given id
type Constructor func(drawableID string) (Renderable, error)

var (
	ErrUnknownKind = errors.New("unknown surface kind")

	errNilRenderable = errors.New("constructor returned no renderable")
)

// ConstructionError reports a constructor that could not bind to its drawable
type ConstructionError struct {
	Kind       Kind
	DrawableID string
	Err        error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct %s on %q: %v", e.Kind, e.DrawableID, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Registry is the renderable factory: an ordered set of known kinds and
// their constructors.
type Registry struct {
	order []Kind
	ctors map[Kind]Constructor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[Kind]Constructor)}
}

// Register adds or replaces the constructor for kind. New kinds keep
// registration order in Kinds.
func (r *Registry) Register(kind Kind, ctor Constructor) {
	if _, ok := r.ctors[kind]; !ok {
		r.order = append(r.order, kind)
	}
	r.ctors[kind] = ctor
}

// Known reports whether kind has a constructor
func (r *Registry) Known(kind Kind) bool {
	_, ok := r.ctors[kind]
	return ok
}

// Kinds returns the known kinds in registration order
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.order))
	copy(out, r.order)
	return out
}

// Parse maps a selector label to a known kind, ignoring case
func (r *Registry) Parse(label string) (Kind, error) {
	label = strings.TrimSpace(label)
	for _, k := range r.order {
		if strings.EqualFold(string(k), label) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, label)
}

// Create constructs a renderable of the given kind bound to drawableID.
// Constructor errors and panics come back as *ConstructionError.
func (r *Registry) Create(kind Kind, drawableID string) (rend Renderable, err error) {
	ctor, ok := r.ctors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	defer func() {
		if p := recover(); p != nil {
			rend = nil
			err = &ConstructionError{Kind: kind, DrawableID: drawableID, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	rend, err = ctor(drawableID)
	if err != nil {
		return nil, &ConstructionError{Kind: kind, DrawableID: drawableID, Err: err}
	}
	if rend == nil {
		return nil, &ConstructionError{Kind: kind, DrawableID: drawableID, Err: errNilRenderable}
	}
	return rend, nil
}

// Next returns the kind registered after kind, wrapping around. An unknown
// kind yields the first registered one; an empty registry yields "".
func (r *Registry) Next(kind Kind) Kind {
	if len(r.order) == 0 {
		return ""
	}
	for i, k := range r.order {
		if k == kind {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}
