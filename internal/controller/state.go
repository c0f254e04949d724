package controller

import (
	"fmt"

	"surfview/internal/renderable"
	"surfview/internal/scheduler"
)

// State is the controller's lifecycle state. The variants below are the
// only implementations.
type State interface {
	fmt.Stringer
	state()
}

// Uninitialized is the state before activation
type Uninitialized struct{}

// ContextFailed is terminal: no rendering context could be acquired
type ContextFailed struct {
	Err error
}

// SurfaceFailed is terminal: the initial renderable could not be constructed
type SurfaceFailed struct {
	Kind renderable.Kind
	Err  error
}

// Running holds the active renderable and the schedule animating it
type Running struct {
	Kind       renderable.Kind
	Renderable renderable.Renderable
	Animation  *scheduler.Handle
}

// Errored is terminal: a swap or a render call failed
type Errored struct {
	Message string
	Err     error
}

func (Uninitialized) state() {}
func (ContextFailed) state() {}
func (SurfaceFailed) state() {}
func (Running) state()       {}
func (Errored) state()       {}

func (Uninitialized) String() string { return "Uninitialized" }

func (s ContextFailed) String() string { return fmt.Sprintf("ContextFailed(%v)", s.Err) }

func (s SurfaceFailed) String() string { return fmt.Sprintf("SurfaceFailed(%s: %v)", s.Kind, s.Err) }

func (s Running) String() string {
	var id uint64
	if s.Animation != nil {
		id = s.Animation.ID()
	}
	return fmt.Sprintf("Running(%s, animation %d)", s.Kind, id)
}

func (s Errored) String() string { return fmt.Sprintf("Errored(%s: %v)", s.Message, s.Err) }

// Terminal reports whether s ends the controller's life for this mount
func Terminal(s State) bool {
	switch s.(type) {
	case ContextFailed, SurfaceFailed, Errored:
		return true
	}
	return false
}
