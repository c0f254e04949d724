// Package input maps glfw key events to surface selector actions.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical selector action, not a physical key
type Action int

const (
	ActionNextSurface Action = iota
	ActionSelect1
	ActionSelect2
	ActionSelect3
	ActionSelect4
	ActionSelect5
	ActionSelect6
	ActionSelect7
	ActionSelect8
	ActionSelect9
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Bindings maps physical keys to actions and tracks which actions are held,
// so auto-repeat never re-triggers one. Not safe for concurrent use; glfw
// delivers key events on the thread polling for them.
type Bindings struct {
	keys map[glfw.Key]Action
	held [ActionCount]bool
}

// NewBindings creates bindings with the default layout: Tab cycles,
// 1..9 select directly, Escape quits.
func NewBindings() *Bindings {
	b := &Bindings{keys: make(map[glfw.Key]Action)}
	b.Bind(glfw.KeyTab, ActionNextSurface)
	for i := 0; i < 9; i++ {
		b.Bind(glfw.Key1+glfw.Key(i), ActionSelect1+Action(i))
	}
	b.Bind(glfw.KeyEscape, ActionQuit)
	return b
}

// Bind binds a physical key to an action, replacing any earlier binding
// for that key. Several keys may share one action.
func (b *Bindings) Bind(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	b.keys[key] = action
}

// Unbind removes the binding for a key
func (b *Bindings) Unbind(key glfw.Key) {
	delete(b.keys, key)
}

// Handle processes a key event and returns the action it triggers, if any.
// Only the press edge triggers; repeats and releases do not.
func (b *Bindings) Handle(key glfw.Key, event glfw.Action) (Action, bool) {
	act, ok := b.keys[key]
	if !ok {
		return 0, false
	}
	switch event {
	case glfw.Press:
		if b.held[act] {
			return 0, false
		}
		b.held[act] = true
		return act, true
	case glfw.Release:
		b.held[act] = false
	}
	return 0, false
}

// SelectIndex returns the zero-based kind index a select action picks
func SelectIndex(a Action) (int, bool) {
	if a < ActionSelect1 || a > ActionSelect9 {
		return 0, false
	}
	return int(a - ActionSelect1), true
}
