//go:build !js

package main

import (
	"errors"

	"surfview/internal/controller"
	"surfview/internal/input"
	"surfview/internal/logging"
	"surfview/internal/renderable"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// bindKeys wires the surface selector to the window's key events
func bindKeys(window *glfw.Window, ctrl *controller.Controller, registry *renderable.Registry) {
	bindings := input.NewBindings()
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, event glfw.Action, _ glfw.ModifierKey) {
		act, ok := bindings.Handle(key, event)
		if !ok {
			return
		}
		switch act {
		case input.ActionQuit:
			w.SetShouldClose(true)
		case input.ActionNextSurface:
			if running, ok := ctrl.State().(controller.Running); ok {
				choose(ctrl, registry.Next(running.Kind))
			}
		default:
			kinds := registry.Kinds()
			if i, ok := input.SelectIndex(act); ok && i < len(kinds) {
				choose(ctrl, kinds[i])
			}
		}
	})
}

func choose(ctrl *controller.Controller, kind renderable.Kind) {
	if kind == "" {
		return
	}
	if err := ctrl.Swap(kind); err != nil {
		level := logging.Logger().Warn
		if errors.Is(err, controller.ErrNotRunning) {
			level = logging.Logger().Debug
		}
		level("surface selection ignored", "kind", kind, "err", err)
	}
}
