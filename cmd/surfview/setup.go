//go:build !js

package main

import (
	"surfview/internal/controller"
	"surfview/internal/graphics"
	"surfview/internal/graphics/renderables/torus"
	"surfview/internal/graphics/renderables/triforce"
	"surfview/internal/logging"
	"surfview/internal/profiling"
	"surfview/internal/renderable"
	"surfview/internal/surface"
	"surfview/internal/surface/desktop"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const windowTitle = "surfview"

// newRegistry registers every surface kind the desktop build can draw.
// Registration order is the order Tab cycles through.
func newRegistry(doc *surface.Document, profiler *profiling.Frame) *renderable.Registry {
	r := renderable.NewRegistry()
	r.Register(renderable.Torus, torus.New(doc, profiler))
	r.Register(renderable.Triforce, triforce.New(doc, profiler))
	return r
}

// failureScreen paints the failure message over the window once the
// controller reaches a terminal state with a live context.
type failureScreen struct {
	drawable *desktop.Drawable
	window   *glfw.Window
	loop     interface{ RequestAnimationFrame(func()) }

	view   *graphics.FailureView
	active bool
}

func (f *failureScreen) show() {
	f.window.SetTitle(windowTitle + " - " + controller.FailureMessage)
	if _, ok := f.drawable.BoundContext(); !ok {
		return
	}
	if f.view == nil {
		view, err := graphics.NewFailureView(controller.FailureMessage)
		if err != nil {
			logging.Logger().Error("failed to build failure view", "err", err)
			return
		}
		f.view = view
	}
	f.active = true
	f.refresh()
}

// refresh queues a repaint, e.g. after a resize.
func (f *failureScreen) refresh() {
	if !f.active {
		return
	}
	f.loop.RequestAnimationFrame(func() {
		if !f.active || f.view == nil {
			return
		}
		w, h := f.drawable.Size()
		if err := f.view.Render(w, h); err != nil {
			logging.Logger().Error("failed to draw failure view", "err", err)
			return
		}
		f.drawable.Invalidate()
	})
}

func (f *failureScreen) dispose() {
	f.active = false
	if f.view != nil {
		f.view.Dispose()
		f.view = nil
	}
}
