//go:build !js

// Package desktop binds surfaces to glfw windows with an OpenGL 4.1 core context.
package desktop

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"surfview/internal/surface"
)

// GLContext is the context a Drawable binds
type GLContext struct {
	Window    *glfw.Window
	Version   string
	Antialias bool
}

// Drawable adapts a glfw window to surface.Drawable. All methods
// must be called on the thread that owns the window.
type Drawable struct {
	id     string
	window *glfw.Window
	ctx    *GLContext
	dirty  bool
}

var _ surface.Drawable = (*Drawable)(nil)

// NewWindow creates a window sized to the canvas contract.
// Multisampling is requested here because glfw fixes it at creation time.
func NewWindow(title string, width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	return window, nil
}

// NewDrawable wraps window under the given id
func NewDrawable(id string, window *glfw.Window) *Drawable {
	return &Drawable{id: id, window: window}
}

func (d *Drawable) ID() string { return d.id }

// Size returns the framebuffer size in pixels
func (d *Drawable) Size() (int, int) {
	return d.window.GetFramebufferSize()
}

// GetContext makes the window's context current and loads GL
func (d *Drawable) GetContext(attrs surface.ContextAttributes) (surface.Context, error) {
	if d.ctx != nil {
		return nil, surface.ErrAlreadyBound
	}

	d.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", surface.ErrNoContext, err)
	}

	if attrs.Antialias {
		gl.Enable(gl.MULTISAMPLE)
	}
	if attrs.Depth {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LEQUAL)
	}

	// Frame pacing is the scheduler's job, not vsync's
	glfw.SwapInterval(0)

	d.ctx = &GLContext{
		Window:    d.window,
		Version:   gl.GoStr(gl.GetString(gl.VERSION)),
		Antialias: attrs.Antialias,
	}
	return d.ctx, nil
}

func (d *Drawable) BoundContext() (surface.Context, bool) {
	if d.ctx == nil {
		return nil, false
	}
	return d.ctx, true
}

// Invalidate marks the back buffer as holding a new frame
func (d *Drawable) Invalidate() { d.dirty = true }

// Present swaps buffers if anything was drawn since the last call
func (d *Drawable) Present() {
	if !d.dirty {
		return
	}
	d.dirty = false
	d.window.SwapBuffers()
}

func (d *Drawable) Release() {
	d.ctx = nil
	glfw.DetachCurrentContext()
}
