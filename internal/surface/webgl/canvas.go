//go:build js && wasm

// Package webgl binds surfaces to HTML canvas elements.
package webgl

import (
	"syscall/js"

	"surfview/internal/surface"
)

// Canvas adapts an HTML canvas element to surface.Drawable
type Canvas struct {
	canvas js.Value
	ctx    js.Value
	bound  bool
}

var _ surface.Drawable = (*Canvas)(nil)

// CreateCanvas appends a canvas element with the given id and size to parent
func CreateCanvas(parent js.Value, id string, width, height int) *Canvas {
	doc := js.Global().Get("document")
	canvas := doc.Call("createElement", "canvas")
	canvas.Set("id", id)
	canvas.Set("width", width)
	canvas.Set("height", height)
	parent.Call("appendChild", canvas)
	return &Canvas{canvas: canvas}
}

// Element returns the canvas element
func (d *Canvas) Element() js.Value { return d.canvas }

func (d *Canvas) ID() string { return d.canvas.Get("id").String() }

func (d *Canvas) Size() (int, int) {
	return d.canvas.Get("width").Int(), d.canvas.Get("height").Int()
}

// GetContext requests a WebGL context with the given attributes
func (d *Canvas) GetContext(attrs surface.ContextAttributes) (surface.Context, error) {
	if d.bound {
		return nil, surface.ErrAlreadyBound
	}
	opts := js.ValueOf(map[string]any{
		"antialias": attrs.Antialias,
		"depth":     attrs.Depth,
	})
	ctx := d.canvas.Call("getContext", "webgl", opts)
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, surface.ErrNoContext
	}
	d.ctx = ctx
	d.bound = true
	return ctx, nil
}

func (d *Canvas) BoundContext() (surface.Context, bool) {
	if !d.bound {
		return nil, false
	}
	return d.ctx, true
}

// Release forgets the context; the browser keeps it bound to the element
func (d *Canvas) Release() {
	d.bound = false
	d.ctx = js.Undefined()
}

// ReplaceWith swaps the canvas element for node, used for the failure view
func (d *Canvas) ReplaceWith(node js.Value) {
	parent := d.canvas.Get("parentNode")
	if parent.IsNull() || parent.IsUndefined() {
		return
	}
	parent.Call("replaceChild", node, d.canvas)
}
