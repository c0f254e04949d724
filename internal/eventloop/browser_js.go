//go:build js && wasm

package eventloop

import (
	"syscall/js"
	"time"
)

// Browser maps the loop contract onto the page's own timer and paint
// primitives. Callbacks run on the JS event loop.
type Browser struct {
	window js.Value
}

// NewBrowser binds to the global window object
func NewBrowser() *Browser {
	return &Browser{window: js.Global()}
}

// Now returns the current wall-clock time
func (b *Browser) Now() time.Time {
	return time.Now()
}

// SetInterval wraps window.setInterval
func (b *Browser) SetInterval(period time.Duration, fn func()) (clear func()) {
	cleared := false
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if !cleared {
			fn()
		}
		return nil
	})
	ms := float64(period) / float64(time.Millisecond)
	id := b.window.Call("setInterval", cb, ms)
	return func() {
		if cleared {
			return
		}
		cleared = true
		b.window.Call("clearInterval", id)
		cb.Release()
	}
}

// RequestAnimationFrame wraps window.requestAnimationFrame
func (b *Browser) RequestAnimationFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	b.window.Call("requestAnimationFrame", cb)
}
