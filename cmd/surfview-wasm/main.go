//go:build js && wasm

// Command surfview-wasm mounts the surface controller on a browser canvas.
// Page script selects surfaces through the exported surfviewSwap(label).
package main

import (
	"syscall/js"

	"surfview/internal/config"
	"surfview/internal/controller"
	"surfview/internal/eventloop"
	"surfview/internal/logging"
	"surfview/internal/renderable"
	"surfview/internal/scheduler"
	"surfview/internal/surface"
	"surfview/internal/surface/webgl"
)

// consoleWriter forwards log lines to console.log
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", string(p))
	return len(p), nil
}

// applySettings reads TOML settings the page may have left in a global
func applySettings(v js.Value) error {
	if v.Type() != js.TypeString {
		return nil
	}
	f, err := config.Parse([]byte(v.String()))
	if err != nil {
		return err
	}
	return f.Apply()
}

func main() {
	settingsErr := applySettings(js.Global().Get("surfviewConfig"))
	logging.SetLogger(logging.New(consoleWriter{}, config.GetLogLevel()))
	log := logging.Logger()
	if settingsErr != nil {
		log.Warn("ignoring page settings", "err", settingsErr)
	}

	document := js.Global().Get("document")
	parent := document.Get("body")
	width, height := config.GetCanvasSize()
	canvas := webgl.CreateCanvas(parent, config.GetCanvasID(), width, height)

	doc := surface.NewDocument()
	if err := doc.Attach(canvas); err != nil {
		log.Error("failed to attach canvas", "err", err)
		return
	}

	module := js.Global().Get("surfviewModule")
	if module.IsUndefined() || module.IsNull() {
		module = js.Global()
	}
	registry := renderable.NewRegistry()
	for _, kind := range []renderable.Kind{renderable.Torus, renderable.Triforce} {
		registry.Register(kind, jsConstructor(doc, module, kind))
	}

	defaultKind, err := registry.Parse(config.GetDefaultKind())
	if err != nil {
		defaultKind = renderable.Kind(config.GetDefaultKind())
	}

	ctrl := controller.New(canvas, registry, eventloop.NewBrowser(),
		controller.WithDefaultKind(defaultKind),
		controller.WithSchedulerOptions(scheduler.WithFrameRate(config.GetFrameRate())),
		controller.OnStateChange(func(s controller.State) {
			if !controller.Terminal(s) {
				return
			}
			h1 := document.Call("createElement", "h1")
			h1.Set("textContent", controller.FailureMessage)
			canvas.ReplaceWith(h1)
		}),
	)

	swap := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return "missing surface label"
		}
		kind, err := registry.Parse(args[0].String())
		if err != nil {
			return err.Error()
		}
		if err := ctrl.Swap(kind); err != nil {
			return err.Error()
		}
		return nil
	})
	js.Global().Set("surfviewSwap", swap)

	done := make(chan struct{})
	unload := js.FuncOf(func(this js.Value, args []js.Value) any {
		ctrl.Unmount()
		close(done)
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", unload, map[string]any{"once": true})

	ctrl.Activate()
	log.Info("surfview mounted", "canvas", canvas.ID(), "kind", defaultKind)

	<-done
	js.Global().Delete("surfviewSwap")
	swap.Release()
	unload.Release()
}
