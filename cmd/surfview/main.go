//go:build !js

// Command surfview animates parametric surfaces in a desktop window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"surfview/internal/config"
	"surfview/internal/controller"
	"surfview/internal/eventloop"
	"surfview/internal/logging"
	"surfview/internal/profiling"
	"surfview/internal/renderable"
	"surfview/internal/scheduler"
	"surfview/internal/surface"
	"surfview/internal/surface/desktop"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	kind := flag.String("kind", "", "surface shown at startup (overrides the settings file)")
	flag.Parse()

	if err := run(*configPath, *kind); err != nil {
		fmt.Fprintln(os.Stderr, "surfview:", err)
		os.Exit(1)
	}
}

func run(configPath, kind string) error {
	if configPath != "" {
		f, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := f.Apply(); err != nil {
			return err
		}
	}
	if kind != "" {
		config.SetDefaultKind(kind)
	}
	level := new(slog.LevelVar)
	level.Set(config.GetLogLevel())
	logging.SetLogger(logging.New(os.Stderr, level))
	log := logging.Logger()

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	width, height := config.GetCanvasSize()
	window, err := desktop.NewWindow(windowTitle, width, height)
	if err != nil {
		return err
	}
	defer window.Destroy()

	drawable := desktop.NewDrawable(config.GetCanvasID(), window)
	doc := surface.NewDocument()
	if err := doc.Attach(drawable); err != nil {
		return err
	}
	defer doc.Detach(drawable.ID())

	loop := eventloop.New(
		eventloop.WithPoll(func() bool {
			glfw.PollEvents()
			return !window.ShouldClose()
		}),
		eventloop.WithPresent(drawable.Present),
	)

	profiler := profiling.NewFrame(loop.Now)
	registry := newRegistry(doc, profiler)

	defaultKind, err := registry.Parse(config.GetDefaultKind())
	if err != nil {
		// Let the controller report it as a surface failure.
		defaultKind = renderable.Kind(config.GetDefaultKind())
	}

	failure := &failureScreen{drawable: drawable, window: window, loop: loop}
	ctrl := controller.New(drawable, registry, loop,
		controller.WithDefaultKind(defaultKind),
		controller.WithSchedulerOptions(
			scheduler.WithFrameRate(config.GetFrameRate()),
			scheduler.WithProfiler(profiler),
		),
		controller.OnStateChange(func(s controller.State) {
			switch s := s.(type) {
			case controller.Running:
				window.SetTitle(windowTitle + " - " + string(s.Kind))
			case controller.ContextFailed:
				// No GL to draw with; the title and log are all we have.
				window.SetTitle(windowTitle + " - " + controller.FailureMessage)
			default:
				if controller.Terminal(s) {
					failure.show()
				}
			}
		}),
	)
	defer failure.dispose()

	bindKeys(window, ctrl, registry)
	window.SetFramebufferSizeCallback(func(*glfw.Window, int, int) {
		failure.refresh()
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if configPath != "" {
		err := config.Watch(ctx, configPath, func(f *config.File, err error) {
			loop.Post(func() { reload(f, err, level, ctrl, registry) })
		})
		if err != nil {
			log.Warn("settings will not be reloaded", "err", err)
		}
	}

	ctrl.Activate()
	defer ctrl.Unmount()

	log.Info("surfview started", "kind", defaultKind, "fps", config.GetFrameRate())

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Info("surfview stopped", "state", ctrl.State())
	return nil
}

// reload applies a changed settings file. The log level takes effect at
// once and a new default kind replaces the running surface; canvas and
// frame rate changes wait for a restart.
func reload(f *config.File, err error, level *slog.LevelVar, ctrl *controller.Controller, registry *renderable.Registry) {
	log := logging.Logger()
	if err != nil {
		log.Warn("settings reload failed", "err", err)
		return
	}
	if err := f.Apply(); err != nil {
		log.Warn("settings reload failed", "err", err)
		return
	}
	level.Set(config.GetLogLevel())
	log.Info("settings reloaded", "level", level.Level())

	if f.Render.DefaultKind == "" {
		return
	}
	kind, err := registry.Parse(f.Render.DefaultKind)
	if err != nil {
		log.Warn("settings name an unknown surface", "err", err)
		return
	}
	if running, ok := ctrl.State().(controller.Running); ok && running.Kind != kind {
		choose(ctrl, kind)
	}
}
