package config

import (
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultFrameRate = 60
	MinFrameRate     = 1
	MaxFrameRate     = 240

	DefaultKind = "Torus"
)

// RenderSettings holds animation and surface selection configuration
type RenderSettings struct {
	mu          sync.RWMutex
	frameRate   int // frames per second
	defaultKind string
	logLevel    slog.Level
}

var globalRenderSettings = &RenderSettings{
	frameRate:   DefaultFrameRate,
	defaultKind: DefaultKind,
	logLevel:    slog.LevelInfo,
}

// GetFrameRate returns the target frame rate in frames per second
func GetFrameRate() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.frameRate
}

// SetFrameRate sets the target frame rate
func SetFrameRate(fps int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if fps < MinFrameRate {
		fps = MinFrameRate
	}
	if fps > MaxFrameRate {
		fps = MaxFrameRate
	}

	globalRenderSettings.frameRate = fps
}

// GetFrameInterval returns the wake-up period and minimum spacing between draws
func GetFrameInterval() time.Duration {
	return time.Second / time.Duration(GetFrameRate())
}

// GetDefaultKind returns the surface kind constructed on activation
func GetDefaultKind() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.defaultKind
}

// SetDefaultKind sets the surface kind constructed on activation.
// An empty kind restores the built-in default.
func SetDefaultKind(kind string) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if kind == "" {
		kind = DefaultKind
	}
	globalRenderSettings.defaultKind = kind
}

// GetLogLevel returns the minimum level hosts log at
func GetLogLevel() slog.Level {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.logLevel
}

// SetLogLevel sets the minimum level hosts log at
func SetLogLevel(level slog.Level) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.logLevel = level
}
