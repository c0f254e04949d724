package config

import "sync"

const (
	DefaultCanvasID     = "parametric-surface"
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// CanvasSettings holds the drawable contract shared by the host and the
// renderable constructors: both must agree on the id.
type CanvasSettings struct {
	mu     sync.RWMutex
	id     string
	width  int
	height int
}

var globalCanvasSettings = &CanvasSettings{
	id:     DefaultCanvasID,
	width:  DefaultCanvasWidth,
	height: DefaultCanvasHeight,
}

// GetCanvasID returns the drawable id
func GetCanvasID() string {
	globalCanvasSettings.mu.RLock()
	defer globalCanvasSettings.mu.RUnlock()
	return globalCanvasSettings.id
}

// SetCanvasID sets the drawable id; empty ids are ignored
func SetCanvasID(id string) {
	if id == "" {
		return
	}
	globalCanvasSettings.mu.Lock()
	defer globalCanvasSettings.mu.Unlock()
	globalCanvasSettings.id = id
}

// GetCanvasSize returns the drawable width and height in pixels
func GetCanvasSize() (int, int) {
	globalCanvasSettings.mu.RLock()
	defer globalCanvasSettings.mu.RUnlock()
	return globalCanvasSettings.width, globalCanvasSettings.height
}

// SetCanvasSize sets the drawable size; non-positive values fall back to the defaults
func SetCanvasSize(width, height int) {
	globalCanvasSettings.mu.Lock()
	defer globalCanvasSettings.mu.Unlock()
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	globalCanvasSettings.width = width
	globalCanvasSettings.height = height
}
