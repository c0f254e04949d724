package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File mirrors the optional settings file. Zero values leave the current
// setting untouched.
//
//	[canvas]
//	id = "parametric-surface"
//	width = 800
//	height = 600
//
//	[render]
//	frame_rate = 60
//	default_kind = "Torus"
//	log_level = "debug"
type File struct {
	Canvas struct {
		ID     string `toml:"id"`
		Width  int    `toml:"width"`
		Height int    `toml:"height"`
	} `toml:"canvas"`
	Render struct {
		FrameRate   int    `toml:"frame_rate"`
		DefaultKind string `toml:"default_kind"`
		LogLevel    string `toml:"log_level"`
	} `toml:"render"`
}

// Load reads and parses a settings file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes settings from TOML, rejecting unknown keys
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &f, nil
}

// Apply copies the non-zero values of f into the global settings
func (f *File) Apply() error {
	if f.Render.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(f.Render.LogLevel)); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
		SetLogLevel(level)
	}
	if f.Render.FrameRate != 0 {
		SetFrameRate(f.Render.FrameRate)
	}
	if f.Render.DefaultKind != "" {
		SetDefaultKind(f.Render.DefaultKind)
	}
	SetCanvasID(f.Canvas.ID)
	if f.Canvas.Width != 0 || f.Canvas.Height != 0 {
		w, h := GetCanvasSize()
		if f.Canvas.Width != 0 {
			w = f.Canvas.Width
		}
		if f.Canvas.Height != 0 {
			h = f.Canvas.Height
		}
		SetCanvasSize(w, h)
	}
	return nil
}

// Reset restores every setting to its built-in default
func Reset() {
	SetFrameRate(DefaultFrameRate)
	SetDefaultKind(DefaultKind)
	SetLogLevel(slog.LevelInfo)
	SetCanvasID(DefaultCanvasID)
	SetCanvasSize(DefaultCanvasWidth, DefaultCanvasHeight)
}
