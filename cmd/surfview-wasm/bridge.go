//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"surfview/internal/renderable"
	"surfview/internal/surface"
)

// jsSurface drives a surface object built by page script, e.g. a
// wasm-bindgen class exposing render(width, height, elapsed) and free().
type jsSurface struct {
	obj js.Value
}

func (s *jsSurface) Render(width, height int, elapsedSeconds float64) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = jsError(p)
		}
	}()
	s.obj.Call("render", width, height, elapsedSeconds)
	return nil
}

func (s *jsSurface) Dispose() {
	defer func() { _ = recover() }()
	if free := s.obj.Get("free"); free.Type() == js.TypeFunction {
		s.obj.Call("free")
	}
}

// jsConstructor looks up the class named kind on module at construction
// time and instantiates it with the drawable id.
func jsConstructor(doc *surface.Document, module js.Value, kind renderable.Kind) renderable.Constructor {
	return func(drawableID string) (r renderable.Renderable, err error) {
		if _, _, err := doc.BoundContext(drawableID); err != nil {
			return nil, err
		}
		class := module.Get(string(kind))
		if class.Type() != js.TypeFunction {
			return nil, fmt.Errorf("no %s constructor exported", kind)
		}
		defer func() {
			if p := recover(); p != nil {
				r, err = nil, jsError(p)
			}
		}()
		return &jsSurface{obj: class.New(drawableID)}, nil
	}
}

func jsError(p any) error {
	switch e := p.(type) {
	case js.Error:
		return fmt.Errorf("script error: %w", e)
	case error:
		return e
	default:
		return errors.New(fmt.Sprint(p))
	}
}
