// Package torus draws a rotating point-cloud torus.
package torus

import (
	"fmt"

	"surfview/internal/graphics"
	"surfview/internal/profiling"
	"surfview/internal/renderable"
	"surfview/internal/surface"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;
uniform mat4 m;
uniform mat4 v;
uniform mat4 p;
out vec3 vColor;
void main() {
	vColor = color;
	gl_PointSize = 2.0;
	gl_Position = p * v * m * vec4(position, 1.0);
}
`

const fragSrc = `#version 410 core
in vec3 vColor;
out vec4 FragColor;
void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// Torus implements renderable.Renderable
type Torus struct {
	shader   *graphics.Shader
	camera   graphics.Camera
	profiler *profiling.Frame
	vao      uint32
	vbo      uint32
	count    int32
}

// New returns a constructor that binds a torus to a drawable in doc. The
// drawable must already hold a context.
func New(doc *surface.Document, profiler *profiling.Frame) renderable.Constructor {
	return func(drawableID string) (renderable.Renderable, error) {
		if _, _, err := doc.BoundContext(drawableID); err != nil {
			return nil, err
		}
		t := &Torus{camera: graphics.NewCamera(), profiler: profiler}
		if err := t.init(); err != nil {
			t.Dispose()
			return nil, err
		}
		return t, nil
	}
}

func (t *Torus) init() error {
	var err error
	t.shader, err = graphics.NewShader(vertSrc, fragSrc)
	if err != nil {
		return fmt.Errorf("torus shader: %w", err)
	}
	if err := t.shader.Resolve("m", "v", "p"); err != nil {
		return fmt.Errorf("torus shader: %w", err)
	}

	vertices := Vertices()
	t.count = int32(len(vertices) / 6)

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.BindVertexArray(0)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return graphics.CheckError("torus setup")
}

// Render draws one frame
func (t *Torus) Render(width, height int, elapsedSeconds float64) error {
	if t.profiler != nil {
		defer t.profiler.Track("torus.render")()
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	t.shader.Use()
	t.shader.SetMatrix4("m", Model(elapsedSeconds))
	t.shader.SetMatrix4("v", t.camera.View())
	t.shader.SetMatrix4("p", t.camera.Projection(width, height))

	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.POINTS, 0, t.count)
	gl.BindVertexArray(0)

	return graphics.CheckError("torus render")
}

// Dispose cleans up OpenGL resources
func (t *Torus) Dispose() {
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
		t.vao = 0
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
		t.vbo = 0
	}
	if t.shader != nil {
		t.shader.Dispose()
		t.shader = nil
	}
}
