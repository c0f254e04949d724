// Package triforce draws three stacked triangles. The figure is static; it
// ignores elapsed time.
package triforce

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

type Triforce struct {
	shader   *graphics.Shader
	camera   graphics.Camera
	profiler *profiling.Frame
	vao      uint32
	vbo      uint32
}

// New returns a constructor that binds a triforce to a drawable in doc.
func New(doc *surface.Document, profiler *profiling.Frame) renderable.Constructor {
	return func(drawableID string) (renderable.Renderable, error) {
		if _, _, err := doc.BoundContext(drawableID); err != nil {
			return nil, err
		}
		tf := &Triforce{camera: graphics.NewCamera(), profiler: profiler}
		if err := tf.init(); err != nil {
			tf.Dispose()
			return nil, err
		}
		return tf, nil
	}
}

func (tf *Triforce) init() error {
	var err error
	tf.shader, err = graphics.NewShader(vertSrc, fragSrc)
	if err != nil {
		return fmt.Errorf("triforce shader: %w", err)
	}
	if err := tf.shader.Resolve("m", "v", "p"); err != nil {
		return fmt.Errorf("triforce shader: %w", err)
	}

	gl.GenVertexArrays(1, &tf.vao)
	gl.BindVertexArray(tf.vao)

	gl.GenBuffers(1, &tf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Triangle)*4, gl.Ptr(Triangle), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.BindVertexArray(0)

	return graphics.CheckError("triforce setup")
}

// Render draws one frame
func (tf *Triforce) Render(width, height int, _ float64) error {
	if tf.profiler != nil {
		defer tf.profiler.Track("triforce.render")()
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	tf.shader.Use()
	tf.shader.SetMatrix4("v", tf.camera.View())
	tf.shader.SetMatrix4("p", tf.camera.Projection(width, height))

	gl.BindVertexArray(tf.vao)
	for _, m := range Pieces {
		tf.shader.SetMatrix4("m", m)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
	}
	gl.BindVertexArray(0)

	return graphics.CheckError("triforce render")
}

// Dispose cleans up OpenGL resources
func (tf *Triforce) Dispose() {
	if tf.vao != 0 {
		gl.DeleteVertexArrays(1, &tf.vao)
		tf.vao = 0
	}
	if tf.vbo != 0 {
		gl.DeleteBuffers(1, &tf.vbo)
		tf.vbo = 0
	}
	if tf.shader != nil {
		tf.shader.Dispose()
		tf.shader = nil
	}
}
