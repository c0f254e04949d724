package graphics

import (
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const failureVert = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
out vec2 vUV;
void main() {
	vUV = aUV;
	gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const failureFrag = `#version 410 core
in vec2 vUV;
uniform sampler2D uText;
out vec4 FragColor;
void main() {
	FragColor = texture(uText, vUV);
}
`

// Image rows run top to bottom, so v is flipped.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,
	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

// FailureView paints a static message over the whole drawable. It
// re-rasterizes only when the target size changes.
type FailureView struct {
	Message string

	shader  *Shader
	vao     uint32
	vbo     uint32
	texture uint32
	width   int
	height  int
}

// NewFailureView allocates the quad and shader. A GL context must be current.
func NewFailureView(message string) (*FailureView, error) {
	shader, err := NewShader(failureVert, failureFrag)
	if err != nil {
		return nil, err
	}
	if err := shader.Resolve("uText"); err != nil {
		shader.Dispose()
		return nil, err
	}
	v := &FailureView{Message: message, shader: shader}

	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &v.texture)
	gl.BindTexture(gl.TEXTURE_2D, v.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return v, CheckError("failure view setup")
}

// Render draws the message into a width×height viewport.
func (v *FailureView) Render(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width != v.width || height != v.height {
		if err := v.upload(width, height); err != nil {
			return err
		}
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	v.shader.Use()
	v.shader.SetInt("uText", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, v.texture)
	gl.BindVertexArray(v.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	return CheckError("failure view render")
}

func (v *FailureView) upload(width, height int) error {
	img, err := RasterizeMessage(v.Message, width, height, color.White, color.Black)
	if err != nil {
		return err
	}
	gl.BindTexture(gl.TEXTURE_2D, v.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	v.width, v.height = width, height
	return nil
}

// Dispose cleans up OpenGL resources
func (v *FailureView) Dispose() {
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
		v.vao = 0
	}
	if v.vbo != 0 {
		gl.DeleteBuffers(1, &v.vbo)
		v.vbo = 0
	}
	if v.texture != 0 {
		gl.DeleteTextures(1, &v.texture)
		v.texture = 0
	}
	if v.shader != nil {
		v.shader.Dispose()
		v.shader = nil
	}
}
