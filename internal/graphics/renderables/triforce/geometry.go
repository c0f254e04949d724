package triforce

import "github.com/go-gl/mathgl/mgl32"

// Triangle is a single upright triangle of height one, with interleaved
// position and color. Each piece of the triforce draws it once.
var Triangle = []float32{
	0.0, 1.0, 0.0, 0.99, 0.63, 0.01,
	-0.5, 0.0, 0.0, 0.99, 0.63, 0.01,
	0.5, 0.0, 0.0, 0.99, 0.63, 0.01,
}

// Pieces are the model transforms for the top, bottom-left and
// bottom-right triangles.
var Pieces = [3]mgl32.Mat4{
	mgl32.Translate3D(0, 0.5, -3),
	mgl32.Translate3D(-0.5, -0.5, -3),
	mgl32.Translate3D(0.5, -0.5, -3),
}
