package graphics_test

import (
	"testing"

	"surfview/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraViewIsIdentity(t *testing.T) {
	// Eye at origin looking down -Z with +Y up is the GL default frame.
	v := graphics.NewCamera().View()
	assert.True(t, v.ApproxEqualThreshold(mgl32.Ident4(), 1e-6))
}

func TestCameraProjectionAspect(t *testing.T) {
	c := graphics.NewCamera()
	wide := c.Projection(800, 400)
	square := c.Projection(400, 400)

	// Column 0 row 0 holds f/aspect.
	assert.InDelta(t, square[0]/2, wide[0], 1e-6)
	assert.InDelta(t, square[5], wide[5], 1e-6)
}

func TestCameraProjectionDegenerateSize(t *testing.T) {
	c := graphics.NewCamera()
	assert.Equal(t, c.Projection(1, 1), c.Projection(0, 0))
	assert.Equal(t, c.Projection(1, 1), c.Projection(-5, 10))
}

func TestCameraClipsBetweenPlanes(t *testing.T) {
	c := graphics.NewCamera()
	p := c.Projection(640, 480)

	project := func(z float32) float32 {
		clip := p.Mul4x1(mgl32.Vec4{0, 0, z, 1})
		return clip.Z() / clip.W()
	}
	assert.InDelta(t, -1, project(-c.NearPlane), 1e-4)
	assert.InDelta(t, 1, project(-c.FarPlane), 1e-3)
}
