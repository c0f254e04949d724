package triforce_test

import (
	"testing"

	"surfview/internal/graphics"
	"surfview/internal/graphics/renderables/triforce"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertex(i int) mgl32.Vec4 {
	v := triforce.Triangle[i*6:]
	return mgl32.Vec4{v[0], v[1], v[2], 1}
}

func TestPiecesTile(t *testing.T) {
	// The apex of each bottom piece meets a base corner of the top piece.
	top := triforce.Pieces[0]
	left := triforce.Pieces[1]
	right := triforce.Pieces[2]

	assert.True(t, left.Mul4x1(vertex(0)).ApproxEqual(top.Mul4x1(vertex(1))))
	assert.True(t, right.Mul4x1(vertex(0)).ApproxEqual(top.Mul4x1(vertex(2))))
	// And the bottom pieces share a corner.
	assert.True(t, left.Mul4x1(vertex(2)).ApproxEqual(right.Mul4x1(vertex(1))))
}

func TestPieceCentresInsideFrustum(t *testing.T) {
	cam := graphics.NewCamera()
	mvp := cam.Projection(800, 600).Mul4(cam.View())
	centre := vertex(0).Add(vertex(1)).Add(vertex(2)).Mul(1.0 / 3)

	for p, m := range triforce.Pieces {
		clip := mvp.Mul4(m).Mul4x1(centre)
		require.Greater(t, clip.W(), float32(0))
		ndc := clip.Vec3().Mul(1 / clip.W())
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, ndc[axis], float32(1), "piece %d", p)
			assert.GreaterOrEqual(t, ndc[axis], float32(-1), "piece %d", p)
		}
	}
}
