package torus

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	rotationAxis = mgl32.Vec3{0, 1, 1}.Normalize()
	translation  = mgl32.Translate3D(0, 0, -2)
)

// Angle is the rotation for the given elapsed time, starting at π/4 and
// wrapping at 2π.
func Angle(elapsedSeconds float64) float32 {
	return float32(math.Mod(math.Pi/4+elapsedSeconds, 2*math.Pi))
}

// Model spins the torus about (0,1,1) and pushes it two units into the scene.
func Model(elapsedSeconds float64) mgl32.Mat4 {
	return translation.Mul4(mgl32.HomogRotate3D(Angle(elapsedSeconds), rotationAxis))
}
