package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed perspective camera at the origin looking down -Z.
type Camera struct {
	FOV       float32 // radians
	NearPlane float32
	FarPlane  float32
}

// NewCamera returns the camera every surface shares.
func NewCamera() Camera {
	return Camera{
		FOV:       mgl32.DegToRad(45),
		NearPlane: 0.1,
		FarPlane:  100.0,
	}
}

// Projection builds the projection for a width×height target. A degenerate
// size falls back to a square aspect.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(c.FOV, aspect, c.NearPlane, c.FarPlane)
}

// View returns the look-at matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{0, 1, 0},
	)
}
