package torus

import "math"

const (
	// MajorRadius is the distance from the centre of the tube to the axis.
	MajorRadius = 0.5
	// MinorRadius is the radius of the tube.
	MinorRadius = 0.2
	// Steps is the number of samples around each circle (5° apart).
	Steps = 72

	colorOffset = 0.5
)

// Vertices samples the torus surface on a Steps×Steps grid. It returns
// interleaved position and color triples; a point's color is its position
// shifted by colorOffset.
func Vertices() []float32 {
	out := make([]float32, 0, Steps*Steps*6)
	step := 2 * math.Pi / Steps
	for i := 0; i < Steps; i++ {
		v := float64(i) * step
		ring := MajorRadius + MinorRadius*math.Cos(v)
		z := float32(MinorRadius * math.Sin(v))
		for j := 0; j < Steps; j++ {
			u := float64(j) * step
			x := float32(ring * math.Cos(u))
			y := float32(ring * math.Sin(u))
			out = append(out,
				x, y, z,
				x+colorOffset, y+colorOffset, z+colorOffset,
			)
		}
	}
	return out
}
