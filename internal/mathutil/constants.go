package mathutil

import "math"

const (
	// AngleLimit bounds each Euler angle in interactive input (radians).
	AngleLimit = math.Pi

	// AngleStep is the interactive input resolution (radians).
	AngleStep = 0.02

	// Tolerance is the orthonormality tolerance used by callers checking
	// matrices produced by QuatToMat3.
	Tolerance = 1e-9
)

// ClampAngle limits a to [-limit, limit].
func ClampAngle(a, limit float64) float64 {
	if a < -limit {
		return -limit
	}
	if a > limit {
		return limit
	}
	return a
}
