package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit returns v scaled to unit length. It fails with a
// *DegenerateInputError when the length is zero or not finite.
func (v Vec3) Unit() (Vec3, error) {
	l := math.Hypot(math.Hypot(v[0], v[1]), v[2])
	if degenerate(l) {
		return Vec3{}, &DegenerateInputError{Op: "normalize vector", Length: l}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}, nil
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
