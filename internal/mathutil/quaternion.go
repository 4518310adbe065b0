package mathutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat represents a quaternion (x, y, z, w): vector part x, y, z and
// scalar part w. Quats are values; no operation modifies its receiver.
type Quat [4]float64

// QuatIdentity returns the no-rotation quaternion (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// Number converts q to gonum's representation (Real = w).
func (q Quat) Number() quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

// QuatFromNumber converts a gonum quaternion to a Quat.
func QuatFromNumber(n quat.Number) Quat {
	return Quat{n.Imag, n.Jmag, n.Kmag, n.Real}
}

// Len returns sqrt(x²+y²+z²+w²), computed without intermediate overflow.
func (q Quat) Len() float64 {
	return quat.Abs(q.Number())
}

// Dot returns the 4D dot product of a and b.
func (a Quat) Dot(b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// AngleTo returns the rotation angle in radians (0–π) separating the
// orientations a and b. Both are assumed to be unit quaternions.
func (a Quat) AngleTo(b Quat) float64 {
	d := math.Abs(a.Dot(b))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// Conjugate returns (-x, -y, -z, w), the inverse rotation of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

// Normalize returns q scaled to unit length. It fails with a
// *DegenerateInputError for the zero quaternion or non-finite input.
func Normalize(q Quat) (Quat, error) {
	l := q.Len()
	if degenerate(l) {
		return Quat{}, &DegenerateInputError{Op: "normalize quaternion", Length: l}
	}
	return Quat{q[0] / l, q[1] / l, q[2] / l, q[3] / l}, nil
}

// Mul composes a and b. The result applies rotation a first, then b; in
// Hamilton terms Mul(a, b) = b⊗a. Not commutative. Non-unit inputs are
// accepted and yield a non-unit result.
func Mul(a, b Quat) Quat {
	return Quat{
		b[3]*a[0] - b[2]*a[1] + b[1]*a[2] + b[0]*a[3],
		b[2]*a[0] + b[3]*a[1] - b[0]*a[2] + b[1]*a[3],
		-b[1]*a[0] + b[0]*a[1] + b[3]*a[2] + b[2]*a[3],
		-b[0]*a[0] - b[1]*a[1] - b[2]*a[2] + b[3]*a[3],
	}
}

// Slerp interpolates along the shortest arc from a (t=0) to b (t=1).
// Both inputs are normalized first.
func Slerp(a, b Quat, t float64) (Quat, error) {
	na, err := Normalize(a)
	if err != nil {
		return Quat{}, err
	}
	nb, err := Normalize(b)
	if err != nil {
		return Quat{}, err
	}
	// q and -q are the same rotation; take the short way round.
	if na.Dot(nb) < 0 {
		nb = Quat{-nb[0], -nb[1], -nb[2], -nb[3]}
	}

	p, qb := na.Number(), nb.Number()
	delta := quat.Mul(quat.Conj(p), qb)
	r := quat.Mul(p, quat.PowReal(delta, t))
	return Normalize(QuatFromNumber(r))
}
