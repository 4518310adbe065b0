package mathutil

import "math"

// EulerAngles is a pitch/yaw/roll triple in radians.
type EulerAngles struct {
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// Quaternion implements scene.Input.
func (e EulerAngles) Quaternion() (Quat, error) {
	return EulerToQuat(e.Pitch, e.Yaw, e.Roll), nil
}

// AxisAngle is a rotation of Degrees about Axis. Axis need not be unit length.
type AxisAngle struct {
	Axis    Vec3    `json:"axis"`
	Degrees float64 `json:"degrees"`
}

// Quaternion implements scene.Input.
func (a AxisAngle) Quaternion() (Quat, error) {
	return AxisAngleToQuat(a.Axis[0], a.Axis[1], a.Axis[2], a.Degrees)
}

// AxisAngleToQuat builds the unit quaternion rotating by angleDeg (full
// angle, degrees) about the axis (x, y, z). A zero axis fails with
// *DegenerateInputError.
func AxisAngleToQuat(x, y, z, angleDeg float64) (Quat, error) {
	axis, err := Vec3{x, y, z}.Unit()
	if err != nil {
		return Quat{}, &DegenerateInputError{Op: "axis-angle", Length: Vec3{x, y, z}.Len()}
	}

	half := Deg2Rad(angleDeg) / 2
	s, c := math.Sincos(half)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}, nil
}

// EulerToQuat converts pitch, yaw, roll (radians) to a quaternion using the
// aerospace closed form. The result is unit length for finite input and is
// not renormalized.
func EulerToQuat(pitch, yaw, roll float64) Quat {
	s1, c1 := math.Sincos(pitch / 2)
	s2, c2 := math.Sincos(yaw / 2)
	s3, c3 := math.Sincos(roll / 2)

	return Quat{
		c1*c2*s3 + s1*s2*c3, // x
		s1*c2*c3 + c1*s2*s3, // y
		c1*s2*c3 - s1*c2*s3, // z
		c1*c2*c3 - s1*s2*s3, // w
	}
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix acting on
// column vectors (v' = M × v). Non-unit input is rescaled by its inverse
// squared norm, so any non-zero finite quaternion gives a proper rotation.
// The zero or non-finite quaternion fails with *DegenerateInputError.
func QuatToMat3(q Quat) (Mat3, error) {
	// Scale to unit length first so squaring neither overflows nor underflows.
	l := q.Len()
	if degenerate(l) {
		return Mat3{}, &DegenerateInputError{Op: "quaternion to matrix", Length: l}
	}
	x, y, z, w := q[0]/l, q[1]/l, q[2]/l, q[3]/l
	sqx, sqy, sqz, sqw := x*x, y*y, z*z, w*w

	invs := 1 / (sqx + sqy + sqz + sqw)

	var m Mat3
	m[0] = (sqx - sqy - sqz + sqw) * invs
	m[4] = (-sqx + sqy - sqz + sqw) * invs
	m[8] = (-sqx - sqy + sqz + sqw) * invs

	xy, zw := x*y, z*w
	m[3] = 2 * (xy + zw) * invs // m10
	m[1] = 2 * (xy - zw) * invs // m01

	xz, yw := x*z, y*w
	m[6] = 2 * (xz - yw) * invs // m20
	m[2] = 2 * (xz + yw) * invs // m02

	yz, xw := y*z, x*w
	m[7] = 2 * (yz + xw) * invs // m21
	m[5] = 2 * (yz - xw) * invs // m12

	return m, nil
}
