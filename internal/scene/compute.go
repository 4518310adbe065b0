package scene

import (
	"fmt"

	"quat-scene-renderer/internal/mathutil"
)

// Input is any orientation source: mathutil.EulerAngles, mathutil.AxisAngle,
// a fixed quaternion or a composition of those.
type Input interface {
	Quaternion() (mathutil.Quat, error)
}

// Fixed is an Input that returns its quaternion unchanged.
type Fixed mathutil.Quat

func (f Fixed) Quaternion() (mathutil.Quat, error) {
	return mathutil.Quat(f), nil
}

// Composition applies its inputs in order, first to last.
type Composition []Input

// Compose returns an Input applying each input in turn.
func Compose(inputs ...Input) Composition {
	return Composition(inputs)
}

func (c Composition) Quaternion() (mathutil.Quat, error) {
	q := mathutil.QuatIdentity()
	for i, in := range c {
		qi, err := in.Quaternion()
		if err != nil {
			return mathutil.Quat{}, fmt.Errorf("scene: compose input %d: %w", i, err)
		}
		q = mathutil.Mul(q, qi)
	}
	return q, nil
}

// State is one computed orientation: the quaternion, its matrix, the
// untouched base scene and the rotated copy.
type State struct {
	Quat    mathutil.Quat
	Matrix  mathutil.Mat3
	Base    Scene
	Rotated Scene
}

// Compute converts in to a quaternion and matrix and rotates base.
// Errors are *mathutil.DegenerateInputError wrapped with context.
func Compute(in Input, base Scene) (State, error) {
	q, err := in.Quaternion()
	if err != nil {
		return State{}, fmt.Errorf("scene: quaternion: %w", err)
	}
	m, err := mathutil.QuatToMat3(q)
	if err != nil {
		return State{}, fmt.Errorf("scene: matrix: %w", err)
	}
	return State{
		Quat:    q,
		Matrix:  m,
		Base:    base,
		Rotated: base.Transform(m),
	}, nil
}
