package scene

import (
	"fmt"
	"strconv"
	"strings"

	"quat-scene-renderer/internal/mathutil"
)

// ParseAxisAngle parses "x,y,z:degrees", e.g. "1,0,0:90".
// The axis is not checked here; a zero axis fails when converted.
func ParseAxisAngle(s string) (mathutil.AxisAngle, error) {
	axisPart, degPart, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return mathutil.AxisAngle{}, fmt.Errorf("scene: axis-angle %q: want x,y,z:degrees", s)
	}
	fields := strings.Split(axisPart, ",")
	if len(fields) != 3 {
		return mathutil.AxisAngle{}, fmt.Errorf("scene: axis-angle %q: axis needs 3 components", s)
	}
	var aa mathutil.AxisAngle
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return mathutil.AxisAngle{}, fmt.Errorf("scene: axis-angle %q: %w", s, err)
		}
		aa.Axis[i] = v
	}
	deg, err := strconv.ParseFloat(strings.TrimSpace(degPart), 64)
	if err != nil {
		return mathutil.AxisAngle{}, fmt.Errorf("scene: axis-angle %q: %w", s, err)
	}
	aa.Degrees = deg
	return aa, nil
}

// InputFrom builds the orientation for command-line style arguments: the
// axis-angle specs composed in order when any are given, the Euler angles
// (radians) otherwise.
func InputFrom(euler mathutil.EulerAngles, axisAngles []string) (Input, error) {
	if len(axisAngles) == 0 {
		return euler, nil
	}
	inputs := make([]Input, len(axisAngles))
	for i, s := range axisAngles {
		aa, err := ParseAxisAngle(s)
		if err != nil {
			return nil, err
		}
		inputs[i] = aa
	}
	if len(inputs) == 1 {
		return inputs[0], nil
	}
	return Compose(inputs...), nil
}
