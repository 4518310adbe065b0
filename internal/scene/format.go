package scene

import (
	"fmt"
	"strings"
)

// Summary renders the quaternion, matrix and rotated marker positions as
// text, four decimals per value:
//
//	Quaternion
//	x y z w
//	Matrix
//	m00 m01 m02
//	...
//	Points:
//	x y z
func Summary(st State) string {
	var b strings.Builder
	q := st.Quat
	m := st.Matrix

	fmt.Fprintf(&b, "Quaternion\n%1.4f %1.4f %1.4f %1.4f\n", q[0], q[1], q[2], q[3])
	fmt.Fprintf(&b, "Matrix\n%1.4f %1.4f %1.4f\n%1.4f %1.4f %1.4f\n%1.4f %1.4f %1.4f\n",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	b.WriteString("Points:")
	for _, p := range st.Rotated.Points {
		fmt.Fprintf(&b, "\n%1.4f %1.4f %1.4f", p.Pos[0], p.Pos[1], p.Pos[2])
	}
	return b.String()
}
