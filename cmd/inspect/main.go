package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/scene"
)

type multiFlag []string

func (m *multiFlag) String() string     { return strings.Join(*m, " ") }
func (m *multiFlag) Set(v string) error { *m = append(*m, v); return nil }

func main() {
	sceneName := flag.String("scene", "axes", "Scene: axes or arrow")
	scale := flag.Float64("scale", 1, "Scene scale")
	pitch := flag.Float64("pitch", 0, "Pitch in radians")
	yaw := flag.Float64("yaw", 0, "Yaw in radians")
	roll := flag.Float64("roll", 0, "Roll in radians")
	asJSON := flag.Bool("json", false, "Print the quaternion, matrix and points as JSON")
	var axes multiFlag
	flag.Var(&axes, "axis", "Axis-angle x,y,z:degrees; repeat to compose in order")
	flag.Parse()

	base, ok := scene.ByName(*sceneName, *scale)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", *sceneName)
		os.Exit(1)
	}
	in, err := scene.InputFrom(mathutil.EulerAngles{Pitch: *pitch, Yaw: *yaw, Roll: *roll}, axes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	st, err := scene.Compute(in, base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*asJSON {
		fmt.Println(scene.Summary(st))
		return
	}

	out := struct {
		Quat    mathutil.Quat            `json:"quaternion"`
		Matrix  mathutil.Mat3            `json:"matrix"`
		Points  map[string]mathutil.Vec3 `json:"points"`
		Det     float64                  `json:"det"`
		AngleTo float64                  `json:"angle_deg"`
	}{
		Quat:    st.Quat,
		Matrix:  st.Matrix,
		Points:  map[string]mathutil.Vec3{},
		Det:     st.Matrix.Det(),
		AngleTo: mathutil.Rad2Deg(mathutil.QuatIdentity().AngleTo(unit(st.Quat))),
	}
	for _, p := range st.Rotated.Points {
		out.Points[p.Name] = p.Pos
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func unit(q mathutil.Quat) mathutil.Quat {
	n, err := mathutil.Normalize(q)
	if err != nil {
		return q
	}
	return n
}
