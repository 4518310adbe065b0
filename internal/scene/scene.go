package scene

import (
	"image/color"

	"quat-scene-renderer/internal/mathutil"
)

// Series colors, matching the reference plots.
var (
	Red    = color.NRGBA{220, 40, 40, 255}
	Green  = color.NRGBA{40, 170, 60, 255}
	Blue   = color.NRGBA{40, 80, 220, 255}
	Yellow = color.NRGBA{230, 190, 20, 255}
	Cyan   = color.NRGBA{20, 190, 200, 255}
)

// Point is a named marker.
type Point struct {
	Name  string
	Pos   mathutil.Vec3
	Color color.NRGBA
}

// Polyline is a connected sequence of points drawn as line segments.
type Polyline struct {
	Name   string
	Points []mathutil.Vec3
	Color  color.NRGBA
	Dashed bool
}

// Scene is a fixed set of reference markers and lines.
type Scene struct {
	Points []Point
	Lines  []Polyline
}

// Apply rotates every point by m. The input slice is not modified.
func Apply(m mathutil.Mat3, pts []mathutil.Vec3) []mathutil.Vec3 {
	return mathutil.RotateAll(m, pts)
}

// Transform returns a copy of s with every point and line vertex rotated by m.
func (s Scene) Transform(m mathutil.Mat3) Scene {
	out := Scene{
		Points: make([]Point, len(s.Points)),
		Lines:  make([]Polyline, len(s.Lines)),
	}
	for i, p := range s.Points {
		p.Pos = mathutil.Rotate(m, p.Pos)
		out.Points[i] = p
	}
	for i, l := range s.Lines {
		l.Points = Apply(m, l.Points)
		out.Lines[i] = l
	}
	return out
}

// Positions returns the marker positions in order.
func (s Scene) Positions() []mathutil.Vec3 {
	pos := make([]mathutil.Vec3, len(s.Points))
	for i, p := range s.Points {
		pos[i] = p.Pos
	}
	return pos
}

// AxisMarkers returns the six axis tips at distance scale (±X red, ±Y green,
// ±Z blue) and the three squares joining the tips around each axis.
func AxisMarkers(scale float64) Scene {
	px := mathutil.Vec3{scale, 0, 0}
	nx := mathutil.Vec3{-scale, 0, 0}
	py := mathutil.Vec3{0, scale, 0}
	ny := mathutil.Vec3{0, -scale, 0}
	pz := mathutil.Vec3{0, 0, scale}
	nz := mathutil.Vec3{0, 0, -scale}

	return Scene{
		Points: []Point{
			{Name: "+X", Pos: px, Color: Red},
			{Name: "-X", Pos: nx, Color: Red},
			{Name: "+Y", Pos: py, Color: Green},
			{Name: "-Y", Pos: ny, Color: Green},
			{Name: "+Z", Pos: pz, Color: Blue},
			{Name: "-Z", Pos: nz, Color: Blue},
		},
		Lines: []Polyline{
			{Name: "ring-x", Points: []mathutil.Vec3{py, pz, ny, nz, py}, Color: Cyan},
			{Name: "ring-y", Points: []mathutil.Vec3{px, pz, nx, nz, px}, Color: Cyan},
			{Name: "ring-z", Points: []mathutil.Vec3{px, py, nx, ny, px}, Color: Cyan},
		},
	}
}

// Arrow returns the two-part arrow in the XZ plane pointing along +Z, scaled
// by scale. Pair it with AxisGuide for the dashed reference axes.
func Arrow(scale float64) Scene {
	right := []mathutil.Vec3{
		{0, 0, 0},
		{1.0 / 6, 0, 0},
		{1.0 / 6, 0, 2.0 / 3},
		{1.0 / 3, 0, 2.0 / 3},
		{0, 0, 1},
	}
	left := []mathutil.Vec3{
		{0, 0, 1},
		{-1.0 / 3, 0, 2.0 / 3},
		{-1.0 / 6, 0, 2.0 / 3},
		{-1.0 / 6, 0, 0},
		{0, 0, 0},
	}
	for i := range right {
		right[i] = right[i].Scale(scale)
		left[i] = left[i].Scale(scale)
	}

	return Scene{
		Points: []Point{
			{Name: "tip", Pos: mathutil.Vec3{0, 0, scale}, Color: Blue},
			{Name: "tail", Pos: mathutil.Vec3{}, Color: Yellow},
		},
		Lines: []Polyline{
			{Name: "arrow-right", Points: right, Color: Blue},
			{Name: "arrow-left", Points: left, Color: Yellow},
		},
	}
}

// AxisGuide is the dashed X, Y, Z axis polyline drawn from the origin.
// It is not rotated with the scene.
func AxisGuide(scale float64) Polyline {
	return Polyline{
		Name: "axes",
		Points: []mathutil.Vec3{
			{0, 0, 0}, {scale, 0, 0},
			{0, 0, 0}, {0, scale, 0},
			{0, 0, 0}, {0, 0, scale},
		},
		Color:  Red,
		Dashed: true,
	}
}

// ByName returns a built-in scene: "axes" (default) or "arrow".
func ByName(name string, scale float64) (Scene, bool) {
	switch name {
	case "", "axes":
		return AxisMarkers(scale), true
	case "arrow":
		return Arrow(scale), true
	}
	return Scene{}, false
}
