package viewmatrix

import (
	"math"

	"quat-scene-renderer/internal/mathutil"
)

// Defaults matching the reference 3D plot.
const (
	DefaultElevation = 30.0  // degrees above the XY plane
	DefaultAzimuth   = -60.0 // degrees around Z, measured from +X
	DefaultFOV       = 75.0  // degrees, perspective only
	DefaultExtent    = 1.1   // half-width of the visible cube, in scene units
)

// Camera describes an orbit camera looking at the origin of a Z-up world.
type Camera struct {
	Elevation   float64 // degrees
	Azimuth     float64 // degrees
	Perspective bool
	FOV         float64 // degrees; 0 means DefaultFOV
	Extent      float64 // visible half-width; 0 means DefaultExtent
}

// DefaultCamera returns the reference plot camera for a scene of the given scale.
func DefaultCamera(scale float64) Camera {
	return Camera{
		Elevation: DefaultElevation,
		Azimuth:   DefaultAzimuth,
		Extent:    DefaultExtent * scale,
	}
}

// ViewMatrix maps world coordinates to view space: +X right, +Y up and +Z
// toward the viewer.
// Rx(elev - 90°) @ Rz(-(azim + 90°))
func (c Camera) ViewMatrix() mathutil.Mat3 {
	return mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(c.Elevation-90)),
		mathutil.RotZ(mathutil.Deg2Rad(-(c.Azimuth + 90))),
	)
}

func (c Camera) extent() float64 {
	if c.Extent <= 0 {
		return DefaultExtent
	}
	return c.Extent
}

// Projection holds the per-frame screen mapping.
type Projection struct {
	View        mathutil.Mat3
	Scale       float64 // pixels per scene unit
	Half        float64 // screen center in pixels
	perspective bool
	camDist     float64
}

// NewProjection fits the camera's visible cube into a square target of
// renderSize pixels with margin pixels kept clear on each side.
func NewProjection(c Camera, renderSize, margin int) Projection {
	ext := c.extent()
	avail := float64(renderSize - 2*margin)
	if avail < 1 {
		avail = 1
	}
	p := Projection{
		View:  c.ViewMatrix(),
		Scale: avail / (2 * ext),
		Half:  float64(renderSize) / 2,
	}
	if c.Perspective {
		fov := c.FOV
		if fov <= 0 {
			fov = DefaultFOV
		}
		halfFOV := mathutil.Deg2Rad(fov / 2)
		// Camera sits outside the visible cube so no point crosses the eye.
		p.perspective = true
		p.camDist = ext/math.Tan(halfFOV) + ext
	}
	return p
}

// Project maps a world point to screen X, screen Y (down) and depth
// (larger is closer).
func (p Projection) Project(v mathutil.Vec3) (float64, float64, float64) {
	t := p.View.MulVec3(v)
	if p.perspective {
		depth := math.Max(p.camDist-t[2], 0.1)
		factor := p.camDist / depth
		t[0] *= factor
		t[1] *= factor
	}
	return t[0]*p.Scale + p.Half, -t[1]*p.Scale + p.Half, t[2]
}

// ProjectPoints transforms 3D points to 2D screen coordinates.
// Returns px, py, pz slices (screen X, screen Y, depth).
func (p Projection) ProjectPoints(pts []mathutil.Vec3) ([]float64, []float64, []float64) {
	n := len(pts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)
	for i, v := range pts {
		px[i], py[i], pz[i] = p.Project(v)
	}
	return px, py, pz
}
