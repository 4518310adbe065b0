package raster

import (
	"image/color"
	"math"
)

// DepthCue darkens geometry with distance from the viewer so overlapping
// strokes of a rotated scene stay readable.
type DepthCue struct {
	Near     float64 // depth drawn at full brightness
	Far      float64 // depth drawn at MinShade
	MinShade float64
	Exposure float64
	InvGamma float64
}

// DefaultDepthCue returns the cue for a scene whose depth spans [-extent, extent].
func DefaultDepthCue(extent float64) DepthCue {
	return DepthCue{
		Near:     extent,
		Far:      -extent,
		MinShade: 0.45,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// Shade returns the brightness factor for depth z (larger z is closer).
func (dc *DepthCue) Shade(z float64) float64 {
	span := dc.Near - dc.Far
	if span <= 0 {
		return 1
	}
	t := (z - dc.Far) / span
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return dc.MinShade + (1-dc.MinShade)*t
}

// Apply shades c for depth z in linear space with ACES tone mapping.
func (dc *DepthCue) Apply(c color.NRGBA, z float64) color.NRGBA {
	shade := dc.Shade(z) * dc.Exposure

	// sRGB decode → linear (LUT), shade, tone map, encode
	r := math.Pow(ACESTonemap(srgbToLinear[c.R]*shade), dc.InvGamma)
	g := math.Pow(ACESTonemap(srgbToLinear[c.G]*shade), dc.InvGamma)
	b := math.Pow(ACESTonemap(srgbToLinear[c.B]*shade), dc.InvGamma)

	return color.NRGBA{clamp255(r * 255), clamp255(g * 255), clamp255(b * 255), c.A}
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
