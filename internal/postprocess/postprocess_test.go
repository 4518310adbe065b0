package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDownsampleSolid(t *testing.T) {
	c := color.NRGBA{200, 100, 50, 255}
	out := Downsample(solid(64, 64, c), 16)
	require.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())
	for _, p := range []image.Point{{0, 0}, {8, 8}, {15, 15}} {
		got := out.NRGBAAt(p.X, p.Y)
		assert.InDelta(t, c.R, got.R, 1, "pixel %v", p)
		assert.InDelta(t, c.G, got.G, 1, "pixel %v", p)
		assert.InDelta(t, c.B, got.B, 1, "pixel %v", p)
		assert.Equal(t, uint8(255), got.A, "pixel %v", p)
	}
}

func TestDownsampleNoFringe(t *testing.T) {
	// Transparent black around an opaque white block must not darken its edge.
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 8; y < 24; y++ {
		for x := 8; x < 24; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	out := Downsample(img, 8)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i+3] > 16 {
			require.GreaterOrEqual(t, out.Pix[i], uint8(240), "dark fringe at %d: %v", i/4, out.Pix[i:i+4])
		}
	}
}

func TestDownsampleSmallUnchanged(t *testing.T) {
	img := solid(8, 8, color.NRGBA{1, 2, 3, 4})
	assert.Same(t, img, Downsample(img, 8))
}

func TestContactSheet(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	bg := color.NRGBA{0, 0, 0, 255}
	frames := []*image.NRGBA{solid(4, 4, red), solid(4, 4, blue), solid(4, 4, red)}

	sheet := ContactSheet(frames, 2, bg)
	require.Equal(t, image.Rect(0, 0, 8, 8), sheet.Bounds())
	cases := []struct {
		x, y int
		want color.NRGBA
	}{
		{1, 1, red},
		{5, 1, blue},
		{1, 5, red},
		{5, 5, bg},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sheet.NRGBAAt(tc.x, tc.y), "(%d,%d)", tc.x, tc.y)
	}

	assert.True(t, ContactSheet(nil, 3, bg).Bounds().Empty())
}
