package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/scene"
	"quat-scene-renderer/internal/viewmatrix"
)

func TestRenderStateMarkers(t *testing.T) {
	st, err := scene.Compute(mathutil.EulerAngles{Yaw: 0.4}, scene.AxisMarkers(1))
	require.NoError(t, err)

	bg := color.NRGBA{255, 255, 255, 255}
	opts := Options{
		Size:        128,
		Supersample: 2,
		Camera:      viewmatrix.DefaultCamera(1),
		Background:  bg,
		ShowBase:    true,
	}
	img := RenderState(st, opts)
	require.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())
	assert.Equal(t, bg, img.NRGBAAt(0, 0), "corner")

	proj := viewmatrix.NewProjection(opts.Camera, 256, 16)
	for _, p := range st.Rotated.Points {
		x, y, _ := proj.Project(p.Pos)
		// A marker may be hidden by a closer one; it must not be background.
		got := img.NRGBAAt(int(math.Round(x)), int(math.Round(y)))
		assert.NotEqual(t, bg, got, "marker %s at (%.1f, %.1f) not drawn", p.Name, x, y)
	}
}

func TestRenderStateDepthCueAndGuide(t *testing.T) {
	st, err := scene.Compute(mathutil.EulerAngles{}, scene.Arrow(1))
	require.NoError(t, err)
	guide := scene.AxisGuide(1)

	plain := RenderState(st, Options{Size: 64, Camera: viewmatrix.DefaultCamera(1), Background: DefaultBackground})
	cued := RenderState(st, Options{Size: 64, Camera: viewmatrix.DefaultCamera(1), Background: DefaultBackground, DepthCue: true, Guide: &guide})
	assert.NotEqual(t, plain.Pix, cued.Pix)
}

func TestDepthCue(t *testing.T) {
	dc := DefaultDepthCue(1)
	assert.InDelta(t, 1, dc.Shade(1), 1e-12, "near")
	assert.InDelta(t, dc.MinShade, dc.Shade(-1), 1e-12, "far")
	assert.Equal(t, dc.MinShade, dc.Shade(-5), "beyond far")

	c := color.NRGBA{200, 120, 40, 255}
	near, far := dc.Apply(c, 1), dc.Apply(c, -1)
	assert.Greater(t, int(near.R)+int(near.G)+int(near.B), int(far.R)+int(far.G)+int(far.B))
	assert.Equal(t, uint8(255), near.A)
	assert.Equal(t, uint8(255), far.A)
}

func TestDrawLineDashed(t *testing.T) {
	fb := NewFrameBuffer(64, 8)
	st := Stroke{Color: color.NRGBA{255, 0, 0, 255}, Width: 1, Dash: 4}
	DrawLine(fb, 0, 4, 0, 63, 4, 0, &st)

	on, off := 0, 0
	for x := 0; x < 64; x++ {
		if fb.Color[(4*64+x)*4] == 255 {
			on++
		} else {
			off++
		}
	}
	assert.Positive(t, on, "lit pixels")
	assert.Positive(t, off, "gaps")
}

func TestDrawLineDepthTest(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}

	front := Stroke{Color: red, Width: 1}
	DrawLine(fb, 0, 8, 1, 15, 8, 1, &front)
	back := Stroke{Color: blue, Width: 1}
	DrawLine(fb, 8, 0, -1, 8, 15, -1, &back)

	p := (8*16 + 8) * 4
	assert.Equal(t, []uint8{255, 0, 0, 255}, fb.Color[p:p+4], "crossing keeps the front line")
	assert.Equal(t, uint8(255), fb.Color[(2*16+8)*4+2], "back line away from the crossing")
}

func TestPlotBlendsTranslucent(t *testing.T) {
	fb := NewFrameBuffer(1, 1)
	fb.Fill(color.NRGBA{0, 0, 0, 255})
	fb.plot(0, 0, 0, color.NRGBA{255, 255, 255, 128})
	assert.InDelta(t, 128, int(fb.Color[0]), 1)
	assert.Equal(t, uint8(255), fb.Color[3])
}

func TestDrawBackdrop(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(tex.Pix); i += 4 {
		tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3] = 10, 20, 30, 255
	}
	fb := NewFrameBuffer(8, 8)
	fb.Fill(color.NRGBA{255, 255, 255, 255})
	DrawBackdrop(fb, tex)
	assert.Equal(t, []uint8{10, 20, 30, 255}, fb.Color[:4])

	assert.NotPanics(t, func() { DrawBackdrop(fb, nil) })
}

func TestDrawText(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 120, 60))
	DrawText(img, 2, 2, "Quaternion\n0.0000 1.0000", color.NRGBA{255, 255, 255, 255})

	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			lit++
		}
	}
	assert.Positive(t, lit, "text pixels")

	w, h := MeasureText("ab\nabcd")
	assert.Equal(t, 4*7, w)
	assert.Equal(t, 2*13, h)
}
