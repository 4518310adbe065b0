package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Fill sets every pixel to c without touching the z-buffer.
func (fb *FrameBuffer) Fill(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// plot writes c at (x, y) if z is at least as close as the stored depth.
// Colors with alpha below 255 are blended over the existing pixel.
func (fb *FrameBuffer) plot(x, y int, z float64, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	idx := y*fb.Width + x
	if z < fb.ZBuf[idx] {
		return
	}
	fb.ZBuf[idx] = z
	p := idx * 4
	if c.A == 255 {
		fb.Color[p] = c.R
		fb.Color[p+1] = c.G
		fb.Color[p+2] = c.B
		fb.Color[p+3] = 255
		return
	}
	// Translucent strokes blend over what is already there.
	a := uint32(c.A)
	fb.Color[p] = uint8((uint32(c.R)*a + uint32(fb.Color[p])*(255-a) + 127) / 255)
	fb.Color[p+1] = uint8((uint32(c.G)*a + uint32(fb.Color[p+1])*(255-a) + 127) / 255)
	fb.Color[p+2] = uint8((uint32(c.B)*a + uint32(fb.Color[p+2])*(255-a) + 127) / 255)
	fb.Color[p+3] = uint8(a + uint32(fb.Color[p+3])*(255-a)/255)
}

// Image copies the framebuffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
