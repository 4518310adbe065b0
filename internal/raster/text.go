package raster

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextFace is the face used for overlays (7×13 pixel cells).
var TextFace font.Face = basicfont.Face7x13

// DrawText draws multi-line text with its top-left corner at (x, y).
// Each line is drawn over a translucent plate so it stays legible on any
// background.
func DrawText(img *image.NRGBA, x, y int, text string, c color.NRGBA) {
	metrics := TextFace.Metrics()
	lineH := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: TextFace,
	}
	for i, line := range strings.Split(text, "\n") {
		top := y + i*lineH
		w := d.MeasureString(line).Ceil()
		shadePlate(img, image.Rect(x-1, top, x+w+1, top+lineH))
		d.Dot = fixed.P(x, top+ascent)
		d.DrawString(line)
	}
}

// MeasureText returns the pixel size of a multi-line text block.
func MeasureText(text string) (int, int) {
	d := &font.Drawer{Face: TextFace}
	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		if lw := d.MeasureString(line).Ceil(); lw > w {
			w = lw
		}
	}
	return w, len(lines) * TextFace.Metrics().Height.Ceil()
}

func shadePlate(img *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			i := img.PixOffset(px, py)
			img.Pix[i] = img.Pix[i] / 2
			img.Pix[i+1] = img.Pix[i+1] / 2
			img.Pix[i+2] = img.Pix[i+2] / 2
			if img.Pix[i+3] < 160 {
				img.Pix[i+3] = 160
			}
		}
	}
}
