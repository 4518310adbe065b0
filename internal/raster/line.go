package raster

import (
	"image/color"
	"math"
)

// Stroke describes how a line segment is drawn.
type Stroke struct {
	Color  color.NRGBA
	Width  int // brush size in pixels, at least 1
	Dash   int // dash and gap length in pixels; 0 draws a solid line
	Cue    *DepthCue
	offset int // running dash phase across a polyline
}

// DrawLine rasterizes the segment (x0,y0,z0)–(x1,y1,z1) with a square brush,
// interpolating depth along the segment and testing it against the z-buffer.
func DrawLine(fb *FrameBuffer, x0, y0, z0, x1, y1, z1 float64, st *Stroke) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	// Segments far off-screen are skipped rather than walked.
	if steps > 16*(fb.Width+fb.Height) {
		return
	}

	w := st.Width
	if w < 1 {
		w = 1
	}
	lo := -(w - 1) / 2
	hi := lo + w

	for i := 0; i <= steps; i++ {
		if st.Dash > 0 && ((st.offset+i)/st.Dash)%2 == 1 {
			continue
		}
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + dx*t))
		y := int(math.Round(y0 + dy*t))
		z := z0 + (z1-z0)*t

		c := st.Color
		if st.Cue != nil {
			c = st.Cue.Apply(c, z)
		}
		for by := lo; by < hi; by++ {
			for bx := lo; bx < hi; bx++ {
				fb.plot(x+bx, y+by, z, c)
			}
		}
	}
	st.offset += steps
}

// DrawPolyline draws consecutive segments through the projected points.
// The dash pattern continues across vertices.
func DrawPolyline(fb *FrameBuffer, px, py, pz []float64, st Stroke) {
	for i := 1; i < len(px); i++ {
		DrawLine(fb, px[i-1], py[i-1], pz[i-1], px[i], py[i], pz[i], &st)
	}
}

// DrawMarker fills a disc of the given radius centered at (x, y) at depth z.
func DrawMarker(fb *FrameBuffer, x, y, z, radius float64, c color.NRGBA, cue *DepthCue) {
	if cue != nil {
		c = cue.Apply(c, z)
	}
	r2 := radius * radius
	minX := int(math.Floor(x - radius))
	maxX := int(math.Ceil(x + radius))
	minY := int(math.Floor(y - radius))
	maxY := int(math.Ceil(y + radius))
	for sy := minY; sy <= maxY; sy++ {
		ddy := float64(sy) - y
		for sx := minX; sx <= maxX; sx++ {
			ddx := float64(sx) - x
			if ddx*ddx+ddy*ddy > r2 {
				continue
			}
			fb.plot(sx, sy, z, c)
		}
	}
}
