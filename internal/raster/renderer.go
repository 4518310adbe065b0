package raster

import (
	"image"
	"image/color"

	"quat-scene-renderer/internal/scene"
	"quat-scene-renderer/internal/viewmatrix"
)

// DefaultBackground is the near-white plot background.
var DefaultBackground = color.NRGBA{250, 250, 250, 255}

// Options control how a computed scene is drawn.
type Options struct {
	Size        int // final frame size; RenderState draws at Size*Supersample
	Supersample int
	Camera      viewmatrix.Camera
	Background  color.NRGBA
	Backdrop    *image.NRGBA // optional, stretched behind the scene
	ShowBase    bool         // draw the unrotated scene dashed
	Guide       *scene.Polyline
	DepthCue    bool
}

// RenderState draws a computed state into an NRGBA image of
// Size*Supersample pixels: the optional backdrop, the dashed guide and base
// scene, then the rotated scene and its markers.
func RenderState(st scene.State, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	renderSize := opts.Size * ss

	fb := NewFrameBuffer(renderSize, renderSize)
	fb.Fill(opts.Background)
	DrawBackdrop(fb, opts.Backdrop)

	proj := viewmatrix.NewProjection(opts.Camera, renderSize, 8*ss)

	var cue *DepthCue
	if opts.DepthCue {
		ext := opts.Camera.Extent
		if ext <= 0 {
			ext = viewmatrix.DefaultExtent
		}
		dc := DefaultDepthCue(ext)
		cue = &dc
	}

	if opts.Guide != nil {
		drawLine(fb, proj, *opts.Guide, ss, nil, true)
	}
	if opts.ShowBase {
		for _, l := range st.Base.Lines {
			drawLine(fb, proj, l, ss, nil, true)
		}
	}
	for _, l := range st.Rotated.Lines {
		drawLine(fb, proj, l, ss, cue, l.Dashed)
	}

	radius := 2.5 * float64(ss)
	for _, p := range st.Rotated.Points {
		x, y, z := proj.Project(p.Pos)
		DrawMarker(fb, x, y, z, radius, p.Color, cue)
	}

	return fb.Image()
}

func drawLine(fb *FrameBuffer, proj viewmatrix.Projection, l scene.Polyline, ss int, cue *DepthCue, dashed bool) {
	px, py, pz := proj.ProjectPoints(l.Points)
	st := Stroke{
		Color: l.Color,
		Width: ss,
		Cue:   cue,
	}
	if dashed {
		st.Dash = 6 * ss
		st.Color.A = 200
	}
	DrawPolyline(fb, px, py, pz, st)
}
