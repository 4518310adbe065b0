package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/scene"
	"quat-scene-renderer/internal/viewmatrix"
)

const helpText = "up/down pitch  left/right yaw\n[ ] roll  b base  r reset  q quit"

// viewer holds the slider angles and the state computed from them.
type viewer struct {
	pitch, yaw, roll float64 // radians, within ±mathutil.AngleLimit

	base     scene.Scene
	guide    *scene.Polyline
	camera   viewmatrix.Camera
	showBase bool

	state scene.State
	err   error
}

func newViewer(base scene.Scene, guide *scene.Polyline, camera viewmatrix.Camera) *viewer {
	v := &viewer{base: base, guide: guide, camera: camera, showBase: true}
	v.recompute()
	return v
}

func (v *viewer) recompute() {
	v.state, v.err = scene.Compute(mathutil.EulerAngles{Pitch: v.pitch, Yaw: v.yaw, Roll: v.roll}, v.base)
}

// step moves a by d, snapped to the AngleStep grid and clamped to ±AngleLimit.
func step(a, d float64) float64 {
	snapped := math.Round((a+d)/mathutil.AngleStep) * mathutil.AngleStep
	return mathutil.ClampAngle(snapped, mathutil.AngleLimit)
}

// handleKey applies one key press and reports whether the viewer should quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	d := mathutil.AngleStep
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.pitch = step(v.pitch, d)
	case tcell.KeyDown:
		v.pitch = step(v.pitch, -d)
	case tcell.KeyRight:
		v.yaw = step(v.yaw, d)
	case tcell.KeyLeft:
		v.yaw = step(v.yaw, -d)
	case tcell.KeyPgUp:
		v.roll = step(v.roll, d)
	case tcell.KeyPgDn:
		v.roll = step(v.roll, -d)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ']':
			v.roll = step(v.roll, d)
		case '[':
			v.roll = step(v.roll, -d)
		case 'r', 'R':
			v.pitch, v.yaw, v.roll = 0, 0, 0
		case 'b':
			v.showBase = !v.showBase
		default:
			return false
		}
	default:
		return false
	}
	v.recompute()
	return false
}

// text is the info panel: angles, summary and key help.
func (v *viewer) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pitch %+.2f  Yaw %+.2f  Roll %+.2f\n\n", v.pitch, v.yaw, v.roll)
	if v.err != nil {
		fmt.Fprintf(&b, "Error: %v\n", v.err)
	} else {
		b.WriteString(scene.Summary(v.state))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpText)
	return b.String()
}

// cellCanvas maps a square virtual pixel grid onto terminal cells, two
// virtual rows per cell row, with a per-cell depth test.
type cellCanvas struct {
	s    tcell.Screen
	w, h int
	zbuf []float64
}

func newCellCanvas(s tcell.Screen, w, h int) *cellCanvas {
	z := make([]float64, w*h)
	for i := range z {
		z[i] = math.Inf(-1)
	}
	return &cellCanvas{s: s, w: w, h: h, zbuf: z}
}

func (c *cellCanvas) put(x, y, z float64, r rune, style tcell.Style) {
	cx := int(math.Round(x))
	cy := int(math.Floor(y / 2))
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return
	}
	i := cy*c.w + cx
	if z < c.zbuf[i] {
		return
	}
	c.zbuf[i] = z
	c.s.SetContent(cx, cy, r, nil, style)
}

func (c *cellCanvas) line(proj viewmatrix.Projection, pts []mathutil.Vec3, r rune, style tcell.Style) {
	px, py, pz := proj.ProjectPoints(pts)
	for i := 1; i < len(px); i++ {
		dx, dy := px[i]-px[i-1], py[i]-py[i-1]
		steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
		if steps == 0 {
			steps = 1
		}
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			c.put(px[i-1]+dx*t, py[i-1]+dy*t, pz[i-1]+(pz[i]-pz[i-1])*t, r, style)
		}
	}
}

func styleFor(c color.NRGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// draw redraws the whole screen: the plot on the left, text on the right.
func (v *viewer) draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()

	text := strings.Split(v.text(), "\n")
	textW := 0
	for _, l := range text {
		textW = max(textW, len(l))
	}
	plotW := w - textW - 2
	if plotW < 8 {
		plotW = w
	}

	size := min(plotW, 2*h)
	if size > 4 {
		canvas := newCellCanvas(s, plotW, h)
		proj := viewmatrix.NewProjection(v.camera, size, 1)
		dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

		if v.guide != nil {
			canvas.line(proj, v.guide.Points, '.', styleFor(v.guide.Color))
		}
		if v.showBase {
			for _, l := range v.state.Base.Lines {
				canvas.line(proj, l.Points, '.', dim)
			}
		}
		for _, l := range v.state.Rotated.Lines {
			canvas.line(proj, l.Points, '*', styleFor(l.Color))
		}
		for _, p := range v.state.Rotated.Points {
			x, y, z := proj.Project(p.Pos)
			canvas.put(x, y, z+1e-6, 'O', styleFor(p.Color).Bold(true))
		}
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, l := range text {
		drawText(s, plotW+2, i, textStyle, l)
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
