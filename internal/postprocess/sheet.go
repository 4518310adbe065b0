package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ContactSheet lays frames out left to right, top to bottom on a grid with
// cols columns. Each cell is the size of the first frame; frames of other
// sizes are scaled to fit the cell.
func ContactSheet(frames []*image.NRGBA, cols int, bg color.NRGBA) *image.NRGBA {
	if len(frames) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	if cols < 1 {
		cols = 1
	}
	if cols > len(frames) {
		cols = len(frames)
	}
	rows := (len(frames) + cols - 1) / cols
	cw, ch := frames[0].Bounds().Dx(), frames[0].Bounds().Dy()

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*cw, rows*ch))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for i, f := range frames {
		cell := image.Rect(0, 0, cw, ch).Add(image.Pt((i%cols)*cw, (i/cols)*ch))
		if f.Bounds().Dx() == cw && f.Bounds().Dy() == ch {
			draw.Draw(sheet, cell, f, f.Bounds().Min, draw.Over)
			continue
		}
		draw.ApproxBiLinear.Scale(sheet, cell, f, f.Bounds(), draw.Over, nil)
	}
	return sheet
}
