package batch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"quat-scene-renderer/internal/postprocess"

	"github.com/HugoSmits86/nativewebp"
)

// keptFrames returns the retained images of successful results, in order.
func keptFrames(results []Result) []*image.NRGBA {
	var frames []*image.NRGBA
	for _, r := range results {
		if r.Success && r.Frame != nil {
			frames = append(frames, r.Frame)
		}
	}
	return frames
}

// WriteAnimation encodes the retained frames as a looping animated WebP.
// Run must have been called with KeepImages set.
func WriteAnimation(path string, results []Result, frameDuration time.Duration, bg color.NRGBA) error {
	frames := keptFrames(results)
	if len(frames) == 0 {
		return fmt.Errorf("batch: animation %s: no frames", path)
	}

	ms := uint(frameDuration / time.Millisecond)
	if ms == 0 {
		ms = 1
	}
	ani := &nativewebp.Animation{
		Images:          make([]image.Image, len(frames)),
		Durations:       make([]uint, len(frames)),
		Disposals:       make([]uint, len(frames)),
		LoopCount:       0,
		BackgroundColor: uint32(bg.A)<<24 | uint32(bg.R)<<16 | uint32(bg.G)<<8 | uint32(bg.B),
	}
	for i, f := range frames {
		ani.Images[i] = f
		ani.Durations[i] = ms
		ani.Disposals[i] = 0
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: animation %s: %w", path, err)
	}
	defer f.Close()
	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		return fmt.Errorf("batch: animation %s: %w", path, err)
	}
	return f.Close()
}

// WriteSheet writes the retained frames as a PNG contact sheet.
func WriteSheet(path string, results []Result, cols int, bg color.NRGBA) error {
	frames := keptFrames(results)
	if len(frames) == 0 {
		return fmt.Errorf("batch: sheet %s: no frames", path)
	}
	sheet := postprocess.ContactSheet(frames, cols, bg)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: sheet %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, sheet); err != nil {
		return fmt.Errorf("batch: sheet %s: %w", path, err)
	}
	return f.Close()
}
