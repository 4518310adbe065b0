package batch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"quat-scene-renderer/internal/backdrop"
	"quat-scene-renderer/internal/postprocess"
	"quat-scene-renderer/internal/raster"
	"quat-scene-renderer/internal/scene"
	"quat-scene-renderer/internal/sweep"

	"github.com/HugoSmits86/nativewebp"
)

// Output formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir  string
	Scene      scene.Scene
	Render     raster.Options // Size is the final frame size
	Backdrop   string         // optional image path, loaded through Backdrops
	Backdrops  *backdrop.Cache
	Format     string
	Overlay    bool // draw the summary text onto each frame
	KeepImages bool // retain frames in Result.Frame for animation or sheets
	Workers    int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Image   string // path relative to OutputDir
	Frame   *image.NRGBA
	State   scene.State
	Success bool
	Error   string
}

// Run renders all frames using a worker pool.
func Run(cfg Config, frames []sweep.Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// FrameName returns the output file name of frame i.
func FrameName(i int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", i, format)
}

func processFrame(cfg Config, fr sweep.Frame) Result {
	res := Result{Index: fr.Index}

	st, err := scene.Compute(fr.Input(), cfg.Scene)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.State = st

	opts := cfg.Render
	if cfg.Backdrop != "" && cfg.Backdrops != nil {
		bg, err := cfg.Backdrops.Get(cfg.Backdrop)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		opts.Backdrop = bg
	}

	img := raster.RenderState(st, opts)

	// Post-processing: supersample downsample
	if opts.Supersample > 1 {
		img = postprocess.Downsample(img, opts.Size)
	}

	if cfg.Overlay {
		raster.DrawText(img, 4, 4, scene.Summary(st), color.NRGBA{255, 255, 255, 255})
	}

	format := cfg.Format
	if format == "" {
		format = FormatWebP
	}
	res.Image = FrameName(fr.Index, format)
	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	if err := writeImage(outPath, img, format); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.KeepImages {
		res.Frame = img
	}
	res.Success = true
	return res
}

func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return f.Close()
}
