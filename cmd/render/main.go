package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quat-scene-renderer/internal/backdrop"
	"quat-scene-renderer/internal/batch"
	"quat-scene-renderer/internal/config"
	"quat-scene-renderer/internal/gltfexport"
	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/raster"
	"quat-scene-renderer/internal/scene"
	"quat-scene-renderer/internal/sweep"
	"quat-scene-renderer/internal/viewmatrix"
)

type multiFlag []string

func (m *multiFlag) String() string     { return strings.Join(*m, " ") }
func (m *multiFlag) Set(v string) error { *m = append(*m, v); return nil }

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	sceneName := flag.String("scene", "", "Scene: axes or arrow (default: axes)")
	scale := flag.Float64("scale", 0, "Scene scale (default: 1)")
	size := flag.Int("size", 0, "Output size in pixels (default: 256)")
	format := flag.String("format", "", "Frame format: webp or png (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	backdropPath := flag.String("backdrop", "", "Backdrop image (png, jpeg or tga)")
	gltfPath := flag.String("gltf", "", "Also export the final orientation as .gltf/.glb")
	perspective := flag.Bool("perspective", false, "Use a perspective camera")
	elevation := flag.Float64("elev", viewmatrix.DefaultElevation, "Camera elevation in degrees")
	azimuth := flag.Float64("azim", viewmatrix.DefaultAzimuth, "Camera azimuth in degrees")

	pitch := flag.Float64("pitch", 0, "Pitch in radians")
	yaw := flag.Float64("yaw", 0, "Yaw in radians")
	roll := flag.Float64("roll", 0, "Roll in radians")
	var axes multiFlag
	flag.Var(&axes, "axis", "Axis-angle x,y,z:degrees; repeat to compose in order")

	frames := flag.Int("frames", 0, "Sweep from rest to the orientation over N frames (default: 1)")
	easing := flag.String("easing", "", "Sweep easing: "+strings.Join(sweep.EasingNames(), ", "))
	animate := flag.Bool("animate", false, "Write an animated sweep.webp")
	sheetCols := flag.Int("sheet", 0, "Write a sheet.png contact sheet with N columns")
	overlay := flag.Bool("overlay", false, "Draw the quaternion/matrix summary onto frames")
	depthCue := flag.Bool("depthcue", true, "Darken geometry with distance")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	flags := config.Flags{
		OutputDir:   *outputDir,
		Backdrop:    *backdropPath,
		GLTF:        *gltfPath,
		Scene:       *sceneName,
		Scale:       *scale,
		Perspective: *perspective,
		Size:        *size,
		Format:      *format,
		Workers:     *workers,
		Frames:      *frames,
		Easing:      *easing,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "elev":
			flags.Elevation = elevation
		case "azim":
			flags.Azimuth = azimuth
		}
	})
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	base, _ := scene.ByName(cfg.Scene, cfg.Scale)
	target, err := scene.InputFrom(mathutil.EulerAngles{Pitch: *pitch, Yaw: *yaw, Roll: *roll}, axes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plan, err := sweep.Sweep{
		From:          mathutil.EulerAngles{},
		To:            target,
		Frames:        cfg.Frames,
		FrameDuration: time.Duration(cfg.FrameMS) * time.Millisecond,
		Easing:        cfg.Easing,
	}.Plan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	camera := viewmatrix.Camera{
		Elevation:   cfg.Elevation,
		Azimuth:     cfg.Azimuth,
		Perspective: cfg.Perspective,
		FOV:         cfg.FOV,
		Extent:      viewmatrix.DefaultExtent * cfg.Scale,
	}
	opts := raster.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Camera:      camera,
		Background:  raster.DefaultBackground,
		ShowBase:    true,
		DepthCue:    *depthCue,
	}
	if cfg.Scene == "arrow" {
		guide := scene.AxisGuide(cfg.Scale)
		opts.Guide = &guide
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	mode := ""
	if len(plan) > 1 {
		mode = fmt.Sprintf(" (sweep: %d frames, %s)", len(plan), easingName(cfg.Easing))
	}
	fmt.Printf("Quaternion scene renderer → %s%s\n", strings.ToUpper(cfg.Format), mode)
	fmt.Printf("Frames: %d, Workers: %d, Size: %dpx ×%d\n", len(plan), cfg.Workers, cfg.RenderSize, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:  cfg.OutputDir,
		Scene:      base,
		Render:     opts,
		Backdrop:   cfg.Backdrop,
		Backdrops:  backdrop.NewCache(),
		Format:     cfg.Format,
		Overlay:    *overlay,
		KeepImages: *animate || *sheetCols > 0,
		Workers:    cfg.Workers,
	}

	results := batch.Run(batchCfg, plan)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(plan))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Index, e.Error)
		}
	}

	last := results[len(results)-1]
	if last.Success {
		fmt.Println()
		fmt.Println(scene.Summary(last.State))
		fmt.Println()
	}

	if *animate && success > 0 {
		aniPath := filepath.Join(cfg.OutputDir, "sweep.webp")
		frameDur := time.Duration(cfg.FrameMS) * time.Millisecond
		if err := batch.WriteAnimation(aniPath, results, frameDur, opts.Background); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Animation: %s\n", aniPath)
		}
	}

	if *sheetCols > 0 && success > 0 {
		sheetPath := filepath.Join(cfg.OutputDir, "sheet.png")
		if err := batch.WriteSheet(sheetPath, results, *sheetCols, opts.Background); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Sheet: %s\n", sheetPath)
		}
	}

	if cfg.GLTF != "" && last.Success {
		if err := gltfexport.Write(cfg.GLTF, last.State, gltfexport.Options{IncludeBase: true}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("glTF: %s\n", cfg.GLTF)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, plan, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func easingName(name string) string {
	if name == "" {
		return sweep.DefaultEasing
	}
	return name
}
