package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config holds output paths, camera and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`
	Backdrop  string `json:"backdrop"`
	GLTF      string `json:"gltf"`

	// Scene and camera
	Scene       string  `json:"scene"`
	Scale       float64 `json:"scale"`
	Elevation   float64 `json:"elevation"`
	Azimuth     float64 `json:"azimuth"`
	Perspective bool    `json:"perspective"`
	FOV         float64 `json:"fov"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
	Workers     int    `json:"workers"`

	// Sweep
	Frames  int    `json:"frames"`
	FrameMS int    `json:"frame_ms"`
	Easing  string `json:"easing"`

	// Elevation and azimuth are zero-valued when absent from JSON, which
	// is a legitimate angle; these track whether they were set.
	hasElevation bool
	hasAzimuth   bool
}

// Defaults applied by Resolve.
const (
	DefaultRenderSize  = 256
	DefaultSupersample = 2
	DefaultScale       = 1.0
	DefaultElevation   = 30.0
	DefaultAzimuth     = -60.0
	DefaultFOV         = 75.0
	DefaultFormat      = "webp"
	DefaultFrames      = 1
	DefaultFrameMS     = 40
	DefaultOutputDir   = "renders"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values until Resolve.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err == nil {
		_, cfg.hasElevation = present["elevation"]
		_, cfg.hasAzimuth = present["azimuth"]
	}

	// Relative paths in the file are relative to the file itself
	dir := filepath.Dir(path)
	cfg.OutputDir = resolvePath(dir, cfg.OutputDir)
	cfg.Backdrop = resolvePath(dir, cfg.Backdrop)
	cfg.GLTF = resolvePath(dir, cfg.GLTF)

	return cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.GLTF != "" {
		c.GLTF = flags.GLTF
	}
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Elevation != nil {
		c.Elevation = *flags.Elevation
		c.hasElevation = true
	}
	if flags.Azimuth != nil {
		c.Azimuth = *flags.Azimuth
		c.hasAzimuth = true
	}
	if flags.Perspective {
		c.Perspective = true
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Easing != "" {
		c.Easing = flags.Easing
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Scale <= 0 {
		c.Scale = DefaultScale
	}
	if !c.hasElevation {
		c.Elevation = DefaultElevation
		c.hasElevation = true
	}
	if !c.hasAzimuth {
		c.Azimuth = DefaultAzimuth
		c.hasAzimuth = true
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		c.FOV = DefaultFOV
	}
	if c.RenderSize <= 0 {
		c.RenderSize = DefaultRenderSize
	}
	if c.Supersample <= 0 {
		c.Supersample = DefaultSupersample
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = DefaultFrames
	}
	if c.FrameMS <= 0 {
		c.FrameMS = DefaultFrameMS
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	switch c.Format {
	case "webp", "png":
	default:
		return fmt.Errorf("config: unknown format %q (want webp or png)", c.Format)
	}
	switch c.Scene {
	case "", "axes", "arrow":
	default:
		return fmt.Errorf("config: unknown scene %q (want axes or arrow)", c.Scene)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
// Elevation and Azimuth are pointers because zero is a valid angle.
type Flags struct {
	OutputDir   string
	Backdrop    string
	GLTF        string
	Scene       string
	Scale       float64
	Elevation   *float64
	Azimuth     *float64
	Perspective bool
	Size        int
	Format      string
	Workers     int
	Frames      int
	Easing      string
}
