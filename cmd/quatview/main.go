package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"quat-scene-renderer/internal/scene"
	"quat-scene-renderer/internal/viewmatrix"
)

func main() {
	sceneName := flag.String("scene", "axes", "Scene: axes or arrow")
	scale := flag.Float64("scale", 1, "Scene scale")
	elevation := flag.Float64("elev", viewmatrix.DefaultElevation, "Camera elevation in degrees")
	azimuth := flag.Float64("azim", viewmatrix.DefaultAzimuth, "Camera azimuth in degrees")
	flag.Parse()

	base, ok := scene.ByName(*sceneName, *scale)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", *sceneName)
		os.Exit(1)
	}
	var guide *scene.Polyline
	if *sceneName == "arrow" {
		g := scene.AxisGuide(*scale)
		guide = &g
	}
	camera := viewmatrix.DefaultCamera(*scale)
	camera.Elevation = *elevation
	camera.Azimuth = *azimuth

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: screen init failed: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: screen start failed: %v\n", err)
		os.Exit(1)
	}

	run(s, newViewer(base, guide, camera))
	s.Fini()
}

// run draws the viewer and serves key events until a quit key or the
// screen is finalized.
func run(s tcell.Screen, v *viewer) {
	v.draw(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
			v.draw(s)
		case *tcell.EventResize:
			s.Sync()
			v.draw(s)
		}
	}
}
