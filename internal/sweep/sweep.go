// Package sweep plans eased orientation sweeps: a sequence of frames that
// slerp from one orientation to another.
package sweep

import (
	"fmt"
	"sort"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/scene"
)

// DefaultEasing is used when a sweep names no easing.
const DefaultEasing = "in-out-sine"

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-out-expo":  ease.InOutExpo,
	"out-back":     ease.OutBack,
	"out-bounce":   ease.OutBounce,
}

// Easing looks up an easing function by name. An empty name selects
// DefaultEasing.
func Easing(name string) (ease.TweenFunc, error) {
	if name == "" {
		name = DefaultEasing
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("sweep: unknown easing %q (have %v)", name, EasingNames())
	}
	return fn, nil
}

// EasingNames returns the known easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sweep describes a transition between two orientations.
type Sweep struct {
	From          scene.Input
	To            scene.Input
	Frames        int
	FrameDuration time.Duration
	Easing        string
}

// Frame is one planned orientation of a sweep.
type Frame struct {
	Index    int
	Time     time.Duration
	Progress float64 // eased progress in [0, 1] for monotonic easings
	Quat     mathutil.Quat
	Angle    float64 // radians rotated away from the first frame
}

// Input returns the frame's orientation as a scene input.
func (f Frame) Input() scene.Input {
	return scene.Fixed(f.Quat)
}

// Plan computes the frames of the sweep. With Frames <= 1 (or no From) it
// returns a single frame holding To.
func (s Sweep) Plan() ([]Frame, error) {
	if s.To == nil {
		return nil, fmt.Errorf("sweep: missing target orientation")
	}
	qb, err := s.To.Quaternion()
	if err != nil {
		return nil, fmt.Errorf("sweep: target: %w", err)
	}
	qb, err = mathutil.Normalize(qb)
	if err != nil {
		return nil, fmt.Errorf("sweep: target: %w", err)
	}
	if s.Frames <= 1 || s.From == nil {
		return []Frame{{Progress: 1, Quat: qb}}, nil
	}

	qa, err := s.From.Quaternion()
	if err != nil {
		return nil, fmt.Errorf("sweep: start: %w", err)
	}
	qa, err = mathutil.Normalize(qa)
	if err != nil {
		return nil, fmt.Errorf("sweep: start: %w", err)
	}
	fn, err := Easing(s.Easing)
	if err != nil {
		return nil, err
	}

	last := float32(s.Frames - 1)
	tween := gween.New(0, 1, last, fn)
	frames := make([]Frame, s.Frames)
	for i := range frames {
		p, _ := tween.Set(float32(i))
		q, err := mathutil.Slerp(qa, qb, float64(p))
		if err != nil {
			return nil, fmt.Errorf("sweep: frame %d: %w", i, err)
		}
		frames[i] = Frame{
			Index:    i,
			Time:     time.Duration(i) * s.FrameDuration,
			Progress: float64(p),
			Quat:     q,
			Angle:    qa.AngleTo(q),
		}
	}
	return frames, nil
}
