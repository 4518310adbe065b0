package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quat-scene-renderer/internal/mathutil"
	"quat-scene-renderer/internal/scene"
	"quat-scene-renderer/internal/viewmatrix"
)

func testViewer() *viewer {
	return newViewer(scene.AxisMarkers(1), nil, viewmatrix.DefaultCamera(1))
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKeySteps(t *testing.T) {
	v := testViewer()
	cases := []struct {
		ev                *tcell.EventKey
		pitch, yaw, roll float64
	}{
		{key(tcell.KeyUp), 0.02, 0, 0},
		{key(tcell.KeyRight), 0.02, 0.02, 0},
		{char(']'), 0.02, 0.02, 0.02},
		{key(tcell.KeyPgDn), 0.02, 0.02, 0},
		{key(tcell.KeyLeft), 0.02, 0, 0},
		{key(tcell.KeyDown), 0, 0, 0},
		{char('['), 0, 0, -0.02},
	}
	for i, tc := range cases {
		require.False(t, v.handleKey(tc.ev), "step %d: unexpected quit", i)
		assert.InDelta(t, tc.pitch, v.pitch, 1e-12, "step %d pitch", i)
		assert.InDelta(t, tc.yaw, v.yaw, 1e-12, "step %d yaw", i)
		assert.InDelta(t, tc.roll, v.roll, 1e-12, "step %d roll", i)
	}

	want, err := scene.Compute(mathutil.EulerAngles{Roll: -0.02}, scene.AxisMarkers(1))
	require.NoError(t, err)
	assert.Equal(t, scene.Summary(want), scene.Summary(v.state), "state not recomputed after key press")
}

func TestHandleKeyClampAndReset(t *testing.T) {
	v := testViewer()
	for i := 0; i < 400; i++ {
		v.handleKey(key(tcell.KeyUp))
		v.handleKey(key(tcell.KeyLeft))
	}
	assert.Equal(t, mathutil.AngleLimit, v.pitch)
	assert.Equal(t, -mathutil.AngleLimit, v.yaw)

	v.handleKey(char('r'))
	assert.Zero(t, v.pitch)
	assert.Zero(t, v.yaw)
	assert.Zero(t, v.roll)
	assert.Equal(t, mathutil.QuatIdentity(), v.state.Quat)
}

func TestHandleKeyStaysOnGrid(t *testing.T) {
	v := testViewer()
	for i := 0; i < 150; i++ {
		v.handleKey(key(tcell.KeyUp))
	}
	n := 150.0
	assert.Equal(t, n*mathutil.AngleStep, v.pitch)

	for i := 0; i < 150; i++ {
		v.handleKey(key(tcell.KeyDown))
	}
	assert.Zero(t, v.pitch)

	for i := 0; i < 37; i++ {
		v.handleKey(char('['))
	}
	n = -37
	assert.Equal(t, n*mathutil.AngleStep, v.roll)
}

func TestHandleKeyQuit(t *testing.T) {
	v := testViewer()
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape), key(tcell.KeyCtrlC), char('q'), char('Q')} {
		assert.True(t, v.handleKey(ev), "%v did not quit", ev.Name())
	}
	assert.False(t, v.handleKey(char('z')), "unbound key quit")
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(120, 30)
	return s
}

func screenText(s tcell.SimulationScreen) (string, int) {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	markers := 0
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			b.WriteByte('\n')
		}
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
			if c.Runes[0] == 'O' {
				markers++
			}
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String(), markers
}

func TestDraw(t *testing.T) {
	s := newScreen(t)
	defer s.Fini()

	v := testViewer()
	v.draw(s)

	text, markers := screenText(s)
	for _, want := range []string{"Quaternion", "Matrix", "Points:", "0.0000 0.0000 0.0000 1.0000", "q quit"} {
		assert.Contains(t, text, want)
	}
	assert.Positive(t, markers, "no markers drawn")
	assert.Contains(t, text, "*", "no rotated lines drawn")
}

func TestRun(t *testing.T) {
	s := newScreen(t)
	defer s.Fini()

	v := testViewer()
	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, ']', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan struct{})
	go func() {
		run(s, v)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "run did not return after q")
	}

	assert.InDelta(t, 0.02, v.pitch, 1e-12)
	assert.InDelta(t, 0.02, v.yaw, 1e-12)
	assert.InDelta(t, 0.02, v.roll, 1e-12)
	text, _ := screenText(s)
	assert.Contains(t, text, "Pitch +0.02  Yaw +0.02  Roll +0.02", "screen not redrawn with the new angles")
}
