package camera

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/compositor/internal/project"
)

func testRecording() project.Recording {
	return project.Recording{ID: "r1", Width: 1920, Height: 1080}
}

func testEvents() []project.MouseEvent {
	return []project.MouseEvent{
		{TimeMs: 0, X: 960, Y: 540},
		{TimeMs: 500, X: 1000, Y: 540},
		{TimeMs: 1000, X: 1200, Y: 600},
		{TimeMs: 1500, X: 1200, Y: 600},
		{TimeMs: 2000, X: 1200, Y: 600},
	}
}

func TestResolveDeterministicModeIgnoresCallOrder(t *testing.T) {
	e := NewEngine(testCameraConfig())
	rec := testRecording()
	events := testEvents()

	in := Input{
		TimelineMs: 1000, SourceMs: 1000,
		Recording: rec, Events: events, Mode: ModeDeterministic,
		OutputWidth: 1920, OutputHeight: 1080,
	}

	first := e.Resolve(in, nil)

	// A call with unrelated prior history must produce the same result:
	// deterministic mode is a pure function of the current inputs only.
	unrelated := NewPhysicsState()
	unrelated.X, unrelated.Y, unrelated.HasHistory = 0.1, 0.9, true
	second := e.Resolve(in, unrelated)

	require.InDelta(t, first.Scale, second.Scale, 1e-9)
	require.InDelta(t, first.Center.X, second.Center.X, 1e-9)
	require.InDelta(t, first.Center.Y, second.Center.Y, 1e-9)
}

func TestResolveCenterStaysWithinInvariantBounds(t *testing.T) {
	e := NewEngine(testCameraConfig())
	rec := testRecording()
	events := testEvents()

	zoom := &ZoomContext{Block: project.ZoomBlock{Scale: 2, IntroMs: 300, OutroMs: 300, FollowStrategy: project.FollowMouse}, StartTime: 0, EndTime: 4000}

	physics := NewPhysicsState()
	for _, tMs := range []float64{0, 500, 1000, 1500, 2000} {
		in := Input{
			TimelineMs: tMs, SourceMs: tMs,
			Zoom: zoom, Recording: rec, Events: events, Mode: ModePhysics,
			OutputWidth: 1920, OutputHeight: 1080,
		}
		res := e.Resolve(in, physics)
		halfX, halfY := halfWindow(res.Scale, 1920, 1080, 1920, 1080)
		require.GreaterOrEqual(t, res.Center.X, halfX-1e-9)
		require.LessOrEqual(t, res.Center.X, 1-halfX+1e-9)
		require.GreaterOrEqual(t, res.Center.Y, halfY-1e-9)
		require.LessOrEqual(t, res.Center.Y, 1-halfY+1e-9)
	}
}

func TestPrecomputeMatchesSequentialSimulation(t *testing.T) {
	e := NewEngine(testCameraConfig())
	rec := testRecording()
	events := testEvents()
	zoom := &ZoomContext{Block: project.ZoomBlock{Scale: 2, IntroMs: 300, OutroMs: 300, FollowStrategy: project.FollowMouse}, StartTime: 0, EndTime: 4000}

	base := Input{Recording: rec, Events: events, OutputWidth: 1920, OutputHeight: 1080}
	frames := make([]FrameInput, 0, 60)
	for i := 0; i < 60; i++ {
		tMs := float64(i) * (1000.0 / 30)
		frames = append(frames, FrameInput{TimelineMs: tMs, SourceMs: tMs, Zoom: zoom})
	}

	table := e.PrecomputeCameraPath(frames, base)
	require.Len(t, table, len(frames))

	physics := NewPhysicsState()
	for i, f := range frames {
		in := base
		in.TimelineMs, in.SourceMs, in.Zoom, in.Mode = f.TimelineMs, f.SourceMs, f.Zoom, ModePhysics
		want := e.Resolve(in, physics)
		require.InDelta(t, want.Scale, table[i].Scale, 1e-9, "frame %d", i)
		require.InDelta(t, want.Center.X, table[i].Center.X, 1e-9, "frame %d", i)
		require.InDelta(t, want.Center.Y, table[i].Center.Y, 1e-9, "frame %d", i)
	}
}
