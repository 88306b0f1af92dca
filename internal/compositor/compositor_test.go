package compositor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/compositor/internal/camera"
	"github.com/vedantwpatil/compositor/internal/config"
	"github.com/vedantwpatil/compositor/internal/motion"
	"github.com/vedantwpatil/compositor/internal/project"
)

func testRecording() project.Recording {
	return project.Recording{
		ID: "rec-1", Width: 1920, Height: 1080,
		Metadata: project.RecordingMetadata{
			MouseEvents: []project.MouseEvent{
				{TimeMs: 0, X: 960, Y: 540},
				{TimeMs: 5000, X: 1200, Y: 600},
			},
			KeyboardEvents: []project.KeyboardEvent{
				{TimeMs: 100, Key: "KeyH"},
			},
		},
	}
}

func TestBuildFrameLayoutAndResolveActiveClip(t *testing.T) {
	c := New(*config.Default())
	clip := project.NewClip("rec-1", 0, 5000, 0)

	require.NoError(t, c.BuildFrameLayout([]project.Clip{clip}, 30))
	active := c.ResolveActiveClip(0)
	require.True(t, active.Present)
	require.Equal(t, clip.ID, active.Item.Clip.ID)
}

func TestSourceTimeForFrameComposesLayoutAndConverter(t *testing.T) {
	c := New(*config.Default())
	clip := project.NewClip("rec-1", 0, 5000, 0)
	require.NoError(t, c.BuildFrameLayout([]project.Clip{clip}, 30))

	_, sourceMs, timelineMs, ok := c.SourceTimeForFrame(30, 30)
	require.True(t, ok)
	require.InDelta(t, 1000, timelineMs, 1e-6)
	require.InDelta(t, 1000, sourceMs, 1e-6)
}

func TestSourceTimeForFrameEmptyLayout(t *testing.T) {
	c := New(*config.Default())
	_, _, _, ok := c.SourceTimeForFrame(0, 30)
	require.False(t, ok)
}

func TestComputeCameraStateAdvancesSequentialPhysics(t *testing.T) {
	c := New(*config.Default())
	rec := testRecording()

	input := camera.Input{
		TimelineMs: 0, SourceMs: 0,
		Recording: rec, OutputWidth: 1920, OutputHeight: 1080,
	}
	first := c.ComputeCameraState(input)

	input.TimelineMs, input.SourceMs = 33, 33
	second := c.ComputeCameraState(input)

	require.GreaterOrEqual(t, first.Scale, 1.0)
	require.GreaterOrEqual(t, second.Scale, 1.0)
}

func TestComputeCameraStateIgnoresCallerModeOverride(t *testing.T) {
	c := New(*config.Default())
	rec := testRecording()

	input := camera.Input{
		Recording: rec, OutputWidth: 1920, OutputHeight: 1080,
		Mode: camera.ModeDeterministic,
	}
	res := c.ComputeCameraState(input)
	require.GreaterOrEqual(t, res.Scale, 1.0)
}

func TestPrecomputeCameraPathIsIndependentOfSequentialState(t *testing.T) {
	c := New(*config.Default())
	rec := testRecording()

	c.ComputeCameraState(camera.Input{Recording: rec, OutputWidth: 1920, OutputHeight: 1080})

	frames := []camera.FrameInput{{TimelineMs: 0, SourceMs: 0}, {TimelineMs: 33, SourceMs: 33}}
	table := c.PrecomputeCameraPath(frames, camera.Input{Recording: rec, OutputWidth: 1920, OutputHeight: 1080})
	require.Len(t, table, 2)
}

func TestCalculateCursorStateAdvancesOwnedStateAcrossCalls(t *testing.T) {
	c := New(*config.Default())
	events := []project.MouseEvent{{TimeMs: 0, X: 100, Y: 100}, {TimeMs: 1000, X: 500, Y: 500}}
	cfg := motion.CursorConfig{Speed: 0.5, Smoothness: 0.5}

	first := c.CalculateCursorState(cfg, events, nil, 0, 30, nil)
	require.NotNil(t, c.cursor)
	require.Equal(t, first.Next, *c.cursor)

	second := c.CalculateCursorState(cfg, events, nil, 16, 30, nil)
	require.Equal(t, second.Next, *c.cursor)
}

func TestRenderKeystrokesDelegatesToAggregator(t *testing.T) {
	c := New(*config.Default())
	events := []project.KeyboardEvent{{TimeMs: 0, Key: "KeyH"}}
	blocks := c.RenderKeystrokes(events, 50, "bottom-center")
	require.Len(t, blocks, 1)
	require.Equal(t, "h", blocks[0].Text)
}

func TestResolveEffectsDelegatesToResolver(t *testing.T) {
	c := New(*config.Default())
	clip := project.NewClip("rec-1", 0, 5000, 0)
	rec := testRecording()
	timelineEffects := []project.Effect{
		{ID: "bg", Type: project.EffectBackground, StartTime: 0, EndTime: 5000, Enabled: true},
	}
	cmds := c.ResolveEffects(clip, rec, timelineEffects, 1000, 1000)
	require.Len(t, cmds, 1)
}

func TestResetSequentialStateClearsOwnedState(t *testing.T) {
	c := New(*config.Default())
	rec := testRecording()
	c.ComputeCameraState(camera.Input{Recording: rec, OutputWidth: 1920, OutputHeight: 1080})
	events := []project.MouseEvent{{TimeMs: 0, X: 100, Y: 100}}
	c.CalculateCursorState(motion.CursorConfig{Speed: 0.5, Smoothness: 0.5}, events, nil, 0, 30, nil)
	require.NotNil(t, c.cursor)

	c.ResetSequentialState()
	require.Nil(t, c.cursor)
	require.Equal(t, camera.NewPhysicsState(), c.physics)
}
