package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/compositor/internal/project"
)

func clip(id string, start, duration float64) project.Clip {
	return project.Clip{ID: id, RecordingID: "r", StartTime: start, Duration: duration, PlaybackRate: 1}
}

func TestBuildLayoutFrames(t *testing.T) {
	clips := []project.Clip{clip("a", 0, 1000), clip("b", 1000, 500)}
	items, err := Build(clips, 30)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 0, items[0].StartFrame)
	require.Equal(t, items[1].StartFrame, items[0].EndFrame)
}

func TestBuildRejectsOverlap(t *testing.T) {
	clips := []project.Clip{clip("a", 0, 1000), clip("b", 500, 500)}
	_, err := Build(clips, 30)
	require.Error(t, err)
}

func TestBuildRejectsUnsortedClips(t *testing.T) {
	clips := []project.Clip{clip("b", 1000, 500), clip("a", 0, 1000)}
	_, err := Build(clips, 30)
	require.Error(t, err)
}

func TestResolveActiveClipBoundaryTieBreak(t *testing.T) {
	clips := []project.Clip{clip("a", 0, 1000), clip("b", 1000, 1000)}
	items, err := Build(clips, 30)
	require.NoError(t, err)

	active := ResolveActiveClip(items, items[1].StartFrame)
	require.True(t, active.Present)
	require.Equal(t, "b", active.Item.Clip.ID, "frame at a boundary must prefer the clip that is starting")
	require.False(t, active.InGap)
}

func TestResolveActiveClipGapFallback(t *testing.T) {
	clips := []project.Clip{clip("a", 0, 500), clip("b", 2000, 500)}
	items, err := Build(clips, 30)
	require.NoError(t, err)

	gapFrame := items[0].EndFrame + 1
	require.Less(t, gapFrame, items[1].StartFrame)

	active := ResolveActiveClip(items, gapFrame)
	require.True(t, active.Present)
	require.True(t, active.InGap)
	require.Equal(t, "a", active.Item.Clip.ID)
}

func TestResolveActiveClipEmptyLayout(t *testing.T) {
	active := ResolveActiveClip(nil, 5)
	require.False(t, active.Present)
}
