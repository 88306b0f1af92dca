package project

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIDUnique(t *testing.T) {
	require.NotEqual(t, NewID(), NewID())
}

func TestNewRecordingAssignsID(t *testing.T) {
	rec := NewRecording(1920, 1080, 10000, RecordingMetadata{})
	require.NotEmpty(t, rec.ID)
	require.Equal(t, 1920, rec.Width)
	require.Equal(t, 1080, rec.Height)
	require.Equal(t, 10000.0, rec.DurationMs)
}

func TestNewClipDefaultsPlaybackRate(t *testing.T) {
	clip := NewClip("rec-1", 0, 5000, 200)
	require.NotEmpty(t, clip.ID)
	require.Equal(t, "rec-1", clip.RecordingID)
	require.Equal(t, 1.0, clip.PlaybackRate)
	require.Equal(t, 0.0, clip.StartTime)
	require.Equal(t, 5000.0, clip.Duration)
	require.Equal(t, 200.0, clip.SourceIn)
}
