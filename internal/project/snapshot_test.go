package project

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSnapshotRoundTrip(t *testing.T) {
	rec := NewRecording(1920, 1080, 10000, RecordingMetadata{
		MouseEvents: []MouseEvent{{TimeMs: 0, X: 10, Y: 20}},
	})
	clip := NewClip(rec.ID, 0, 5000, 0)
	snap := Snapshot{
		Recordings: RecordingSet{rec.ID: rec},
		Clips:      []Clip{clip},
		TimelineEffects: []Effect{
			{ID: "bg-1", Type: EffectBackground, StartTime: 0, EndTime: 5000, Enabled: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeSnapshot(&buf, snap))

	decoded, err := DecodeSnapshot(&buf)
	require.NoError(t, err)

	require.Len(t, decoded.Recordings, 1)
	require.Equal(t, rec, decoded.Recordings[rec.ID])
	require.Equal(t, snap.Clips, decoded.Clips)
	require.Equal(t, snap.TimelineEffects, decoded.TimelineEffects)
}

func TestDecodeSnapshotInvalidJSON(t *testing.T) {
	_, err := DecodeSnapshot(bytes.NewReader([]byte("not json")))
	require.Error(t, err)
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := LoadSnapshot("/nonexistent/path/snapshot.json")
	require.Error(t, err)
}
