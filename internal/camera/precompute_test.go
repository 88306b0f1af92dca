package camera

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecomputeCameraPathLength(t *testing.T) {
	e := newEngine()
	rec := testRecording()
	events := testEvents()
	base := Input{Recording: rec, Events: events, OutputWidth: 1920, OutputHeight: 1080}

	frames := make([]FrameInput, 10)
	for i := range frames {
		tMs := float64(i) * 33.3
		frames[i] = FrameInput{TimelineMs: tMs, SourceMs: tMs}
	}

	table := e.PrecomputeCameraPath(frames, base)
	require.Len(t, table, 10)
	for _, r := range table {
		require.GreaterOrEqual(t, r.Scale, 1.0)
	}
}
