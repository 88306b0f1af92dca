package project

import "github.com/google/uuid"

// NewID mints a fresh identifier for a generated fixture recording, clip,
// or effect. Real ids normally come from the project store (§6); this is
// only used by tests and the CLI's fixture generator.
func NewID() string {
	return uuid.NewString()
}

// NewRecording builds a Recording with a freshly minted id, convenient for
// tests that don't care about a specific id.
func NewRecording(width, height int, durationMs float64, metadata RecordingMetadata) Recording {
	return Recording{
		ID:         NewID(),
		Width:      width,
		Height:     height,
		DurationMs: durationMs,
		Metadata:   metadata,
	}
}

// NewClip builds a Clip with a freshly minted id and PlaybackRate defaulted
// to 1.
func NewClip(recordingID string, startTime, duration, sourceIn float64) Clip {
	return Clip{
		ID:           NewID(),
		RecordingID:  recordingID,
		StartTime:    startTime,
		Duration:     duration,
		SourceIn:     sourceIn,
		PlaybackRate: 1,
	}
}
