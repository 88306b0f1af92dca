package project

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffectiveSourceOutDerivesFromDuration(t *testing.T) {
	clip := Clip{SourceIn: 100, Duration: 2000, PlaybackRate: 1}
	require.Equal(t, 2100.0, clip.EffectiveSourceOut())
}

func TestEffectiveSourceOutHonorsExplicitValue(t *testing.T) {
	explicit := 9999.0
	clip := Clip{SourceIn: 100, Duration: 2000, PlaybackRate: 1, SourceOut: &explicit}
	require.Equal(t, explicit, clip.EffectiveSourceOut())
}

func TestEffectiveSourceOutAppliesPlaybackRate(t *testing.T) {
	clip := Clip{SourceIn: 0, Duration: 1000, PlaybackRate: 2}
	require.Equal(t, 2000.0, clip.EffectiveSourceOut())
}

func TestEffectivePlaybackRateDefaultsToOne(t *testing.T) {
	require.Equal(t, 1.0, Clip{}.EffectivePlaybackRate())
	require.Equal(t, 1.0, Clip{PlaybackRate: -1}.EffectivePlaybackRate())
	require.Equal(t, 2.5, Clip{PlaybackRate: 2.5}.EffectivePlaybackRate())
}
