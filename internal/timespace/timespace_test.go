package timespace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vedantwpatil/compositor/internal/project"
)

func TestRoundHalfEven(t *testing.T) {
	cases := map[float64]float64{
		0.5: 0, 1.5: 2, 2.5: 2, 3.5: 4, -0.5: 0, -1.5: -2, 2.4: 2, 2.6: 3,
	}
	for in, want := range cases {
		require.Equal(t, want, RoundHalfEven(in), "input %v", in)
	}
}

func TestClipRelativeClamps(t *testing.T) {
	clip := project.Clip{StartTime: 1000, Duration: 2000}
	require.Equal(t, 0.0, ClipRelative(500, clip))
	require.Equal(t, 2000.0, ClipRelative(5000, clip))
	require.Equal(t, 500.0, ClipRelative(1500, clip))
}

func TestTimelineSourceRoundTrip(t *testing.T) {
	clip := project.Clip{StartTime: 1000, Duration: 2000, SourceIn: 500, PlaybackRate: 2}
	timelineMs := 1400.0
	source := TimelineToSource(timelineMs, clip)
	require.Equal(t, 500.0+400.0*2, source)

	back := SourceToTimeline(source, clip)
	require.InDelta(t, timelineMs, back, 1e-9)
}

func TestFrameTimelineConversion(t *testing.T) {
	require.InDelta(t, 1000.0, FrameToTimelineMs(30, 30), 1e-9)
	require.Equal(t, 30, TimelineMsToFrame(1000, 30))
}
