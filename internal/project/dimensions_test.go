package project

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSourceDimensionsPrefersEventCapture(t *testing.T) {
	rec := Recording{Width: 1280, Height: 720}
	event := MouseEvent{CaptureWidth: 2560, CaptureHeight: 1440}
	w, h := ResolveSourceDimensions(rec, event, 0, 0, 1920, 1080, 0)
	require.Equal(t, 2560.0, w)
	require.Equal(t, 1440.0, h)
}

func TestResolveSourceDimensionsFallsBackToCaptureArea(t *testing.T) {
	rec := Recording{
		Width: 1280, Height: 720,
		CaptureArea: &CaptureArea{FullBounds: Dimensions{Width: 1920, Height: 1080}, ScaleFactor: 2},
	}
	w, h := ResolveSourceDimensions(rec, MouseEvent{}, 0, 0, 1920, 1080, 0)
	require.Equal(t, 3840.0, w)
	require.Equal(t, 2160.0, h)
}

func TestResolveSourceDimensionsFallsBackToRecordingThenDefault(t *testing.T) {
	rec := Recording{Width: 1280, Height: 720}
	w, h := ResolveSourceDimensions(rec, MouseEvent{}, 0, 0, 1920, 1080, 0)
	require.Equal(t, 1280.0, w)
	require.Equal(t, 720.0, h)

	w, h = ResolveSourceDimensions(Recording{}, MouseEvent{}, 0, 0, 0, 0, 0)
	require.Equal(t, 1920.0, w)
	require.Equal(t, 1080.0, h)
}

func TestResolveSourceDimensionsCorrectsPhysicalMismatch(t *testing.T) {
	rec := Recording{
		Width: 1280, Height: 720,
		CaptureArea: &CaptureArea{FullBounds: Dimensions{Width: 0, Height: 0}, ScaleFactor: 2},
	}
	// cursor coordinates far exceed the logical 1280x720 base, so the scale
	// factor is applied to recover physical pixels.
	w, h := ResolveSourceDimensions(rec, MouseEvent{}, 2000, 0, 1920, 1080, 1.10)
	require.Equal(t, 2560.0, w)
	require.Equal(t, 1440.0, h)
}

func TestResolveSourceDimensionsWithinToleranceUncorrected(t *testing.T) {
	rec := Recording{
		Width: 1280, Height: 720,
		CaptureArea: &CaptureArea{FullBounds: Dimensions{Width: 0, Height: 0}, ScaleFactor: 2},
	}
	w, h := ResolveSourceDimensions(rec, MouseEvent{}, 1300, 0, 1920, 1080, 1.10)
	require.Equal(t, 1280.0, w)
	require.Equal(t, 720.0, h)
}
