package camera

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfWindowMatchingAspectIsSymmetric(t *testing.T) {
	halfX, halfY := halfWindow(2, 1920, 1080, 1920, 1080)
	require.InDelta(t, 0.25, halfX, 1e-9)
	require.InDelta(t, 0.25, halfY, 1e-9)
}

func TestHalfWindowWiderOutputReservesLetterbox(t *testing.T) {
	// Output is wider than the source: the Y half-window grows to reserve
	// letterbox pan room on the vertical axis.
	halfX, halfY := halfWindow(1, 1920, 1080, 1000, 1000)
	require.InDelta(t, 0.5, halfX, 1e-9)
	require.Greater(t, halfY, 0.5)
}
