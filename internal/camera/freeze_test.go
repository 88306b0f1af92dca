package camera

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateFreezeEngagesAfterHold(t *testing.T) {
	cfg := testCameraConfig()
	st := NewPhysicsState()
	target := Center{X: 0.4, Y: 0.4}

	updateFreeze(cfg, st, 0, 2.0, 0.001, target)
	require.False(t, st.Frozen, "freeze should not engage before StopHoldMs elapses")

	updateFreeze(cfg, st, cfg.StopHoldMs, 2.0, 0.001, target)
	require.True(t, st.Frozen)
	require.Equal(t, target.X, st.FrozenX)
	require.Equal(t, target.Y, st.FrozenY)
}

func TestUpdateFreezeDoesNotEngageBelowZoomThreshold(t *testing.T) {
	cfg := testCameraConfig()
	st := NewPhysicsState()
	updateFreeze(cfg, st, 0, 1.0, 0, Center{})
	updateFreeze(cfg, st, cfg.StopHoldMs, 1.0, 0, Center{})
	require.False(t, st.Frozen, "freeze only applies once zoomed in past scale 1.25")
}

func TestUpdateFreezeReleasesAboveHysteresis(t *testing.T) {
	cfg := testCameraConfig()
	st := NewPhysicsState()
	target := Center{X: 0.4, Y: 0.4}
	updateFreeze(cfg, st, 0, 2.0, 0.001, target)
	updateFreeze(cfg, st, cfg.StopHoldMs, 2.0, 0.001, target)
	require.True(t, st.Frozen)

	fast := cfg.StopVelocityMax*cfg.StopHysteresis + 0.01
	updateFreeze(cfg, st, cfg.StopHoldMs+50, 2.0, fast, target)
	require.False(t, st.Frozen)
}

func TestUpdateFreezeHysteresisBandHoldsState(t *testing.T) {
	cfg := testCameraConfig()
	st := NewPhysicsState()
	target := Center{X: 0.4, Y: 0.4}
	updateFreeze(cfg, st, 0, 2.0, 0.001, target)
	updateFreeze(cfg, st, cfg.StopHoldMs, 2.0, 0.001, target)
	require.True(t, st.Frozen)

	between := (cfg.StopVelocityMax + cfg.StopVelocityMax*cfg.StopHysteresis) / 2
	updateFreeze(cfg, st, cfg.StopHoldMs+50, 2.0, between, target)
	require.True(t, st.Frozen, "velocity in the hysteresis band should leave frozen state untouched")
}

func TestAttractorVelocity(t *testing.T) {
	v := attractorVelocity(Center{X: 0.1, Y: 0}, Center{X: 0, Y: 0}, 50)
	require.InDelta(t, 2.0, v, 1e-9)
	require.Equal(t, 0.0, attractorVelocity(Center{}, Center{}, 0))
}
