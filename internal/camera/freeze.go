package camera

import (
	"math"

	"github.com/vedantwpatil/compositor/internal/config"
)

// updateFreeze implements §4.F-7's cursor-stop anti-shake state machine,
// with hysteresis: freezing engages after StopHoldMs of continuous low
// velocity, and only releases once velocity exceeds StopHysteresis times
// the stop threshold. target is this frame's (unfrozen) dead-zone target,
// captured as the frozen value the instant freezing engages.
func updateFreeze(cfg config.Camera, st *PhysicsState, timelineMs, scale, velocity float64, target Center) {
	if scale < 1.25 {
		st.Frozen = false
		st.StoppedAtMs = -1
		return
	}

	threshold := cfg.StopVelocityMax
	unfreezeThreshold := threshold * cfg.StopHysteresis

	switch {
	case velocity < threshold:
		if st.StoppedAtMs < 0 {
			st.StoppedAtMs = timelineMs
		}
		if timelineMs-st.StoppedAtMs >= cfg.StopHoldMs {
			if !st.Frozen {
				st.FrozenX, st.FrozenY = target.X, target.Y
			}
			st.Frozen = true
		}
	case velocity > unfreezeThreshold:
		st.Frozen = false
		st.StoppedAtMs = -1
	default:
		// Hysteresis band: leave current frozen/stopped state untouched.
	}
}

// attractorVelocity estimates normalized attractor velocity over a short
// window (§4.F-7: "over the last 50ms").
func attractorVelocity(curr, prev Center, windowMs float64) float64 {
	if windowMs <= 0 {
		return 0
	}
	dx := curr.X - prev.X
	dy := curr.Y - prev.Y
	return math.Hypot(dx, dy) / (windowMs / 1000)
}
