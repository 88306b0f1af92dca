package camera

import (
	"math"

	"github.com/vedantwpatil/compositor/internal/config"
	"github.com/vedantwpatil/compositor/internal/timespace"
)

// deadZoneRatio implements the adaptive dead zone of §4.F-5:
// deadZoneRatio = lerp(0.30, 0.18, (scale-1.1)/(2.5-1.1)) clamped to the
// configured near/far bounds.
func deadZoneRatio(cfg config.Camera, scale float64) float64 {
	u := (scale - 1.1) / (2.5 - 1.1)
	u = timespace.Clamp(u, 0, 1)
	return cfg.DeadZoneRatioNear + (cfg.DeadZoneRatioFar-cfg.DeadZoneRatioNear)*u
}

// deadZoneFollow implements §4.F-5's soft-follow / snap-to-boundary target
// computation with directional bias and a small predictive offset from
// cursor velocity, given the current camera center.
func deadZoneFollow(cfg config.Camera, center Center, cursorN, velocityN Center, scale, halfX, halfY float64) Center {
	ratio := deadZoneRatio(cfg, scale)
	dzHalfX := halfX * ratio
	dzHalfY := halfY * ratio

	dx := cursorN.X - center.X
	dy := cursorN.Y - center.Y

	var moveX, moveY float64
	if math.Abs(dx) <= dzHalfX {
		moveX = dx * cfg.SoftFollowGain
	} else {
		over := dx - math.Copysign(dzHalfX, dx)
		moveX = over
	}
	if math.Abs(dy) <= dzHalfY {
		moveY = dy * cfg.SoftFollowGain
	} else {
		over := dy - math.Copysign(dzHalfY, dy)
		moveY = over
	}

	// Directional bias: prefer single-axis pans (§4.F-5).
	b := cfg.DirectionalBias
	if math.Abs(dx) > b*math.Abs(dy) {
		moveY *= 1 - b
	} else if math.Abs(dy) > b*math.Abs(dx) {
		moveX *= 1 - b
	}

	target := Center{X: center.X + moveX, Y: center.Y + moveY}

	// Small predictive offset from smoothed cursor velocity.
	target.X += velocityN.X * cfg.PredictiveGain
	target.Y += velocityN.Y * cfg.PredictiveGain

	return target
}
