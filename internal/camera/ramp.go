package camera

import "github.com/vedantwpatil/compositor/internal/timespace"

// smoothstep eases u in [0,1] with t^2(3-2t), matching the Mouse
// Interpolator's easing (§4.C, reused by §4.F-1's intro/outro ramp).
func smoothstep(u float64) float64 {
	u = timespace.Clamp(u, 0, 1)
	return u * u * (3 - 2*u)
}

// rampedScale implements §4.F-1: intro/outro smoothstep easing of scale
// from 1 to the zoom block's target scale and back to 1.
func rampedScale(elapsedMs, durationMs, scale, introMs, outroMs float64) float64 {
	if durationMs <= 0 {
		return scale
	}
	if introMs <= 0 {
		introMs = 300
	}
	if outroMs <= 0 {
		outroMs = 300
	}

	switch {
	case elapsedMs < introMs:
		return 1 + (scale-1)*smoothstep(elapsedMs/introMs)
	case elapsedMs > durationMs-outroMs:
		remaining := durationMs - elapsedMs
		if remaining < 0 {
			remaining = 0
		}
		return 1 + (scale-1)*smoothstep(remaining/outroMs)
	default:
		return scale
	}
}
