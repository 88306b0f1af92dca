package camera

import "github.com/vedantwpatil/compositor/internal/timespace"

// clampAxis implements the edge clamp of §4.F-9 / invariant 3: center lies
// in [halfWindow - overscanLow, 1 - halfWindow + overscanHigh]. Overscan is
// always non-negative additional pan (§9 design notes, sign convention c).
// Folding the "remap to output-normalized space, clamp, remap back" of
// step 6 into this single bounded clamp is exact for a linear clamp.
// Resolve calls this helper after integration (step 9) and
// keepCursorVisible calls it after its pull (step 10).
func clampAxis(v, half, overscanLow, overscanHigh float64) float64 {
	if overscanLow < 0 {
		overscanLow = 0
	}
	if overscanHigh < 0 {
		overscanHigh = 0
	}
	lo := half - overscanLow
	hi := 1 - half + overscanHigh
	return timespace.Clamp(v, lo, hi)
}
