package motion

import (
	"math"

	"github.com/vedantwpatil/compositor/internal/project"
)

// CursorConfig mirrors spec.md §4.D's cursor config payload.
type CursorConfig struct {
	Speed        float64 // [0,1]
	Smoothness   float64 // [0,1]
	Gliding      bool
	HideOnIdle   bool
	IdleTimeout  float64 // ms
	MotionBlur   bool // passed through to the overlay draw command, not used by the math here
	ClickEffects bool
}

// Tuning collects the constants internal/config.Cursor supplies; kept
// separate from CursorConfig so per-call tunables (usually process-wide)
// don't have to be threaded through every payload.
type Tuning struct {
	ReconstructLookbackMinMs float64
	ReconstructBaseMs        float64
	ReconstructSmoothSpanMs  float64
	ReconstructSpeedBase     float64
	ReconstructSpeedSpan     float64
	StepReuseWindowMs        float64
	TauMin                   float64
	TauBaseMin               float64
	TauBaseMax               float64
	SpeedTauFactor           float64
	FarBoostDivisor          float64
	FarBoostMaxExtra         float64
	JitterRadiusMin          float64
	JitterRadiusMax          float64
	IdleFadeOutMs            float64
	IdleFadeInMs             float64
	ClickRippleMaxAgeMs      float64
	ClickRippleGrowMs        float64
	ClickRippleBaseRadius    float64
	ClickRippleGrowRadius    float64
}

// State is the Cursor Smoother's previous-step snapshot (§4.D-2). Owned
// exclusively by one sequential caller; random-access callers pass nil and
// get the stateless reconstruction path instead.
type State struct {
	Position      Point
	Opacity       float64
	TimeMs        float64
	Visible       bool
	WakeElapsedMs float64
}

// Ripple is a single click-ripple draw primitive (§4.D-6).
type Ripple struct {
	X, Y    float64
	Radius  float64
	Opacity float64
}

// CursorState is ComputeCursorState's result.
type CursorState struct {
	Position Point
	Opacity  float64
	Ripples  []Ripple
	Next     State // feed back into the next sequential call
}

// ComputeCursorState implements the Cursor Smoother (§4.D). events and
// clicks are read-only snapshots; previous is nil in random-access mode.
// cache is optional (nil disables memoization); a miss always recomputes
// and never changes the result (§4.D).
func ComputeCursorState(cfg CursorConfig, tn Tuning, events []project.MouseEvent, clicks []project.ClickEvent, now float64, previous *State, fps float64, cache *ReconstructCache) CursorState {
	raw, err := Interpolate(events, now)
	if err != nil {
		// NoData (§7): soft default, invisible cursor.
		return CursorState{Opacity: 0, Next: State{TimeMs: now}}
	}

	var pos Point
	switch {
	case !cfg.Gliding:
		pos = raw
	case previous != nil && now-previous.TimeMs <= tn.StepReuseWindowMs && previous.Visible:
		pos = stepSmooth(previous.Position, raw, now-previous.TimeMs, cfg, tn)
	case cache != nil:
		if cached, ok := cache.Get(now, cfg.Smoothness, cfg.Speed); ok {
			pos = cached
		} else {
			pos = reconstruct(events, now, cfg, tn, fps)
			cache.Put(now, cfg.Smoothness, cfg.Speed, pos)
		}
	default:
		pos = reconstruct(events, now, cfg, tn, fps)
	}

	opacity, wakeElapsed := idleOpacity(events, cfg, tn, now, previous)
	ripples := clickRipples(clicks, tn, now, cfg.ClickEffects)

	return CursorState{
		Position: pos,
		Opacity:  opacity,
		Ripples:  ripples,
		Next: State{
			Position:      pos,
			Opacity:       opacity,
			TimeMs:        now,
			Visible:       opacity > 0,
			WakeElapsedMs: wakeElapsed,
		},
	}
}

// stepSmooth performs one exponential-filter step toward target (§4.D-4).
func stepSmooth(prev, target Point, dtMs float64, cfg CursorConfig, tn Tuning) Point {
	d := math.Hypot(target.X-prev.X, target.Y-prev.Y)

	jitterRadius := lerp(tn.JitterRadiusMax, tn.JitterRadiusMin, cfg.Speed)
	if d < jitterRadius {
		return prev
	}

	baseTau := lerp(tn.TauBaseMin, tn.TauBaseMax, cfg.Smoothness)
	tau := math.Max(tn.TauMin, baseTau*(tn.SpeedTauFactor-cfg.Speed))
	alpha := 1 - math.Exp(-dtMs/tau)
	boost := 1 + math.Min(tn.FarBoostMaxExtra, d/tn.FarBoostDivisor)
	alpha = 1 - math.Pow(1-alpha, boost)

	return prev.Lerp(target, alpha)
}

// reconstruct simulates forward over a lookback window to converge on the
// same visible position regardless of call order (§4.D-3, the stateless
// fallback random-access callers use).
func reconstruct(events []project.MouseEvent, now float64, cfg CursorConfig, tn Tuning, fps float64) Point {
	if len(events) == 0 {
		return Point{}
	}
	window := math.Max(tn.ReconstructLookbackMinMs,
		(tn.ReconstructBaseMs+tn.ReconstructSmoothSpanMs*cfg.Smoothness)*(tn.ReconstructSpeedBase+tn.ReconstructSpeedSpan*(1-cfg.Speed)))

	stepMs := 1000.0 / fps
	startT := math.Max(events[0].TimeMs, now-window)

	pos, err := Interpolate(events, startT)
	if err != nil {
		return Point{}
	}

	t := startT
	for t < now {
		next := math.Min(t+stepMs, now)
		dt := next - t
		target, ierr := Interpolate(events, next)
		if ierr == nil {
			pos = stepSmooth(pos, target, dt, cfg, tn)
		}
		t = next
	}
	return pos
}

// idleOpacity implements the idle-fade state machine (§4.D-5): fades out
// over the last 300ms of idleTimeout, fades back in over 180ms after a
// wake movement resumes from a hidden state.
func idleOpacity(events []project.MouseEvent, cfg CursorConfig, tn Tuning, now float64, previous *State) (float64, float64) {
	if !cfg.HideOnIdle {
		return 1, 0
	}

	lastMove := lastMovementTime(events, now)
	idle := now - lastMove

	fadeOutStart := cfg.IdleTimeout - tn.IdleFadeOutMs
	wasHidden := previous != nil && previous.Opacity <= 0
	waking := previous != nil && previous.WakeElapsedMs > 0 && previous.WakeElapsedMs < tn.IdleFadeInMs

	switch {
	case idle >= cfg.IdleTimeout:
		return 0, 0
	case wasHidden || waking:
		dt := 0.0
		if previous != nil {
			dt = now - previous.TimeMs
		}
		wakeElapsed := previous.WakeElapsedMs + dt
		return math.Min(1, wakeElapsed/tn.IdleFadeInMs), wakeElapsed
	case idle > fadeOutStart:
		return 1 - (idle-fadeOutStart)/tn.IdleFadeOutMs, 0
	default:
		return 1, 0
	}
}

// lastMovementTime returns the timestamp of the most recent event (at or
// before now) whose position differs from its predecessor, or the first
// event's time if there's no earlier differing event.
func lastMovementTime(events []project.MouseEvent, now float64) float64 {
	if len(events) == 0 {
		return math.Inf(-1)
	}
	last := events[0].TimeMs
	for i := 1; i < len(events); i++ {
		if events[i].TimeMs > now {
			break
		}
		if events[i].X != events[i-1].X || events[i].Y != events[i-1].Y {
			last = events[i].TimeMs
		}
	}
	return last
}

// clickRipples implements §4.D-6.
func clickRipples(clicks []project.ClickEvent, tn Tuning, now float64, enabled bool) []Ripple {
	if !enabled {
		return nil
	}
	var out []Ripple
	for _, c := range clicks {
		age := now - c.TimeMs
		if age < 0 || age >= tn.ClickRippleMaxAgeMs {
			continue
		}
		p := math.Min(1, age/tn.ClickRippleGrowMs)
		radius := tn.ClickRippleBaseRadius + tn.ClickRippleGrowRadius*(1-math.Pow(1-p, 3))
		opacity := 0.5 * (1 - p)
		out = append(out, Ripple{X: c.X, Y: c.Y, Radius: radius, Opacity: opacity})
	}
	return out
}

func lerp(a, b, u float64) float64 { return a + (b-a)*u }
