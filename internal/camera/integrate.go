package camera

import "math"

// integratePhysics implements §4.F-8's physics branch: a critically-tuned
// spring-damper pulls the center toward target, with tension/friction
// scaled by the clip's instantaneous playback rate (ΔsourceMs/ΔtimelineMs,
// clamped to [0.5, 3]) so a sped-up or slowed-down clip still settles at
// the same perceived pace. A backward or large forward timeline jump is
// treated as a seek: the spring resets and the center snaps to target.
func (e *Engine) integratePhysics(input Input, st *PhysicsState, scale float64, target Center) Center {
	if !st.HasHistory {
		st.X, st.Y = target.X, target.Y
		st.VX, st.VY = 0, 0
		st.LastTimelineMs = input.TimelineMs
		st.LastSourceMs = input.SourceMs
		st.HasHistory = true
		return Center{X: st.X, Y: st.Y}
	}

	deltaTimeline := input.TimelineMs - st.LastTimelineMs
	if deltaTimeline < 0 || deltaTimeline > e.Cfg.SeekThresholdMs {
		st.X, st.Y = target.X, target.Y
		st.VX, st.VY = 0, 0
		st.LastTimelineMs = input.TimelineMs
		st.LastSourceMs = input.SourceMs
		return Center{X: st.X, Y: st.Y}
	}
	if deltaTimeline == 0 {
		return Center{X: st.X, Y: st.Y}
	}

	rate := (input.SourceMs - st.LastSourceMs) / deltaTimeline
	rate = clampRate(rate, 0.5, 3)

	tension := e.Cfg.TensionPerRate * rate
	friction := e.Cfg.FrictionPerRate * math.Sqrt(rate)
	if st.Frozen && e.Cfg.StopDamping > 0 {
		friction /= e.Cfg.StopDamping
	}
	dt := deltaTimeline / 1000

	accX := tension*(target.X-st.X) - friction*st.VX
	accY := tension*(target.Y-st.Y) - friction*st.VY

	st.VX += accX * dt
	st.VY += accY * dt
	st.X += st.VX * dt
	st.Y += st.VY * dt

	st.LastTimelineMs = input.TimelineMs
	st.LastSourceMs = input.SourceMs

	if st.Frozen {
		// §4.F-7: while frozen, velocity is boosted each step to pull the
		// center to the frozen target quickly, then snapped once within
		// epsilon so it doesn't hunt around the target forever.
		st.VX *= e.Cfg.StopDamping
		st.VY *= e.Cfg.StopDamping
		if math.Hypot(target.X-st.X, target.Y-st.Y) <= e.Cfg.StopSnapEpsilon {
			st.X, st.Y = target.X, target.Y
			st.VX, st.VY = 0, 0
		}
	}

	return Center{X: st.X, Y: st.Y}
}

func clampRate(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
