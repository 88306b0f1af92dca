package camera

import (
	"github.com/vedantwpatil/compositor/internal/config"
	"github.com/vedantwpatil/compositor/internal/motion"
	"github.com/vedantwpatil/compositor/internal/project"
)

// ZoomContext is the active ZoomBlock together with the timeline window it
// occupies, needed to compute elapsed/duration for the intro/outro ramp
// (§4.F-1). A nil *ZoomContext in Input is treated as an implicit
// scale-1 block: halfWindow collapses to 0.5 on both axes, which pins the
// clamped center to ~(0.5, 0.5) with no visible camera movement.
type ZoomContext struct {
	Block              project.ZoomBlock
	StartTime, EndTime float64 // timeline ms
}

// Overscan is the non-negative additional pan allowed on each side (§9,
// sign convention c).
type Overscan struct {
	Left, Right, Top, Bottom float64
}

// Input is everything ComputeCameraState needs for one frame (§6).
type Input struct {
	TimelineMs float64
	SourceMs   float64

	Zoom      *ZoomContext
	Recording project.Recording
	Event     project.MouseEvent // nearest mouse event, for capture-dimension recovery (§4.F-3)
	Events    []project.MouseEvent
	Clusters  []motion.Cluster // precomputed by motion.BuildClusters, reused across frames

	OutputWidth, OutputHeight float64
	Overscan                  Overscan
	Mode                      Mode
}

// Engine resolves the Camera Engine algorithm (§4.F) given its tunables.
type Engine struct {
	Cfg config.Camera
}

// NewEngine builds an Engine from the camera tunables.
func NewEngine(cfg config.Camera) *Engine {
	return &Engine{Cfg: cfg}
}

// Resolve implements computeCameraState (§6, §4.F). physics may be nil in
// deterministic mode (no history is read); in physics mode the caller owns
// physics and must pass the same pointer across sequential frames.
func (e *Engine) Resolve(input Input, physics *PhysicsState) Result {
	if physics == nil {
		physics = NewPhysicsState()
	}

	scale := e.resolveScale(input)
	halfX, halfY := halfWindow(scale, input.OutputWidth, input.OutputHeight,
		float64(input.Recording.Width), float64(input.Recording.Height))

	attractorRaw := motion.Attractor(input.Events, input.Clusters, input.SourceMs,
		e.Cfg.CinematicWindowMs, e.Cfg.CinematicSamples)

	sourceW, sourceH := project.ResolveSourceDimensions(input.Recording, input.Event,
		attractorRaw.X, attractorRaw.Y, e.Cfg.FallbackSourceW, e.Cfg.FallbackSourceH, e.Cfg.PhysicalScaleTol)

	cursorN := normalize(attractorRaw, sourceW, sourceH)

	var center Center
	frozen := false
	switch input.Mode {
	case ModeDeterministic:
		// No reference center exists without call history, so deterministic
		// mode skips dead-zone follow and freeze (both inherently historical)
		// and centers directly on this instant's target/attractor (§8: a
		// pure function of the current inputs only).
		center = e.fixedTarget(input, cursorN, sourceW, sourceH)
		physics.X, physics.Y = center.X, center.Y
		physics.VX, physics.VY = 0, 0
		physics.LastTimelineMs = input.TimelineMs
		physics.LastSourceMs = input.SourceMs
		physics.HasHistory = true
		physics.Frozen = false
		physics.StoppedAtMs = -1
	default:
		target := e.resolveTarget(input, physics, scale, halfX, halfY, cursorN, sourceW, sourceH)
		center = e.integratePhysics(input, physics, scale, target)
		frozen = physics.Frozen
	}

	center.X = clampAxis(center.X, halfX, input.Overscan.Left, input.Overscan.Right)
	center.Y = clampAxis(center.Y, halfY, input.Overscan.Top, input.Overscan.Bottom)

	if !frozen {
		center = keepCursorVisible(center, cursorN, halfX, halfY, input.Overscan)
	}
	physics.X, physics.Y = center.X, center.Y

	return Result{Scale: scale, Center: center}
}

// fixedTarget is the deterministic-mode target: the zoom block's explicit
// target when followStrategy is "target", else the attractor itself.
func (e *Engine) fixedTarget(input Input, cursorN Center, sourceW, sourceH float64) Center {
	if input.Zoom != nil && input.Zoom.Block.FollowStrategy == project.FollowTarget && input.Zoom.Block.TargetX != nil && input.Zoom.Block.TargetY != nil {
		tx := clampUnit(*input.Zoom.Block.TargetX / nz(sourceW))
		ty := clampUnit(*input.Zoom.Block.TargetY / nz(sourceH))
		return Center{X: tx, Y: ty}
	}
	return cursorN
}

func (e *Engine) resolveScale(input Input) float64 {
	if input.Zoom == nil {
		return 1
	}
	elapsed := input.TimelineMs - input.Zoom.StartTime
	duration := input.Zoom.EndTime - input.Zoom.StartTime
	scale := input.Zoom.Block.Scale
	if scale < 1 {
		scale = 1
	}
	return rampedScale(elapsed, duration, scale, input.Zoom.Block.IntroMs, input.Zoom.Block.OutroMs)
}

func (e *Engine) resolveTarget(input Input, physics *PhysicsState, scale, halfX, halfY float64, cursorN Center, sourceW, sourceH float64) Center {
	if input.Zoom != nil && input.Zoom.Block.FollowStrategy == project.FollowTarget && input.Zoom.Block.TargetX != nil && input.Zoom.Block.TargetY != nil {
		tx := clampUnit(*input.Zoom.Block.TargetX / nz(sourceW))
		ty := clampUnit(*input.Zoom.Block.TargetY / nz(sourceH))
		return Center{X: tx, Y: ty}
	}

	velocityN := smoothedCursorVelocity(input.Events, input.SourceMs, sourceW, sourceH)
	center := Center{X: physics.X, Y: physics.Y}
	target := deadZoneFollow(e.Cfg, center, cursorN, velocityN, scale, halfX, halfY)

	if input.Mode == ModePhysics {
		prevN := attractorAt(input, input.SourceMs-50)
		v := attractorVelocity(cursorN, normalize(prevN, sourceW, sourceH), 50)
		updateFreeze(e.Cfg, physics, input.TimelineMs, scale, v, target)
		if physics.Frozen {
			return Center{X: physics.FrozenX, Y: physics.FrozenY}
		}
	}
	return target
}

func attractorAt(input Input, t float64) motion.Point {
	return motion.Attractor(input.Events, input.Clusters, t, 400, 8)
}

func smoothedCursorVelocity(events []project.MouseEvent, t, sourceW, sourceH float64) Center {
	const window = 50.0
	curr, err1 := motion.Interpolate(events, t)
	prev, err2 := motion.Interpolate(events, t-window)
	if err1 != nil || err2 != nil {
		return Center{}
	}
	currN := normalize(curr, sourceW, sourceH)
	prevN := normalize(prev, sourceW, sourceH)
	return Center{X: (currN.X - prevN.X) / (window / 1000), Y: (currN.Y - prevN.Y) / (window / 1000)}
}

func normalize(p motion.Point, w, h float64) Center {
	return Center{X: clampUnit(p.X / nz(w)), Y: clampUnit(p.Y / nz(h))}
}

func nz(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// keepCursorVisible implements §4.F-10: pull the (non-frozen) center just
// enough that the cursor stays inside the projected viewport.
func keepCursorVisible(center, cursorN Center, halfX, halfY float64, overscan Overscan) Center {
	out := center
	if cursorN.X < out.X-halfX {
		out.X = cursorN.X + halfX
	} else if cursorN.X > out.X+halfX {
		out.X = cursorN.X - halfX
	}
	if cursorN.Y < out.Y-halfY {
		out.Y = cursorN.Y + halfY
	} else if cursorN.Y > out.Y+halfY {
		out.Y = cursorN.Y - halfY
	}
	out.X = clampAxis(out.X, halfX, overscan.Left, overscan.Right)
	out.Y = clampAxis(out.Y, halfY, overscan.Top, overscan.Bottom)
	return out
}
