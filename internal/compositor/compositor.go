// Package compositor wires the Time-Space Converter, Frame Layout, Camera
// Engine, Cursor Smoother, Keystroke Aggregator and Effect Resolver into
// the stable external API spec.md §6 names. It owns the sequential-mode
// state (camera physics + cursor smoother snapshot) that real-time
// rendering advances frame by frame; random-access callers either reuse a
// precomputed camera table or call the stateless package functions
// directly with nil state, per §5's two concurrency modes.
package compositor

import (
	"github.com/vedantwpatil/compositor/internal/camera"
	"github.com/vedantwpatil/compositor/internal/config"
	"github.com/vedantwpatil/compositor/internal/effects"
	"github.com/vedantwpatil/compositor/internal/keystroke"
	"github.com/vedantwpatil/compositor/internal/layout"
	"github.com/vedantwpatil/compositor/internal/motion"
	"github.com/vedantwpatil/compositor/internal/project"
	"github.com/vedantwpatil/compositor/internal/timespace"
)

// Compositor is the sequential-mode owner of one Camera Physics State and
// one Cursor Smoother snapshot (§5). A fresh Compositor is required per
// independent simulation; it must not be shared across goroutines.
type Compositor struct {
	cfg    config.Config
	engine *camera.Engine

	frames []layout.Item

	physics *camera.PhysicsState
	cursor  *motion.State
}

// New builds a Compositor from a resolved Config (§6: "all inputs are
// value-typed snapshots").
func New(cfg config.Config) *Compositor {
	return &Compositor{
		cfg:     cfg,
		engine:  camera.NewEngine(cfg.Camera),
		physics: camera.NewPhysicsState(),
	}
}

// BuildFrameLayout implements buildFrameLayout(clips, fps) (§4.B, §6).
func (c *Compositor) BuildFrameLayout(clips []project.Clip, fps float64) error {
	items, err := layout.Build(clips, fps)
	if err != nil {
		return err
	}
	c.frames = items
	return nil
}

// ResolveActiveClip implements resolveActiveClip(layout, frame) (§4.B, §6).
func (c *Compositor) ResolveActiveClip(frame int) layout.Active {
	return layout.ResolveActiveClip(c.frames, frame)
}

// SourceTimeForFrame composes the Frame Layout and Time-Space Converter:
// the source ms a frame resolves to under its active clip, or false when
// the layout is empty.
func (c *Compositor) SourceTimeForFrame(frame int, fps float64) (clip project.Clip, sourceMs, timelineMs float64, ok bool) {
	active := c.ResolveActiveClip(frame)
	if !active.Present {
		return project.Clip{}, 0, 0, false
	}
	timelineMs = timespace.FrameToTimelineMs(frame, fps)
	return active.Item.Clip, timespace.TimelineToSource(timelineMs, active.Item.Clip), timelineMs, true
}

// ComputeCameraState implements computeCameraState(input) (§4.F, §6) in
// sequential mode: it advances the Compositor's owned PhysicsState and
// returns the resolved scale/center for this frame.
func (c *Compositor) ComputeCameraState(input camera.Input) camera.Result {
	input.Mode = camera.ModePhysics
	return c.engine.Resolve(input, c.physics)
}

// PrecomputeCameraPath implements precomputeCameraPath(input') (§4.G, §6):
// a fresh forward simulation independent of the Compositor's own
// sequential state, safe to call from a random-access/parallel caller.
func (c *Compositor) PrecomputeCameraPath(frames []camera.FrameInput, rec camera.Input) []camera.Result {
	return c.engine.PrecomputeCameraPath(frames, rec)
}

// CalculateCursorState implements calculateCursorState(...) (§4.D, §6) in
// sequential mode, advancing the Compositor's owned cursor State.
func (c *Compositor) CalculateCursorState(cfg motion.CursorConfig, events []project.MouseEvent, clicks []project.ClickEvent, now, fps float64, cache *motion.ReconstructCache) motion.CursorState {
	tn := motion.Tuning{
		ReconstructLookbackMinMs: c.cfg.Cursor.ReconstructLookbackMinMs,
		ReconstructBaseMs:        c.cfg.Cursor.ReconstructBaseMs,
		ReconstructSmoothSpanMs:  c.cfg.Cursor.ReconstructSmoothSpanMs,
		ReconstructSpeedBase:     c.cfg.Cursor.ReconstructSpeedBase,
		ReconstructSpeedSpan:     c.cfg.Cursor.ReconstructSpeedSpan,
		StepReuseWindowMs:        c.cfg.Cursor.StepReuseWindowMs,
		TauMin:                   c.cfg.Cursor.TauMin,
		TauBaseMin:               c.cfg.Cursor.TauBaseMin,
		TauBaseMax:               c.cfg.Cursor.TauBaseMax,
		SpeedTauFactor:           c.cfg.Cursor.SpeedTauFactor,
		FarBoostDivisor:          c.cfg.Cursor.FarBoostDivisor,
		FarBoostMaxExtra:         c.cfg.Cursor.FarBoostMaxExtra,
		JitterRadiusMin:          c.cfg.Cursor.JitterRadiusMin,
		JitterRadiusMax:          c.cfg.Cursor.JitterRadiusMax,
		IdleFadeOutMs:            c.cfg.Cursor.IdleFadeOutMs,
		IdleFadeInMs:             c.cfg.Cursor.IdleFadeInMs,
		ClickRippleMaxAgeMs:      c.cfg.Cursor.ClickRippleMaxAgeMs,
		ClickRippleGrowMs:        c.cfg.Cursor.ClickRippleGrowMs,
		ClickRippleBaseRadius:    c.cfg.Cursor.ClickRippleBaseRadius,
		ClickRippleGrowRadius:    c.cfg.Cursor.ClickRippleGrowRadius,
	}
	state := motion.ComputeCursorState(cfg, tn, events, clicks, now, c.cursor, fps, cache)
	next := state.Next
	c.cursor = &next
	return state
}

// RenderKeystrokes implements renderKeystrokes (§4.H, §6). It is a pure
// function of (events, now); it takes no width/height, only the caller's
// position preset, which is copied onto every returned block.
func (c *Compositor) RenderKeystrokes(events []project.KeyboardEvent, now float64, position string) []keystroke.DisplayBlock {
	return keystroke.RenderKeystrokes(c.cfg.Keystroke, events, now, position)
}

// ResolveEffects implements resolveEffects(frame, clip, effects) (§4.I, §6).
func (c *Compositor) ResolveEffects(clip project.Clip, recording project.Recording, timelineEffects []project.Effect, timelineMs, sourceMs float64) []effects.DrawCommand {
	return effects.ResolveEffects(c.cfg.Effects, clip, recording, timelineEffects, timelineMs, sourceMs)
}

// ResetSequentialState drops the owned camera physics and cursor snapshot,
// starting a fresh sequential simulation (e.g. after a caller-detected
// seek past what PhysicsState's own seek-detection threshold catches, or
// when switching to a different EDL).
func (c *Compositor) ResetSequentialState() {
	c.physics = camera.NewPhysicsState()
	c.cursor = nil
}
