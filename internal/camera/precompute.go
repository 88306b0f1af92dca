package camera

// FrameInput is the per-frame data PrecomputeCameraPath needs beyond what's
// already fixed for the whole clip (§4.G): the active zoom context (nil
// outside any zoom block) and the frame's timeline/source ms pair.
type FrameInput struct {
	TimelineMs, SourceMs float64
	Zoom                 *ZoomContext
}

// PrecomputeCameraPath implements precomputeCameraPath (§4.G): a
// frame-indexed table built by sequentially simulating ModePhysics from
// frame 0, so later frames see the same accumulated spring/freeze state a
// realtime sequential render would produce. The returned slice has the same
// length and order as frames.
func (e *Engine) PrecomputeCameraPath(frames []FrameInput, rec Input) []Result {
	table := make([]Result, len(frames))
	physics := NewPhysicsState()

	base := rec
	base.Mode = ModePhysics
	for i, f := range frames {
		in := base
		in.TimelineMs = f.TimelineMs
		in.SourceMs = f.SourceMs
		in.Zoom = f.Zoom
		table[i] = e.Resolve(in, physics)
	}
	return table
}
