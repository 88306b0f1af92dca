// Package camera implements the Camera Engine (spec.md §4.F) and the
// Camera Precomputer (§4.G): the zoom+pan algorithm that combines the
// active zoom block, the motion-cluster attractor, spring-damper physics,
// cursor-stop freezing, and edge clamping into a per-frame {scale, center}.
package camera

// PhysicsState is the mutable simulation state owned by exactly one
// sequential caller (spec.md §3). The Camera Precomputer forks a fresh
// instance and simulates from frame 0.
type PhysicsState struct {
	X, Y           float64 // normalized center [0,1]
	VX, VY         float64
	LastTimelineMs float64
	LastSourceMs   float64
	HasHistory     bool // false until the first physics-mode call

	Frozen      bool
	StoppedAtMs float64 // -1 when not currently stopped
	FrozenX     float64
	FrozenY     float64
}

// NewPhysicsState returns a fresh, unsimulated physics state centered at
// (0.5, 0.5) — the safe default when no mouse data is available (§4.F
// failure semantics).
func NewPhysicsState() *PhysicsState {
	return &PhysicsState{X: 0.5, Y: 0.5, StoppedAtMs: -1}
}

// Snapshot returns a value copy, safe to store in a precomputed table.
func (p *PhysicsState) Snapshot() PhysicsState {
	return *p
}

// Center is the output of resolving the camera for one frame.
type Center struct {
	X, Y float64
}

// Result is ComputeCameraState's return value (§6: computeCameraState).
type Result struct {
	Scale  float64
	Center Center
}

// Mode selects between the two integration paths of §4.F step 8.
type Mode int

const (
	// ModeDeterministic outputs the target directly with no persisted
	// velocity; independent of call history (§8 "seek stability").
	ModeDeterministic Mode = iota
	// ModePhysics runs the spring-damper integrator and cursor-stop
	// freeze state machine against a caller-owned PhysicsState.
	ModePhysics
)
