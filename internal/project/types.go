// Package project holds the compositor's value-typed data model: the
// immutable Recording metadata, the Clip placements that make up an EDL,
// and the Effect set layered over them (spec.md §3). Everything here is a
// plain value snapshot — no I/O, no mutation after construction — so it can
// be shared freely across the sequential and random-access/parallel modes
// described in spec.md §5.
package project

// EffectType enumerates the five effect kinds spec.md §3 names.
type EffectType string

const (
	EffectBackground EffectType = "background"
	EffectCursor     EffectType = "cursor"
	EffectKeystroke  EffectType = "keystroke"
	EffectZoom       EffectType = "zoom"
	EffectAnnotation EffectType = "annotation"
)

// FollowStrategy selects how the Camera Engine tracks a zoom block (§4.F-5).
type FollowStrategy string

const (
	FollowMouse  FollowStrategy = "mouse"
	FollowTarget FollowStrategy = "target"
)

// MouseEvent is a sampled cursor position in source pixels at a source-ms
// timestamp. CaptureWidth/Height are optional dimension hints carried by
// some recordings for physical/logical coordinate recovery (§4.F-3).
type MouseEvent struct {
	TimeMs        float64
	X, Y          float64
	CaptureWidth  int // 0 when absent
	CaptureHeight int // 0 when absent
}

// ClickEvent is a mouse-down at a source-ms timestamp, used by the Cursor
// Smoother's click-ripple effect (§4.D-6).
type ClickEvent struct {
	TimeMs float64
	X, Y   float64
	Button string
}

// KeyboardEvent is a single keystroke at a source-ms timestamp. Key follows
// the fixed glyph table's input vocabulary (KeyA..KeyZ, Digit0..Digit9,
// Enter, Tab, Backspace, Delete, Space, Escape, NumpadAdd, modifier names,
// F1..F24, ...), the same naming gohook/vcaesar-keycode expose for raw key
// events. Modifiers holds any of "Meta", "Control", "Alt", "Shift" held
// down for the keystroke.
type KeyboardEvent struct {
	TimeMs    float64
	Key       string
	Modifiers []string
}

// CaptureArea describes the full virtual-desktop bounds a recording was
// taken against, used as a fallback dimension source (§4.F-3).
type CaptureArea struct {
	FullBounds  Dimensions
	ScaleFactor float64 // physical-to-logical scale (e.g. Retina 2.0)
}

// Dimensions is a plain width/height pair in pixels.
type Dimensions struct {
	Width, Height int
}

// RecordingMetadata is the ordered event history captured alongside a
// Recording (§3).
type RecordingMetadata struct {
	MouseEvents    []MouseEvent
	ClickEvents    []ClickEvent
	KeyboardEvents []KeyboardEvent
}

// Recording is immutable after ingest (§3).
type Recording struct {
	ID             string
	Width, Height  int
	DurationMs     float64
	CaptureArea    *CaptureArea // optional
	Metadata       RecordingMetadata
	Effects        []Effect // source-ms scoped, per-recording (§3, §4.I-2)
}

// RecordingSet maps RecordingId to Recording with unique ids (§3).
type RecordingSet map[string]Recording

// Clip references a Recording placed on the timeline (§3).
type Clip struct {
	ID            string
	RecordingID   string
	StartTime     float64 // timeline ms
	Duration      float64 // timeline ms
	SourceIn      float64 // source ms
	SourceOut     *float64 // source ms, optional; derived when nil
	PlaybackRate  float64  // > 0, default 1
}

// ZoomBlock is the Zoom effect's payload (§3).
type ZoomBlock struct {
	Scale          float64 // >= 1
	TargetX        *float64 // source px, only used when FollowStrategy == FollowTarget
	TargetY        *float64
	IntroMs        float64 // default 300
	OutroMs        float64 // default 300
	FollowStrategy FollowStrategy
}

// Effect is a time-scoped directive (§3). Effects carried in a timeline-
// scoped set are expressed in timeline ms; effects hung off a Recording are
// expressed in source ms. Exactly one of the payload fields is meaningful,
// selected by Type.
type Effect struct {
	ID        string
	Type      EffectType
	StartTime float64
	EndTime   float64
	Enabled   bool

	Zoom *ZoomBlock // Type == EffectZoom

	// Annotation/Background/Cursor/Keystroke effects carry opaque per-type
	// drawing parameters the resolver passes through untouched; the core
	// only needs their time window and type to compute opacity and layer
	// order, so a generic payload is enough here.
	Params map[string]any
}

// Snapshot is the {recordings, clips, effects} bundle the Project Store
// collaborator supplies (§6). Clips must already be sorted by StartTime;
// BuildFrameLayout (internal/layout) validates the non-overlap invariant.
type Snapshot struct {
	Recordings     RecordingSet
	Clips          []Clip
	TimelineEffects []Effect // timeline-ms scoped (§3)
}

// EffectiveSourceOut returns c.SourceOut, deriving it from the invariant
// sourceOut = sourceIn + duration*playbackRate when omitted (§3).
func (c Clip) EffectiveSourceOut() float64 {
	if c.SourceOut != nil {
		return *c.SourceOut
	}
	rate := c.PlaybackRate
	if rate <= 0 {
		rate = 1
	}
	return c.SourceIn + c.Duration*rate
}

// EffectivePlaybackRate returns c.PlaybackRate, defaulting to 1 (§3).
func (c Clip) EffectivePlaybackRate() float64 {
	if c.PlaybackRate <= 0 {
		return 1
	}
	return c.PlaybackRate
}
