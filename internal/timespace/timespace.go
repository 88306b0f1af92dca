// Package timespace implements the Time-Space Converter (spec.md §4.A): the
// three coordinate spaces — timeline ms, clip-relative ms, source ms — and
// the frame <-> timeline-ms conversion used when constructing the frame
// layout.
package timespace

import (
	"math"

	"github.com/vedantwpatil/compositor/internal/project"
)

// ClipRelative returns the time elapsed since clip.StartTime, clamped to
// [0, clip.Duration] (§4.A).
func ClipRelative(timelineMs float64, clip project.Clip) float64 {
	rel := timelineMs - clip.StartTime
	return clamp(rel, 0, clip.Duration)
}

// SourceFromClipRelative maps clip-relative ms to source ms, clamped to
// [sourceIn, sourceOut] (§4.A, invariant 2).
func SourceFromClipRelative(clipRelativeMs float64, clip project.Clip) float64 {
	rate := clip.EffectivePlaybackRate()
	src := clip.SourceIn + clipRelativeMs*rate
	return clamp(src, clip.SourceIn, clip.EffectiveSourceOut())
}

// TimelineToSource composes ClipRelative and SourceFromClipRelative: given a
// timeline ms inside (or clamped into) a clip, returns the corresponding
// source ms (§4.A, invariant 2).
func TimelineToSource(timelineMs float64, clip project.Clip) float64 {
	return SourceFromClipRelative(ClipRelative(timelineMs, clip), clip)
}

// SourceToTimeline is the inverse of TimelineToSource: given a source ms
// within [sourceIn, sourceOut], returns the timeline ms that produces it.
// Used by the round-trip property in spec.md §8.
func SourceToTimeline(sourceMs float64, clip project.Clip) float64 {
	rate := clip.EffectivePlaybackRate()
	clipRelative := (sourceMs - clip.SourceIn) / rate
	clipRelative = clamp(clipRelative, 0, clip.Duration)
	return clip.StartTime + clipRelative
}

// FrameToTimelineMs converts a frame index to timeline ms using exact
// division — per-frame time math must not round, to avoid drift (§4.A).
func FrameToTimelineMs(frame int, fps float64) float64 {
	return float64(frame) / fps * 1000
}

// TimelineMsToFrame converts timeline ms to the nearest frame index,
// rounding half-to-even as spec.md §4.A requires for layout construction.
func TimelineMsToFrame(timelineMs float64, fps float64) int {
	return int(RoundHalfEven(timelineMs / 1000 * fps))
}

// RoundHalfEven implements banker's rounding: ties round to the nearest
// even integer. math.Round always rounds half away from zero, so it cannot
// be used directly for the layout's frame-boundary arithmetic.
func RoundHalfEven(x float64) float64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp is the exported form of clamp, used by other components that need
// the same bounded-value helper (camera clamping, opacity envelopes, ...).
func Clamp(v, lo, hi float64) float64 {
	return clamp(v, lo, hi)
}
