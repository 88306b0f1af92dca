// Package layout implements the Frame Layout (spec.md §4.B): building the
// sorted [clip, startFrame, endFrame] table from an EDL and resolving the
// active clip for any requested frame, including the boundary tie-break and
// nearest-neighbor gap fallback.
package layout

import (
	"sort"

	"github.com/vedantwpatil/compositor/internal/compositor/errs"
	"github.com/vedantwpatil/compositor/internal/project"
	"github.com/vedantwpatil/compositor/internal/timespace"
)

// Item is a FrameLayoutItem (§3): the frame-indexed placement of one clip.
type Item struct {
	Clip           project.Clip
	StartFrame     int
	EndFrame       int // exclusive
	DurationFrames int
}

// Build constructs the frame layout for clips at the given fps (§4.B).
// clips must already be sorted by StartTime and must not overlap; both are
// EDL-level invariants (§3) and violations fail loudly as
// errs.InvariantViolation rather than degrading, per §7.
func Build(clips []project.Clip, fps float64) ([]Item, error) {
	if fps <= 0 {
		return nil, errs.NewInvariantViolation("fps", "fps must be positive")
	}
	if !sort.SliceIsSorted(clips, func(i, j int) bool { return clips[i].StartTime < clips[j].StartTime }) {
		return nil, errs.NewInvariantViolation("clip_order", "clips must be sorted ascending by startTime")
	}

	items := make([]Item, 0, len(clips))
	for i, clip := range clips {
		if clip.Duration <= 0 {
			return nil, errs.NewInvariantViolation("duration", "clip duration must be positive")
		}
		if clip.SourceIn < 0 {
			return nil, errs.NewInvariantViolation("sourceIn", "sourceIn must be >= 0")
		}
		if clip.EffectiveSourceOut() <= clip.SourceIn {
			return nil, errs.NewInvariantViolation("sourceOut", "sourceOut must exceed sourceIn")
		}

		startFrame := int(timespace.RoundHalfEven(clip.StartTime * fps / 1000))
		durationFrames := int(timespace.RoundHalfEven(clip.Duration * fps / 1000))
		if durationFrames < 1 {
			durationFrames = 1
		}
		endFrame := startFrame + durationFrames

		if i > 0 {
			prev := items[i-1]
			if startFrame < prev.EndFrame {
				return nil, errs.NewInvariantViolation("overlap", "clips must not overlap on the timeline")
			}
		}

		items = append(items, Item{
			Clip:           clip,
			StartFrame:     startFrame,
			EndFrame:       endFrame,
			DurationFrames: durationFrames,
		})
	}
	return items, nil
}

// Active is the result of ResolveActiveClip: the clip governing a frame,
// and whether it actually contains the frame or was chosen as a
// nearest-neighbor fallback into a gap (§4.B).
type Active struct {
	Item     Item
	InGap    bool
	Present  bool // false only when layout is empty
}

// ResolveActiveClip implements §4.B's three-step resolution:
//  1. a clip starting exactly at frame wins ties over one that just ended;
//  2. otherwise the clip whose [startFrame, endFrame) contains frame;
//  3. otherwise the nearest-neighbor: the clip with the greatest endFrame
//     <= frame, else the clip with the smallest startFrame > frame.
func ResolveActiveClip(items []Item, frame int) Active {
	if len(items) == 0 {
		return Active{}
	}

	for _, it := range items {
		if it.StartFrame == frame {
			return Active{Item: it, Present: true}
		}
	}
	for _, it := range items {
		if it.StartFrame < frame && frame < it.EndFrame {
			return Active{Item: it, Present: true}
		}
	}

	var best *Item
	for i := range items {
		it := items[i]
		if it.EndFrame <= frame {
			if best == nil || it.EndFrame > best.EndFrame {
				best = &items[i]
			}
		}
	}
	if best != nil {
		return Active{Item: *best, Present: true, InGap: true}
	}

	best = nil
	for i := range items {
		it := items[i]
		if it.StartFrame > frame {
			if best == nil || it.StartFrame < best.StartFrame {
				best = &items[i]
			}
		}
	}
	if best != nil {
		return Active{Item: *best, Present: true, InGap: true}
	}
	// Unreachable when items is non-empty: every frame is either inside,
	// past the end of, or before the start of some clip.
	return Active{}
}
