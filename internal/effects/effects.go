// Package effects merges timeline-scoped and recording-scoped effects into
// the ordered, opacity-weighted draw commands a frame renders (§4.I).
package effects

import (
	"sort"

	"github.com/vedantwpatil/compositor/internal/config"
	"github.com/vedantwpatil/compositor/internal/project"
)

// DrawCommand is one resolved effect instance for a frame (§4.I, §6
// resolveEffects). Zoom carries its payload for the Camera Engine; Params
// passes the other effect types' opaque drawing parameters through
// untouched, the way the pixel-surface collaborator expects them.
type DrawCommand struct {
	ID      string
	Type    project.EffectType
	Opacity float64
	Zoom    *project.ZoomBlock
	Params  map[string]any
}

// layerOrder fixes the output ordering of §4.I-5: Background, Zoom, Cursor,
// Keystroke, Annotation.
var layerOrder = map[project.EffectType]int{
	project.EffectBackground: 0,
	project.EffectZoom:       1,
	project.EffectCursor:     2,
	project.EffectKeystroke:  3,
	project.EffectAnnotation: 4,
}

// ResolveEffects implements resolveEffects (§4.I, §6): it selects
// timeline-scoped effects intersecting the clip's timeline window and
// recording-scoped effects containing sourceMs, merges them deduplicating
// by id (timeline-scoped wins), and returns the active set in layer order
// with each instance's fade-in/fade-out opacity applied.
func ResolveEffects(cfg config.Effects, clip project.Clip, recording project.Recording, timelineEffects []project.Effect, timelineMs, sourceMs float64) []DrawCommand {
	clipStart := clip.StartTime
	clipEnd := clip.StartTime + clip.Duration

	byID := make(map[string]DrawCommand)
	order := make([]string, 0, len(recording.Effects)+len(timelineEffects))

	include := func(e project.Effect, now float64, overwrite bool) {
		if !e.Enabled || e.StartTime > e.EndTime {
			return
		}
		if now < e.StartTime || now > e.EndTime {
			return
		}
		if _, exists := byID[e.ID]; exists {
			if !overwrite {
				return
			}
		} else {
			order = append(order, e.ID)
		}
		byID[e.ID] = DrawCommand{
			ID:      e.ID,
			Type:    e.Type,
			Opacity: envelopeOpacity(cfg, e.StartTime, e.EndTime, now),
			Zoom:    e.Zoom,
			Params:  e.Params,
		}
	}

	for _, e := range recording.Effects {
		if windowsIntersect(e.StartTime, e.EndTime, sourceMs, sourceMs) {
			include(e, sourceMs, false)
		}
	}
	for _, e := range timelineEffects {
		if windowsIntersect(e.StartTime, e.EndTime, clipStart, clipEnd) {
			include(e, timelineMs, true)
		}
	}

	cmds := make([]DrawCommand, 0, len(order))
	for _, id := range order {
		cmds = append(cmds, byID[id])
	}
	sort.SliceStable(cmds, func(i, j int) bool {
		return layerOrder[cmds[i].Type] < layerOrder[cmds[j].Type]
	})
	return cmds
}

func windowsIntersect(aStart, aEnd, bStart, bEnd float64) bool {
	return aStart <= bEnd && bStart <= aEnd
}

// envelopeOpacity implements the linear 200ms fade-in/fade-out of §4.I-4.
func envelopeOpacity(cfg config.Effects, start, end, now float64) float64 {
	if now < start || now > end {
		return 0
	}
	op := 1.0
	if cfg.FadeInMs > 0 {
		if in := (now - start) / cfg.FadeInMs; in < op {
			op = in
		}
	}
	if cfg.FadeOutMs > 0 {
		if out := (end - now) / cfg.FadeOutMs; out < op {
			op = out
		}
	}
	if op < 0 {
		return 0
	}
	if op > 1 {
		return 1
	}
	return op
}
