// Package keystroke turns keyboard event streams into time-windowed
// display blocks with fade-in/out opacity (§4.H).
package keystroke

import (
	"github.com/vedantwpatil/compositor/internal/config"
	"github.com/vedantwpatil/compositor/internal/project"
)

// DisplayBlock is one frame's keystroke overlay record (§6 renderKeystrokes).
type DisplayBlock struct {
	Text     string
	Position string
	Opacity  float64
}

type liveBuffer struct {
	text        []rune
	startTime   float64
	lastKeyTime float64
}

type flushedBlock struct {
	text      string
	flushedAt float64
}

// RenderKeystrokes replays keyboard events up to now and returns the blocks
// visible at that instant: the exactly-one most-recently-flushed display
// block (if still within its fade envelope) plus the live buffer preview
// (if one is open and pre-empting it). It is a pure function of
// (events, now) so it is safe to call from any number of concurrent
// random-access workers (§5).
func RenderKeystrokes(cfg config.Keystroke, events []project.KeyboardEvent, now float64, position string) []DisplayBlock {
	var blocks []flushedBlock
	var buf *liveBuffer

	flush := func(at float64) {
		if buf == nil || len(buf.text) == 0 {
			buf = nil
			return
		}
		blocks = append(blocks, flushedBlock{text: string(buf.text), flushedAt: at})
		buf = nil
	}

	for _, e := range events {
		if e.TimeMs > now {
			break
		}
		if buf != nil && e.TimeMs-buf.lastKeyTime > cfg.FlushIdleMs {
			flush(buf.lastKeyTime + cfg.FlushIdleMs)
		}
		if len(e.Modifiers) > 0 {
			flush(e.TimeMs)
			blocks = append(blocks, flushedBlock{text: shortcutGlyph(e.Key, e.Modifiers), flushedAt: e.TimeMs})
			continue
		}

		switch e.Key {
		case "Enter", "Tab", "Escape":
			flush(e.TimeMs)
		case "Backspace", "Delete":
			if buf == nil {
				buf = &liveBuffer{startTime: e.TimeMs}
			}
			if n := len(buf.text); n > 0 {
				buf.text = buf.text[:n-1]
			}
			buf.lastKeyTime = e.TimeMs
		default:
			if r, ok := printableRune(e.Key); ok {
				if buf == nil {
					buf = &liveBuffer{startTime: e.TimeMs}
				}
				buf.text = append(buf.text, r)
				buf.lastKeyTime = e.TimeMs
			}
		}
	}

	var preview *liveBuffer
	if buf != nil && len(buf.text) > 0 {
		if now-buf.lastKeyTime > cfg.FlushIdleMs {
			flush(buf.lastKeyTime + cfg.FlushIdleMs)
		} else {
			preview = buf
		}
	}

	var out []DisplayBlock
	if len(blocks) > 0 {
		last := blocks[len(blocks)-1]
		if op := envelopeOpacity(cfg, last.flushedAt, now); op > 0 {
			out = append(out, DisplayBlock{Text: last.text, Position: position, Opacity: op})
		}
	}
	if preview != nil {
		out = append(out, DisplayBlock{Text: string(preview.text), Position: position, Opacity: 1})
	}
	return out
}

// envelopeOpacity implements the display lifecycle of §4.H: fade in over
// FadeInMs, hold at 1 for VisibleMs, fade out over FadeOutMs, then gone.
func envelopeOpacity(cfg config.Keystroke, flushedAt, now float64) float64 {
	elapsed := now - flushedAt
	if elapsed < 0 {
		return 0
	}
	if elapsed < cfg.FadeInMs {
		return elapsed / cfg.FadeInMs
	}
	if elapsed < cfg.FadeInMs+cfg.VisibleMs {
		return 1
	}
	fadeElapsed := elapsed - cfg.FadeInMs - cfg.VisibleMs
	if fadeElapsed < cfg.FadeOutMs {
		return 1 - fadeElapsed/cfg.FadeOutMs
	}
	return 0
}
