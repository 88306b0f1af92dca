package keystroke

import "strings"

// namedGlyphs is the fixed key→glyph table (§4.H): Enter/Tab/etc. map to
// symbolic glyphs, L/R modifier suffixes are stripped before lookup, and
// F-keys pass through unchanged.
var namedGlyphs = map[string]string{
	"Enter":     "↵",
	"Tab":       "⇥",
	"Escape":    "⎋",
	"Backspace": "⌫",
	"Delete":    "⌦",
	"Space":     "␣",
	"NumpadAdd": "+",
	"ArrowUp":   "↑",
	"ArrowDown": "↓",
	"ArrowLeft": "←",
	"ArrowRight": "→",
}

var modifierGlyphs = map[string]string{
	"Meta":    "⌘",
	"Control": "⌃",
	"Alt":     "⌥",
	"Shift":   "⇧",
}

// modifierOrder is the canonical Mac-glyph ordering for shortcut blocks.
var modifierOrder = []string{"Meta", "Control", "Alt", "Shift"}

// stripSide removes a trailing "Left"/"Right" qualifier from a modifier key
// (e.g. "ShiftLeft"); other keys such as "ArrowLeft" are returned unchanged.
func stripSide(key string) string {
	for _, side := range []string{"Left", "Right"} {
		if base := strings.TrimSuffix(key, side); base != key {
			if _, ok := modifierGlyphs[base]; ok {
				return base
			}
		}
	}
	return key
}

// keyGlyph renders a single key for display, used both in shortcut glyphs
// and as the fallback for non-printable keys encountered while buffering.
func keyGlyph(key string) string {
	key = stripSide(key)
	if g, ok := namedGlyphs[key]; ok {
		return g
	}
	if strings.HasPrefix(key, "Key") && len(key) == 4 {
		return key[3:] // KeyA..KeyZ -> A..Z
	}
	if strings.HasPrefix(key, "Digit") && len(key) == 6 {
		return key[5:] // Digit0..Digit9 -> 0..9
	}
	if strings.HasPrefix(key, "F") && len(key) <= 3 {
		return key // F1..F24 passthrough
	}
	return key
}

// printableRune returns the single rune a regular character key appends to
// the live buffer, and false for keys that aren't "regular character keys"
// (§4.H: flush triggers and modifiers are handled separately).
func printableRune(key string) (rune, bool) {
	key = stripSide(key)
	switch {
	case key == "Space":
		return ' ', true
	case strings.HasPrefix(key, "Key") && len(key) == 4:
		return []rune(strings.ToLower(key[3:]))[0], true
	case strings.HasPrefix(key, "Digit") && len(key) == 6:
		return []rune(key[5:])[0], true
	case key == "NumpadAdd":
		return '+', true
	default:
		return 0, false
	}
}

// shortcutGlyph renders a modifier-combo key event as "⌘⌃⌥⇧X" (§4.H).
func shortcutGlyph(key string, modifiers []string) string {
	set := make(map[string]bool, len(modifiers))
	for _, m := range modifiers {
		set[m] = true
	}
	var b strings.Builder
	for _, m := range modifierOrder {
		if set[m] {
			b.WriteString(modifierGlyphs[m])
		}
	}
	b.WriteString(keyGlyph(key))
	return b.String()
}
