// Package arbiter implements the word-boundary auto-restore decision
// spec §4.8 describes: given a closed syllable's composed Vietnamese
// text and its raw keystroke reconstruction, decide whether to keep the
// Vietnamese composition or restore the plain-Latin form the user
// actually typed.
//
// Grounded on original_source/core/tests/revert_auto_restore_test.rs
// (raw log already reflects popped revert triggers — the arbiter
// consumes it as-is) and english_telex_patterns_test.rs (the
// RESTORABLE/NON-RESTORABLE classification that motivates rule (a)'s
// priority over rule (b): "mas" -> "má" stays Vietnamese even though
// "mas" could theoretically be English, but "deeper"-style garbage
// reverts).
package arbiter

import (
	"github.com/username/goviet-ime/internal/dict"
	"github.com/username/goviet-ime/internal/keytable"
)

// Config is the subset of the engine's configuration the arbiter reads.
type Config struct {
	Modern                 bool // which Vietnamese orthography's dictionary to check
	AllowForeignConsonants bool
}

// Decide applies spec §4.8's priority chain and returns the text that
// should replace the current emission. enabled is the conjunction of
// Config.EnglishAutoRestore and "dictionaries loaded successfully" — when
// false, the arbiter is completely inert and vnForm always wins (spec §7's
// graceful-degradation contract for a dictionary load failure).
func Decide(vnForm, rawForm string, firstRawKey keytable.Key, enabled bool, cfg Config, dicts *dict.Defaults) string {
	if !enabled || dicts == nil {
		return vnForm
	}

	vnDict := dicts.VNTraditional
	if cfg.Modern {
		vnDict = dicts.VNModern
	}

	// (a) vn_form is a valid Vietnamese word.
	if vnDict.Contains(vnForm) {
		return vnForm
	}

	// (b) raw_form is English, or on the Telex-doubles whitelist.
	if dicts.English.Contains(rawForm) || dicts.TelexDoubles.Contains(rawForm) {
		return rawForm
	}

	// (c) collapsed_form (doubled modifier-trigger letters collapsed to
	// one) differs from raw_form and is English.
	collapsed := CollapsedForm(rawForm)
	if collapsed != rawForm && dicts.English.Contains(collapsed) {
		return collapsed
	}

	// (d) foreign initial consonant disallowed.
	if !cfg.AllowForeignConsonants && keytable.IsForeignInitial(firstRawKey) {
		return rawForm
	}

	// (e) default: keep the Vietnamese composition.
	return vnForm
}

// triggerLetters are the Telex keys that double as modifier triggers:
// a/e/o (circumflex), d (stroke), w (horn), s/f/r/x/j/z (tone). A doubled
// occurrence of one of these inside raw_form is exactly the shape a
// self-cancel revert produces, so collapsing it to a single occurrence
// reconstructs what the user would have typed had they meant the letter
// literally rather than as a cancelled modifier (spec §4.8's
// `usser` -> `user` example).
var triggerLetters = map[rune]bool{
	'a': true, 'e': true, 'o': true, 'd': true, 'w': true,
	's': true, 'f': true, 'r': true, 'x': true, 'j': true, 'z': true,
}

// CollapsedForm collapses every maximal run of 2+ identical
// case-insensitive trigger letters in s down to a single occurrence
// (preserving the first occurrence's case).
func CollapsedForm(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		out = append(out, runes[i])
		if !triggerLetters[lowerRune(runes[i])] {
			continue
		}
		for i+1 < len(runes) && lowerRune(runes[i+1]) == lowerRune(runes[i]) {
			i++
		}
	}
	return string(out)
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
