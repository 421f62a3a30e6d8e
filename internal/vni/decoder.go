// Package vni decodes one VNI keystroke into a mutation of a
// syllable.Buffer, grounded on the teacher's internal/engine/vni.go
// trigger tables (vniToneKeys, vniVowelKeys, vniTransformations) but
// restructured around the cell buffer's search-by-predicate model, per
// spec §4.5.
package vni

import (
	"github.com/username/goviet-ime/internal/keytable"
	"github.com/username/goviet-ime/internal/syllable"
)

// toneDigits maps a VNI tone digit to the mark it requests.
var toneDigits = map[keytable.Key]keytable.Mark{
	keytable.Key1: keytable.MarkAcute,
	keytable.Key2: keytable.MarkGrave,
	keytable.Key3: keytable.MarkHook,
	keytable.Key4: keytable.MarkTilde,
	keytable.Key5: keytable.MarkDot,
	keytable.Key0: keytable.MarkNone,
}

// vowelDigits maps a VNI vowel-modifier digit to the diacritic it
// requests: 6 circumflex (â/ê/ô), 7 horn (ơ/ư), 8 breve (ă, modeled as
// the same Horn slot as the other two — see keytable.ToneMod), 9 stroke
// (đ, handled separately since it isn't a ToneMod).
var vowelDigits = map[keytable.Key]keytable.ToneMod{
	keytable.Key6: keytable.ToneModCircumflex,
	keytable.Key7: keytable.ToneModHorn,
	keytable.Key8: keytable.ToneModHorn,
}

// hornCandidates mirrors the Telex decoder's 'w' search order.
var hornCandidates = []keytable.Key{keytable.KeyU, keytable.KeyO}

// ApplyKey decodes key against buf. It returns consumed = false when key
// is a digit that found no vowel (or, for 9, no 'd') to modify — unlike a
// Telex trigger letter, a bare digit cannot become a literal buffer cell
// (a Cell only ever holds a-z), so the caller must decide how to surface
// the unconsumed digit (spec §4.5: "digits with no eligible target pass
// through unmodified").
func ApplyKey(buf *syllable.Buffer, key keytable.Key, caps bool) (consumed bool) {
	if mark, ok := toneDigits[key]; ok {
		return applyTone(buf, mark)
	}
	if key == keytable.Key9 {
		return applyStroke(buf)
	}
	if mod, ok := vowelDigits[key]; ok {
		return applyVowelMod(buf, key, mod)
	}
	buf.AppendLetter(key, caps)
	return true
}

func applyTone(buf *syllable.Buffer, mark keytable.Mark) bool {
	if !buf.HasVowel() {
		return false
	}
	buf.SetToneMark(mark)
	return true
}

func applyStroke(buf *syllable.Buffer) bool {
	pos, ok := buf.Rightmost(keytable.KeyD)
	if !ok {
		return false
	}
	buf.ToggleStroke(pos)
	return true
}

func applyVowelMod(buf *syllable.Buffer, key keytable.Key, mod keytable.ToneMod) bool {
	// Key8 (breve) only ever targets 'a'; Key6/Key7 search the wider
	// candidate sets.
	if key == keytable.Key8 {
		pos, ok := buf.RightmostVowelIn(keytable.KeyA)
		if !ok {
			return false
		}
		buf.ToggleToneMod(pos, keytable.ToneModHorn)
		return true
	}

	if mod == keytable.ToneModHorn {
		pos, ok := buf.RightmostVowelIn(hornCandidates...)
		if !ok {
			return false
		}
		applied := buf.ToggleToneMod(pos, mod)
		if applied {
			pairCompoundHorn(buf, pos)
		}
		return true
	}

	// Circumflex: a, e, o.
	pos, ok := buf.RightmostVowelIn(keytable.KeyA, keytable.KeyE, keytable.KeyO)
	if !ok {
		return false
	}
	buf.ToggleToneMod(pos, mod)
	return true
}

// pairCompoundHorn mirrors the Telex decoder's "uo" + horn -> "ươ" rule.
func pairCompoundHorn(buf *syllable.Buffer, pos int) {
	if pos == 0 || buf.CellAt(pos).Key != keytable.KeyO {
		return
	}
	prev := pos - 1
	if buf.CellAt(prev).Key == keytable.KeyU && buf.CellAt(prev).ToneMod == keytable.ToneModNone {
		buf.ToggleToneMod(prev, keytable.ToneModHorn)
	}
}
