// Package telex decodes one Telex keystroke into a mutation of a
// syllable.Buffer, grounded on the teacher's internal/engine/telex.go
// trigger tables (telexToneKeys, telexVowelModifiers, telexHornPatterns,
// telexDoublePatterns) but restructured around the cell buffer's
// search-by-predicate model instead of the teacher's raw-string
// lookahead, per spec §4.4.
package telex

import (
	"github.com/username/goviet-ime/internal/keytable"
	"github.com/username/goviet-ime/internal/syllable"
)

// ApplyKey decodes key (a letter keystroke) against buf, mutating it in
// place per the Telex rules: tone triggers, double-letter vowel
// modifiers, the 'w' horn/breve trigger, and the 'd' stroke trigger. Any
// key that is none of these is appended as a plain letter.
//
// ApplyKey assumes key is a letter key (keytable.IsLetterKey); word-break
// and control keys are the engine's responsibility, not the decoder's.
func ApplyKey(buf *syllable.Buffer, key keytable.Key, caps bool) {
	if mark, ok := toneKeys[key]; ok {
		applyTone(buf, key, caps, mark)
		return
	}

	switch key {
	case keytable.KeyA, keytable.KeyE, keytable.KeyO:
		applyDoubleCircumflex(buf, key, caps)
	case keytable.KeyD:
		applyStroke(buf, caps)
	case keytable.KeyW:
		applyHorn(buf, caps)
	default:
		buf.AppendLetter(key, caps)
	}
}

// toneKeys maps a Telex tone trigger to the mark it requests. 'z' is the
// teacher's "clear tone" convention (telexToneKeys['z'] = ToneNone in
// telex.go); spec §4.4 names only s/f/r/x/j but carrying 'z' over is
// harmless and matches real Telex input methods.
var toneKeys = map[keytable.Key]keytable.Mark{
	keytable.KeyS: keytable.MarkAcute,
	keytable.KeyF: keytable.MarkGrave,
	keytable.KeyR: keytable.MarkHook,
	keytable.KeyX: keytable.MarkTilde,
	keytable.KeyJ: keytable.MarkDot,
	keytable.KeyZ: keytable.MarkNone,
}

func applyTone(buf *syllable.Buffer, key keytable.Key, caps bool, mark keytable.Mark) {
	if !buf.HasVowel() {
		buf.AppendLetter(key, caps)
		return
	}
	buf.SetToneMark(mark)
	buf.PushRaw(rawRune(key, caps))
}

// applyDoubleCircumflex handles aa/ee/oo: the second occurrence of the
// same base vowel, typed immediately after the first, promotes it to the
// circumflex form. A third occurrence self-cancels: the circumflex is
// removed, its trigger keystroke is popped from the raw log, and the
// third keystroke is appended as a new literal cell (spec §4.4, §4.3's
// self-cancel pattern — "ddd" -> "dd" carried over to aaa/eee/ooo).
func applyDoubleCircumflex(buf *syllable.Buffer, key keytable.Key, caps bool) {
	pos := buf.Len() - 1
	if pos < 0 || buf.CellAt(pos).Key != key {
		buf.AppendLetter(key, caps)
		return
	}
	if buf.ToggleToneMod(pos, keytable.ToneModCircumflex) {
		buf.PushRaw(rawRune(key, caps))
		return
	}
	buf.PopRaw()
	buf.AppendLetter(key, caps)
}

// applyStroke handles the 'd' trigger: "dd" promotes the first d to đ;
// a third d self-cancels back to two literal d's; a trailing d typed
// after the vowel nucleus (e.g. "d" ... vowels ... "d") promotes the
// earlier, still-unstroked initial d in place (the "delayed stroke" case
// spec §4.4 names).
func applyStroke(buf *syllable.Buffer, caps bool) {
	if pos := buf.Len() - 1; pos >= 0 && buf.CellAt(pos).Key == keytable.KeyD {
		if buf.ToggleStroke(pos) {
			buf.PushRaw(rawRune(keytable.KeyD, caps))
			return
		}
		buf.PopRaw()
		buf.AppendLetter(keytable.KeyD, caps)
		return
	}

	if pos, ok := buf.Rightmost(keytable.KeyD); ok {
		buf.ToggleStroke(pos)
		buf.PushRaw(rawRune(keytable.KeyD, caps))
		return
	}

	buf.AppendLetter(keytable.KeyD, caps)
}

// hornCandidates is the search order for the 'w' trigger: prefer the
// rightmost u/o (which becomes ư/ơ); fall back to a (which becomes the
// breve ă) only when no u/o is present.
var hornCandidates = []keytable.Key{keytable.KeyU, keytable.KeyO}

func applyHorn(buf *syllable.Buffer, caps bool) {
	pos, ok := buf.RightmostVowelIn(hornCandidates...)
	if !ok {
		pos, ok = buf.RightmostVowelIn(keytable.KeyA)
	}
	if !ok {
		buf.AppendLetter(keytable.KeyW, caps)
		return
	}

	if buf.ToggleToneMod(pos, keytable.ToneModHorn) {
		buf.PushRaw(rawRune(keytable.KeyW, caps))
		pairCompoundHorn(buf, pos)
		return
	}
	buf.PopRaw()
	buf.AppendLetter(keytable.KeyW, caps)
}

// pairCompoundHorn implements "uo" + w -> "ươ": when the cell that just
// received the horn is 'o' and it is immediately preceded by an
// unmodified 'u', the 'u' becomes 'ư' too, since Vietnamese never writes
// a bare 'u' before 'ơ' in the same cluster.
func pairCompoundHorn(buf *syllable.Buffer, pos int) {
	if pos == 0 || buf.CellAt(pos).Key != keytable.KeyO {
		return
	}
	prev := pos - 1
	if buf.CellAt(prev).Key == keytable.KeyU && buf.CellAt(prev).ToneMod == keytable.ToneModNone {
		buf.ToggleToneMod(prev, keytable.ToneModHorn)
	}
}

func rawRune(key keytable.Key, caps bool) rune {
	r := key.Rune()
	if caps && r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
