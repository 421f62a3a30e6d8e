package syllable

import (
	"strings"

	"github.com/username/goviet-ime/internal/keytable"
	"github.com/username/goviet-ime/internal/phonology"
)

// Buffer is the mutable syllable-under-composition: an ordered cell
// sequence plus the parallel raw-keystroke log spec §3 describes. Bounded
// in practice (the engine restarts the buffer past ~16 cells; spec §4.6
// edge case), but Buffer itself enforces no limit — that policy lives in
// the engine.
//
// The tone mark is not stored per cell. Spec §4.1's design note says the
// mark is recomputed onto whichever vowel wears it on every keystroke;
// this implementation takes that literally and keeps a single pendingMark
// field, materializing it onto the winning cell only when Cells or Compose
// is called. That trivially satisfies invariant I1 (at most one cell
// carries a mark) by construction, rather than by bookkeeping.
type Buffer struct {
	cells       []Cell
	raw         []rune
	pendingMark keytable.Mark
	modern      bool
}

// New returns an empty buffer. modern selects modern vs. traditional
// placement for medial-pair vowels (spec §4.2 rule 3d).
func New(modern bool) *Buffer {
	return &Buffer{modern: modern}
}

// SetModern changes the medial-pair placement convention for subsequent
// composition; it does not retroactively recompose the current buffer.
func (b *Buffer) SetModern(modern bool) { b.modern = modern }

// Len returns the number of cells currently in the buffer.
func (b *Buffer) Len() int { return len(b.cells) }

// Cells returns a snapshot of the buffer's cells, with the pending tone
// mark materialized onto whichever vowel currently carries it.
func (b *Buffer) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	if pos, ok := b.markedPos(); ok {
		out[pos].Mark = b.pendingMark
	}
	return out
}

// RawLog returns a copy of the raw keystroke log.
func (b *Buffer) RawLog() []rune {
	out := make([]rune, len(b.raw))
	copy(out, b.raw)
	return out
}

// RawString renders the raw log as the plain-Latin string the user would
// see had no Vietnamese composition ever applied (spec §4.7's raw_form).
func (b *Buffer) RawString() string {
	return string(b.raw)
}

// Snapshot captures enough state to restore the buffer verbatim (used by
// the engine's history ring, spec §4.9).
type Snapshot struct {
	cells       []Cell
	raw         []rune
	pendingMark keytable.Mark
}

// Snapshot returns an immutable copy of the buffer's internal state.
func (b *Buffer) Snapshot() Snapshot {
	s := Snapshot{pendingMark: b.pendingMark}
	s.cells = append(s.cells, b.cells...)
	s.raw = append(s.raw, b.raw...)
	return s
}

// Restore resets the buffer to a previously captured Snapshot.
func (b *Buffer) Restore(s Snapshot) {
	b.cells = append(b.cells[:0], s.cells...)
	b.raw = append(b.raw[:0], s.raw...)
	b.pendingMark = s.pendingMark
}

// Clear empties the buffer entirely (word boundary, spec §4.6).
func (b *Buffer) Clear() {
	b.cells = b.cells[:0]
	b.raw = b.raw[:0]
	b.pendingMark = keytable.MarkNone
}

// AppendLetter appends a new cell for key and logs the keystroke.
func (b *Buffer) AppendLetter(key keytable.Key, caps bool) {
	b.cells = append(b.cells, Cell{Key: key, Caps: caps})
	b.pushRawLetter(key, caps)
}

// Pop removes the last cell, if any, without touching the raw log (the
// raw log's own trimming is the caller's decision — see PopRaw).
func (b *Buffer) Pop() (Cell, bool) {
	if len(b.cells) == 0 {
		return Cell{}, false
	}
	last := b.cells[len(b.cells)-1]
	b.cells = b.cells[:len(b.cells)-1]
	return last, true
}

// PushRaw appends r to the raw log directly, without creating a cell. Used
// when a modifier or tone-mark keystroke is consumed in place (spec §4.3):
// the keystroke happened, so it belongs in the raw reconstruction, even
// though it left the cell count unchanged.
func (b *Buffer) PushRaw(r rune) {
	b.raw = append(b.raw, r)
}

// PopRaw removes and returns the last raw log entry, if any.
func (b *Buffer) PopRaw() (rune, bool) {
	if len(b.raw) == 0 {
		return 0, false
	}
	r := b.raw[len(b.raw)-1]
	b.raw = b.raw[:len(b.raw)-1]
	return r, true
}

func (b *Buffer) pushRawLetter(key keytable.Key, caps bool) {
	b.PushRaw(capsLetter(key.Rune(), caps))
}

func capsLetter(r rune, caps bool) rune {
	if caps && r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Rightmost scans cells right-to-left for one whose Key equals key,
// returning its index.
func (b *Buffer) Rightmost(key keytable.Key) (int, bool) {
	for i := len(b.cells) - 1; i >= 0; i-- {
		if b.cells[i].Key == key {
			return i, true
		}
	}
	return 0, false
}

// RightmostVowelIn scans cells right-to-left for the first vowel cell
// whose key is one of keys, in buffer order (not in the order keys was
// given) — i.e. it finds the rightmost matching vowel cell, trying every
// candidate key at each position before moving further left.
func (b *Buffer) RightmostVowelIn(keys ...keytable.Key) (int, bool) {
	for i := len(b.cells) - 1; i >= 0; i-- {
		if !b.cells[i].IsVowel() {
			continue
		}
		for _, k := range keys {
			if b.cells[i].Key == k {
				return i, true
			}
		}
	}
	return 0, false
}

// CellAt returns the cell at pos.
func (b *Buffer) CellAt(pos int) Cell { return b.cells[pos] }

// ToggleToneMod applies mod to the cell at pos, or reverts it to
// ToneModNone if that cell already carries mod (spec §4.3's self-cancel).
// applied reports which happened: true for apply, false for revert.
func (b *Buffer) ToggleToneMod(pos int, mod keytable.ToneMod) (applied bool) {
	if b.cells[pos].ToneMod == mod {
		b.cells[pos].ToneMod = keytable.ToneModNone
		return false
	}
	b.cells[pos].ToneMod = mod
	return true
}

// ToggleStroke applies or reverts the đ-stroke on the cell at pos (which
// must be a 'd' cell).
func (b *Buffer) ToggleStroke(pos int) (applied bool) {
	b.cells[pos].Stroke = !b.cells[pos].Stroke
	return b.cells[pos].Stroke
}

// SetToneMark requests mark as the syllable's tone mark, or clears it if
// mark is already pending (self-cancel). applied reports which happened.
func (b *Buffer) SetToneMark(mark keytable.Mark) (applied bool) {
	if b.pendingMark == mark {
		b.pendingMark = keytable.MarkNone
		return false
	}
	b.pendingMark = mark
	return true
}

// PendingMark returns the syllable's currently requested tone mark.
func (b *Buffer) PendingMark() keytable.Mark { return b.pendingMark }

// HasVowel reports whether the buffer contains any vowel cell.
func (b *Buffer) HasVowel() bool {
	for _, c := range b.cells {
		if c.IsVowel() {
			return true
		}
	}
	return false
}

// HasFinalConsonantAfter reports whether any consonant cell follows pos.
func (b *Buffer) HasFinalConsonantAfter(pos int) bool {
	for i := pos + 1; i < len(b.cells); i++ {
		if b.cells[i].IsConsonant() {
			return true
		}
	}
	return false
}

// HasQuInitial reports whether the buffer opens with q-u (spec §4.2's
// qu-initial special case: the u is a glide, never a nucleus vowel).
func (b *Buffer) HasQuInitial() bool {
	return len(b.cells) >= 2 && b.cells[0].Key == keytable.KeyQ && b.cells[1].Key == keytable.KeyU
}

// HasGiInitial reports whether the buffer opens with g-i followed by
// another vowel (spec §4.2's gi-initial special case: the i is a glide).
func (b *Buffer) HasGiInitial() bool {
	return len(b.cells) >= 3 && b.cells[0].Key == keytable.KeyG && b.cells[1].Key == keytable.KeyI && b.cells[2].IsVowel()
}

// Vowels collects the buffer's vowel cells into phonology.Vowel values,
// applying the qu-/gi-initial glide exclusions.
func (b *Buffer) Vowels() []phonology.Vowel {
	skip := 0
	switch {
	case b.HasQuInitial():
		skip = 2
	case b.HasGiInitial():
		skip = 2
	}
	var out []phonology.Vowel
	for i := skip; i < len(b.cells); i++ {
		c := b.cells[i]
		if !c.IsVowel() {
			continue
		}
		out = append(out, phonology.Vowel{Key: c.Key, Mod: c.ToneMod, Pos: i})
	}
	return out
}

// markedPos returns the index of the cell that should carry the pending
// tone mark, per the phonology package's placement rules.
func (b *Buffer) markedPos() (int, bool) {
	if b.pendingMark == keytable.MarkNone {
		return 0, false
	}
	vowels := b.Vowels()
	if len(vowels) == 0 {
		return 0, false
	}
	hasFinal := b.HasFinalConsonantAfter(vowels[len(vowels)-1].Pos)
	idx := phonology.FindTonePosition(vowels, hasFinal, b.modern)
	return idx, true
}

// Compose renders the buffer's current composed Vietnamese text.
func (b *Buffer) Compose() string {
	cells := b.Cells()
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, c := range cells {
		sb.WriteRune(c.Rune())
	}
	return sb.String()
}
