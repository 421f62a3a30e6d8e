// Package syllable implements the in-progress syllable buffer spec §3/§4.3
// describes: an ordered sequence of Cells plus a parallel raw-keystroke
// log, together with the operations the Telex/VNI decoders and the
// rewrite engine drive it through.
package syllable

import "github.com/username/goviet-ime/internal/keytable"

// Cell represents one Latin letter as the user typed it, plus whatever
// Vietnamese diacritics have since been attached to it (spec §3).
type Cell struct {
	Key     keytable.Key
	Caps    bool
	ToneMod keytable.ToneMod // circumflex/horn; meaningful only on a/e/o/u
	Mark    keytable.Mark    // tone mark, meaningful only on the tone-bearing vowel
	Stroke  bool             // true only for a 'd' cell that has become đ
}

// Rune returns the composed code point for this cell.
func (c Cell) Rune() rune {
	return keytable.Compose(c.Key, c.Caps, c.ToneMod, c.Mark, c.Stroke)
}

// IsVowel reports whether this cell's key is one of the plain vowel
// letters (a, e, i, o, u, y).
func (c Cell) IsVowel() bool {
	return keytable.IsVowelKey(c.Key)
}

// IsConsonant reports whether this cell's key is a consonant letter.
func (c Cell) IsConsonant() bool {
	return keytable.IsConsonantKey(c.Key)
}
