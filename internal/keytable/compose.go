package keytable

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToneMod is a vowel diacritic modifier, independent of the tone mark.
// â/ê/ô carry Circumflex; ă/ơ/ư carry Horn (breve on ă is modeled as the
// same Horn slot — Vietnamese never needs to distinguish the two for a
// single base letter).
type ToneMod int

const (
	ToneModNone ToneMod = iota
	ToneModCircumflex
	ToneModHorn
)

// Mark is a Vietnamese tone mark (dấu thanh), distinct from a ToneMod.
type Mark int

const (
	MarkNone Mark = iota
	MarkAcute
	MarkGrave
	MarkHook
	MarkTilde
	MarkDot
)

// baseVowels lists the 12 Vietnamese vowel bases in (key, modifier) form,
// paired with their lowercase unmodified rune.
var baseVowels = map[Key]map[ToneMod]rune{
	KeyA: {ToneModNone: 'a', ToneModCircumflex: 'â', ToneModHorn: 'ă'},
	KeyE: {ToneModNone: 'e', ToneModCircumflex: 'ê'},
	KeyI: {ToneModNone: 'i'},
	KeyO: {ToneModNone: 'o', ToneModCircumflex: 'ô', ToneModHorn: 'ơ'},
	KeyU: {ToneModNone: 'u', ToneModHorn: 'ư'},
	KeyY: {ToneModNone: 'y'},
}

// toneTable[base][mark] -> composed lowercase rune. Built once at init from
// the 12 vowel bases × 5 marks, the way spec §4.1 describes ("a dense
// lookup over 12 base vowels x 5 tone marks").
var toneTable map[rune]map[Mark]rune

var upperCaser = cases.Upper(language.Und)

func init() {
	raw := map[rune][6]rune{
		'a': {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
		'ă': {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
		'â': {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
		'e': {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
		'ê': {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
		'i': {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
		'o': {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
		'ô': {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
		'ơ': {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
		'u': {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
		'ư': {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
		'y': {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
	}
	toneTable = make(map[rune]map[Mark]rune, len(raw))
	for base, marks := range raw {
		toneTable[base] = map[Mark]rune{
			MarkNone:  marks[0],
			MarkAcute: marks[1],
			MarkGrave: marks[2],
			MarkHook:  marks[3],
			MarkTilde: marks[4],
			MarkDot:   marks[5],
		}
	}
}

// Compose returns the composed Unicode code point for a cell. It is pure:
// an undefined (key, toneMod) combination — e.g. circumflex on i — falls
// back to the plain base letter, per spec §4.1's compose contract.
//
// stroke applies only to 'd' (đ); it is orthogonal to toneMod/mark, which
// are meaningless for a consonant cell.
func Compose(key Key, caps bool, mod ToneMod, mark Mark, stroke bool) rune {
	if key == KeyD {
		if stroke {
			return capsRune('đ', caps)
		}
		return capsRune('d', caps)
	}

	bases, ok := baseVowels[key]
	if !ok {
		return capsRune(key.Rune(), caps)
	}
	base, ok := bases[mod]
	if !ok {
		base = bases[ToneModNone]
	}
	marks, ok := toneTable[base]
	if !ok {
		return capsRune(base, caps)
	}
	composed, ok := marks[mark]
	if !ok {
		composed = base
	}
	return capsRune(composed, caps)
}

func capsRune(r rune, caps bool) rune {
	if !caps || r == 0 {
		return r
	}
	upper := upperCaser.String(string(r))
	for _, u := range upper {
		return u
	}
	return r
}
