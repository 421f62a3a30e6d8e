// Package phonology implements the Vietnamese vowel-cluster classification
// rules spec §4.2 describes: which vowel in a cluster carries the tone
// mark, and what phonological role each vowel plays.
//
// The rule set is ported from the reference implementation's
// Phonology::find_tone_position / classify_roles (a prior, more complete
// resolution of the same spec than the teacher repo's own simplified
// findTonePosition), translated into free functions over a []Vowel.
package phonology

import "github.com/username/goviet-ime/internal/keytable"

// Role is the phonological role a vowel plays within its cluster.
type Role int

const (
	RoleMain Role = iota
	RoleMedial
	RoleFinal
)

// Vowel is one vowel cell's phonological identity: its base key, whether it
// already carries a diacritic modifier (circumflex/horn), and its position
// in the buffer.
type Vowel struct {
	Key keytable.Key
	Mod keytable.ToneMod
	Pos int
}

// HasDiacritic reports whether v already carries a circumflex or horn.
func (v Vowel) HasDiacritic() bool {
	return v.Mod != keytable.ToneModNone
}

// FindTonePosition returns the buffer position (the Pos field) of the vowel
// that should carry the tone mark, per spec §4.2 rules 1-5. It returns 0
// for an empty vowels slice.
func FindTonePosition(vowels []Vowel, hasFinalConsonant bool, modern bool) int {
	n := len(vowels)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return vowels[0].Pos
	}

	if n == 2 {
		return findTonePositionTwo(vowels[0], vowels[1], hasFinalConsonant, modern)
	}
	if n == 3 {
		return findTonePositionThree(vowels)
	}
	return findTonePositionMany(vowels)
}

func findTonePositionTwo(v1, v2 Vowel, hasFinalConsonant, modern bool) int {
	// Rule 2: two vowels with a final consonant -> second vowel.
	if hasFinalConsonant {
		return v2.Pos
	}

	// Rule 3(a): first already carries a diacritic and second doesn't -> first.
	// Must be checked before the compound-vowel check: "ưa" (v1=ư with horn,
	// v2=a plain) is not the compound "ươ".
	if v1.HasDiacritic() && !v2.HasDiacritic() {
		return v1.Pos
	}

	// Rule 3(b): compound vowel ươ, uô, iê -> second (inherent diacritic).
	if IsCompoundVowel(v1.Key, v2.Key) {
		return v2.Pos
	}

	// Rule 3(c): second carries a diacritic -> second.
	if v2.HasDiacritic() {
		return v2.Pos
	}

	// Rule 3(d): medial pair oa, oe, uê, uy -> second in modern
	// orthography, first in traditional.
	if IsMedialPair(v1.Key, v2.Key) {
		if modern {
			return v2.Pos
		}
		return v1.Pos
	}

	// Rule 3(e): main-glide pair -> first (the main vowel).
	if IsMainGlidePair(v1.Key, v2.Key) {
		return v1.Pos
	}

	// Rule 3(f): default -> second.
	return v2.Pos
}

func findTonePositionThree(vowels []Vowel) int {
	k0, k1, k2 := vowels[0].Key, vowels[1].Key, vowels[2].Key

	// Middle vowel with diacritic.
	if vowels[1].HasDiacritic() {
		return vowels[1].Pos
	}
	// Else last vowel with diacritic.
	if vowels[2].HasDiacritic() {
		return vowels[2].Pos
	}
	// uô_ pattern (e.g. uôi) -> middle.
	if k0 == keytable.KeyU && k1 == keytable.KeyO {
		return vowels[1].Pos
	}
	// oa_ pattern (e.g. oai, oay) -> middle.
	if k0 == keytable.KeyO && k1 == keytable.KeyA {
		return vowels[1].Pos
	}
	// uyê pattern -> last.
	if k0 == keytable.KeyU && k1 == keytable.KeyY && k2 == keytable.KeyE {
		return vowels[2].Pos
	}
	// Default: middle.
	return vowels[1].Pos
}

func findTonePositionMany(vowels []Vowel) int {
	n := len(vowels)
	mid := n / 2
	if vowels[mid].HasDiacritic() {
		return vowels[mid].Pos
	}
	for _, v := range vowels {
		if v.HasDiacritic() {
			return v.Pos
		}
	}
	return vowels[mid].Pos
}

// ClassifyRoles assigns a Role to every vowel in the cluster.
func ClassifyRoles(vowels []Vowel, hasFinalConsonant bool) []Role {
	n := len(vowels)
	if n == 0 {
		return nil
	}
	roles := make([]Role, n)
	if n == 1 {
		roles[0] = RoleMain
		return roles
	}

	if n == 2 {
		k1, k2 := vowels[0].Key, vowels[1].Key
		switch {
		case IsMedialPair(k1, k2) || IsCompoundVowel(k1, k2) || hasFinalConsonant:
			roles[0] = RoleMedial
			roles[1] = RoleMain
		case IsMainGlidePair(k1, k2) || (vowels[0].HasDiacritic() && !vowels[1].HasDiacritic()):
			roles[0] = RoleMain
			roles[1] = RoleFinal
		default:
			roles[0] = RoleMain
			roles[1] = RoleMain
		}
		return roles
	}

	// Three or more: first is medial, last is final (unless a coda follows),
	// and the middle index is main.
	for i := range roles {
		roles[i] = RoleMain
	}
	roles[0] = RoleMedial
	if !hasFinalConsonant {
		roles[n-1] = RoleFinal
	}
	roles[n/2] = RoleMain
	return roles
}

// IsMedialPair reports whether v1+v2 is a medial+main pair: oa, oe, uê, uy.
// ua is not one: the u of a qu- initial never reaches the vowel list (see
// syllable.Buffer.Vowels), so a two-vowel ua cluster is main + glide (mua).
func IsMedialPair(v1, v2 keytable.Key) bool {
	switch {
	case v1 == keytable.KeyO && v2 == keytable.KeyA:
		return true
	case v1 == keytable.KeyO && v2 == keytable.KeyE:
		return true
	case v1 == keytable.KeyU && v2 == keytable.KeyE:
		return true
	case v1 == keytable.KeyU && v2 == keytable.KeyY:
		return true
	}
	return false
}

// IsCompoundVowel reports whether v1+v2 is a compound diphthong: ươ, uô, iê.
func IsCompoundVowel(v1, v2 keytable.Key) bool {
	switch {
	case v1 == keytable.KeyU && v2 == keytable.KeyO:
		return true
	case v1 == keytable.KeyI && v2 == keytable.KeyE:
		return true
	}
	return false
}

// IsMainGlidePair reports whether v1+v2 is a main-vowel+final-glide pair:
// second vowel is i/y/o/u and the pair isn't a medial or compound pattern,
// or the pair is ua.
func IsMainGlidePair(v1, v2 keytable.Key) bool {
	if v1 == keytable.KeyU && v2 == keytable.KeyA {
		return true
	}
	switch v2 {
	case keytable.KeyI, keytable.KeyY, keytable.KeyO, keytable.KeyU:
	default:
		return false
	}
	return !IsMedialPair(v1, v2) && !IsCompoundVowel(v1, v2)
}
