package phonology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/goviet-ime/internal/keytable"
)

func v(key keytable.Key, mod keytable.ToneMod, pos int) Vowel {
	return Vowel{Key: key, Mod: mod, Pos: pos}
}

func TestFindTonePosition_SingleVowel(t *testing.T) {
	vowels := []Vowel{v(keytable.KeyA, keytable.ToneModNone, 0)}
	assert.Equal(t, 0, FindTonePosition(vowels, false, true))
}

func TestFindTonePosition_MedialPairs(t *testing.T) {
	// oa -> mark on a (pos 1), modern orthography
	vowels := []Vowel{v(keytable.KeyO, keytable.ToneModNone, 0), v(keytable.KeyA, keytable.ToneModNone, 1)}
	assert.Equal(t, 1, FindTonePosition(vowels, false, true))

	// uy -> mark on y (pos 1)
	vowels = []Vowel{v(keytable.KeyU, keytable.ToneModNone, 0), v(keytable.KeyY, keytable.ToneModNone, 1)}
	assert.Equal(t, 1, FindTonePosition(vowels, false, true))
}

func TestFindTonePosition_MedialPair_Traditional(t *testing.T) {
	// oa -> mark on o (pos 0), traditional orthography
	vowels := []Vowel{v(keytable.KeyO, keytable.ToneModNone, 0), v(keytable.KeyA, keytable.ToneModNone, 1)}
	assert.Equal(t, 0, FindTonePosition(vowels, false, false))
}

func TestFindTonePosition_MainGlidePairs(t *testing.T) {
	// ai -> mark on a (pos 0)
	vowels := []Vowel{v(keytable.KeyA, keytable.ToneModNone, 0), v(keytable.KeyI, keytable.ToneModNone, 1)}
	assert.Equal(t, 0, FindTonePosition(vowels, false, true))

	// ao -> mark on a (pos 0)
	vowels = []Vowel{v(keytable.KeyA, keytable.ToneModNone, 0), v(keytable.KeyO, keytable.ToneModNone, 1)}
	assert.Equal(t, 0, FindTonePosition(vowels, false, true))
}

func TestFindTonePosition_WithFinalConsonant(t *testing.T) {
	// oan -> mark on a (pos 1)
	vowels := []Vowel{v(keytable.KeyO, keytable.ToneModNone, 0), v(keytable.KeyA, keytable.ToneModNone, 1)}
	assert.Equal(t, 1, FindTonePosition(vowels, true, true))
}

func TestFindTonePosition_CompoundVowels(t *testing.T) {
	// ươ -> mark on ơ (pos 1)
	vowels := []Vowel{v(keytable.KeyU, keytable.ToneModHorn, 0), v(keytable.KeyO, keytable.ToneModHorn, 1)}
	assert.Equal(t, 1, FindTonePosition(vowels, false, true))

	// iê -> mark on ê (pos 1)
	vowels = []Vowel{v(keytable.KeyI, keytable.ToneModNone, 0), v(keytable.KeyE, keytable.ToneModCircumflex, 1)}
	assert.Equal(t, 1, FindTonePosition(vowels, false, true))
}

func TestFindTonePosition_DiacriticPriority(t *testing.T) {
	// ưa -> mark on ư (pos 0): ư has diacritic, a doesn't, and ưa is
	// NOT the compound ươ.
	vowels := []Vowel{v(keytable.KeyU, keytable.ToneModHorn, 0), v(keytable.KeyA, keytable.ToneModNone, 1)}
	assert.Equal(t, 0, FindTonePosition(vowels, false, true))
}

func TestFindTonePosition_ThreeVowels(t *testing.T) {
	// ươi -> mark on ơ (pos 1, middle with diacritic)
	vowels := []Vowel{
		v(keytable.KeyU, keytable.ToneModHorn, 0),
		v(keytable.KeyO, keytable.ToneModHorn, 1),
		v(keytable.KeyI, keytable.ToneModNone, 2),
	}
	assert.Equal(t, 1, FindTonePosition(vowels, false, true))

	// oai -> mark on a (pos 1, middle)
	vowels = []Vowel{
		v(keytable.KeyO, keytable.ToneModNone, 0),
		v(keytable.KeyA, keytable.ToneModNone, 1),
		v(keytable.KeyI, keytable.ToneModNone, 2),
	}
	assert.Equal(t, 1, FindTonePosition(vowels, false, true))
}

func TestIsMedialCompoundMainGlide(t *testing.T) {
	assert.True(t, IsMedialPair(keytable.KeyO, keytable.KeyA))
	assert.True(t, IsMedialPair(keytable.KeyU, keytable.KeyY))
	assert.True(t, IsCompoundVowel(keytable.KeyU, keytable.KeyO))
	assert.True(t, IsCompoundVowel(keytable.KeyI, keytable.KeyE))
	assert.True(t, IsMainGlidePair(keytable.KeyA, keytable.KeyI))
	assert.False(t, IsMainGlidePair(keytable.KeyO, keytable.KeyA)) // medial, not glide
}

func TestClassifyRoles_SingleVowel(t *testing.T) {
	roles := ClassifyRoles([]Vowel{v(keytable.KeyA, keytable.ToneModNone, 0)}, false)
	assert.Equal(t, []Role{RoleMain}, roles)
}

func TestClassifyRoles_MedialMain(t *testing.T) {
	vowels := []Vowel{v(keytable.KeyO, keytable.ToneModNone, 0), v(keytable.KeyA, keytable.ToneModNone, 1)}
	roles := ClassifyRoles(vowels, false)
	assert.Equal(t, []Role{RoleMedial, RoleMain}, roles)
}

func TestClassifyRoles_MainFinal(t *testing.T) {
	vowels := []Vowel{v(keytable.KeyA, keytable.ToneModNone, 0), v(keytable.KeyI, keytable.ToneModNone, 1)}
	roles := ClassifyRoles(vowels, false)
	assert.Equal(t, []Role{RoleMain, RoleFinal}, roles)
}
