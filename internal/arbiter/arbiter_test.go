package arbiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/goviet-ime/internal/dict"
	"github.com/username/goviet-ime/internal/keytable"
)

func testDicts(t *testing.T) *dict.Defaults {
	t.Helper()
	d, err := dict.LoadDefaults()
	require.NoError(t, err)
	return d
}

func TestDecide_RuleA_ValidVietnameseWins(t *testing.T) {
	dicts := testDicts(t)
	got := Decide("má", "mas", keytable.KeyM, true, Config{Modern: true}, dicts)
	assert.Equal(t, "má", got)
}

func TestDecide_RuleB_EnglishRawFormWins(t *testing.T) {
	dicts := testDicts(t)
	// "bo" is not a Vietnamese word in our seed dict; raw "boss" is
	// English/whitelisted.
	got := Decide("bo", "boss", keytable.KeyB, true, Config{Modern: true}, dicts)
	assert.Equal(t, "boss", got)
}

func TestDecide_RuleC_CollapsedFormWins(t *testing.T) {
	dicts := testDicts(t)
	// raw "usser" isn't Vietnamese, isn't English/whitelisted itself, but
	// collapses to "user" which is English.
	got := Decide("uer", "usser", keytable.KeyU, true, Config{Modern: true}, dicts)
	assert.Equal(t, "user", got)
}

func TestDecide_RuleD_ForeignInitialDisallowed(t *testing.T) {
	dicts := testDicts(t)
	got := Decide("zô", "zoo", keytable.KeyZ, true, Config{Modern: true, AllowForeignConsonants: false}, dicts)
	assert.Equal(t, "zoo", got)
}

func TestDecide_RuleE_DefaultKeepsVietnamese(t *testing.T) {
	dicts := testDicts(t)
	// Not a dictionary word, not English/whitelisted, not foreign-initial:
	// nothing overrides the composed Vietnamese text.
	got := Decide("xin", "xin", keytable.KeyX, true, Config{Modern: true}, dicts)
	assert.Equal(t, "xin", got)
}

func TestDecide_DisabledAlwaysKeepsVnForm(t *testing.T) {
	dicts := testDicts(t)
	got := Decide("bo", "boss", keytable.KeyB, false, Config{Modern: true}, dicts)
	assert.Equal(t, "bo", got)
}

func TestDecide_NilDictsDisablesArbiter(t *testing.T) {
	got := Decide("bo", "boss", keytable.KeyB, true, Config{Modern: true}, nil)
	assert.Equal(t, "bo", got)
}

func TestCollapsedForm(t *testing.T) {
	assert.Equal(t, "user", CollapsedForm("usser"))
	assert.Equal(t, "bos", CollapsedForm("boss")) // 's' is a trigger letter -> collapses too
	assert.Equal(t, "ad", CollapsedForm("addd"))  // 'd' is a trigger letter -> run collapses to one
	assert.Equal(t, "bok", CollapsedForm("book")) // 'o' is a trigger letter -> collapses; 'k' is not
	assert.Equal(t, "all", CollapsedForm("all"))  // 'l' not a trigger letter -> untouched
}
