package syllable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/goviet-ime/internal/keytable"
)

func TestBuffer_AppendLetterComposesPlainText(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyX, false)
	b.AppendLetter(keytable.KeyI, false)
	b.AppendLetter(keytable.KeyN, false)
	assert.Equal(t, "xin", b.Compose())
	assert.Equal(t, "xin", b.RawString())
}

func TestBuffer_ToneMarkAppliesToRecomputedPosition(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyM, false)
	b.AppendLetter(keytable.KeyA, false)
	pos, ok := b.RightmostVowelIn(keytable.KeyA)
	require.True(t, ok)
	applied := b.SetToneMark(keytable.MarkAcute)
	assert.True(t, applied)
	assert.Equal(t, keytable.MarkAcute, b.Cells()[pos].Mark)
	assert.Equal(t, "má", b.Compose())
}

func TestBuffer_ToneMarkSelfCancelClearsButKeepsRawKeystrokes(t *testing.T) {
	// "boss": b, o, s(acute on o), s(self-cancel, no new cell, raw still
	// grows) -> vn composition "bo", raw reconstruction "boss".
	b := New(true)
	b.AppendLetter(keytable.KeyB, false)
	b.AppendLetter(keytable.KeyO, false)

	applied := b.SetToneMark(keytable.MarkAcute)
	assert.True(t, applied)
	b.PushRaw('s')
	assert.Equal(t, "bos", b.RawString())

	applied = b.SetToneMark(keytable.MarkAcute)
	assert.False(t, applied)
	b.PushRaw('s')

	assert.Equal(t, "bo", b.Compose())
	assert.Equal(t, "boss", b.RawString())
	assert.Equal(t, 2, b.Len())
}

func TestBuffer_VowelModifierDoubleLetterSelfCancel(t *testing.T) {
	// "aaa": a, a(circumflex applied), a(revert + append literal) -> "aa".
	b := New(true)
	b.AppendLetter(keytable.KeyA, false)

	pos, ok := b.RightmostVowelIn(keytable.KeyA)
	require.True(t, ok)
	applied := b.ToggleToneMod(pos, keytable.ToneModCircumflex)
	require.True(t, applied)
	b.PushRaw('a')
	assert.Equal(t, "â", b.Compose())

	pos, ok = b.RightmostVowelIn(keytable.KeyA)
	require.True(t, ok)
	applied = b.ToggleToneMod(pos, keytable.ToneModCircumflex)
	require.False(t, applied)
	_, popped := b.PopRaw()
	require.True(t, popped)
	b.AppendLetter(keytable.KeyA, false)

	assert.Equal(t, "aa", b.Compose())
}

func TestBuffer_StrokeDoubleDSelfCancel(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyD, false)

	pos, ok := b.Rightmost(keytable.KeyD)
	require.True(t, ok)
	applied := b.ToggleStroke(pos)
	require.True(t, applied)
	b.PushRaw('d')
	assert.Equal(t, "đ", b.Compose())

	pos, ok = b.Rightmost(keytable.KeyD)
	require.True(t, ok)
	applied = b.ToggleStroke(pos)
	require.False(t, applied)
	_, popped := b.PopRaw()
	require.True(t, popped)
	b.AppendLetter(keytable.KeyD, false)

	assert.Equal(t, "dd", b.Compose())
	assert.Equal(t, "dd", b.RawString())
}

func TestBuffer_QuInitialExcludesGlideFromVowels(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyQ, false)
	b.AppendLetter(keytable.KeyU, false)
	b.AppendLetter(keytable.KeyA, false)
	vowels := b.Vowels()
	require.Len(t, vowels, 1)
	assert.Equal(t, keytable.KeyA, vowels[0].Key)
}

func TestBuffer_GiInitialExcludesGlideFromVowels(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyG, false)
	b.AppendLetter(keytable.KeyI, false)
	b.AppendLetter(keytable.KeyA, false)
	vowels := b.Vowels()
	require.Len(t, vowels, 1)
	assert.Equal(t, keytable.KeyA, vowels[0].Key)
}

func TestBuffer_HasFinalConsonantAfter(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyO, false)
	b.AppendLetter(keytable.KeyA, false)
	b.AppendLetter(keytable.KeyN, false)
	assert.True(t, b.HasFinalConsonantAfter(1))
	assert.True(t, b.HasFinalConsonantAfter(0))
}

func TestBuffer_SnapshotRestore(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyM, false)
	b.AppendLetter(keytable.KeyA, false)
	b.SetToneMark(keytable.MarkAcute)
	snap := b.Snapshot()

	b.AppendLetter(keytable.KeyN, false)
	assert.Equal(t, "mán", b.Compose())

	b.Restore(snap)
	assert.Equal(t, "má", b.Compose())
}

func TestBuffer_ClearResetsEverything(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyM, false)
	b.SetToneMark(keytable.MarkAcute)
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.RawString())
	assert.Equal(t, keytable.MarkNone, b.PendingMark())
}

func TestBuffer_PopRemovesLastCell(t *testing.T) {
	b := New(true)
	b.AppendLetter(keytable.KeyM, false)
	b.AppendLetter(keytable.KeyA, false)
	cell, ok := b.Pop()
	require.True(t, ok)
	assert.Equal(t, keytable.KeyA, cell.Key)
	assert.Equal(t, "m", b.Compose())
}
