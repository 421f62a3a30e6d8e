package engine

import "github.com/username/goviet-ime/internal/syllable"

// historyCapacity bounds the ring a few entries above the buffer's own cap
// (maxBufferLen, 16 cells), since at most one history entry is pushed per
// buffer-mutating key plus one for the terminator that closes the word.
const historyCapacity = 20

// historyEntry is one snapshot pushed before a key mutates engine state:
// the buffer as it stood before the key, and the preedit text that was on
// the host's screen before the key.
//
// committedLen is only nonzero for a terminator's entry: a terminator
// moves text out of the replaceable preedit span and into the document
// proper, so undoing it can't be expressed as a diff against the
// engine's current (now-empty) preedit — the entry instead records
// exactly how many runes the terminator committed, so backspace can
// delete precisely that many before re-emitting the restored preedit.
//
// The teacher has no equivalent: its backspace handler
// (composition.go:handleBackspace) instead replays the entire raw input
// buffer through the decoder from scratch, which is O(n) per backspace.
// Spec §4.9 requires O(1) restore, so a snapshot ring replaces replay.
type historyEntry struct {
	snapshot     syllable.Snapshot
	emission     string
	committedLen int
}

// historyRing is a small bounded LIFO of historyEntry, oldest entries
// dropped silently once the cap is reached (a pathologically long
// sequence of un-terminated keys is already handled by the engine's
// buffer-overflow restart, which clears history along with the buffer).
type historyRing struct {
	entries []historyEntry
}

func newHistoryRing() *historyRing {
	return &historyRing{entries: make([]historyEntry, 0, historyCapacity)}
}

func (h *historyRing) push(e historyEntry) {
	if len(h.entries) == historyCapacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, e)
}

// pop removes and returns the most recent entry.
func (h *historyRing) pop() (historyEntry, bool) {
	if len(h.entries) == 0 {
		return historyEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// clear discards every entry, e.g. on an explicit Engine.Clear().
func (h *historyRing) clear() {
	h.entries = h.entries[:0]
}
