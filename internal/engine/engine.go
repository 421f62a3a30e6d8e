// Package engine wires the decoders, the syllable buffer, and the
// auto-restore arbiter behind the single hot-path entry point a host
// calls once per key event (spec §4.9).
package engine

import (
	"github.com/username/goviet-ime/internal/arbiter"
	"github.com/username/goviet-ime/internal/dict"
	"github.com/username/goviet-ime/internal/keytable"
	"github.com/username/goviet-ime/internal/syllable"
	"github.com/username/goviet-ime/internal/telex"
	"github.com/username/goviet-ime/internal/vni"
)

// maxBufferLen bounds the in-progress syllable, spec §3 ("≤ ~16").
const maxBufferLen = 16

// Action is what the host should do with a Result.
type Action int

const (
	ActionPass Action = iota
	ActionSend
)

// Flag bits for Result.Flags.
const (
	// FlagKeyConsumed is set when the key's own character has already been
	// folded into Chars and the host must not separately insert it (a
	// terminator's punctuation/space/tab/newline, or ESC's revert).
	FlagKeyConsumed uint8 = 1 << iota
)

// Result is the engine's answer to one OnKey call, spec §4.9.
type Result struct {
	Action    Action
	Backspace uint8
	Chars     []rune
	Flags     uint8
}

func passResult() Result { return Result{Action: ActionPass} }

// Engine owns one in-progress syllable buffer, its history ring, and the
// engine's configuration. Grounded on the teacher's CompositionEngine
// (composition.go), rewired from ProcessKey's Handled/CommitText/Preedit
// triple to the diff-based Result{Action, Backspace, Chars, Flags}
// protocol original_source/core/src/utils.rs's test harness exercises
// (Action::Send / backspace / chars / key_consumed()).
type Engine struct {
	cfg               Config
	buf               *syllable.Buffer
	history           *historyRing
	lastEmission      string
	pendingCapitalize bool
}

// New returns an engine with default configuration.
func New() *Engine { return NewWithConfig(DefaultConfig()) }

// NewWithConfig returns an engine with the given configuration.
func NewWithConfig(cfg Config) *Engine {
	return &Engine{
		cfg:     cfg,
		buf:     syllable.New(cfg.ModernTone),
		history: newHistoryRing(),
	}
}

// Clear resets the buffer, history, and pending-capitalize state, per
// spec §6's `clear()` configuration call.
func (e *Engine) Clear() {
	e.buf.Clear()
	e.history.clear()
	e.lastEmission = ""
	e.pendingCapitalize = false
}

// OnKey is the engine's sole hot-path entry point, spec §4.9.
func (e *Engine) OnKey(key keytable.Key, caps, ctrl, shift bool) Result {
	if !e.cfg.Enabled {
		return passResult()
	}
	if ctrl {
		// A chord commits whatever is pending and lets the host's own
		// Ctrl-combo handling take the key, mirroring the teacher's
		// ModControl/ModMod1 early-commit branch in ProcessKey.
		return e.commitPending()
	}
	if key == keytable.KeyBackspace {
		return e.handleBackspace()
	}
	if key == keytable.KeyDelete {
		return passResult()
	}
	if keytable.IsWordBreak(key, shift) {
		return e.handleTerminator(key)
	}
	if !keytable.IsLetterKey(key) && !keytable.IsDigitKey(key) {
		return passResult()
	}
	return e.handleLetterOrDigit(key, caps)
}

// commitPending flushes any in-progress syllable to its raw form without
// consulting the arbiter (a Ctrl chord is not a word boundary the
// dictionary model has any opinion about) and clears engine state.
func (e *Engine) commitPending() Result {
	if e.buf.Len() == 0 {
		return passResult()
	}
	E0 := e.lastEmission
	raw := e.buf.RawString()
	e.Clear()
	return e.diff(E0, raw)
}

func (e *Engine) handleLetterOrDigit(key keytable.Key, caps bool) Result {
	if e.cfg.AutoCapitalize && e.pendingCapitalize && keytable.IsLetterKey(key) {
		caps = true
		e.pendingCapitalize = false
	}

	if e.buf.Len() >= maxBufferLen {
		return e.handleOverflow(key, caps)
	}

	E0 := e.lastEmission
	snapBefore := e.buf.Snapshot()

	consumed := e.applyToBuffer(key, caps)
	if !consumed {
		return passResult()
	}

	e.history.push(historyEntry{snapshot: snapBefore, emission: E0})
	E1 := e.buf.Compose()
	return e.commit(E0, E1)
}

// applyToBuffer dispatches one letter/digit key to the configured
// decoder. Telex ignores digits outright (they carry no Telex meaning);
// VNI letters always append literally since VNI's modifiers are all
// digits, never letters.
func (e *Engine) applyToBuffer(key keytable.Key, caps bool) bool {
	switch e.cfg.Method {
	case MethodVNI:
		if keytable.IsDigitKey(key) {
			return vni.ApplyKey(e.buf, key, caps)
		}
		e.buf.AppendLetter(key, caps)
		return true
	default:
		if keytable.IsDigitKey(key) {
			return false
		}
		telex.ApplyKey(e.buf, key, caps)
		return true
	}
}

// handleOverflow implements spec §7's buffer-overflow error kind:
// "behave as if a terminator arrived, then restart with the overflowing
// key." Both the closing-word rewrite and the new word's first letter
// collapse into a single diff from the pre-overflow emission, since
// OnKey can only return one Result.
func (e *Engine) handleOverflow(key keytable.Key, caps bool) Result {
	E0 := e.lastEmission
	chosen := e.decideClosingWord()
	e.buf.Clear()
	e.history.clear() // the restarted word has no pre-overflow undo history
	e.applyToBuffer(key, caps)

	// chosen is now committed, just like a terminator's pick; only the
	// freshly-started buffer remains active preedit.
	newPart := e.buf.Compose()
	res := e.diff(E0, chosen+newPart)
	e.lastEmission = newPart
	return res
}

// handleTerminator closes the current syllable: the arbiter picks the
// final form, it's applied via the diff protocol, and the terminator's
// own character (if any) is folded in or left for the host to pass.
//
// Once chosen text leaves the buffer it is committed to the document and
// is no longer part of the replaceable preedit span, so lastEmission
// resets to "" afterward — the next key's diff must never try to rewrite
// already-committed text. Undoing the terminator itself is handled
// separately by historyEntry.committedLen (see history.go), not by the
// ordinary lastEmission diff path handleBackspace otherwise uses.
func (e *Engine) handleTerminator(key keytable.Key) Result {
	E0 := e.lastEmission

	var chosen string
	if key == keytable.KeyEscape {
		// ESC is a semantic revert-to-raw (§4.8 step 4, §5 "Cancellation"):
		// it bypasses the arbiter entirely and reverts to what the user
		// physically typed.
		chosen = e.buf.RawString()
	} else {
		chosen = e.decideClosingWord()
	}

	var E1 string
	var flags uint8
	switch {
	case key == keytable.KeyEscape:
		E1 = chosen
		flags = FlagKeyConsumed
	case keytable.IsNavigationBreak(key):
		// Arrow keys: the chosen rewrite (if any) is emitted, and the key
		// itself is still passed through for the host's own cursor
		// movement — our Action field only governs text, not focus.
		E1 = chosen
	default:
		E1 = chosen + string(terminatorRune(key))
		flags = FlagKeyConsumed
	}

	// Push a history entry *before* clearing so the terminator itself is
	// undoable (spec I5 / P7): its top entry restores the pre-terminator
	// buffer and emission.
	e.history.push(historyEntry{
		snapshot:     e.buf.Snapshot(),
		emission:     E0,
		committedLen: len([]rune(E1)),
	})
	e.buf.Clear()
	e.updatePendingCapitalize(key)

	res := e.diff(E0, E1)
	res.Flags |= flags
	e.lastEmission = ""
	return res
}

// decideClosingWord runs the auto-restore arbiter (spec §4.8) over the
// buffer as it currently stands, without mutating it.
func (e *Engine) decideClosingWord() string {
	if e.buf.Len() == 0 {
		return ""
	}
	vnForm := e.buf.Compose()
	rawForm := e.buf.RawString()

	enabled := e.cfg.EnglishAutoRestore
	var dicts *dict.Defaults
	if enabled {
		d, err := dict.LoadDefaults()
		if err != nil {
			enabled = false
		} else {
			dicts = d
		}
	}

	firstKey := keytable.KeyUnknown
	if raw := e.buf.RawLog(); len(raw) > 0 {
		if k, ok := keytable.KeyFromRune(lowerRune(raw[0])); ok {
			firstKey = k
		}
	}

	return arbiter.Decide(vnForm, rawForm, firstKey, enabled, arbiter.Config{
		Modern:                 e.cfg.ModernTone,
		AllowForeignConsonants: e.cfg.AllowForeignConsonants,
	}, dicts)
}

// updatePendingCapitalize implements spec §4.7's auto_capitalize: after a
// sentence-ending "." followed by a space, the next letter is forced to
// caps. Any other terminator clears the pending flag.
func (e *Engine) updatePendingCapitalize(key keytable.Key) {
	if !e.cfg.AutoCapitalize {
		return
	}
	switch key {
	case keytable.KeyDot:
		e.pendingCapitalize = true
	case keytable.KeySpace:
		// leave pendingCapitalize as-is: ". " is two terminator keys and
		// the flag must survive the space to reach the next letter.
	default:
		e.pendingCapitalize = false
	}
}

// handleBackspace consults the history ring (spec §4.9): popping the top
// entry restores the buffer snapshot and emits the inverse rewrite.
// With nothing to pop, the host performs a normal delete.
func (e *Engine) handleBackspace() Result {
	entry, ok := e.history.pop()
	if !ok {
		return passResult()
	}
	e.buf.Restore(entry.snapshot)

	if entry.committedLen > 0 {
		// Undoing a terminator: the committed text sits outside the
		// preedit span lastEmission tracks, so the delete count comes
		// from the entry itself rather than a diff against lastEmission.
		e.lastEmission = entry.emission
		return Result{
			Action:    ActionSend,
			Backspace: uint8(entry.committedLen),
			Chars:     []rune(entry.emission),
		}
	}

	current := e.lastEmission
	return e.commit(current, entry.emission)
}

// commit runs the diff protocol and records E1 as the new on-screen text.
func (e *Engine) commit(E0, E1 string) Result {
	res := e.diff(E0, E1)
	e.lastEmission = E1
	return res
}

// diff implements spec §4.6 step 6: longest-common-prefix between the
// previous and new emission, backspacing the tail of the old one and
// sending the tail of the new one.
func (e *Engine) diff(E0, E1 string) Result {
	if E0 == E1 {
		return Result{Action: ActionPass}
	}
	old := []rune(E0)
	next := []rune(E1)
	p := 0
	for p < len(old) && p < len(next) && old[p] == next[p] {
		p++
	}
	backspace := len(old) - p
	chars := next[p:]

	return Result{
		Action:    ActionSend,
		Backspace: uint8(backspace),
		Chars:     chars,
	}
}

func terminatorRune(key keytable.Key) rune {
	switch key {
	case keytable.KeySpace:
		return ' '
	case keytable.KeyTab:
		return '\t'
	case keytable.KeyReturn, keytable.KeyEnter:
		return '\n'
	case keytable.KeyDot:
		return '.'
	case keytable.KeyComma:
		return ','
	case keytable.KeySlash:
		return '/'
	case keytable.KeySemicolon:
		return ';'
	case keytable.KeyQuote:
		return '\''
	case keytable.KeyLBracket:
		return '['
	case keytable.KeyRBracket:
		return ']'
	case keytable.KeyBackslash:
		return '\\'
	case keytable.KeyMinus:
		return '-'
	case keytable.KeyEqual:
		return '='
	case keytable.KeyBackquote:
		return '`'
	}
	return 0
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
