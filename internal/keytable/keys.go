// Package keytable defines the core's physical keycode space and the
// character classification predicates the rest of the engine is built on.
//
// The core does not interpret OS scancodes: a host translates whatever
// platform keycode it receives into the Key constants below before calling
// into the engine (see cmd/daemon, which maps X11 keysyms).
package keytable

// Key is a symbolic keycode in the core's own keycode space.
type Key uint16

// Letter keys, independent of case.
const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Digit keys, used by the VNI decoder for tone/vowel modifiers.
const (
	Key0 Key = iota + 100
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Special and punctuation keys.
const (
	KeySpace Key = iota + 200
	KeyTab
	KeyReturn
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyDot
	KeyComma
	KeySlash
	KeySemicolon
	KeyQuote
	KeyLBracket
	KeyRBracket
	KeyBackslash
	KeyMinus
	KeyEqual
	KeyBackquote

	KeyUnknown
)

var letterRunes = [...]rune{
	KeyA: 'a', KeyB: 'b', KeyC: 'c', KeyD: 'd', KeyE: 'e',
	KeyF: 'f', KeyG: 'g', KeyH: 'h', KeyI: 'i', KeyJ: 'j',
	KeyK: 'k', KeyL: 'l', KeyM: 'm', KeyN: 'n', KeyO: 'o',
	KeyP: 'p', KeyQ: 'q', KeyR: 'r', KeyS: 's', KeyT: 't',
	KeyU: 'u', KeyV: 'v', KeyW: 'w', KeyX: 'x', KeyY: 'y', KeyZ: 'z',
}

// Rune returns the lowercase Latin letter this key represents, or 0 if the
// key is not a letter key.
func (k Key) Rune() rune {
	if int(k) < len(letterRunes) {
		return letterRunes[k]
	}
	return 0
}

// KeyFromRune maps a lowercase ASCII letter to its Key constant. ok is false
// for anything that isn't a Telex/VNI letter key.
func KeyFromRune(r rune) (Key, bool) {
	switch r {
	case 'a':
		return KeyA, true
	case 'b':
		return KeyB, true
	case 'c':
		return KeyC, true
	case 'd':
		return KeyD, true
	case 'e':
		return KeyE, true
	case 'f':
		return KeyF, true
	case 'g':
		return KeyG, true
	case 'h':
		return KeyH, true
	case 'i':
		return KeyI, true
	case 'j':
		return KeyJ, true
	case 'k':
		return KeyK, true
	case 'l':
		return KeyL, true
	case 'm':
		return KeyM, true
	case 'n':
		return KeyN, true
	case 'o':
		return KeyO, true
	case 'p':
		return KeyP, true
	case 'q':
		return KeyQ, true
	case 'r':
		return KeyR, true
	case 's':
		return KeyS, true
	case 't':
		return KeyT, true
	case 'u':
		return KeyU, true
	case 'v':
		return KeyV, true
	case 'w':
		return KeyW, true
	case 'x':
		return KeyX, true
	case 'y':
		return KeyY, true
	case 'z':
		return KeyZ, true
	}
	return KeyUnknown, false
}

// IsVowelKey reports whether k is one of the six plain Vietnamese vowel
// letters (a, e, i, o, u, y).
func IsVowelKey(k Key) bool {
	switch k {
	case KeyA, KeyE, KeyI, KeyO, KeyU, KeyY:
		return true
	}
	return false
}

// IsLetterKey reports whether k is any Telex letter key a-z.
func IsLetterKey(k Key) bool {
	return k <= KeyZ
}

// IsConsonantKey reports whether k is a letter key that is not a vowel.
func IsConsonantKey(k Key) bool {
	return IsLetterKey(k) && !IsVowelKey(k)
}

// IsDigitKey reports whether k is a digit key 0-9.
func IsDigitKey(k Key) bool {
	return k >= Key0 && k <= Key9
}

// IsForeignInitial reports whether k is one of the initial-consonant
// letters (z, w, j, f) that do not occur in native Vietnamese spelling.
// Used by the auto-restore arbiter's allow_foreign_consonants check
// (spec §4.7, §4.8 rule (d)).
func IsForeignInitial(k Key) bool {
	switch k {
	case KeyZ, KeyW, KeyJ, KeyF:
		return true
	}
	return false
}

// IsWordBreak reports whether k closes the current syllable: space,
// punctuation, tab, return, arrows, or ESC. shift is accepted for
// consistency with hosts that report shifted punctuation distinctly, but
// no symbol currently depends on it.
func IsWordBreak(k Key, shift bool) bool {
	switch k {
	case KeySpace, KeyTab, KeyReturn, KeyEnter, KeyEscape,
		KeyLeft, KeyRight, KeyUp, KeyDown,
		KeyDot, KeyComma, KeySlash, KeySemicolon, KeyQuote,
		KeyLBracket, KeyRBracket, KeyBackslash, KeyMinus, KeyEqual, KeyBackquote:
		return true
	}
	return false
}

// IsNavigationBreak reports whether k is a word-break key whose own
// character is never inserted by the engine (arrows, ESC) — as opposed to
// a break key whose character the host still appends (space, punctuation).
func IsNavigationBreak(k Key) bool {
	switch k {
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyEscape:
		return true
	}
	return false
}
