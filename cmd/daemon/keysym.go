package main

import (
	"github.com/username/goviet-ime/internal/keytable"
)

// X11 keysym values the Fcitx5 bridge forwards verbatim. Only the subset the
// core cares about is named; everything else falls through to keytable.KeyUnknown
// and is passed through untouched.
const (
	keysymBackSpace  = 0xff08
	keysymTab        = 0xff09
	keysymReturn     = 0xff0d
	keysymEscape     = 0xff1b
	keysymDelete     = 0xffff
	keysymLeft       = 0xff51
	keysymUp         = 0xff52
	keysymRight      = 0xff53
	keysymDown       = 0xff54
	keysymSpace      = 0x0020
	keysymComma      = 0x002c
	keysymPeriod     = 0x002e
	keysymSlash      = 0x002f
	keysymSemicolon  = 0x003b
	keysymApostrophe = 0x0027
	keysymBracketL   = 0x005b
	keysymBracketR   = 0x005d
	keysymBackslash  = 0x005c
	keysymMinus      = 0x002d
	keysymEqual      = 0x003d
	keysymGrave      = 0x0060
)

// X11 modifier bitmasks, as reported in the Fcitx5 bridge's modifiers word.
const (
	ModShift   uint32 = 1 << 0
	ModLock    uint32 = 1 << 1
	ModControl uint32 = 1 << 2
	ModMod1    uint32 = 1 << 3
)

var specialKeysyms = map[uint32]keytable.Key{
	keysymBackSpace:  keytable.KeyBackspace,
	keysymTab:        keytable.KeyTab,
	keysymReturn:     keytable.KeyReturn,
	keysymEscape:     keytable.KeyEscape,
	keysymDelete:     keytable.KeyDelete,
	keysymLeft:       keytable.KeyLeft,
	keysymUp:         keytable.KeyUp,
	keysymRight:      keytable.KeyRight,
	keysymDown:       keytable.KeyDown,
	keysymSpace:      keytable.KeySpace,
	keysymComma:      keytable.KeyComma,
	keysymPeriod:     keytable.KeyDot,
	keysymSlash:      keytable.KeySlash,
	keysymSemicolon:  keytable.KeySemicolon,
	keysymApostrophe: keytable.KeyQuote,
	keysymBracketL:   keytable.KeyLBracket,
	keysymBracketR:   keytable.KeyRBracket,
	keysymBackslash:  keytable.KeyBackslash,
	keysymMinus:      keytable.KeyMinus,
	keysymEqual:      keytable.KeyEqual,
	keysymGrave:      keytable.KeyBackquote,
}

var digitKeysyms = map[uint32]keytable.Key{
	0x0030: keytable.Key0, 0x0031: keytable.Key1, 0x0032: keytable.Key2,
	0x0033: keytable.Key3, 0x0034: keytable.Key4, 0x0035: keytable.Key5,
	0x0036: keytable.Key6, 0x0037: keytable.Key7, 0x0038: keytable.Key8,
	0x0039: keytable.Key9,
}

// translateKeysym maps an X11 keysym and its modifier word onto the core's
// own keycode space, plus the caps/ctrl/shift bits Engine.OnKey expects.
func translateKeysym(keysym, modifiers uint32) (key keytable.Key, caps, ctrl, shift bool) {
	ctrl = modifiers&ModControl != 0
	shift = modifiers&ModShift != 0
	lock := modifiers&ModLock != 0

	if k, ok := specialKeysyms[keysym]; ok {
		return k, false, ctrl, shift
	}
	if k, ok := digitKeysyms[keysym]; ok {
		return k, false, ctrl, shift
	}
	// Uppercase ASCII keysyms (0x41-0x5a) are what X11 sends when Shift or
	// Caps Lock is held; lowercase (0x61-0x7a) otherwise. Either way the
	// core only wants the letter identity plus a caps bit.
	switch {
	case keysym >= 0x41 && keysym <= 0x5a:
		k, _ := keytable.KeyFromRune(rune(keysym) + ('a' - 'A'))
		return k, true, ctrl, shift
	case keysym >= 0x61 && keysym <= 0x7a:
		k, _ := keytable.KeyFromRune(rune(keysym))
		return k, shift != lock, ctrl, shift
	}
	return keytable.KeyUnknown, false, ctrl, shift
}
