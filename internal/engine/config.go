package engine

// Method selects which decoder package Engine.OnKey dispatches letter (or,
// for VNI, digit) keystrokes to.
type Method int

const (
	MethodTelex Method = iota
	MethodVNI
)

// Config is the engine's mutable configuration surface, spec §4.7.
// Grounded on the teacher's EngineConfig (config.go), extended with the
// two fields spec §4.7 names that the teacher's struct predates:
// EnglishAutoRestore and AllowForeignConsonants.
type Config struct {
	Method                 Method
	Enabled                bool
	ModernTone             bool
	EnglishAutoRestore     bool
	AutoCapitalize         bool
	AllowForeignConsonants bool
}

// DefaultConfig returns the engine's default configuration: Telex,
// enabled, modern tone placement, auto-restore and auto-capitalize on,
// foreign initial consonants disallowed.
func DefaultConfig() Config {
	return Config{
		Method:                 MethodTelex,
		Enabled:                true,
		ModernTone:             true,
		EnglishAutoRestore:     true,
		AutoCapitalize:         true,
		AllowForeignConsonants: false,
	}
}

// SetMethod changes the decoder and clears the in-progress buffer, per
// spec §4.7 ("changing it clears the buffer").
func (e *Engine) SetMethod(m Method) {
	e.cfg.Method = m
	e.Clear()
}

// SetEnabled toggles whether letter keys are decoded at all.
func (e *Engine) SetEnabled(enabled bool) { e.cfg.Enabled = enabled }

// SetModernTone toggles modern vs. traditional medial-pair tone placement.
func (e *Engine) SetModernTone(modern bool) {
	e.cfg.ModernTone = modern
	e.buf.SetModern(modern)
}

// SetEnglishAutoRestore toggles the word-boundary auto-restore arbiter.
func (e *Engine) SetEnglishAutoRestore(enabled bool) { e.cfg.EnglishAutoRestore = enabled }

// SetAutoCapitalize toggles forcing caps after a sentence terminator.
func (e *Engine) SetAutoCapitalize(enabled bool) { e.cfg.AutoCapitalize = enabled }

// SetAllowForeignConsonants toggles the arbiter's foreign-initial-consonant override.
func (e *Engine) SetAllowForeignConsonants(allowed bool) { e.cfg.AllowForeignConsonants = allowed }

// Config returns the engine's current configuration.
func (e *Engine) Config() Config { return e.cfg }
