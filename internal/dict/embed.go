package dict

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed testdata/vi_modern.dic testdata/vi_traditional.dic testdata/english.dict testdata/telex_doubles.txt
var seedFS embed.FS

var (
	defaultOnce sync.Once
	defaultSet  *Defaults
	defaultErr  error
)

// Defaults bundles the four frozen corpora the arbiter consults: the two
// Vietnamese orthographies, English, and the Telex-doubles whitelist
// (spec §4.7/§9 open question (b) — kept as two distinct sets, never
// merged).
type Defaults struct {
	VNModern      *Dictionary
	VNTraditional *Dictionary
	English       *Dictionary
	TelexDoubles  *Dictionary
}

// LoadDefaults parses the embedded seed corpora exactly once (idiomatic
// Go analogue of the original's std::sync::LazyLock one-shot
// initialization) and caches the result for the process's lifetime.
func LoadDefaults() (*Defaults, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = loadDefaults()
	})
	return defaultSet, defaultErr
}

func loadDefaults() (*Defaults, error) {
	vnModern, err := loadEmbedded("testdata/vi_modern.dic")
	if err != nil {
		return nil, fmt.Errorf("dict: loading vi_modern.dic: %w", err)
	}
	vnTraditional, err := loadEmbedded("testdata/vi_traditional.dic")
	if err != nil {
		return nil, fmt.Errorf("dict: loading vi_traditional.dic: %w", err)
	}
	english, err := loadEmbedded("testdata/english.dict")
	if err != nil {
		return nil, fmt.Errorf("dict: loading english.dict: %w", err)
	}
	telexDoubles, err := loadEmbedded("testdata/telex_doubles.txt")
	if err != nil {
		return nil, fmt.Errorf("dict: loading telex_doubles.txt: %w", err)
	}
	return &Defaults{
		VNModern:      vnModern,
		VNTraditional: vnTraditional,
		English:       english,
		TelexDoubles:  telexDoubles,
	}, nil
}

func loadEmbedded(name string) (*Dictionary, error) {
	f, err := seedFS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
