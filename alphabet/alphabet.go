package alphabet

import (
	"fmt"
	"strings"
)

const (
	// AlphabetSize is the number of distinct letters a board or a
	// dictionary word may contain. We only deal with ASCII a-z.
	AlphabetSize = 26
)

// MachineLetter is a machine-only representation of a letter. It goes from
// 0 ('a') to AlphabetSize-1 ('z') and is used as an index into trie child
// arrays and histograms.
type MachineLetter uint8

// MachineWord is a slice of MachineLetter; it is a machine-only
// representation of a word.
type MachineWord []MachineLetter

// Val returns the 'value' of this rune; i.e. a number from 0 to
// AlphabetSize-1. Uppercase letters are folded to lowercase first.
func Val(r rune) (MachineLetter, error) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return 0, fmt.Errorf("letter %q not found in alphabet", r)
	}
	return MachineLetter(r - 'a'), nil
}

// Letter returns the rune that this machine letter corresponds to.
func (ml MachineLetter) Letter() rune {
	return rune('a' + ml)
}

// ToMachineWord converts a user-visible word to its machine
// representation, folding case. It fails on the first non-letter rune.
func ToMachineWord(word string) (MachineWord, error) {
	mw := make(MachineWord, 0, len(word))
	for _, r := range word {
		ml, err := Val(r)
		if err != nil {
			return nil, err
		}
		mw = append(mw, ml)
	}
	return mw, nil
}

// UserVisible converts the machine word to a lowercase string.
func (mw MachineWord) UserVisible() string {
	var sb strings.Builder
	sb.Grow(len(mw))
	for _, ml := range mw {
		sb.WriteRune(ml.Letter())
	}
	return sb.String()
}
