package trie

import (
	"github.com/rs/zerolog/log"

	"github.com/lettergrid/boggle/alphabet"
)

// Builder filters a stream of candidate words into a trie. Words longer
// than maxWordLength are rejected before insertion; a word on a board
// of side N can never be longer than N² since cells cannot repeat.
type Builder struct {
	trie          *Trie
	hist          *alphabet.Histogram
	maxWordLength int

	seen     int
	accepted int
}

// NewBuilder creates a builder targeting a fresh trie. The histogram
// should be the board's; maxWordLength should be the board's cell count.
func NewBuilder(hist *alphabet.Histogram, maxWordLength int) *Builder {
	return &Builder{
		trie:          New(),
		hist:          hist,
		maxWordLength: maxWordLength,
	}
}

// AddWord offers one candidate word to the dictionary. Case is folded;
// words containing non-letter runes are rejected the same way words
// with off-board letters are. Returns whether the word was accepted.
// A non-nil error means construction failed and the trie must not be
// searched.
func (b *Builder) AddWord(word string) (bool, error) {
	b.seen++
	if len(word) > b.maxWordLength {
		return false, nil
	}
	mw, err := alphabet.ToMachineWord(word)
	if err != nil {
		// Not spellable on any board; treat like a filter rejection.
		return false, nil
	}
	added, err := b.trie.Insert(mw, b.hist)
	if err != nil {
		return false, err
	}
	if added {
		b.accepted++
	}
	return added, nil
}

// Trie returns the trie built so far.
func (b *Builder) Trie() *Trie {
	return b.trie
}

// Accepted returns how many words passed the filters. This is a
// diagnostic count; the search does not use it.
func (b *Builder) Accepted() int {
	return b.accepted
}

// Seen returns how many candidate words were offered.
func (b *Builder) Seen() int {
	return b.seen
}

// LogStats emits the filtered dictionary size.
func (b *Builder) LogStats() {
	log.Debug().
		Int("seen", b.seen).
		Int("accepted", b.accepted).
		Int("nodes", b.trie.AllocCalls()).
		Msg("filtered dictionary")
}
