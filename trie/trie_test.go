package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lettergrid/boggle/alphabet"
)

func mustWord(t *testing.T, s string) alphabet.MachineWord {
	t.Helper()
	mw, err := alphabet.ToMachineWord(s)
	assert.NoError(t, err)
	return mw
}

func boardHistogram(t *testing.T, letters string) *alphabet.Histogram {
	t.Helper()
	return alphabet.HistogramOf(mustWord(t, letters))
}

func TestInsertAndHasWord(t *testing.T) {
	hist := boardHistogram(t, "abcd")
	tr := New()
	defer tr.Destroy()

	for _, w := range []string{"ab", "ad", "ac", "abc"} {
		added, err := tr.Insert(mustWord(t, w), hist)
		assert.NoError(t, err)
		assert.True(t, added, "expected %s to be accepted", w)
	}
	for _, w := range []string{"ab", "ad", "ac", "abc"} {
		assert.True(t, tr.HasWord(mustWord(t, w)))
	}
	// Prefixes that are not themselves words are not word ends.
	assert.False(t, tr.HasWord(mustWord(t, "a")))
	assert.False(t, tr.HasWord(mustWord(t, "abcd")))
}

func TestInsertRejectsOffBoardLetters(t *testing.T) {
	hist := boardHistogram(t, "abcd")
	tr := New()
	defer tr.Destroy()

	// No 'z' on the board: rejected at the first 'z', consuming zero
	// allocations beyond any shared prefix.
	before := tr.AllocCalls()
	added, err := tr.Insert(mustWord(t, "zoo"), hist)
	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, before, tr.AllocCalls())

	// A shared accepted prefix survives a later rejection.
	added, err = tr.Insert(mustWord(t, "ab"), hist)
	assert.NoError(t, err)
	assert.True(t, added)
	added, err = tr.Insert(mustWord(t, "abz"), hist)
	assert.NoError(t, err)
	assert.False(t, added)
	assert.True(t, tr.HasWord(mustWord(t, "ab")))
	assert.False(t, tr.HasWord(mustWord(t, "abz")))
}

func TestRejectionKeepsPartialPrefixUnmarked(t *testing.T) {
	hist := boardHistogram(t, "abcd")
	tr := New()
	defer tr.Destroy()

	// "abz" allocates nodes for a and b before hitting z, but neither
	// may be a word end.
	added, err := tr.Insert(mustWord(t, "abz"), hist)
	assert.NoError(t, err)
	assert.False(t, added)
	assert.False(t, tr.HasWord(mustWord(t, "a")))
	assert.False(t, tr.HasWord(mustWord(t, "ab")))
}

func TestEmptyWordNeverAccepted(t *testing.T) {
	hist := boardHistogram(t, "abcd")
	tr := New()
	defer tr.Destroy()

	added, err := tr.Insert(alphabet.MachineWord{}, hist)
	assert.NoError(t, err)
	assert.False(t, added)
	assert.False(t, tr.Root().IsWord())
}

func TestAllocFreeParity(t *testing.T) {
	hist := boardHistogram(t, "abcd")

	// Zero words.
	tr := New()
	tr.Destroy()
	assert.Equal(t, 1, tr.AllocCalls())
	assert.Equal(t, tr.AllocCalls(), tr.FreeCalls())

	// A few words with shared prefixes.
	tr = New()
	for _, w := range []string{"ab", "abc", "ad", "dcba"} {
		_, err := tr.Insert(mustWord(t, w), hist)
		assert.NoError(t, err)
	}
	tr.Destroy()
	assert.Equal(t, tr.AllocCalls(), tr.FreeCalls())
	assert.Nil(t, tr.Root())
}

func TestDestroyIdempotent(t *testing.T) {
	tr := New()
	tr.Destroy()
	tr.Destroy()
	assert.Equal(t, tr.AllocCalls(), tr.FreeCalls())

	_, err := tr.Insert(alphabet.MachineWord{0}, alphabet.HistogramOf(alphabet.MachineWord{0}))
	assert.ErrorIs(t, err, ErrDestroyed)
}

func TestNodeLimit(t *testing.T) {
	hist := boardHistogram(t, "abcd")
	tr := New()
	defer tr.Destroy()
	tr.SetNodeLimit(2) // root plus one

	added, err := tr.Insert(mustWord(t, "abc"), hist)
	assert.ErrorIs(t, err, ErrNodeLimit)
	assert.False(t, added)
}

func TestBuilderMaxWordLength(t *testing.T) {
	hist := boardHistogram(t, "abcd")
	bld := NewBuilder(hist, 4)
	defer bld.Trie().Destroy()

	// Longer than the board's cell count: always rejected, letters
	// notwithstanding.
	added, err := bld.AddWord("abcda")
	assert.NoError(t, err)
	assert.False(t, added)

	added, err = bld.AddWord("abcd")
	assert.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, 2, bld.Seen())
	assert.Equal(t, 1, bld.Accepted())
}

func TestBuilderSkipsNonLetterWords(t *testing.T) {
	hist := boardHistogram(t, "abcd")
	bld := NewBuilder(hist, 4)
	defer bld.Trie().Destroy()

	added, err := bld.AddWord("a-b")
	assert.NoError(t, err)
	assert.False(t, added)

	added, err = bld.AddWord("AB")
	assert.NoError(t, err)
	assert.True(t, added)
	assert.True(t, bld.Trie().HasWord(mustWord(t, "ab")))
}
