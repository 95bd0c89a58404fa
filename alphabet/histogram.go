package alphabet

// Histogram counts how many times each letter appears on a game board.
// It is used during dictionary construction to cheaply discard words
// containing letters the board does not have at all.
type Histogram struct {
	counts [AlphabetSize]int
	total  int
}

// HistogramOf builds a histogram from a sequence of machine letters,
// typically a board's flattened squares.
func HistogramOf(letters MachineWord) *Histogram {
	h := &Histogram{}
	for _, ml := range letters {
		h.counts[ml]++
		h.total++
	}
	return h
}

// Count returns the number of occurrences of the given letter.
func (h *Histogram) Count(ml MachineLetter) int {
	return h.counts[ml]
}

// Total returns the sum of all counts; for a board of side N this is N².
func (h *Histogram) Total() int {
	return h.total
}
