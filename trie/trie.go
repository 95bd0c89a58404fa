// Package trie implements the dictionary structure used by the word
// finder: a 26-ary prefix tree with per-letter child arrays, built from
// a stream of candidate words and pruned against the board's letter
// histogram.
package trie

import (
	"errors"

	"github.com/lettergrid/boggle/alphabet"
)

var (
	// ErrNodeLimit is returned when trie construction runs out of its
	// node budget. This is distinct from a word being rejected by the
	// histogram or length filters, which is a silent, expected outcome.
	ErrNodeLimit = errors.New("trie: node limit exceeded")
	// ErrDestroyed is returned when a destroyed trie is used.
	ErrDestroyed = errors.New("trie: already destroyed")
)

// Node is one letter position in some dictionary word. Traversal is by
// alphabet index; the letter field exists for diagnostics only.
type Node struct {
	children [alphabet.AlphabetSize]*Node
	letter   rune
	isWord   bool
}

// Child returns the child node for the given letter index, or nil if no
// accepted word or prefix uses that letter at this position. O(1).
func (n *Node) Child(ml alphabet.MachineLetter) *Node {
	return n.children[ml]
}

// IsWord returns true if the path from the root to this node spells a
// complete dictionary word.
func (n *Node) IsWord() bool {
	return n.isWord
}

// Letter returns the letter this node represents. The root returns 0.
func (n *Node) Letter() rune {
	return n.letter
}

// Trie owns all of its nodes outright; destroying the trie releases
// every node exactly once, root included.
type Trie struct {
	root *Node

	// These two should be exactly equal after Destroy. The Go runtime
	// frees the nodes for us, but the parity is kept as a sanity check
	// on the construction and teardown walks.
	allocCalls int
	freeCalls  int

	// nodeLimit caps allocations during construction; 0 means no cap.
	nodeLimit int
}

// New creates an empty trie with just the root node. The root is a
// sentinel: it carries no letter and may never be marked as a word end.
func New() *Trie {
	t := &Trie{}
	t.root = t.allocNode(0)
	return t
}

// SetNodeLimit caps the number of nodes the trie may allocate, root
// included. Exceeding it during an insert aborts the build with
// ErrNodeLimit.
func (t *Trie) SetNodeLimit(n int) {
	t.nodeLimit = n
}

func (t *Trie) allocNode(letter rune) *Node {
	t.allocCalls++
	return &Node{letter: letter}
}

// Root returns the root node, or nil after Destroy.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert walks the word's letters down from the root, creating child
// nodes as needed, and marks the final node as a word end. Before
// following or creating the child for a letter, the histogram is
// consulted: if the board contains zero occurrences of that letter the
// word cannot possibly be spelled, and the insert is abandoned without
// allocating anything further. Nodes already created for a shared
// prefix remain; another accepted word needs them.
//
// Returns whether the word was accepted. An empty word is never
// accepted, since the root must never be a word end.
func (t *Trie) Insert(word alphabet.MachineWord, hist *alphabet.Histogram) (bool, error) {
	if t.root == nil {
		return false, ErrDestroyed
	}
	if len(word) == 0 {
		return false, nil
	}
	curNode := t.root
	for _, ml := range word {
		if hist.Count(ml) == 0 {
			return false, nil
		}
		if curNode.children[ml] == nil {
			if t.nodeLimit > 0 && t.allocCalls >= t.nodeLimit {
				return false, ErrNodeLimit
			}
			curNode.children[ml] = t.allocNode(ml.Letter())
		}
		curNode = curNode.children[ml]
	}
	curNode.isWord = true
	return true, nil
}

// HasWord walks the trie along the word's letters and reports whether
// the walk ends on a word-end node. Used by diagnostics and tests; the
// search engine walks node by node instead.
func (t *Trie) HasWord(word alphabet.MachineWord) bool {
	if t.root == nil || len(word) == 0 {
		return false
	}
	curNode := t.root
	for _, ml := range word {
		curNode = curNode.children[ml]
		if curNode == nil {
			return false
		}
	}
	return curNode.isWord
}

// Destroy releases every node exactly once, recursively, root included.
// After Destroy the trie is empty; further use returns ErrDestroyed.
func (t *Trie) Destroy() {
	if t.root == nil {
		return
	}
	t.freeNode(t.root)
	t.root = nil
}

func (t *Trie) freeNode(n *Node) {
	for i := range n.children {
		if n.children[i] != nil {
			t.freeNode(n.children[i])
			n.children[i] = nil
		}
	}
	t.freeCalls++
}

// AllocCalls returns the number of node allocations made so far.
func (t *Trie) AllocCalls() int {
	return t.allocCalls
}

// FreeCalls returns the number of nodes released by Destroy.
func (t *Trie) FreeCalls() int {
	return t.freeCalls
}
