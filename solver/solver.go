// Package solver contains the board-walking search. It makes heavy use
// of the dictionary trie: the recursive search walks the board's
// adjacency graph and the trie in lockstep, so any path that is not a
// prefix of some accepted word is cut off immediately.
package solver

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lettergrid/boggle/alphabet"
	"github.com/lettergrid/boggle/board"
	"github.com/lettergrid/boggle/trie"
)

// Finding is one reported occurrence of a dictionary word traced as a
// connected, non-repeating path on the board. Row and Col are the
// coordinates of the cell where the word's first letter was placed.
// Findings are not deduplicated: the same word reachable via several
// paths is reported once per origin/path.
type Finding struct {
	Word string
	Row  int
	Col  int
}

func (f Finding) String() string {
	return fmt.Sprintf("%s (%d,%d)", f.Word, f.Row, f.Col)
}

// FindingRecorder is called for every word found, in discovery order.
type FindingRecorder func(s *Solver, word alphabet.MachineWord, row int, col int)

// AllFindingsRecorder accumulates every finding on the solver.
func AllFindingsRecorder(s *Solver, word alphabet.MachineWord, row int, col int) {
	s.findings = append(s.findings, Finding{
		Word: word.UserVisible(),
		Row:  row,
		Col:  col,
	})
}

// NullFindingRecorder drops findings. Useful for benchmarks.
func NullFindingRecorder(s *Solver, word alphabet.MachineWord, row int, col int) {
}

// Solver owns the mutable search state: a visited flag per board cell
// and the buffer holding the word currently being spelled. The board
// and the trie are only ever read. A Solver must not be shared between
// goroutines; for that, each goroutine needs its own Solver over the
// same (read-only) board and trie.
type Solver struct {
	board *board.GameBoard
	dict  *trie.Trie

	used     []bool
	letters  []alphabet.MachineLetter
	recorder FindingRecorder
	findings []Finding

	// Origin of the search currently in progress, recorded when the
	// outer loop seeds a starting cell.
	originRow int
	originCol int
}

// NewSolver creates a solver over a board and a built dictionary trie.
func NewSolver(b *board.GameBoard, dict *trie.Trie) *Solver {
	n := b.Dim()
	return &Solver{
		board:    b,
		dict:     dict,
		used:     make([]bool, n*n),
		letters:  make([]alphabet.MachineLetter, n*n),
		recorder: AllFindingsRecorder,
	}
}

// SetRecorder replaces the finding recorder. The default accumulates
// findings on the solver, retrievable via Findings.
func (s *Solver) SetRecorder(rec FindingRecorder) {
	s.recorder = rec
}

// Findings returns the findings accumulated by AllFindingsRecorder, in
// emission order.
func (s *Solver) Findings() []Finding {
	return s.findings
}

func (s *Solver) markUsed(row int, col int, stringIndex int, ml alphabet.MachineLetter) {
	idx := s.board.Dim()*row + col
	if s.used[idx] {
		panic(fmt.Sprintf("solver: cell (%d,%d) already in use", row, col))
	}
	s.used[idx] = true
	s.letters[stringIndex] = ml
}

func (s *Solver) markUnused(row int, col int, stringIndex int) {
	idx := s.board.Dim()*row + col
	if !s.used[idx] {
		panic(fmt.Sprintf("solver: cell (%d,%d) was not in use", row, col))
	}
	s.used[idx] = false
	s.letters[stringIndex] = 0
}

// Solve visits every starting cell in row-major order and explores all
// adjacency paths that the trie keeps alive. Findings are emitted to
// the recorder incrementally, in a deterministic order: row-major over
// starting cells, then depth-first over the neighbor scan order of the
// board. Two runs over the same board and trie produce identical
// sequences.
func (s *Solver) Solve() error {
	root := s.dict.Root()
	if root == nil {
		return trie.ErrDestroyed
	}
	n := s.board.Dim()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			ml := s.board.GetLetter(row, col)
			child := root.Child(ml)
			if child == nil {
				// No accepted word starts with this letter.
				continue
			}
			s.originRow, s.originCol = row, col
			s.markUsed(row, col, 0, ml)
			s.explore(row, col, child, 1)
			s.markUnused(row, col, 0)
		}
	}
	log.Debug().Int("findings", len(s.findings)).Msg("solve complete")
	return nil
}

// explore extends the current path from (row, col), whose trie node is
// node and whose letters fill the buffer up to depth. The caller has
// already validated the trie edge, so node is never nil.
func (s *Solver) explore(row int, col int, node *trie.Node, depth int) {
	if node.IsWord() {
		word := make(alphabet.MachineWord, depth)
		copy(word, s.letters[:depth])
		s.recorder(s, word, s.originRow, s.originCol)
	}

	// Keep going: the word found may be a prefix of a longer one.
	var nbuf [8]board.Pos
	for _, pos := range s.board.Neighbors(row, col, nbuf[:0]) {
		if s.used[s.board.Dim()*pos.Row+pos.Col] {
			continue
		}
		ml := s.board.GetLetter(pos.Row, pos.Col)
		child := node.Child(ml)
		if child == nil {
			// This cell cannot extend the path into any word or prefix.
			continue
		}
		s.markUsed(pos.Row, pos.Col, depth, ml)
		s.explore(pos.Row, pos.Col, child, depth+1)
		s.markUnused(pos.Row, pos.Col, depth)
	}
}
