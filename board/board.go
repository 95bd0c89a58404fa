package board

import (
	"errors"
	"fmt"

	"github.com/lettergrid/boggle/alphabet"
)

var (
	// ErrEmptyBoard is returned when no rows at all were provided.
	ErrEmptyBoard = errors.New("board: no rows provided")
	// ErrRowLengthMismatch is returned when a row's length disagrees with
	// the side length established by the first row.
	ErrRowLengthMismatch = errors.New("board: row length mismatch")
)

// Pos is a (row, col) coordinate on the board.
type Pos struct {
	Row int
	Col int
}

// GameBoard is a square grid of letters. It is immutable once built; the
// search engine only reads it.
type GameBoard struct {
	// squares holds the letters in row-major order:
	//  0  1  2  3
	//  4  5  6  7
	//  8  9 10 11
	// 12 13 14 15
	squares []alphabet.MachineLetter
	dim     int
}

// MakeBoard creates a board from an ordered list of equal-length rows.
// Letters are folded to lowercase; the row count must equal the row
// length (square board). The caller is responsible for stripping line
// terminators and other trailing non-letters before calling this.
func MakeBoard(rows []string) (*GameBoard, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBoard
	}
	dim := len(rows)
	squares := make([]alphabet.MachineLetter, 0, dim*dim)
	for i, r := range rows {
		mw, err := alphabet.ToMachineWord(r)
		if err != nil {
			return nil, fmt.Errorf("board: row %d: %w", i, err)
		}
		if len(mw) != dim {
			return nil, fmt.Errorf("%w: row %d has %d letters, want %d",
				ErrRowLengthMismatch, i, len(mw), dim)
		}
		squares = append(squares, mw...)
	}
	return &GameBoard{squares: squares, dim: dim}, nil
}

// Dim is the dimension of the board. The board is square.
func (g *GameBoard) Dim() int {
	return g.dim
}

// GetLetter returns the letter at the given row and column.
func (g *GameBoard) GetLetter(row int, col int) alphabet.MachineLetter {
	if !g.PosExists(row, col) {
		panic(fmt.Sprintf("board: position (%d,%d) out of bounds for dim %d",
			row, col, g.dim))
	}
	return g.squares[g.dim*row+col]
}

// PosExists returns true if the given position is on the board.
func (g *GameBoard) PosExists(row int, col int) bool {
	return row >= 0 && row < g.dim && col >= 0 && col < g.dim
}

// Neighbors appends the coordinates adjacent to (row, col) to buf and
// returns it. Adjacency is 8-directional, including diagonals. The order
// is a row-major scan of the 3×3 block centered on the cell, skipping
// the center; both the row and the column of every candidate are checked
// against the board bounds. The order is deterministic so that search
// output order is reproducible.
func (g *GameBoard) Neighbors(row int, col int, buf []Pos) []Pos {
	for dr := -1; dr <= 1; dr++ {
		newRow := row + dr
		if newRow < 0 || newRow >= g.dim {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			newCol := col + dc
			if newCol < 0 || newCol >= g.dim {
				continue
			}
			buf = append(buf, Pos{Row: newRow, Col: newCol})
		}
	}
	return buf
}

// Histogram counts every letter on the board exactly once.
func (g *GameBoard) Histogram() *alphabet.Histogram {
	return alphabet.HistogramOf(g.squares)
}
