package lexicon

import (
	"bufio"
	"fmt"
	"os"

	"github.com/lettergrid/boggle/board"
)

// LoadBoardFile reads a board from a text file holding one row of
// letters per line. Trailing non-letter bytes are chopped before the
// rows reach the board constructor, which enforces squareness.
func LoadBoardFile(path string) (*board.GameBoard, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: opening board file: %w", err)
	}
	defer file.Close()

	var rows []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		row := Chop(scanner.Text())
		if row == "" {
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: reading board file: %w", err)
	}
	return board.MakeBoard(rows)
}
