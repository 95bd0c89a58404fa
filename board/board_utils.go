package board

import (
	"fmt"
	"strings"
)

// ToDisplayText returns a printable representation of the board grid.
func (g *GameBoard) ToDisplayText() string {
	var str string
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + string(g.GetLetter(i, j).Letter()) + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

func (g *GameBoard) String() string {
	return g.ToDisplayText()
}
