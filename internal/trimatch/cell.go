package trimatch

import (
	"fmt"
	"strings"

	"github.com/trimatchhq/trimatch-backend/internal/apperror"
)

// Cell indexes one of the 9 board positions. Index 0 is the top-left
// corner (external "a3"), index 8 the bottom-right ("c1").
type Cell uint8

// CellCount is the number of positions on the board.
const CellCount = 9

// Lines are the 8 triples checked for win and loss conditions:
// 3 rows, 3 columns and 2 diagonals.
var Lines = [8][3]Cell{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Valid reports whether the cell is on the board.
func (c Cell) Valid() bool {
	return c < CellCount
}

// String renders the external column-letter + row-digit form, e.g. "b2".
func (c Cell) String() string {
	if !c.Valid() {
		return "??"
	}
	col := rune('a' + int(c)%3)
	row := 3 - int(c)/3
	return fmt.Sprintf("%c%d", col, row)
}

// ParseCell parses the external form: column a-c plus row 1-3,
// case-insensitive ("b2", "A1").
func ParseCell(s string) (Cell, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, s)
	}

	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if col < 0 || col > 2 || row < 0 || row > 2 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, s)
	}

	return Cell((2-row)*3 + col), nil
}
