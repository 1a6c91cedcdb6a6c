package entity

import "strings"

// Mark is the value of a single board cell.
type Mark string

// Status is the state of a game round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTied       Status = "tied"

	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	Rows    = 3
	Columns = 3
)

// Grid is a row-major 3x3 snapshot of the board.
type Grid [Rows][Columns]Mark

// IsPlayerMark - reports whether the mark can be placed by a player.
func (that Mark) IsPlayerMark() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// IsTerminal - reports whether no further moves are accepted in this status.
func (that Status) IsTerminal() bool {
	return that == StatusWon || that == StatusTied
}

// InBounds - reports whether row and column address a cell of the grid.
func InBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}

// Flatten - returns the cells in row-major order, indices 0 to 8.
func (that Grid) Flatten() [Rows * Columns]Mark {
	var flat [Rows * Columns]Mark
	for row := range that {
		for column := range that[row] {
			flat[row*Columns+column] = that[row][column]
		}
	}

	return flat
}

// String - renders the grid with "." for empty cells, one row per line.
func (that Grid) String() string {
	var sb strings.Builder
	for row := range that {
		for column, cell := range that[row] {
			if column > 0 {
				sb.WriteByte(' ')
			}
			if cell == EmptyCell {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(cell))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
