package entity

// Board holds the 3x3 grid. A cell is written at most once per board.
type Board struct {
	cells Grid
}

func NewBoard() *Board {
	return &Board{}
}

// Get - returns a copy of the current grid.
func (that *Board) Get() Grid {
	return that.cells
}

// Place - writes mark into an empty cell. It reports false and leaves the board
// untouched when the cell is occupied, out of range, or the mark is not X or O.
func (that *Board) Place(row, column int, mark Mark) bool {
	if !InBounds(row, column) || !mark.IsPlayerMark() {
		return false
	}

	if that.cells[row][column] != EmptyCell {
		return false
	}

	that.cells[row][column] = mark

	return true
}

// IsFull - reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for _, cell := range that.cells.Flatten() {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
