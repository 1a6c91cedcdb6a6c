package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	cellPitchX = 4
	cellPitchY = 2
	gridWidth  = entity.Columns*cellPitchX - 1
	gridHeight = entity.Rows*cellPitchY - 1
)

type Symbols struct {
	X     rune
	O     rune
	Empty rune
}

var DefaultSymbols = Symbols{X: 'X', O: 'O', Empty: '·'}

// BoardView draws the grid on a tview.Box and turns key presses into moves.
type BoardView struct {
	Box     *tview.Box
	status  *tview.TextView
	game    gameController
	symbols Symbols
	message string
	selRow  int
	selCol  int
}

func NewBoardView(game gameController, status *tview.TextView, symbols Symbols) *BoardView {
	boardView := &BoardView{
		Box:     tview.NewBox(),
		status:  status,
		game:    game,
		symbols: symbols,
		selRow:  1,
		selCol:  1,
	}

	boardView.Box.SetBorder(true).SetTitle(" Tic-Tac-Toe ")
	boardView.Box.SetDrawFunc(boardView.draw)
	boardView.refresh()

	return boardView
}

// Selected - returns the cell under the cursor.
func (that *BoardView) Selected() (int, int) {
	return that.selRow, that.selCol
}

// HandleKey - consumes the keys that drive the board and passes the rest on.
func (that *BoardView) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		that.moveSelection(-1, 0)
	case tcell.KeyDown:
		that.moveSelection(1, 0)
	case tcell.KeyLeft:
		that.moveSelection(0, -1)
	case tcell.KeyRight:
		that.moveSelection(0, 1)
	case tcell.KeyEnter:
		that.play()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			that.moveSelection(-1, 0)
		case 'j':
			that.moveSelection(1, 0)
		case 'h':
			that.moveSelection(0, -1)
		case 'l':
			that.moveSelection(0, 1)
		case ' ':
			that.play()
		case 'r':
			that.reset()
		default:
			return event
		}
	default:
		return event
	}

	return nil
}

func (that *BoardView) moveSelection(rows, columns int) {
	if entity.InBounds(that.selRow+rows, that.selCol+columns) {
		that.selRow += rows
		that.selCol += columns
	}
}

func (that *BoardView) play() {
	that.message = ErrorText(that.game.PlayRound(that.selRow, that.selCol))
	that.refresh()
}

func (that *BoardView) reset() {
	that.game.Reset()
	that.message = ""
	that.selRow, that.selCol = 1, 1
	that.refresh()
}

func (that *BoardView) refresh() {
	text := StatusText(that.game)
	if that.message != "" {
		text += "\n" + that.message
	}
	that.status.SetText(text)
}

// cellOrigin - returns the screen position of a cell's mark for a box at x, y, width, height.
func (that *BoardView) cellOrigin(x, y, width, height, row, column int) (int, int) {
	innerX, innerY, innerW, innerH := x+1, y+1, width-2, height-2
	originX := innerX + max(0, (innerW-gridWidth)/2)
	originY := innerY + max(0, (innerH-gridHeight)/2)

	return originX + column*cellPitchX + 1, originY + row*cellPitchY
}

func (that *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	grid := that.game.Board()
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for row := 0; row < entity.Rows; row++ {
		for column := 0; column < entity.Columns; column++ {
			cx, cy := that.cellOrigin(x, y, width, height, row, column)

			style := tcell.StyleDefault
			if row == that.selRow && column == that.selCol && !that.game.Status().IsTerminal() {
				style = style.Reverse(true)
			}

			screen.SetContent(cx-1, cy, ' ', nil, style)
			screen.SetContent(cx, cy, that.symbolFor(grid[row][column]), nil, style.Bold(true))
			screen.SetContent(cx+1, cy, ' ', nil, style)

			if column < entity.Columns-1 {
				screen.SetContent(cx+2, cy, tview.BoxDrawingsLightVertical, nil, lineStyle)
			}

			if row < entity.Rows-1 {
				for dx := -1; dx <= 1; dx++ {
					screen.SetContent(cx+dx, cy+1, tview.BoxDrawingsLightHorizontal, nil, lineStyle)
				}
				if column < entity.Columns-1 {
					screen.SetContent(cx+2, cy+1, tview.BoxDrawingsLightVerticalAndHorizontal, nil, lineStyle)
				}
			}
		}
	}

	return x + 1, y + 1, width - 2, height - 2
}

func (that *BoardView) symbolFor(mark entity.Mark) rune {
	switch mark {
	case entity.PlayerX:
		return that.symbols.X
	case entity.PlayerO:
		return that.symbols.O
	default:
		return that.symbols.Empty
	}
}
