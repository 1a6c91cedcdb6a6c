package tictactoe

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	DefaultPlayerXName = "Player X"
	DefaultPlayerOName = "Player O"
)

// WinCombos are the row-major indices of every winning line.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Option func(*GameController)

// WithPlayerNames - sets the player names; an empty name keeps its default.
func WithPlayerNames(playerX, playerO string) Option {
	return func(that *GameController) {
		if playerX != "" {
			that.players[0].Name = playerX
		}
		if playerO != "" {
			that.players[1].Name = playerO
		}
	}
}

// WithRandSource - sets the source used to pick the starting player.
func WithRandSource(src rand.Source) Option {
	return func(that *GameController) {
		that.rnd = rand.New(src) //nolint: gosec // starting player only
	}
}

// GameController runs one game at a time between two fixed players.
// It is not safe for concurrent use.
type GameController struct {
	logger *slog.Logger
	rnd    *rand.Rand

	board   *entity.Board
	players [2]entity.Player
	active  int
	status  entity.Status
	winner  int
	roundID string
}

func NewGameController(logger *slog.Logger, opts ...Option) *GameController {
	that := &GameController{
		logger: logger.With("component", "game_controller"),
		players: [2]entity.Player{
			{Name: DefaultPlayerXName, Mark: entity.PlayerX},
			{Name: DefaultPlayerOName, Mark: entity.PlayerO},
		},
	}

	for _, opt := range opts {
		opt(that)
	}

	if that.rnd == nil {
		that.rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // starting player only
	}

	that.Reset()

	return that
}

// PlayRound - places the active player's mark at row, column and advances the game.
// A returned error means the move was rejected and nothing changed.
func (that *GameController) PlayRound(row, column int) error {
	log := that.logger.With("method", "PlayRound", "round", that.roundID)

	if that.status.IsTerminal() {
		log.Info("game is over, reset the game to play again", "status", that.status)
		return apperror.ErrGameFinished
	}

	if !entity.InBounds(row, column) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, column)
	}

	player := that.players[that.active]
	log.Debug("assigning player", "player", player.Name, "row", row, "column", column)

	if !that.board.Place(row, column, player.Mark) {
		log.Debug("cell already filled", "row", row, "column", column)
		return apperror.ErrCellOccupied
	}

	// win is checked first: the winning move may also fill the last cell
	if CheckWinner(that.board.Get(), player.Mark) {
		that.status = entity.StatusWon
		that.winner = that.active
		log.Info("player wins", "player", player.Name, "mark", player.Mark)
		return nil
	}

	if that.board.IsFull() {
		that.status = entity.StatusTied
		log.Info("game ties")
		return nil
	}

	that.switchPlayerTurn()
	log.Debug("next turn", "player", that.players[that.active].Name)

	return nil
}

// CheckWinner - same as the package level CheckWinner.
func (that *GameController) CheckWinner(grid entity.Grid, mark entity.Mark) bool {
	return CheckWinner(grid, mark)
}

func (that *GameController) ActivePlayer() entity.Player {
	return that.players[that.active]
}

func (that *GameController) Board() entity.Grid {
	return that.board.Get()
}

func (that *GameController) Status() entity.Status {
	return that.status
}

// Winner - returns the winning player once the game is won.
func (that *GameController) Winner() (entity.Player, bool) {
	if that.status != entity.StatusWon {
		return entity.Player{}, false
	}

	return that.players[that.winner], true
}

// RoundID - identifies the current round in logs; it changes on every Reset.
func (that *GameController) RoundID() string {
	return that.roundID
}

// Reset - starts a new round with an empty board and a randomly chosen first player.
func (that *GameController) Reset() {
	that.board = entity.NewBoard()
	that.status = entity.StatusInProgress
	that.winner = 0
	that.active = that.rnd.Intn(len(that.players))
	that.roundID = uuid.NewString()

	that.logger.Info("new round",
		"round", that.roundID,
		"first_player", that.players[that.active].Name,
		"mark", that.players[that.active].Mark,
	)
}

func (that *GameController) switchPlayerTurn() {
	that.active = 1 - that.active
}

// CheckWinner - reports whether mark fills at least one winning line of grid.
func CheckWinner(grid entity.Grid, mark entity.Mark) bool {
	if !mark.IsPlayerMark() {
		return false
	}

	flat := grid.Flatten()
	for _, combo := range WinCombos {
		if flat[combo[0]] == mark && flat[combo[1]] == mark && flat[combo[2]] == mark {
			return true
		}
	}

	return false
}

// ParseCoordinates - converts textual row and column into grid indices.
func ParseCoordinates(row, column string) (int, int, error) {
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidCell, row)
	}

	c, err := strconv.Atoi(strings.TrimSpace(column))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", apperror.ErrInvalidCell, column)
	}

	if !entity.InBounds(r, c) {
		return 0, 0, fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, r, c)
	}

	return r, c, nil
}
