// Package ui renders a game in the terminal and forwards player input to it.
package ui

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameController interface {
	PlayRound(row, column int) error
	Board() entity.Grid
	ActivePlayer() entity.Player
	Status() entity.Status
	Winner() (entity.Player, bool)
	Reset()
}

// StatusText - describes whose turn it is or how the game ended.
func StatusText(game gameController) string {
	switch game.Status() {
	case entity.StatusWon:
		if winner, ok := game.Winner(); ok {
			return fmt.Sprintf("%s wins!", winner.Name)
		}
	case entity.StatusTied:
		return "Game ties."
	}

	return fmt.Sprintf("%s's turn...", game.ActivePlayer().Name)
}

// ErrorText - turns a rejected move into a message for the player.
func ErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Cell already filled."
	case errors.Is(err, apperror.ErrGameFinished):
		return "Game is over. Please reset the game to play again."
	case errors.Is(err, apperror.ErrInvalidCell):
		return "Invalid cell, row and column must be 0, 1 or 2."
	default:
		return err.Error()
	}
}
