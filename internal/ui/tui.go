package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	helpText   = "arrows/hjkl move · enter/space play · r reset · q quit"
	frameWidth = 56
)

// TUI is a full screen terminal renderer for one game controller.
type TUI struct {
	logger *slog.Logger
	app    *tview.Application
	board  *BoardView
}

func NewTUI(logger *slog.Logger, game gameController, symbols Symbols) *TUI {
	status := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	help := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText(helpText)
	board := NewBoardView(game, status, symbols)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.Box, gridHeight+4, 0, true).
		AddItem(status, 2, 0, false).
		AddItem(help, 1, 0, false)

	frame := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(layout, frameWidth, 0, true).
		AddItem(nil, 0, 1, false)

	that := &TUI{
		logger: logger.With("component", "tui"),
		app:    tview.NewApplication(),
		board:  board,
	}

	that.app.SetRoot(frame, true).SetInputCapture(that.handleKey)

	return that
}

func (that *TUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
		that.app.Stop()
		return nil
	}

	return that.board.HandleKey(event)
}

// Run - blocks until the player quits or ctx is canceled.
func (that *TUI) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			that.logger.Info("context canceled, stopping terminal UI")
			that.app.Stop()
		case <-done:
		}
	}()

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}
