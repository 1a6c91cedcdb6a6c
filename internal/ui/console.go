package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const consoleHelp = "Commands: <row> <column> to play, board, reset, help, quit."

// Console is a line based renderer: it reads commands from in and prints the board to out.
type Console struct {
	logger *slog.Logger
	game   gameController
	in     io.Reader
	out    io.Writer
	err    error
}

func NewConsole(logger *slog.Logger, game gameController, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		game:   game,
		in:     in,
		out:    out,
	}
}

// Run - processes input lines until quit, end of input or ctx cancellation.
func (that *Console) Run(ctx context.Context) error {
	that.printf("%s\n", consoleHelp)
	that.printRound()

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			that.logger.Info("context canceled, stopping console")
			break
		}

		if quit := that.handleLine(scanner.Text()); quit {
			break
		}

		if that.err != nil {
			return fmt.Errorf("failed to write output: %w", that.err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if that.err != nil {
		return fmt.Errorf("failed to write output: %w", that.err)
	}

	return nil
}

func (that *Console) handleLine(line string) bool {
	fields := strings.Fields(line)

	switch {
	case len(fields) == 0:
		return false
	case len(fields) == 2:
		that.playRound(fields[0], fields[1])
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "reset":
		that.game.Reset()
		that.printRound()
	case "board":
		that.printRound()
	case "help":
		that.printf("%s\n", consoleHelp)
	default:
		that.printf("Unknown command %q. %s\n", line, consoleHelp)
	}

	return false
}

func (that *Console) playRound(rowText, columnText string) {
	row, column, err := tictactoe.ParseCoordinates(rowText, columnText)
	if err == nil {
		player := that.game.ActivePlayer()
		that.printf("Assigning %s into row %d, column %d...\n", player.Name, row, column)
		err = that.game.PlayRound(row, column)
	}

	if err != nil {
		that.printf("%s\n", ErrorText(err))
		return
	}

	that.printRound()
}

func (that *Console) printRound() {
	that.printf("%s%s\n", that.game.Board(), StatusText(that.game))
}

// printf keeps the first write error and skips output after it.
func (that *Console) printf(format string, args ...any) {
	if that.err != nil {
		return
	}

	_, that.err = fmt.Fprintf(that.out, format, args...)
}
