package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/ui"
)

const shutdownTimeout = 2 * time.Second

type renderer interface {
	Run(ctx context.Context) error
}

// RunApp - runs the game with the configured renderer.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := NewGameController(logger, conf)
	view := newRenderer(logger, conf, gameController)

	log.Info("Starting renderer", "renderer", conf.Renderer)

	return run(ctx, log, view)
}

// run - waits for the renderer to stop. On cancellation the renderer gets
// shutdownTimeout to restore the terminal.
func run(ctx context.Context, log *slog.Logger, view renderer) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- view.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("renderer error: %w", err)
		}
		log.Info("Renderer stopped, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("renderer stopped with error", "error", err)
		}
	case <-time.After(shutdownTimeout):
		log.Warn("renderer did not stop in time")
	}

	return nil
}

// NewGameController - builds the single game controller described by conf.
func NewGameController(logger *slog.Logger, conf *config.Config) *tictactoe.GameController {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return tictactoe.NewGameController(logger,
		tictactoe.WithPlayerNames(conf.Players.X, conf.Players.O),
		tictactoe.WithRandSource(rand.NewSource(seed)),
	)
}

func newRenderer(logger *slog.Logger, conf *config.Config, game *tictactoe.GameController) renderer {
	if conf.Renderer == config.RendererConsole {
		return ui.NewConsole(logger, game, os.Stdin, os.Stdout)
	}

	x, o, empty := conf.Symbols.Runes()

	return ui.NewTUI(logger, game, ui.Symbols{X: x, O: o, Empty: empty})
}
