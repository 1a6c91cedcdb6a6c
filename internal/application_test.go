package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/ui"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

var errRendererBroken = errors.New("renderer broken")

type rendererFunc func(ctx context.Context) error

func (f rendererFunc) Run(ctx context.Context) error {
	return f(ctx)
}

func TestNewGameController(t *testing.T) {
	t.Run("Uses configured names and seed", func(t *testing.T) {
		_, st := suite.New(t)
		conf := &config.Config{
			Seed:    99,
			Players: config.Players{X: "Alice", O: "Bob"},
		}

		// When: two controllers are built from the same config
		first := NewGameController(st.Logger, conf)
		second := NewGameController(st.Logger, conf)

		// Then: the same seed picks the same starting player
		assert.Equal(t, first.ActivePlayer(), second.ActivePlayer())
		assert.Contains(t, []string{"Alice", "Bob"}, first.ActivePlayer().Name)
		assert.Equal(t, entity.StatusInProgress, first.Status())
	})
}

func TestNewRenderer(t *testing.T) {
	_, st := suite.New(t)
	conf := &config.Config{Renderer: config.RendererConsole}

	view := newRenderer(st.Logger, conf, NewGameController(st.Logger, conf))

	assert.IsType(t, &ui.Console{}, view)
}

func TestRun(t *testing.T) {
	t.Run("Returns nil when the renderer stops", func(t *testing.T) {
		ctx, st := suite.New(t)

		err := run(ctx, st.Logger, rendererFunc(func(context.Context) error { return nil }))

		require.NoError(t, err)
	})

	t.Run("Wraps renderer errors", func(t *testing.T) {
		ctx, st := suite.New(t)

		err := run(ctx, st.Logger, rendererFunc(func(context.Context) error { return errRendererBroken }))

		require.ErrorIs(t, err, errRendererBroken)
	})

	t.Run("Waits for the renderer after cancellation", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)

		stopped := false
		view := rendererFunc(func(ctx context.Context) error {
			<-ctx.Done()
			stopped = true
			return nil
		})

		// When: the context is canceled while the renderer runs
		cancel()
		err := run(ctx, st.Logger, view)

		// Then: run returns cleanly after the renderer has stopped
		require.NoError(t, err)
		assert.True(t, stopped)
	})
}
