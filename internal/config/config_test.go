package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the config file", func(t *testing.T) {
		// Given: a config file with every section set
		path := filepath.Join(t.TempDir(), "config.yml")
		writeFile(t, path, `
log-level: debug
renderer: console
seed: 7
players:
  x: Alice
  o: Bob
symbols:
  x: "#"
  o: "@"
  empty: "-"
`)

		// When: loading the file
		conf, err := Load(path)

		// Then: the values from the file are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, RendererConsole, conf.Renderer)
		assert.Equal(t, int64(7), conf.Seed)
		assert.Equal(t, Players{X: "Alice", O: "Bob"}, conf.Players)
		assert.Equal(t, Symbols{X: "#", O: "@", Empty: "-"}, conf.Symbols)
	})

	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		writeFile(t, path, "renderer: console\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, Players{X: "Player X", O: "Player O"}, conf.Players)
		assert.Equal(t, Symbols{X: "X", O: "O", Empty: "·"}, conf.Symbols)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		writeFile(t, path, "players:\n  x: Alice\n")
		t.Setenv("PLAYER_X", "Carol")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "Carol", conf.Players.X)
	})

	t.Run("Empty path reads the environment only", func(t *testing.T) {
		t.Setenv("RENDERER", RendererConsole)
		t.Setenv("PLAYER_O", "Dave")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, RendererConsole, conf.Renderer)
		assert.Equal(t, "Dave", conf.Players.O)
	})

	t.Run("Returns error for a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		require.Error(t, err)
	})

	t.Run("Returns error for an invalid renderer", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		writeFile(t, path, "renderer: dom\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownRenderer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "nope.yml"))
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel: "info",
			Renderer: RendererTUI,
			Symbols:  Symbols{X: "X", O: "O", Empty: "."},
		}
	}

	t.Run("Accepts a valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		conf := valid()
		conf.LogLevel = "trace"

		require.ErrorIs(t, conf.Validate(), ErrUnknownLogLevel)
	})

	t.Run("Rejects multi-character symbols", func(t *testing.T) {
		conf := valid()
		conf.Symbols.X = "XX"

		require.ErrorIs(t, conf.Validate(), ErrInvalidSymbol)
	})

	t.Run("Rejects control characters", func(t *testing.T) {
		conf := valid()
		conf.Symbols.Empty = "\t"

		require.ErrorIs(t, conf.Validate(), ErrInvalidSymbol)
	})
}

func TestSymbols_Runes(t *testing.T) {
	x, o, empty := Symbols{X: "✕", O: "◯", Empty: "·"}.Runes()

	assert.Equal(t, '✕', x)
	assert.Equal(t, '◯', o)
	assert.Equal(t, '·', empty)
}

func TestFindPath(t *testing.T) {
	t.Run("Prefers config.yml in the base directory", func(t *testing.T) {
		baseDir := t.TempDir()
		writeFile(t, filepath.Join(baseDir, "config.yml"), "renderer: tui\n")

		assert.Equal(t, filepath.Join(baseDir, "config.yml"), FindPath(baseDir))
	})

	t.Run("Falls back to the XDG config directory", func(t *testing.T) {
		// Given: no local config but one in XDG_CONFIG_HOME
		configHome := t.TempDir()
		writeFile(t, filepath.Join(configHome, "tictactoe", "config.yml"), "renderer: tui\n")

		// registered before Setenv so it runs after the variable is restored
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_CONFIG_HOME", configHome)
		xdg.Reload()

		// When: looking up the config from an empty directory
		path := FindPath(t.TempDir())

		// Then: the XDG file is found
		assert.Equal(t, filepath.Join(configHome, "tictactoe", "config.yml"), path)
	})
}
