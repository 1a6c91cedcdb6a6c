package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	RendererTUI     = "tui"
	RendererConsole = "console"

	fileName    = "config.yml"
	xdgFileName = "tictactoe/config.yml"
)

var (
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrInvalidSymbol   = errors.New("invalid board symbol")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Renderer string  `yaml:"renderer" env:"RENDERER" env-default:"tui"`
	Seed     int64   `yaml:"seed" env:"SEED" env-default:"0"`
	Players  Players `yaml:"players"`
	Symbols  Symbols `yaml:"symbols"`
}

type Players struct {
	X string `yaml:"x" env:"PLAYER_X" env-default:"Player X"`
	O string `yaml:"o" env:"PLAYER_O" env-default:"Player O"`
}

type Symbols struct {
	X     string `yaml:"x" env:"SYMBOL_X" env-default:"X"`
	O     string `yaml:"o" env:"SYMBOL_O" env-default:"O"`
	Empty string `yaml:"empty" env:"SYMBOL_EMPTY" env-default:"·"`
}

// MustLoad - load configuration from path, or from the environment only when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// FindPath - returns config.yml from baseDir if present, then the XDG config
// location, or an empty string when there is no config file.
func FindPath(baseDir string) string {
	local := filepath.Join(baseDir, fileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	if path, err := xdg.SearchConfigFile(xdgFileName); err == nil {
		return path
	}

	return ""
}

func (that *Config) Validate() error {
	switch that.Renderer {
	case RendererTUI, RendererConsole:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, that.Renderer)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	for _, symbol := range []string{that.Symbols.X, that.Symbols.O, that.Symbols.Empty} {
		if err := validateSymbol(symbol); err != nil {
			return err
		}
	}

	return nil
}

// Runes - returns the symbols as runes. Symbols must be validated first.
func (that Symbols) Runes() (x, o, empty rune) {
	return []rune(that.X)[0], []rune(that.O)[0], []rune(that.Empty)[0]
}

func validateSymbol(symbol string) error {
	runes := []rune(symbol)
	if len(runes) != 1 {
		return fmt.Errorf("%w: %q must be a single character", ErrInvalidSymbol, symbol)
	}

	// control characters break the terminal layout
	if r := runes[0]; r < 32 || (r >= 127 && r <= 159) {
		return fmt.Errorf("%w: control character %U", ErrInvalidSymbol, r)
	}

	return nil
}
