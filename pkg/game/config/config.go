// Package config loads game settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"wormholes/pkg/engine/spatial"
	"wormholes/pkg/game/worm"
)

// Config is the full set of settings read from a config file
type Config struct {
	Game     GameConfig        `toml:"game" yaml:"game"`
	Movement MovementConfig    `toml:"movement" yaml:"movement"`
	Render   RenderConfig      `toml:"render" yaml:"render"`
	Logging  LoggingConfig     `toml:"logging" yaml:"logging"`
	Locale   LocaleConfig      `toml:"locale" yaml:"locale"`
	Bindings map[string]string `toml:"bindings" yaml:"bindings"` // action key -> code, e.g. move_up = "u"
}

// GameConfig describes the starting worm
type GameConfig struct {
	Head  [3]int `toml:"head" yaml:"head"`   // x, y, z
	Chain string `toml:"chain" yaml:"chain"` // body in chain notation, head to tail
}

// MovementConfig selects how a move into the neck is handled
type MovementConfig struct {
	Policy string `toml:"policy" yaml:"policy"` // "auto_reverse" or "reject_neck"
}

// RenderConfig picks the frontend and sizes the window
type RenderConfig struct {
	Frontend     string  `toml:"frontend" yaml:"frontend"` // "tui" or "ebiten"
	CellSize     float64 `toml:"cell_size" yaml:"cell_size"`
	WindowWidth  int     `toml:"window_width" yaml:"window_width"`
	WindowHeight int     `toml:"window_height" yaml:"window_height"`
	StepFrames   int     `toml:"step_frames" yaml:"step_frames"` // frames between scripted moves in the window
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "console" or "json"

	// File receives log output; "stderr" writes to the terminal, which garbles the TUI
	File string `toml:"file" yaml:"file"`
}

// LocaleConfig points at the gettext catalogues
type LocaleConfig struct {
	Dir      string `toml:"dir" yaml:"dir"`
	Language string `toml:"language" yaml:"language"`
}

// Frontends
const (
	FrontendTUI    = "tui"
	FrontendEbiten = "ebiten"
)

// Load reads the config at path. The format follows the file extension:
// .yaml and .yml are YAML, anything else is TOML. An empty path gives the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			Head:  [3]int{0, 0, 0},
			Chain: "v>>>vvv<<<",
		},
		Movement: MovementConfig{
			Policy: worm.AutoReverse.String(),
		},
		Render: RenderConfig{
			Frontend:     FrontendTUI,
			CellSize:     8,
			WindowWidth:  640,
			WindowHeight: 480,
			StepFrames:   15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "wormholes.log",
		},
		Locale: LocaleConfig{
			Dir:      "locales",
			Language: "en_GB",
		},
	}
}

// Validate checks the values that the rest of the game relies on
func (c *Config) Validate() error {
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := worm.Parse(c.HeadPosition(), c.Game.Chain); err != nil {
		return fmt.Errorf("game.chain: %w", err)
	}
	switch c.Render.Frontend {
	case FrontendTUI, FrontendEbiten:
	default:
		return fmt.Errorf("unknown frontend %q", c.Render.Frontend)
	}
	if c.Render.CellSize <= 0 {
		return fmt.Errorf("render.cell_size must be positive, got %v", c.Render.CellSize)
	}
	if c.Render.StepFrames <= 0 {
		return fmt.Errorf("render.step_frames must be positive, got %d", c.Render.StepFrames)
	}
	return nil
}

// HeadPosition returns the configured starting head cell
func (c *Config) HeadPosition() spatial.Vector3i {
	return spatial.Vec(c.Game.Head[0], c.Game.Head[1], c.Game.Head[2])
}

// Policy returns the configured movement policy
func (c *Config) Policy() (worm.MovementPolicy, error) {
	return worm.ParsePolicy(c.Movement.Policy)
}

// NewWorm builds the starting worm described by the config
func (c *Config) NewWorm() (*worm.Worm, error) {
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}
	return worm.Parse(c.HeadPosition(), c.Game.Chain, worm.WithPolicy(policy))
}
