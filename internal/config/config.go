package config

import (
	"encoding/json"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-field/internal/mines"
)

type GameConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Mines  int `json:"mines"`
}

func (g GameConfig) Params() mines.GameParams {
	return mines.GameParams{Width: g.Width, Height: g.Height, MineCount: g.Mines}
}

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSize    int    `json:"max_size"` // megabytes
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"` // days
}

type Config struct {
	Mode  string     `json:"mode"`
	Color bool       `json:"color"`
	Seed  []uint64   `json:"seed"`
	Game  GameConfig `json:"game"`
	Log   LogConfig  `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode:  "production",
		Color: true,
		Game: GameConfig{
			Width:  mines.DefaultParams.Width,
			Height: mines.DefaultParams.Height,
			Mines:  mines.DefaultParams.MineCount,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Read loads the config at path on top of the defaults. An empty path
// yields the defaults.
func Read(path string) (*Config, error) {
	config := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := json.Unmarshal(b, config); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := c.Game.Params().Validate(); err != nil {
		return err
	}
	if len(c.Seed) != 0 && len(c.Seed) != 2 {
		return fmt.Errorf("seed must hold two numbers, got %d", len(c.Seed))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

// Development is on for any mode but production, or when the DEVELOPMENT
// env variable is set to anything but "0".
func (c Config) Development() bool {
	if c.Mode != "production" {
		return true
	}
	development, ok := os.LookupEnv("DEVELOPMENT")
	return ok && development != "0"
}

// LogLevel is Debug in development and the configured level otherwise.
func (c Config) LogLevel() logrus.Level {
	if c.Development() {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Rand returns a generator seeded from the config, or a random one.
func (c Config) Rand() *rand.Rand {
	if len(c.Seed) == 2 {
		return rand.New(rand.NewPCG(c.Seed[0], c.Seed[1]))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"color":           c.Color,
		"seeded":          len(c.Seed) == 2,
		"game":            c.Game.Params().Seed(),
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}
