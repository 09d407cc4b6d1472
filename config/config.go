// Package config loads the gridpath YAML configuration and validates it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of config.yaml.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	Algorithm string          `yaml:"algorithm" validate:"oneof=bfs dfs dijkstra astar"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// GridConfig sets the grid dimensions.
type GridConfig struct {
	Rows int `yaml:"rows" validate:"gt=0,lte=1000"`
	Cols int `yaml:"cols" validate:"gt=0,lte=1000"`
}

// AnimationConfig sets the pause after each event.
type AnimationConfig struct {
	StepDelayMs int `yaml:"step_delay_ms" validate:"gte=0"`
}

// ServerConfig configures the HTTP front end.
type ServerConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

// LogConfig configures logrus.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the stock 20×40 grid, 150ms steps, BFS, :8080, info/text.
func Default() Config {
	return Config{
		Grid:      GridConfig{Rows: grid.DefaultRows, Cols: grid.DefaultCols},
		Animation: AnimationConfig{StepDelayMs: 150},
		Algorithm: string(search.AlgoBFS),
		Server:    ServerConfig{Listen: ":8080"},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// StepDelay returns the animation delay as a time.Duration.
func (c Config) StepDelay() time.Duration {
	return time.Duration(c.Animation.StepDelayMs) * time.Millisecond
}

// Validate checks struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Parse overlays data on Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return Parse(data)
}

// Logger builds a logrus logger from the log section.
func (c Config) Logger() (*logrus.Logger, error) {
	l := logrus.New()
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	l.SetLevel(lvl)
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}
