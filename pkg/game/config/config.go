// Package config loads the game's YAML configuration and applies command-line overrides.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Carver names accepted by map.carver
const (
	CarverFixed  = "fixed"
	CarverRandom = "random"
)

// Backend names accepted by render.backend
const (
	BackendTUI    = "tui"
	BackendEbiten = "ebiten"
)

// Config holds everything needed to build and present a dungeon.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Render  RenderConfig  `yaml:"render"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Logging LoggingConfig `yaml:"logging"`

	// Seed drives every random draw. 0 picks a seed from the clock at startup.
	Seed int64 `yaml:"seed"`

	// Locale selects the message catalogue, e.g. en_GB
	Locale string `yaml:"locale"`
}

// MapConfig controls dungeon generation.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Depth is the number of BSP split rounds
	Depth int `yaml:"depth"`
	// Carver is "fixed" (one-cell margin) or "random" (1-2 cells per axis)
	Carver string `yaml:"carver"`
}

// RenderConfig controls presentation.
type RenderConfig struct {
	Backend      string `yaml:"backend"`
	TileSize     int    `yaml:"tile_size"`
	MinimapScale int    `yaml:"minimap_scale"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

// EnemyConfig controls enemy spawning and wandering.
type EnemyConfig struct {
	// SpawnChance is the probability that a non-starting room gets an enemy
	SpawnChance    float64 `yaml:"spawn_chance"`
	Health         int     `yaml:"health"`
	StepIntervalMS int     `yaml:"step_interval_ms"`
}

// StepInterval returns the enemy wander period as a duration
func (e EnemyConfig) StepInterval() time.Duration {
	return time.Duration(e.StepIntervalMS) * time.Millisecond
}

// LoggingConfig controls the rotating log file.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfig returns a Config with the stock settings.
func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Width:  64,
			Height: 64,
			Depth:  5,
			Carver: CarverFixed,
		},
		Render: RenderConfig{
			Backend:      BackendTUI,
			TileSize:     32,
			MinimapScale: 4,
			WindowWidth:  800,
			WindowHeight: 600,
		},
		Enemies: EnemyConfig{
			SpawnChance:    0.6,
			Health:         10,
			StepIntervalMS: 1000,
		},
		Logging: LoggingConfig{
			Level:      "INFO",
			File:       "logs/dungeon.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Locale: "en_GB",
	}
}

// LoadConfig loads configuration from a YAML file over the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects settings the generator or renderers cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Map.Width <= 0 || c.Map.Height <= 0:
		return fmt.Errorf("%w: map size %dx%d must be positive", ErrInvalidConfig, c.Map.Width, c.Map.Height)
	case c.Map.Depth < 0:
		return fmt.Errorf("%w: map depth %d must not be negative", ErrInvalidConfig, c.Map.Depth)
	case c.Map.Carver != CarverFixed && c.Map.Carver != CarverRandom:
		return fmt.Errorf("%w: unknown carver %q", ErrInvalidConfig, c.Map.Carver)
	case c.Render.Backend != BackendTUI && c.Render.Backend != BackendEbiten:
		return fmt.Errorf("%w: unknown render backend %q", ErrInvalidConfig, c.Render.Backend)
	case c.Render.TileSize <= 0 || c.Render.MinimapScale <= 0:
		return fmt.Errorf("%w: tile size and minimap scale must be positive", ErrInvalidConfig)
	case c.Enemies.SpawnChance < 0 || c.Enemies.SpawnChance > 1:
		return fmt.Errorf("%w: spawn chance %v outside [0,1]", ErrInvalidConfig, c.Enemies.SpawnChance)
	case c.Enemies.Health <= 0:
		return fmt.Errorf("%w: enemy health %d must be positive", ErrInvalidConfig, c.Enemies.Health)
	case c.Enemies.StepIntervalMS <= 0:
		return fmt.Errorf("%w: enemy step interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// Overrides are the command-line flags that can replace file settings.
type Overrides struct {
	Width   int
	Height  int
	Depth   int
	Seed    int64
	Carver  string
	Backend string
	Level   string
}

// Register binds the override flags to fs.
func (o *Overrides) Register(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", 0, "Map width in cells")
	fs.IntVar(&o.Height, "height", 0, "Map height in cells")
	fs.IntVar(&o.Depth, "depth", 0, "BSP split rounds")
	fs.Int64Var(&o.Seed, "seed", 0, "Random seed (0 picks one from the clock)")
	fs.StringVar(&o.Carver, "carver", "", "Room carver: fixed or random")
	fs.StringVar(&o.Backend, "backend", "", "Renderer: tui or ebiten")
	fs.StringVar(&o.Level, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR")
}

// Apply copies every flag that was set on the command line into c.
// Flags left at their defaults do not override the file.
func (c *Config) Apply(fs *flag.FlagSet, o Overrides) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			c.Map.Width = o.Width
		case "height":
			c.Map.Height = o.Height
		case "depth":
			c.Map.Depth = o.Depth
		case "seed":
			c.Seed = o.Seed
		case "carver":
			c.Map.Carver = o.Carver
		case "backend":
			c.Render.Backend = o.Backend
		case "log-level":
			c.Logging.Level = o.Level
		}
	})
}
