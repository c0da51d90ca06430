package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}

	if config.Map.Width != 64 || config.Map.Height != 64 {
		t.Errorf("default map = %dx%d, want 64x64", config.Map.Width, config.Map.Height)
	}
	if config.Map.Depth != 5 {
		t.Errorf("default depth = %d, want 5", config.Map.Depth)
	}
	if config.Enemies.SpawnChance != 0.6 {
		t.Errorf("default spawn chance = %v, want 0.6", config.Enemies.SpawnChance)
	}
	if config.Enemies.StepInterval() != time.Second {
		t.Errorf("default step interval = %v, want 1s", config.Enemies.StepInterval())
	}
	if err := config.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	yamlContent := `map:
  width: 24
  depth: 3
  carver: random
seed: 42
render:
  backend: ebiten
enemies:
  spawn_chance: 1
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Map.Width != 24 {
		t.Errorf("Map.Width = %d, want 24", config.Map.Width)
	}
	if config.Map.Height != 64 {
		t.Errorf("Map.Height = %d, want default 64", config.Map.Height)
	}
	if config.Map.Carver != CarverRandom {
		t.Errorf("Map.Carver = %q, want %q", config.Map.Carver, CarverRandom)
	}
	if config.Seed != 42 {
		t.Errorf("Seed = %d, want 42", config.Seed)
	}
	if config.Render.Backend != BackendEbiten {
		t.Errorf("Render.Backend = %q, want %q", config.Render.Backend, BackendEbiten)
	}
	if config.Enemies.Health != 10 {
		t.Errorf("Enemies.Health = %d, want default 10", config.Enemies.Health)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("map: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig accepted malformed YAML")
	}
	if config.Map.Width != 64 {
		t.Errorf("malformed load returned Map.Width = %d, want defaults", config.Map.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Map.Width = 0 }},
		{"negative height", func(c *Config) { c.Map.Height = -4 }},
		{"negative depth", func(c *Config) { c.Map.Depth = -1 }},
		{"unknown carver", func(c *Config) { c.Map.Carver = "wobbly" }},
		{"unknown backend", func(c *Config) { c.Render.Backend = "opengl" }},
		{"zero tile size", func(c *Config) { c.Render.TileSize = 0 }},
		{"spawn chance above one", func(c *Config) { c.Enemies.SpawnChance = 1.5 }},
		{"zero health", func(c *Config) { c.Enemies.Health = 0 }},
		{"zero step interval", func(c *Config) { c.Enemies.StepIntervalMS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApply_OnlySetFlagsOverride(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var o Overrides
	o.Register(fs)
	if err := fs.Parse([]string{"-seed", "7", "-backend", "ebiten"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	c := DefaultConfig()
	c.Map.Width = 32
	c.Apply(fs, o)

	if c.Seed != 7 {
		t.Errorf("Seed = %d, want 7", c.Seed)
	}
	if c.Render.Backend != BackendEbiten {
		t.Errorf("Backend = %q, want %q", c.Render.Backend, BackendEbiten)
	}
	if c.Map.Width != 32 {
		t.Errorf("Map.Width = %d, want file value 32 kept", c.Map.Width)
	}
}
