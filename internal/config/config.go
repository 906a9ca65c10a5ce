// Package config provides YAML-based configuration loading for 2048.
package config

import (
	"fmt"
	"strings"
)

// Config contains all tunable settings.
type Config struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Store   StoreConfig   `yaml:"store"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// SpawnConfig controls new tiles.
type SpawnConfig struct {
	FourOdds int `yaml:"four_odds"` // A starting tile is 4 with probability 1/four_odds
}

// StoreConfig selects the high score backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // file, sqlite or memory
	Path    string `yaml:"path"`    // Empty uses the backend default
}

// DisplayConfig controls the frame loop.
type DisplayConfig struct {
	TickRate   int `yaml:"tick_rate"`
	SlideTicks int `yaml:"slide_ticks"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used while the UI owns the terminal
}

var backends = []string{"file", "sqlite", "memory"}

var levels = []string{"debug", "info", "warn", "error", "fatal"}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Spawn.FourOdds < 1 {
		return fmt.Errorf("config: spawn.four_odds must be >= 1, got %d", c.Spawn.FourOdds)
	}
	if !oneOf(c.Store.Backend, backends) {
		return fmt.Errorf("config: store.backend must be one of %s, got %q",
			strings.Join(backends, ", "), c.Store.Backend)
	}
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("config: display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Display.SlideTicks < 0 {
		return fmt.Errorf("config: display.slide_ticks must not be negative, got %d", c.Display.SlideTicks)
	}
	if !oneOf(c.Log.Level, levels) {
		return fmt.Errorf("config: log.level must be one of %s, got %q",
			strings.Join(levels, ", "), c.Log.Level)
	}
	return nil
}

func oneOf(v string, options []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
