package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			FourOdds: 11,
		},
		Store: StoreConfig{
			Backend: "file",
			Path:    "~/.t2048/highscore.txt",
		},
		Display: DisplayConfig{
			TickRate:   60,
			SlideTicks: 8, // ~133ms at 60fps
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
