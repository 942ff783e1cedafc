package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{
			Size: 4,
		},
		Rules: T2048Rules{
			WinTile:      2048,
			InitialTiles: 2,
		},
		Spawn: T2048Spawn{
			Spawn4:    0.10,
			Spawn4Max: 0.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 20000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
