package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "t2048.yaml"

// LoadT2048 loads the game configuration.
// Search order: customPath -> ~/.tilt2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadT2048(customPath string) (T2048Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return T2048Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseT2048(data)
		if err != nil {
			return T2048Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseT2048(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := ParseT2048(defaultT2048YAML)
	if err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseT2048 decodes a YAML document over the defaults and validates it.
func ParseT2048(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return T2048Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return T2048Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilt2048", "configs", filename)
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Rules.InitialTiles = 3
	case DifficultyHard:
		cfg.Spawn.Spawn4Max = max(cfg.Spawn.Spawn4Max, 0.4)
	}
}
