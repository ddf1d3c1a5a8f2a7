package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTactics loads the tactics configuration.
// Search order: customPath -> ~/.tactics/configs/tactics.yaml -> ./configs/tactics.yaml -> embedded default
func LoadTactics(customPath string) (TacticsConfig, error) {
	var cfg TacticsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tactics.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tactics.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTacticsYAML, &cfg); err != nil {
		return DefaultTacticsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tactics", "configs", filename)
}

// ApplyTacticsPreset modifies the config based on a difficulty preset.
// Veteran is the baseline; recruit softens the opposition, commander
// sharpens it.
func ApplyTacticsPreset(cfg *TacticsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyRecruit:
		cfg.Player.HPBonus = 4
		cfg.Player.AimBonus = 10
		cfg.Enemies.HPBonus = -1
		cfg.Enemies.AimBonus = -15
	case DifficultyVeteran:
		cfg.Player.HPBonus = 0
		cfg.Player.AimBonus = 0
		cfg.Enemies.HPBonus = 0
		cfg.Enemies.AimBonus = 0
	case DifficultyCommander:
		cfg.Player.HPBonus = -2
		cfg.Player.AimBonus = 0
		cfg.Enemies.HPBonus = 1
		cfg.Enemies.AimBonus = 10
	}
}
