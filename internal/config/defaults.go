package config

import (
	_ "embed"
)

//go:embed defaults/tactics.yaml
var defaultTacticsYAML []byte

// DefaultTacticsConfig returns the default tactics configuration.
// Mirrors defaults/tactics.yaml; used as a fallback if the embed cannot
// be parsed.
func DefaultTacticsConfig() TacticsConfig {
	return TacticsConfig{
		Rules: RulesConfig{
			ActionPoints:   2,
			MoveRange:      6,
			EnemyMoveRange: 4,
			Diagonal:       false,
			Fog: FogConfig{
				Enabled: true,
				Radius:  8,
			},
		},
		Combat: CombatConfig{
			BaseAim:              65,
			HitClampMin:          5,
			HitClampMax:          95,
			GrazeBand:            15,
			FlankBonus:           15,
			CoverHalfPenalty:     -20,
			CoverFullPenalty:     -40,
			CritFlankBonus:       15,
			CritHalfCoverPenalty: -10,
			CritFullCoverPenalty: -20,
		},
		Player:  UnitMods{},
		Enemies: UnitMods{},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tactics":
		return defaultTacticsYAML
	default:
		return nil
	}
}
