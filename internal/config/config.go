// Package config provides YAML-based game configuration loading and
// difficulty presets for the tactics platform.
package config

import "github.com/vovakirdan/tui-tactics/internal/games/tactics/core"

// TacticsConfig contains all configuration for the tactics game.
type TacticsConfig struct {
	Rules   RulesConfig  `yaml:"rules"`
	Combat  CombatConfig `yaml:"combat"`
	Player  UnitMods     `yaml:"player"`
	Enemies UnitMods     `yaml:"enemies"`
}

// RulesConfig defines movement and turn-economy parameters.
type RulesConfig struct {
	ActionPoints   int       `yaml:"action_points"`
	MoveRange      int       `yaml:"move_range"`
	EnemyMoveRange int       `yaml:"enemy_move_range"`
	Diagonal       bool      `yaml:"diagonal_movement"`
	Fog            FogConfig `yaml:"fog"`
}

// FogConfig defines fog-of-war parameters.
type FogConfig struct {
	Enabled bool `yaml:"enabled"`
	Radius  int  `yaml:"radius"`
}

// CombatConfig defines the combat balance parameters.
type CombatConfig struct {
	BaseAim              int `yaml:"base_aim"`
	HitClampMin          int `yaml:"hit_clamp_min"`
	HitClampMax          int `yaml:"hit_clamp_max"`
	GrazeBand            int `yaml:"graze_band"`
	FlankBonus           int `yaml:"flank_bonus"`
	CoverHalfPenalty     int `yaml:"cover_half_penalty"`
	CoverFullPenalty     int `yaml:"cover_full_penalty"`
	CritFlankBonus       int `yaml:"crit_flank_bonus"`
	CritHalfCoverPenalty int `yaml:"crit_half_cover_penalty"`
	CritFullCoverPenalty int `yaml:"crit_full_cover_penalty"`
}

// UnitMods are stat modifiers layered on top of mission-defined units.
type UnitMods struct {
	HPBonus  int `yaml:"hp_bonus"`
	AimBonus int `yaml:"aim_bonus"`
}

// ToRules converts the config into engine rules.
func (c TacticsConfig) ToRules() core.Rules {
	adj := core.Adjacency4
	if c.Rules.Diagonal {
		adj = core.Adjacency8
	}
	return core.Rules{
		ActionPoints:   c.Rules.ActionPoints,
		MoveRange:      c.Rules.MoveRange,
		EnemyMoveRange: c.Rules.EnemyMoveRange,
		Adjacency:      adj,
		FogEnabled:     c.Rules.Fog.Enabled,
		FogRadius:      c.Rules.Fog.Radius,
	}
}

// ToTuning converts the config into engine combat tuning.
func (c TacticsConfig) ToTuning() core.Tuning {
	return core.Tuning{
		BaseAim:              c.Combat.BaseAim,
		HitClampMin:          c.Combat.HitClampMin,
		HitClampMax:          c.Combat.HitClampMax,
		GrazeBand:            c.Combat.GrazeBand,
		FlankBonus:           c.Combat.FlankBonus,
		CoverHalfPenalty:     c.Combat.CoverHalfPenalty,
		CoverFullPenalty:     c.Combat.CoverFullPenalty,
		CritFlankBonus:       c.Combat.CritFlankBonus,
		CritHalfCoverPenalty: c.Combat.CritHalfCoverPenalty,
		CritFullCoverPenalty: c.Combat.CritFullCoverPenalty,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyRecruit   DifficultyPreset = "recruit"
	DifficultyVeteran   DifficultyPreset = "veteran"
	DifficultyCommander DifficultyPreset = "commander"
)

// ValidPreset reports whether the preset name is known.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyRecruit, DifficultyVeteran, DifficultyCommander:
		return true
	}
	return false
}
