// Package formats provides pluggable mission file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tactics/internal/games/tactics/core"
	"gopkg.in/yaml.v3"
)

// Tile runes accepted in a mission map.
const (
	runeWall   = '#'
	runeFloor  = '.'
	runePlayer = '@'
	runeEnemy  = 'e'
)

// YAMLMission is the on-disk YAML structure for a mission file.
type YAMLMission struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Briefing string            `yaml:"briefing,omitempty"`
	Tiles    string            `yaml:"tiles"`
	Player   YAMLUnit          `yaml:"player,omitempty"`
	Enemies  YAMLUnit          `yaml:"enemies,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLUnit is a unit stat block. Zero fields fall back to defaults.
type YAMLUnit struct {
	HP     int    `yaml:"hp,omitempty"`
	Aim    int    `yaml:"aim,omitempty"`
	Weapon string `yaml:"weapon,omitempty"`
}

// UnitSpec is a resolved unit stat block.
type UnitSpec struct {
	HP     int
	Aim    int
	Weapon string
}

// Mission is a parsed mission ready for use.
type Mission struct {
	ID          string
	Name        string
	Briefing    string
	Width       int
	Height      int
	Walls       map[core.Coord]core.Terrain
	PlayerSpawn core.Coord
	EnemySpawns []core.Coord
	Player      UnitSpec
	Enemies     UnitSpec
	Metadata    map[string]string
}

// ParseYAML parses a YAML mission file and decodes its tile map.
func ParseYAML(data []byte) (Mission, error) {
	var ym YAMLMission
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Mission{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Mission{}, fmt.Errorf("mission has no id")
	}

	m := Mission{
		ID:       ym.ID,
		Name:     ym.Name,
		Briefing: ym.Briefing,
		Walls:    make(map[core.Coord]core.Terrain),
		Player:   resolveUnit(ym.Player, UnitSpec{HP: 10, Aim: 0, Weapon: "assault_rifle"}),
		Enemies:  resolveUnit(ym.Enemies, UnitSpec{HP: 4, Aim: -10, Weapon: "assault_rifle"}),
		Metadata: ym.Metadata,
	}
	if err := parseTiles(&m, ym.Tiles); err != nil {
		return Mission{}, fmt.Errorf("mission %s: %w", m.ID, err)
	}
	return m, nil
}

// resolveUnit fills a stat block's zero fields from the defaults.
func resolveUnit(y YAMLUnit, def UnitSpec) UnitSpec {
	spec := def
	if y.HP > 0 {
		spec.HP = y.HP
	}
	if y.Aim != 0 {
		spec.Aim = y.Aim
	}
	if y.Weapon != "" {
		spec.Weapon = y.Weapon
	}
	return spec
}

// parseTiles decodes the ASCII map: '#' wall, '.' floor, '@' player spawn,
// 'e' enemy spawn. Rows shorter than the widest row are padded with walls.
func parseTiles(m *Mission, tiles string) error {
	rows := splitRows(tiles)
	if len(rows) == 0 {
		return fmt.Errorf("empty tile map")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	m.Width = width
	m.Height = len(rows)

	playerSeen := false
	for y, row := range rows {
		for x := 0; x < width; x++ {
			c := core.C(x, y)
			if x >= len(row) {
				m.Walls[c] = core.TerrainWall
				continue
			}
			switch row[x] {
			case runeWall:
				m.Walls[c] = core.TerrainWall
			case runeFloor:
			case runePlayer:
				if playerSeen {
					return fmt.Errorf("duplicate player spawn at %v", c)
				}
				playerSeen = true
				m.PlayerSpawn = c
			case runeEnemy:
				m.EnemySpawns = append(m.EnemySpawns, c)
			default:
				return fmt.Errorf("unknown tile %q at %v", row[x], c)
			}
		}
	}
	if !playerSeen {
		return fmt.Errorf("no player spawn")
	}
	if len(m.EnemySpawns) == 0 {
		return fmt.Errorf("no enemy spawns")
	}
	return nil
}

// splitRows trims the tile block and drops blank edge lines.
func splitRows(tiles string) []string {
	var rows []string
	for _, line := range strings.Split(tiles, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" && (len(rows) == 0) {
			continue
		}
		rows = append(rows, line)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
