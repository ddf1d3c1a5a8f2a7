// Package missions provides mission loading functionality for the tactics
// game. This package depends on core but core does not depend on missions.
package missions

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-tactics/internal/games/tactics/core"
	"github.com/vovakirdan/tui-tactics/internal/games/tactics/missions/formats"
)

// Mission is a complete mission definition.
type Mission struct {
	ID          string
	Name        string
	Briefing    string
	Width       int
	Height      int
	Walls       map[core.Coord]core.Terrain
	PlayerSpawn core.Coord
	EnemySpawns []core.Coord
	Player      formats.UnitSpec
	Enemies     formats.UnitSpec
	Metadata    map[string]string
	FilePath    string
}

// ToGrid builds the mission's grid.
func (m *Mission) ToGrid() *core.Grid {
	return core.NewGrid(m.Width, m.Height, m.Walls)
}

// NewBattle builds a ready battle: grid, player and enemies placed, round
// opened. Spawn failures surface the grid's own legality errors.
func (m *Mission) NewBattle(rules core.Rules, tuning core.Tuning, rng *rand.Rand) (*core.Battle, error) {
	b := core.NewBattle(m.ToGrid(), rules, tuning, rng)
	if _, err := b.SpawnPlayer(m.PlayerSpawn, m.Player.HP, m.Player.Aim, core.NewWeapon(m.Player.Weapon)); err != nil {
		return nil, fmt.Errorf("mission %s: player spawn: %w", m.ID, err)
	}
	for _, c := range m.EnemySpawns {
		if _, err := b.SpawnEnemy(c, m.Enemies.HP, m.Enemies.Aim, core.NewWeapon(m.Enemies.Weapon)); err != nil {
			return nil, fmt.Errorf("mission %s: enemy spawn at %v: %w", m.ID, c, err)
		}
	}
	b.Start()
	return b, nil
}

// Loader handles loading missions from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a mission loader rooted at a directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all mission files, sorted by ID for
// deterministic ordering.
func (l *Loader) LoadAll() ([]Mission, error) {
	var missions []Mission

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}
		m, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		missions = append(missions, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(missions, func(i, j int) bool {
		return missions[i].ID < missions[j].ID
	})
	return missions, nil
}

// LoadFile loads a single mission file.
func (l *Loader) LoadFile(path string) (Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mission{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Mission{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return Mission{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Briefing:    parsed.Briefing,
		Width:       parsed.Width,
		Height:      parsed.Height,
		Walls:       parsed.Walls,
		PlayerSpawn: parsed.PlayerSpawn,
		EnemySpawns: parsed.EnemySpawns,
		Player:      parsed.Player,
		Enemies:     parsed.Enemies,
		Metadata:    parsed.Metadata,
		FilePath:    path,
	}, nil
}

// LoadByID loads a specific mission by ID.
func (l *Loader) LoadByID(id string) (Mission, error) {
	missions, err := l.LoadAll()
	if err != nil {
		return Mission{}, err
	}
	for _, m := range missions {
		if m.ID == id {
			return m, nil
		}
	}
	return Mission{}, fmt.Errorf("mission not found: %s", id)
}

// ListIDs returns all mission IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	missions, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(missions))
	for i, m := range missions {
		ids[i] = m.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Mission, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Mission{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
