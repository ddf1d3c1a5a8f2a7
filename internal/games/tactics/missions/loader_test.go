package missions

import (
	"math/rand"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/tui-tactics/internal/games/tactics/core"
	"github.com/vovakirdan/tui-tactics/internal/games/tactics/missions/formats"
)

// getTestdataPath returns path to testdata/missions.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "missions")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	ms, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(ms) < 3 {
		t.Errorf("expected at least 3 missions, got %d", len(ms))
	}
	// Should be sorted by ID
	for i := 1; i < len(ms); i++ {
		if ms[i-1].ID >= ms[i].ID {
			t.Errorf("missions not sorted: %s >= %s", ms[i-1].ID, ms[i].ID)
		}
	}
}

func TestLoaderLoadBreach(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	m, err := loader.LoadByID("m01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if m.Name != "Breach" {
		t.Errorf("expected Name 'Breach', got %q", m.Name)
	}
	if m.Width != 14 || m.Height != 8 {
		t.Errorf("expected 14x8, got %dx%d", m.Width, m.Height)
	}
	if !m.PlayerSpawn.Equal(core.C(1, 1)) {
		t.Errorf("player spawn = %v, want (1,1)", m.PlayerSpawn)
	}
	if len(m.EnemySpawns) != 1 {
		t.Errorf("enemy spawns = %d, want 1", len(m.EnemySpawns))
	}
	if m.Player.HP != 10 || m.Player.Weapon != "assault_rifle" {
		t.Errorf("player stats wrong: %+v", m.Player)
	}
	if m.Enemies.HP != 4 || m.Enemies.Aim != -10 {
		t.Errorf("enemy stats wrong: %+v", m.Enemies)
	}
}

func TestMissionToGrid(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	m, err := loader.LoadByID("m01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	g := m.ToGrid()
	if g.W != m.Width || g.H != m.Height {
		t.Error("grid dimensions mismatch")
	}
	// Border is walled, spawn tiles are floor.
	if g.TerrainAt(core.C(0, 0)) != core.TerrainWall {
		t.Error("expected wall at (0,0)")
	}
	if g.TerrainAt(m.PlayerSpawn) != core.TerrainGround {
		t.Error("player spawn should be walkable ground")
	}
	for _, c := range m.EnemySpawns {
		if g.TerrainAt(c) != core.TerrainGround {
			t.Errorf("enemy spawn %v should be walkable ground", c)
		}
	}
}

func TestMissionNewBattle(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	m, err := loader.LoadByID("m02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	b, err := m.NewBattle(core.DefaultRules(), core.DefaultTuning(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewBattle failed: %v", err)
	}
	if b.Round != 1 {
		t.Errorf("round = %d, want 1", b.Round)
	}
	if !b.Player.Position().Equal(m.PlayerSpawn) {
		t.Errorf("player at %v, want %v", b.Player.Position(), m.PlayerSpawn)
	}
	if b.AliveEnemies() != len(m.EnemySpawns) {
		t.Errorf("alive enemies = %d, want %d", b.AliveEnemies(), len(m.EnemySpawns))
	}
	if b.Player.HP != m.Player.HP {
		t.Errorf("player HP = %d, want %d", b.Player.HP, m.Player.HP)
	}
	if b.Outcome() != core.MissionOngoing {
		t.Errorf("outcome = %v, want ongoing", b.Outcome())
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	if _, err := loader.LoadByID("nonexistent"); err == nil {
		t.Error("expected error for nonexistent mission")
	}
}

func TestLoaderListIDs(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) < 3 {
		t.Errorf("expected at least 3 IDs, got %d", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestLoaderDeterministicOrder(t *testing.T) {
	loader := NewLoader(getTestdataPath())

	ms1, _ := loader.LoadAll()
	ms2, _ := loader.LoadAll()
	for i := range ms1 {
		if ms1[i].ID != ms2[i].ID {
			t.Errorf("order not deterministic at %d", i)
		}
	}
}

func TestParseYAMLValidation(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"no id", "name: x\ntiles: |\n  #@e#\n"},
		{"no player spawn", "id: x\ntiles: |\n  #..e#\n"},
		{"two player spawns", "id: x\ntiles: |\n  #@@e#\n"},
		{"no enemies", "id: x\ntiles: |\n  #@..#\n"},
		{"unknown rune", "id: x\ntiles: |\n  #@?e#\n"},
		{"empty map", "id: x\ntiles: \"\"\n"},
	}
	for _, tc := range cases {
		if _, err := formats.ParseYAML([]byte(tc.src)); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}

func TestParseYAMLPadsShortRows(t *testing.T) {
	src := "id: pad\ntiles: |\n  #####\n  #@e.#\n  ###\n"
	m, err := formats.ParseYAML([]byte(src))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if m.Width != 5 || m.Height != 3 {
		t.Fatalf("size = %dx%d, want 5x3", m.Width, m.Height)
	}
	// The short bottom row is padded with walls.
	if m.Walls[core.C(4, 2)] != core.TerrainWall {
		t.Error("padded cell should be a wall")
	}
}
