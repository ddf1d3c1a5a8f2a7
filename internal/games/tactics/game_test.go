package tactics

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-tactics/internal/core"
	"github.com/vovakirdan/tui-tactics/internal/registry"
)

func newTestGame(t *testing.T, missionID string, seed int64) *Game {
	t.Helper()
	SetMissionID(missionID)
	SetDifficultyPreset("")
	SetConfigPath("")
	t.Cleanup(func() {
		SetMissionID("")
		SetDifficultyPreset("")
		SetConfigPath("")
	})

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	if g.battle == nil {
		t.Fatal("Reset did not start a battle")
	}
	return g
}

func step(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	frame := platformcore.NewInputFrame()
	for _, a := range actions {
		frame.Set(a)
	}
	return g.Step(frame)
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("tactics") {
		t.Fatal("tactics game not registered")
	}
	g, err := registry.Create("tactics")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "tactics" || g.Title() != "Tactics" {
		t.Errorf("unexpected identity: %s / %s", g.ID(), g.Title())
	}
}

func TestListMissions(t *testing.T) {
	all, err := ListMissions()
	if err != nil {
		t.Fatalf("ListMissions failed: %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("expected at least 3 builtin missions, got %d", len(all))
	}
	if all[0].ID != "m01" {
		t.Errorf("missions should be sorted by ID, first is %s", all[0].ID)
	}
}

func TestGameResetLoadsFirstMission(t *testing.T) {
	g := newTestGame(t, "", 1)

	st := g.State()
	if st.Mission != "m01" {
		t.Errorf("Mission = %s, expected m01", st.Mission)
	}
	if st.GameOver || st.Paused {
		t.Errorf("fresh game should be running: %+v", st)
	}
	if st.Turns != 1 {
		t.Errorf("Turns = %d, expected round 1", st.Turns)
	}
	if !g.cursor.Equal(g.battle.Player.Position()) {
		t.Error("cursor should start on the player")
	}
}

func TestGameMissionSelection(t *testing.T) {
	g := newTestGame(t, "m02", 1)
	if g.State().Mission != "m02" {
		t.Errorf("Mission = %s, expected m02", g.State().Mission)
	}

	// Unknown IDs fall back to the first mission.
	g2 := newTestGame(t, "nope", 1)
	if g2.State().Mission != "m01" {
		t.Errorf("unknown mission ID should fall back to m01, got %s", g2.State().Mission)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t, "m01", 1)

	st := step(g, platformcore.ActionPause).State
	if !st.Paused {
		t.Fatal("pause action should pause")
	}

	// Input is ignored while paused.
	before := g.cursor
	step(g, platformcore.ActionRight)
	if !g.cursor.Equal(before) {
		t.Error("cursor should not move while paused")
	}

	if step(g, platformcore.ActionPause).State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameCursorClamped(t *testing.T) {
	g := newTestGame(t, "m01", 1)

	for i := 0; i < 100; i++ {
		step(g, platformcore.ActionLeft, platformcore.ActionUp)
	}
	if g.cursor.X != 0 || g.cursor.Y != 0 {
		t.Errorf("cursor should clamp at origin, got %v", g.cursor)
	}

	for i := 0; i < 100; i++ {
		step(g, platformcore.ActionRight, platformcore.ActionDown)
	}
	if g.cursor.X != g.battle.Grid.W-1 || g.cursor.Y != g.battle.Grid.H-1 {
		t.Errorf("cursor should clamp at far corner, got %v", g.cursor)
	}
}

func TestGameMoveOrder(t *testing.T) {
	g := newTestGame(t, "m01", 1)

	// Move the cursor one tile right of the player and confirm.
	step(g, platformcore.ActionRight)
	apBefore := g.battle.Player.AP
	step(g, platformcore.ActionConfirm)

	if !g.battle.Player.Position().Equal(g.cursor) {
		t.Errorf("player should stand on the cursor tile after move")
	}
	if g.battle.Player.AP != apBefore-1 {
		t.Errorf("move should cost one action point, AP %d -> %d", apBefore, g.battle.Player.AP)
	}
	if g.status != "" {
		t.Errorf("valid order should clear status, got %q", g.status)
	}
}

func TestGameInvalidOrderSetsStatus(t *testing.T) {
	g := newTestGame(t, "m01", 1)

	// Cursor starts on the player; moving onto a wall corner.
	for i := 0; i < 20; i++ {
		step(g, platformcore.ActionUp, platformcore.ActionLeft)
	}
	step(g, platformcore.ActionConfirm)
	if g.status == "" {
		t.Error("ordering a move onto a wall should report an error")
	}

	// Firing with no target under the cursor.
	step(g, platformcore.ActionFire)
	if g.status != "no target under cursor" {
		t.Errorf("status = %q", g.status)
	}
}

func TestGameEndTurnAdvancesRound(t *testing.T) {
	g := newTestGame(t, "m01", 1)

	step(g, platformcore.ActionEndTurn)
	if got := g.State().Turns; got != 2 {
		t.Errorf("round after end turn = %d, expected 2", got)
	}
	if g.battle.Player.AP != g.rules.ActionPoints {
		t.Error("player action points should refresh on the new round")
	}
}

func TestGameDeterministicBySeed(t *testing.T) {
	run := func(seed int64) (string, []string) {
		g := newTestGame(t, "m01", seed)
		for i := 0; i < 5; i++ {
			step(g, platformcore.ActionEndTurn)
		}
		return Snapshot(g.battle), append([]string(nil), g.battle.Log...)
	}

	snapA, logA := run(42)
	snapB, logB := run(42)
	if snapA != snapB {
		t.Errorf("same seed should produce identical battles:\n%s\nvs\n%s", snapA, snapB)
	}
	if strings.Join(logA, "\n") != strings.Join(logB, "\n") {
		t.Error("same seed should produce identical battle logs")
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, "m01", 1)
	snap := Snapshot(g.battle)

	lines := strings.Split(snap, "\n")
	if len(lines) != g.battle.Grid.H {
		t.Fatalf("snapshot has %d rows, expected %d", len(lines), g.battle.Grid.H)
	}
	if strings.Count(snap, "@") != 1 {
		t.Errorf("snapshot should contain exactly one player:\n%s", snap)
	}
	if strings.Count(snap, "e") != 1 {
		t.Errorf("snapshot should contain one enemy:\n%s", snap)
	}
	if !strings.HasPrefix(lines[0], "##") {
		t.Errorf("top row should be wall:\n%s", snap)
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := newTestGame(t, "m01", 1)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Breach") {
		t.Error("HUD should show the mission name")
	}
	if !strings.Contains(out, "@") {
		t.Error("map should show the player")
	}
	if !strings.Contains(out, "Round 1") {
		t.Error("HUD should show the round")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	SetMissionID("")
	t.Cleanup(func() { SetMissionID("") })

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 10, ScreenH: 6, Seed: 1})
	if !g.tooSmall {
		t.Fatal("10x6 screen should be too small for any mission")
	}

	screen := platformcore.NewScreen(10, 6)
	g.Render(screen) // must not panic
}
