// Package tactics implements a turn-based squad combat game: move across a
// walled grid, trade fire with enemies, use cover, win the mission.
package tactics

import (
	"errors"
	"math/rand"
	"path/filepath"
	"runtime"

	"github.com/vovakirdan/tui-tactics/internal/config"
	platformcore "github.com/vovakirdan/tui-tactics/internal/core"
	"github.com/vovakirdan/tui-tactics/internal/games/tactics/core"
	"github.com/vovakirdan/tui-tactics/internal/games/tactics/missions"
	"github.com/vovakirdan/tui-tactics/internal/registry"
)

// Package-level variables for configuration
var (
	selectedMissionID string
	missionDir        string
	configPath        string
	difficultyPreset  string
)

// SetMissionID selects which mission Reset loads. Empty picks the first.
func SetMissionID(id string) {
	selectedMissionID = id
}

// SetMissionDir overrides the directory missions are loaded from.
func SetMissionDir(dir string) {
	missionDir = dir
}

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset applies a named difficulty on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register("tactics", func() registry.Game {
		return New()
	})
}

// Game wraps a battle behind the platform's game interface.
type Game struct {
	screenW int
	screenH int
	rng     *rand.Rand
	tick    uint64

	cfg    config.TacticsConfig
	rules  core.Rules
	tuning core.Tuning

	loader      *missions.Loader
	allMissions []missions.Mission
	mission     missions.Mission
	battle      *core.Battle

	cursor   core.Coord
	fill     core.FloodResult
	score    int
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
	status   string

	hudHeight   int
	logHeight   int
	gridOffsetX int
	gridOffsetY int
}

// New creates a new tactics game.
func New() *Game {
	return &Game{
		hudHeight: 4,
		logHeight: 4,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tactics"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tactics"
}

// getMissionsPath returns the path to the builtin missions directory.
func getMissionsPath() string {
	if missionDir != "" {
		return missionDir
	}
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "testdata", "missions")
}

// ListMissions loads every available mission definition.
func ListMissions() ([]missions.Mission, error) {
	return missions.NewLoader(getMissionsPath()).LoadAll()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.status = ""

	// Load tuning config; a broken custom file falls back to defaults.
	loaded, err := config.LoadTactics(configPath)
	if err != nil {
		loaded = config.DefaultTacticsConfig()
	}
	if difficultyPreset != "" && config.ValidPreset(config.DifficultyPreset(difficultyPreset)) {
		config.ApplyTacticsPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded
	g.rules = loaded.ToRules()
	g.tuning = loaded.ToTuning()

	// Load missions
	g.loader = missions.NewLoader(getMissionsPath())
	all, err := g.loader.LoadAll()
	if err != nil || len(all) == 0 {
		g.gameOver = true
		return
	}
	g.allMissions = all

	g.mission = all[0]
	if selectedMissionID != "" {
		for _, m := range all {
			if m.ID == selectedMissionID {
				g.mission = m
				break
			}
		}
	}

	g.startMission()
}

// startMission builds the battle for the current mission.
func (g *Game) startMission() {
	m := g.mission
	m.Player.HP = platformcore.Max(1, m.Player.HP+g.cfg.Player.HPBonus)
	m.Player.Aim += g.cfg.Player.AimBonus
	m.Enemies.HP = platformcore.Max(1, m.Enemies.HP+g.cfg.Enemies.HPBonus)
	m.Enemies.Aim += g.cfg.Enemies.AimBonus

	battle, err := m.NewBattle(g.rules, g.tuning, g.rng)
	if err != nil {
		g.gameOver = true
		return
	}
	g.battle = battle
	g.cursor = battle.Player.Position()
	g.fill = battle.ReachableFill()
	g.calculateLayout()
}

// calculateLayout centers the map between HUD and log areas.
func (g *Game) calculateLayout() {
	availW := g.screenW - 2
	availH := g.screenH - g.hudHeight - g.logHeight - 1

	if g.battle == nil || availW < g.battle.Grid.W || availH < g.battle.Grid.H {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.gridOffsetX = (g.screenW - g.battle.Grid.W) / 2
	g.gridOffsetY = g.hudHeight + (availH-g.battle.Grid.H)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle restart
	if input.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.battle == nil {
		return platformcore.StepResult{State: g.State()}
	}

	g.handleCursor(input)
	g.handleOrders(input)
	g.checkOutcome()

	return platformcore.StepResult{State: g.State()}
}

// handleCursor moves the tile cursor, clamped to the map.
func (g *Game) handleCursor(input platformcore.InputFrame) {
	c := g.cursor
	if input.Has(platformcore.ActionUp) {
		c.Y--
	}
	if input.Has(platformcore.ActionDown) {
		c.Y++
	}
	if input.Has(platformcore.ActionLeft) {
		c.X--
	}
	if input.Has(platformcore.ActionRight) {
		c.X++
	}
	c.X = platformcore.Clamp(c.X, 0, g.battle.Grid.W-1)
	c.Y = platformcore.Clamp(c.Y, 0, g.battle.Grid.H-1)
	g.cursor = c
}

// handleOrders translates input into battle commands.
func (g *Game) handleOrders(input platformcore.InputFrame) {
	b := g.battle

	if input.Has(platformcore.ActionConfirm) {
		if _, err := b.MovePlayer(g.cursor); err != nil {
			g.status = orderError(err)
		} else {
			g.status = ""
		}
		g.fill = b.ReachableFill()
	}

	if input.Has(platformcore.ActionFire) {
		target := g.hoveredEnemy()
		if target == nil {
			g.status = "no target under cursor"
		} else if _, err := b.PlayerFire(target); err != nil {
			g.status = orderError(err)
		} else {
			g.status = ""
			g.score = b.Kills * 100
		}
		g.fill = b.ReachableFill()
	}

	if input.Has(platformcore.ActionReload) {
		if err := b.PlayerReload(); err != nil {
			g.status = orderError(err)
		} else {
			g.status = ""
		}
		g.fill = b.ReachableFill()
	}

	if input.Has(platformcore.ActionEndTurn) {
		b.EndTurn()
		g.status = ""
		g.fill = b.ReachableFill()
	}

	if input.Has(platformcore.ActionToggleFog) {
		b.Fog.Enabled = !b.Fog.Enabled
		b.Fog.Recompute(b.Grid, b.Player.Position())
	}
}

// hoveredEnemy returns the visible enemy under the cursor, or nil.
func (g *Game) hoveredEnemy() *core.Unit {
	e := g.battle.EnemyAt(g.cursor)
	if e == nil {
		return nil
	}
	if !g.battle.Fog.Visible(e.Position()) {
		return nil
	}
	return e
}

// checkOutcome finalizes the run once the battle is decided.
func (g *Game) checkOutcome() {
	switch g.battle.Outcome() {
	case core.MissionWon:
		g.won = true
		g.gameOver = true
		g.score = g.finalScore()
	case core.MissionLost:
		g.gameOver = true
		g.score = g.finalScore()
	}
}

// finalScore values kills, surviving health and speed.
func (g *Game) finalScore() int {
	b := g.battle
	score := b.Kills * 100
	if g.won || b.Outcome() == core.MissionWon {
		score += b.Player.HP * 10
		score += platformcore.Max(0, 300-(b.Round-1)*25)
	}
	return score
}

// orderError maps battle errors to short HUD messages.
func orderError(err error) string {
	switch {
	case errors.Is(err, core.ErrNoActionPoints):
		return "no action points left"
	case errors.Is(err, core.ErrNoAmmo):
		return "magazine empty, reload"
	case errors.Is(err, core.ErrNoLineOfFire):
		return "no line of fire"
	case errors.Is(err, core.ErrNoPath):
		return "can't reach that tile"
	case errors.Is(err, core.ErrBlocked):
		return "tile is blocked"
	case errors.Is(err, core.ErrOccupied):
		return "tile is occupied"
	case errors.Is(err, core.ErrOutOfBounds):
		return "outside the map"
	default:
		return err.Error()
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Score:    g.score,
		Mission:  g.mission.ID,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.battle != nil {
		st.Turns = g.battle.Round
	}
	if g.gameOver {
		if g.won {
			st.Outcome = core.MissionWon.String()
		} else {
			st.Outcome = core.MissionLost.String()
		}
	}
	return st
}
