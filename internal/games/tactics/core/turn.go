package core

import (
	"fmt"
	"math/rand"
)

// Rules are the movement and turn-economy knobs for a battle.
type Rules struct {
	ActionPoints   int       // AP per unit per round
	MoveRange      int       // max steps per move action (player)
	EnemyMoveRange int       // max steps per enemy activation
	Adjacency      Adjacency // 4-way or 8-way stepping
	FogEnabled     bool
	FogRadius      int
}

// DefaultRules returns the baseline turn rules.
func DefaultRules() Rules {
	return Rules{
		ActionPoints:   2,
		MoveRange:      6,
		EnemyMoveRange: 4,
		Adjacency:      Adjacency4,
		FogEnabled:     true,
		FogRadius:      8,
	}
}

// MissionOutcome is the terminal state of a battle.
type MissionOutcome int

const (
	MissionOngoing MissionOutcome = iota
	MissionWon
	MissionLost
)

// String returns a human-readable name for the outcome.
func (o MissionOutcome) String() string {
	switch o {
	case MissionWon:
		return "won"
	case MissionLost:
		return "lost"
	default:
		return "ongoing"
	}
}

// enemyEngageRange is how close an enemy wants to be before it prefers
// shooting over closing distance.
const enemyEngageRange = 8

// maxLogLines bounds the battle log ring.
const maxLogLines = 64

// Battle drives one mission: the grid, the player, the enemies and the
// turn structure. One player intent is processed at a time; there is no
// background work, so every operation completes or fails synchronously.
type Battle struct {
	Grid    *Grid
	Rules   Rules
	Tuning  Tuning
	Player  *Unit
	Enemies []*Unit
	Fog     *Fog
	Round   int
	Kills   int
	Log     []string

	rng *rand.Rand
}

// NewBattle wires a battle around an already-built grid. Spawn the player
// and enemies, then call Start.
func NewBattle(g *Grid, rules Rules, tuning Tuning, rng *rand.Rand) *Battle {
	g.Adjacency = rules.Adjacency
	return &Battle{
		Grid:   g,
		Rules:  rules,
		Tuning: tuning,
		Fog:    NewFog(rules.FogRadius, rules.FogEnabled),
		rng:    rng,
	}
}

// SpawnPlayer creates and places the player unit. Placement failures come
// from the grid unchanged.
func (b *Battle) SpawnPlayer(c Coord, hp, aim int, w *Weapon) (*Unit, error) {
	u, err := NewUnit(b.Grid, KindPlayer, c, hp, w)
	if err != nil {
		return nil, err
	}
	u.Aim = aim
	b.Player = u
	return u, nil
}

// SpawnEnemy creates and places an enemy unit.
func (b *Battle) SpawnEnemy(c Coord, hp, aim int, w *Weapon) (*Unit, error) {
	u, err := NewUnit(b.Grid, KindEnemy, c, hp, w)
	if err != nil {
		return nil, err
	}
	u.Aim = aim
	b.Enemies = append(b.Enemies, u)
	return u, nil
}

// Start opens round 1: full AP for the player, fog computed from its tile.
func (b *Battle) Start() {
	b.Round = 1
	b.Player.AP = b.Rules.ActionPoints
	b.Fog.Recompute(b.Grid, b.Player.Position())
	b.logf("round %d: engage", b.Round)
}

// Outcome reports whether the mission is decided.
func (b *Battle) Outcome() MissionOutcome {
	if b.Player == nil || !b.Player.Alive() {
		return MissionLost
	}
	for _, e := range b.Enemies {
		if e.Alive() {
			return MissionOngoing
		}
	}
	return MissionWon
}

// EnemyAt returns the living enemy standing on c, or nil.
func (b *Battle) EnemyAt(c Coord) *Unit {
	for _, e := range b.Enemies {
		if e.Alive() && e.Placed() && e.Position().Equal(c) {
			return e
		}
	}
	return nil
}

// AliveEnemies counts enemies still standing.
func (b *Battle) AliveEnemies() int {
	n := 0
	for _, e := range b.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// ReachableFill returns the flood fill of tiles the player can move to this
// action. Empty when the player is out of AP.
func (b *Battle) ReachableFill() FloodResult {
	if b.Player.AP <= 0 {
		return FloodResult{Start: b.Player.Position(), Costs: map[Coord]int{}}
	}
	return FloodFill(b.Grid, b.Player.Position(), b.Rules.MoveRange)
}

// MovePlayer walks the player along the cheapest path to dest, one grid
// step at a time so the move protocol's invariants hold for every step.
// Costs one action point. Failures leave player and grid exactly as they
// were and carry the precise legality error.
func (b *Battle) MovePlayer(dest Coord) (int, error) {
	if b.Outcome() != MissionOngoing {
		return 0, fmt.Errorf("move: mission over")
	}
	if b.Player.AP <= 0 {
		return 0, fmt.Errorf("move: %w", ErrNoActionPoints)
	}
	if !b.Grid.InBounds(dest) {
		return 0, fmt.Errorf("move to %v: %w", dest, ErrOutOfBounds)
	}
	if walkable, _ := b.Grid.IsWalkable(dest); !walkable {
		return 0, fmt.Errorf("move to %v: %w", dest, ErrBlocked)
	}
	if occupied, _ := b.Grid.IsOccupied(dest); occupied {
		return 0, fmt.Errorf("move to %v: %w", dest, ErrOccupied)
	}

	fill := b.ReachableFill()
	path := fill.PathTo(dest)
	if path == nil {
		return 0, fmt.Errorf("move to %v: %w", dest, ErrNoPath)
	}
	for _, step := range path[1:] {
		if err := b.Player.MoveTo(step); err != nil {
			// Every step was validated by the fill; a failure here means the
			// board changed underneath us and must not be masked.
			return 0, err
		}
	}
	b.Player.AP--
	b.Fog.Recompute(b.Grid, b.Player.Position())
	b.logf("moved to %v", dest)
	return len(path) - 1, nil
}

// PlayerFire resolves a shot from the player at the target enemy. Firing
// ends the turn's offense: it consumes all remaining AP and one round of
// ammo. Requires line of fire and a loaded weapon.
func (b *Battle) PlayerFire(target *Unit) (ShotResult, error) {
	if b.Outcome() != MissionOngoing {
		return ShotResult{}, fmt.Errorf("fire: mission over")
	}
	if b.Player.AP <= 0 {
		return ShotResult{}, fmt.Errorf("fire: %w", ErrNoActionPoints)
	}
	if !b.Player.Weapon.CanFire() {
		return ShotResult{}, fmt.Errorf("fire: %w", ErrNoAmmo)
	}
	from := b.Player.Position()
	to := target.Position()
	if !LOSClear(b.Grid, from, to) {
		return ShotResult{}, fmt.Errorf("fire at %v: %w", to, ErrNoLineOfFire)
	}

	res := ResolveShot(b.Grid, b.Tuning, b.rng, from, to, b.Player.Aim, b.Player.Weapon)
	b.Player.Weapon.ConsumeRound()
	b.Player.AP = 0

	if res.Damage > 0 {
		target.ApplyDamage(res.Damage)
		b.logf("%s for %d (%d%% rolled %d)", res.Outcome, res.Damage, res.HitChance, res.Roll)
		if !target.Alive() {
			b.killUnit(target)
		}
	} else {
		b.logf("%s (%d%% rolled %d)", res.Outcome, res.HitChance, res.Roll)
	}
	return res, nil
}

// PlayerReload refills the magazine for one action point.
func (b *Battle) PlayerReload() error {
	if b.Player.AP <= 0 {
		return fmt.Errorf("reload: %w", ErrNoActionPoints)
	}
	b.Player.Weapon.Reload()
	b.Player.AP--
	b.logf("reloaded %s", b.Player.Weapon.Spec.Name)
	return nil
}

// EndTurn closes the player phase, runs every living enemy, then opens the
// next round with fresh action points.
func (b *Battle) EndTurn() {
	if b.Outcome() != MissionOngoing {
		return
	}
	b.enemyPhase()
	if b.Outcome() != MissionOngoing {
		return
	}
	b.Round++
	b.Player.AP = b.Rules.ActionPoints
	b.Fog.Recompute(b.Grid, b.Player.Position())
	b.logf("round %d", b.Round)
}

// enemyPhase activates each living enemy: close in while the player is far
// or unseen, shoot once line of fire exists inside engagement range.
func (b *Battle) enemyPhase() {
	for _, e := range b.Enemies {
		if !e.Alive() || !e.Placed() {
			continue
		}
		b.activateEnemy(e)
		if !b.Player.Alive() {
			return
		}
	}
}

// activateEnemy runs one enemy's turn.
func (b *Battle) activateEnemy(e *Unit) {
	playerPos := b.Player.Position()

	steps := 0
	for steps < b.Rules.EnemyMoveRange {
		pos := e.Position()
		if LOSClear(b.Grid, pos, playerPos) && pos.Chebyshev(playerPos) <= enemyEngageRange {
			break
		}
		// The flood runs uncapped so a distant player is still found; the
		// surrounding loop caps how far the enemy actually walks.
		next, ok := NextStepToward(b.Grid, pos, playerPos, b.Grid.W*b.Grid.H)
		if !ok {
			break
		}
		if err := e.MoveTo(next); err != nil {
			break
		}
		steps++
	}

	pos := e.Position()
	if !LOSClear(b.Grid, pos, playerPos) {
		return
	}
	if !e.Weapon.CanFire() {
		e.Weapon.Reload()
		b.logf("enemy at %v reloads", pos)
		return
	}
	res := ResolveShot(b.Grid, b.Tuning, b.rng, pos, playerPos, e.Aim, e.Weapon)
	e.Weapon.ConsumeRound()
	if res.Damage > 0 {
		b.Player.ApplyDamage(res.Damage)
		b.logf("enemy %s you for %d (%d%%)", res.Outcome, res.Damage, res.HitChance)
		if !b.Player.Alive() {
			b.logf("you are down")
		}
	} else {
		b.logf("enemy %s (%d%%)", res.Outcome, res.HitChance)
	}
}

// killUnit takes a dead unit off the board.
func (b *Battle) killUnit(u *Unit) {
	//nolint:errcheck // A dead unit that was never placed cannot reach here.
	u.Remove()
	if u.Kind() == KindEnemy {
		b.Kills++
	}
	b.logf("%s down", u.Kind())
}

// logf appends to the battle log, trimming the oldest lines past the cap.
func (b *Battle) logf(format string, args ...any) {
	b.Log = append(b.Log, fmt.Sprintf(format, args...))
	if len(b.Log) > maxLogLines {
		b.Log = b.Log[len(b.Log)-maxLogLines:]
	}
}
