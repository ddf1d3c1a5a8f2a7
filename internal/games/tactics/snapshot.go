package tactics

import (
	"strings"

	"github.com/vovakirdan/tui-tactics/internal/games/tactics/core"
)

// Snapshot renders the battle as plain ASCII, one row per line.
// Fog is ignored; this is a debugging and testing aid, not the game view.
func Snapshot(b *core.Battle) string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow((b.Grid.W + 1) * b.Grid.H)
	for y := 0; y < b.Grid.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Grid.W; x++ {
			sb.WriteByte(snapshotRune(b, core.C(x, y)))
		}
	}
	return sb.String()
}

func snapshotRune(b *core.Battle, c core.Coord) byte {
	if b.Grid.TerrainAt(c) == core.TerrainWall {
		return '#'
	}
	if b.Player != nil && b.Player.Alive() && b.Player.Placed() && b.Player.Position().Equal(c) {
		return '@'
	}
	if b.EnemyAt(c) != nil {
		return 'e'
	}
	return '.'
}
