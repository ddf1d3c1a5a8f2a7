package tactics

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tactics/internal/core"
	"github.com/vovakirdan/tui-tactics/internal/games/tactics/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.battle == nil {
		g.renderOverlay(dst, "No missions found", "Check missions directory")
		return
	}

	g.renderMap(dst)
	g.renderLog(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Mission Complete", fmt.Sprintf("Score %d - press R to restart", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Mission Failed", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status area: stats line, hint line, shot preview.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	var hud string
	if g.battle != nil {
		b := g.battle
		hud = fmt.Sprintf(" %s | Round %d | AP %d | HP %d/%d | Ammo %d/%d | Kills %d",
			g.mission.Name, b.Round, b.Player.AP, b.Player.HP, b.Player.MaxHP,
			b.Player.Weapon.Ammo, b.Player.Weapon.Spec.MagSize, b.Kills)
	} else {
		hud = " Tactics"
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}

	controls := " Arrows: Cursor | Enter: Move | F: Fire | R: Reload | E: End Turn | V: Fog | P: Pause"
	dst.DrawTextWithColor(0, 2, controls, platformcore.ColorGray)

	g.renderTargetLine(dst, 3)
}

// renderTargetLine shows the hit preview for the hovered enemy, or the
// cover at the hovered tile, or the latest order error.
func (g *Game) renderTargetLine(dst *platformcore.Screen, y int) {
	if g.battle == nil {
		return
	}
	if g.status != "" {
		dst.DrawTextWithColor(1, y, g.status, platformcore.ColorBrightRed)
		return
	}

	b := g.battle
	if e := g.hoveredEnemy(); e != nil {
		pv := core.PreviewShot(b.Grid, b.Tuning, b.Player.Position(), e.Position(), b.Player.Aim, b.Player.Weapon)
		line := fmt.Sprintf("Target HP %d | %s", e.HP, pv.Breakdown.Text())
		if pv.LOS {
			line += fmt.Sprintf(" | crit %d%% | dmg %d-%d", pv.CritChance, pv.DmgMin, pv.DmgMax)
		}
		dst.DrawTextWithColor(1, y, line, platformcore.ColorBrightYellow)
		return
	}

	if b.Grid.InBounds(g.cursor) {
		label := core.CoverLabel(core.TileCover(b.Grid, g.cursor))
		dst.DrawTextWithColor(1, y, "Cover: "+label, platformcore.ColorGray)
	}
}

// renderMap draws terrain, fog, the reachable overlay, units and cursor.
func (g *Game) renderMap(dst *platformcore.Screen) {
	b := g.battle
	for y := 0; y < b.Grid.H; y++ {
		for x := 0; x < b.Grid.W; x++ {
			c := core.C(x, y)
			sx := g.gridOffsetX + x
			sy := g.gridOffsetY + y

			if !b.Fog.Explored(c) {
				dst.SetWithColor(sx, sy, ' ', platformcore.ColorDefault)
				continue
			}

			visible := b.Fog.Visible(c)
			r, color := g.tileGlyph(c, visible)
			dst.SetWithColor(sx, sy, r, color)
		}
	}

	// Cursor drawn last so it is always visible.
	cx := g.gridOffsetX + g.cursor.X
	cy := g.gridOffsetY + g.cursor.Y
	cell := dst.GetCell(cx, cy)
	r := cell.Rune
	if r == ' ' {
		r = '+'
	}
	dst.SetWithColor(cx, cy, r, platformcore.ColorBrightYellow)
}

// tileGlyph picks the rune and color for one map tile.
func (g *Game) tileGlyph(c core.Coord, visible bool) (rune, platformcore.Color) {
	b := g.battle

	if b.Grid.TerrainAt(c) == core.TerrainWall {
		if visible {
			return '#', platformcore.ColorWhite
		}
		return '#', platformcore.ColorGray
	}

	if visible {
		if b.Player.Placed() && b.Player.Position().Equal(c) {
			return '@', platformcore.ColorBrightGreen
		}
		if e := b.EnemyAt(c); e != nil {
			return 'e', platformcore.ColorBrightRed
		}
		if b.Player.AP > 0 && g.fill.Reachable(c) {
			return '·', platformcore.ColorCyan
		}
		return '·', platformcore.ColorGray
	}

	// Explored but currently unseen tiles show terrain only.
	return '·', platformcore.ColorGray
}

// renderLog draws the last battle log lines under the map.
func (g *Game) renderLog(dst *platformcore.Screen) {
	b := g.battle
	baseY := dst.Height() - g.logHeight
	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, baseY-1, '─', platformcore.ColorGray)
	}

	start := platformcore.Max(0, len(b.Log)-g.logHeight)
	for i, line := range b.Log[start:] {
		dst.DrawTextWithColor(1, baseY+i, line, platformcore.ColorGray)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := platformcore.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

func (g *Game) drawCenteredText(dst *platformcore.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
