package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	hudHeight    = 2 // Score line + spacer above the board
	footerHeight = 2 // Spacer + hint line below the board
)

// tileColors assigns a color to each known tile value.
var tileColors = map[int]core.Color{
	2:    core.ColorPink,
	4:    core.ColorSalmon,
	8:    core.ColorCoral,
	16:   core.ColorBrightRed,
	32:   core.ColorBrightRed,
	64:   core.ColorRed,
	128:  core.ColorOrange,
	256:  core.ColorGold,
	512:  core.ColorGold,
	1024: core.ColorBrightYellow,
	2048: core.ColorYellow,
	4096: core.ColorGreen,
	8192: core.ColorDarkGreen,
}

// TileColor returns the display color for a tile value.
// Unknown values fall back to gray.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return core.ColorGray
}

// ScoreLine returns the HUD score text.
func ScoreLine(score, highScore int) string {
	return fmt.Sprintf("Score: %d | Highscore: %d", score, highScore)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	geo := g.geometry()
	snap := g.board.Snapshot()

	g.renderHUD(dst, geo, snap)
	g.renderBackground(dst, geo)

	if g.playback.active && !g.playback.lastFrame() {
		g.renderPlayback(dst, geo)
	} else {
		for _, t := range snap.Tiles {
			drawTile(dst, geo.CellRect(t.Pos.Col, t.Pos.Row), t.Value)
		}
	}

	g.renderOverlays(dst, geo, snap)
}

// geometry centers the board horizontally below the HUD.
func (g *Game) geometry() Geometry {
	geo := TerminalGeometry(0, hudHeight)
	geo.OriginX = max((g.screenW-geo.Width())/2, 0)
	return geo
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score bar and the hint line.
func (g *Game) renderHUD(dst *core.Screen, geo Geometry, snap Snapshot) {
	dst.DrawTextCentered(0, ScoreLine(snap.Score, snap.HighScore))
	dst.DrawTextCentered(geo.Bounds().Bottom()+1, "Use Arrow Keys to Slide Board")
}

// renderBackground draws an empty slot for every cell.
func (g *Game) renderBackground(dst *core.Screen, geo Geometry) {
	for _, p := range AllPositions() {
		r := geo.CellRect(p.Col, p.Row)
		cx, cy := r.Center()
		dst.SetColored(cx, cy, '·', core.ColorGray)
	}
}

// renderPlayback draws the pre-shift tiles at their interpolated positions
// and, from the midpoint on, the spawned tile.
func (g *Game) renderPlayback(dst *core.Screen, geo Geometry) {
	pb := g.playback
	for _, m := range pb.moves {
		from := geo.CellRect(m.From.Col, m.From.Row)
		to := geo.CellRect(m.To.Col, m.To.Row)
		r := core.Rect{
			X: core.Lerp(from.X, to.X, pb.ticks, pb.duration),
			Y: core.Lerp(from.Y, to.Y, pb.ticks, pb.duration),
			W: from.W,
			H: from.H,
		}
		drawTile(dst, r, m.Value)
	}

	if pb.showSpawn() {
		drawTile(dst, geo.CellRect(pb.spawned.Pos.Col, pb.spawned.Pos.Row), pb.spawned.Value)
	}
}

// drawTile draws a boxed tile with its value centered.
func drawTile(dst *core.Screen, r core.Rect, value int) {
	color := TileColor(value)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, color)

	label := strconv.Itoa(value)
	cx, cy := r.Center()
	dst.DrawTextColored(cx-len(label)/2, cy, label, color)
}

// renderOverlays draws pause and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, geo Geometry, snap Snapshot) {
	centerX, centerY := geo.Bounds().Center()

	if g.paused {
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if snap.State == StateGameOver {
		dst.Dim(core.ColorGray)
		drawOverlay(dst, centerX, centerY,
			"GAME OVER!",
			fmt.Sprintf("Max tile: %d", snap.MaxTile),
			"Enter/R: restart",
		)
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.Rect{X: centerX - boxW/2, Y: centerY - boxH/2, W: boxW, H: boxH}

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
