package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tilt2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// boardDims returns the outer width and height of a size x size grid.
func boardDims(size int) (int, int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardDims(g.model.Size())
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and mode information.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.model.Score()))

	var info string
	switch g.mode {
	case ModeCampaign:
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.currentTarget)
	case ModeEndless:
		info = fmt.Sprintf("Max: %d", g.model.MaxTile())
	default:
		info = fmt.Sprintf("Best: %d", g.model.MaxScore())
	}
	dst.DrawText(max(boardX+boardW-len(info), boardX), 1, info)

	mode := "Classic"
	switch g.mode {
	case ModeCampaign:
		mode = "Campaign"
	case ModeEndless:
		mode = "Endless"
	}
	dst.DrawTextColored(boardX+(boardW-len(mode))/2, 2, mode, core.ColorGray)
}

// renderBoard draws the grid with the top row of the board at the top.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.model.Size()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridCorner(x, y, n))

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y, row := range g.model.Values() {
		for x, val := range row {
			if val == 0 {
				continue
			}
			text := strconv.Itoa(val)
			pad := max((cellWidth-1-len(text))/2, 0)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColored(cellX+pad, cellY, text, core.TileColor(val))
		}
	}
}

// gridCorner returns the box-drawing rune at grid intersection (x, y).
func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause, level and end-of-game overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.levelCleared:
		reached := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, cx, cy, reached, "Final level complete!")
		} else {
			g.drawOverlay(dst, cx, cy, reached, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won && g.mode == ModeCampaign:
		g.drawOverlay(dst, cx, cy, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.won:
		g.drawOverlay(dst, cx, cy, "YOU WIN!", fmt.Sprintf("Reached %d", g.currentTarget), "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, cx, cy, "GAME OVER", fmt.Sprintf("Max tile: %d", g.model.MaxTile()), "Press R to restart")
	}
}

// drawOverlay draws a boxed block of lines centered on (cx, cy).
func (g *Game) drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	box := core.CenteredRect(cx, cy, width+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(cx-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
