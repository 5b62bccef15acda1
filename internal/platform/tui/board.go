package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tilescore/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// BoardView describes what the viewer wants drawn around a frame.
type BoardView struct {
	Title   string
	Frame   core.Frame
	Total   int // number of frames in the replay
	Paused  bool
	Rate    int
	Hint    string
	screenW int
	screenH int
}

// minSize returns the smallest screen that fits a board of the given size.
func minSize(size int) (w, h int) {
	return size*cellWidth + 1 + 4, hudHeight + size*cellHeight + 1 + 3
}

// RenderBoard draws a replay frame to the screen.
func RenderBoard(dst *core.Screen, v BoardView) {
	dst.Clear()
	v.screenW, v.screenH = dst.Width(), dst.Height()

	size := v.Frame.Size()
	minW, minH := minSize(size)
	if v.screenW < minW || v.screenH < minH {
		renderTooSmall(dst, v)
		return
	}

	boardW := size*cellWidth + 1
	board := core.NewRect((v.screenW-boardW)/2, hudHeight+1, boardW, size*cellHeight+1)

	renderHUD(dst, v, board)
	renderGrid(dst, v.Frame, board.X, board.Y)
	renderOverlays(dst, v, board)

	if v.Hint != "" {
		dst.DrawTextColored(0, v.screenH-1, v.Hint, core.ColorGray)
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen, v BoardView) {
	y := v.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and progress lines.
func renderHUD(dst *core.Screen, v BoardView, board core.Rect) {
	boardX, boardW := board.X, board.W
	title := v.Title
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", v.Frame.Score))

	maxStr := fmt.Sprintf("Max: %d", v.Frame.MaxTile)
	maxX := boardX + boardW - len(maxStr)
	if maxX < boardX {
		maxX = boardX
	}
	dst.DrawText(maxX, 1, maxStr)

	last := v.Total - 1
	if last < 0 {
		last = 0
	}
	step := fmt.Sprintf("Step %d/%d", v.Frame.Step, last)
	if v.Frame.Move != "" {
		move := v.Frame.Move
		if !v.Frame.Applied {
			move += " (no-op)"
		}
		step += "  " + move
	}
	dst.DrawTextColored(boardX, 2, step, core.ColorGray)

	rate := fmt.Sprintf("%d/s", v.Rate)
	dst.DrawTextColored(boardX+boardW-len(rate), 2, rate, core.ColorGray)
}

// renderGrid draws the board lines and tiles.
func renderGrid(dst *core.Screen, f core.Frame, boardX, boardY int) {
	size := f.Size()

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y, row := range f.Board {
		for x, val := range row {
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.FormatUint(uint64(val), 10)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, core.TileColor(val))
		}
	}
}

// renderOverlays draws playback state overlays.
func renderOverlays(dst *core.Screen, v BoardView, board core.Rect) {
	centerX, centerY := board.Center()

	if v.Frame.Terminal {
		drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Final score: %d", v.Frame.Score))
		return
	}
	if v.Paused && v.Frame.Step == v.Total-1 {
		drawOverlay(dst, centerX, centerY, "END OF LOG", "R to replay")
		return
	}
	if v.Paused {
		dst.DrawTextColored(board.X, board.Bottom(), "PAUSED", core.ColorYellow)
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
