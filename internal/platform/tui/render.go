package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkotenko/snaketui/internal/engine"
	"github.com/dkotenko/snaketui/internal/screen"
)

// colorStyles maps screen colors to lipgloss styles.
var colorStyles = map[screen.Color]lipgloss.Style{
	screen.ColorDefault:     lipgloss.NewStyle(),
	screen.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	screen.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	screen.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	screen.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	screen.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	screen.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// drawSnapshot renders an engine snapshot into the screen buffer: HUD on
// top, the bordered board centered below, overlays for terminal states.
func drawSnapshot(dst *screen.Screen, snap engine.Snapshot) {
	dst.Clear()

	drawHUD(dst, snap)

	cols := snap.Board.Cols
	rows := snap.Board.Rows

	// Board plus border must fit under the two HUD rows.
	if cols+2 > dst.Width() || rows+4 > dst.Height() {
		drawOverlay(dst, "Terminal too small",
			fmt.Sprintf("Need at least %dx%d", cols+2, rows+4))
		return
	}

	ox := (dst.Width() - cols) / 2
	oy := 2 + (dst.Height()-2-rows)/2
	if oy < 3 {
		oy = 3
	}

	dst.DrawBox(ox-1, oy-1, cols+2, rows+2, screen.ColorGray)

	dst.SetCell(ox+snap.Food.X, oy+snap.Food.Y, '*', screen.ColorBrightRed)

	for i, seg := range snap.Snake {
		if i == 0 {
			dst.SetCell(ox+seg.X, oy+seg.Y, 'O', screen.ColorBrightGreen)
		} else {
			dst.SetCell(ox+seg.X, oy+seg.Y, 'o', screen.ColorGreen)
		}
	}

	switch {
	case snap.Won:
		drawOverlay(dst, "You Win!", fmt.Sprintf("Board cleared, score %d. Press SPACE to restart", snap.Score))
	case snap.GameOver:
		drawOverlay(dst, "Game Over", "Press SPACE to restart")
	}
}

// drawHUD draws the score line and a separator across the top.
func drawHUD(dst *screen.Screen, snap engine.Snapshot) {
	hud := fmt.Sprintf(" Snake — Score: %d", snap.Score)
	dst.DrawText(0, 0, hud, screen.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', screen.ColorGray)
}

// drawOverlay draws a centered two-line message box over the board.
func drawOverlay(dst *screen.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}

	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, screen.ColorBrightWhite)

	dst.DrawTextCentered(boxY+1, line1, screen.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, line2, screen.ColorDefault)
}

// RenderScreen converts a screen buffer to a styled string. Adjacent cells
// with the same color are grouped into one styled run to keep the ANSI
// output small.
func RenderScreen(s *screen.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[screen.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
