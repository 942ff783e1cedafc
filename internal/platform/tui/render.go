package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt2048/internal/core"
)

// palette maps core colors to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// boldColors are the colors of tiles from 128 upward.
var boldColors = map[core.Color]bool{
	core.ColorBrightYellow:  true,
	core.ColorBrightGreen:   true,
	core.ColorGreen:         true,
	core.ColorBrightCyan:    true,
	core.ColorBrightMagenta: true,
	core.ColorMagenta:       true,
	core.ColorBrightBlue:    true,
}

// colorStyles holds one lipgloss style per core color.
var colorStyles = buildStyles()

// helpStyle renders the key binding footer.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range palette {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		if boldColors[c] {
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are rendered with one style call.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		var run strings.Builder
		runColor := core.ColorDefault
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style, ok := colorStyles[runColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}
