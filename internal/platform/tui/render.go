package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightCyan:   lipgloss.Color("14"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorDarkRed:      lipgloss.Color("52"),
}

// cellStyle returns the style for a cell color drawn over the screen background.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := colorCodes[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colorCodes[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	bg := s.Background()
	styles := make(map[core.Color]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = cellStyle(startColor, bg)
				styles[startColor] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
