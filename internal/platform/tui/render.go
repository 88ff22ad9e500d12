package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/core"
)

// palette maps core.Color to ANSI foreground colors.
var palette = map[core.Color]lipgloss.Color{
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

// screenRenderer turns a core.Screen into styled text in a city's colors.
// Default-colored cells (walls, HUD text) take the city accent and every
// cell sits on the city background.
type screenRenderer struct {
	styles map[core.Color]lipgloss.Style
}

func newScreenRenderer(city config.City) screenRenderer {
	base := lipgloss.NewStyle()
	if city.BgColor != "" {
		base = base.Background(lipgloss.Color(city.BgColor))
	}

	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = base
	if city.AccentColor != "" {
		styles[core.ColorDefault] = base.Foreground(lipgloss.Color(city.AccentColor))
	}
	for c, fg := range palette {
		styles[c] = base.Foreground(fg)
	}
	return screenRenderer{styles: styles}
}

func (r screenRenderer) style(c core.Color) lipgloss.Style {
	if style, ok := r.styles[c]; ok {
		return style
	}
	return r.styles[core.ColorDefault]
}

// Render draws the buffer row by row. Adjacent cells with the same color
// share one styled run to keep escape sequences down.
func (r screenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(r.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
