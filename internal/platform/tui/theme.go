package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles shared by the menu, shop, results and
// scoreboard screens. The playfield is colored per city by screenRenderer.
type Theme struct {
	// Titles and text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	// Lists
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	ItemLocked lipgloss.Style

	// Economy
	Coins lipgloss.Style
	Stars lipgloss.Style
	Price lipgloss.Style
	Tag   lipgloss.Style

	// Panels
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Text:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),

		ItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		ItemLocked: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		Coins: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")), // Gold
		Stars: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Price: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Tag:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Italic(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3),
		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// StarString renders earned stars out of three.
func StarString(n int) string {
	n = max(0, min(n, 3))
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
