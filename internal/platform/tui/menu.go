package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/shop"
	"github.com/vovakirdan/trash-hero/internal/storage"
)

// MenuModel is the Bubble Tea model for the city picker.
type MenuModel struct {
	env       Env
	theme     Theme
	cities    []storage.CityProgress
	coins     int
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	notice    string

	selected       *config.City
	openShop       bool
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates a city menu showing the profile's progress.
// Without a store every city is playable.
func NewMenuModel(env Env, inv shop.Inventory) MenuModel {
	env = env.normalized()
	m := MenuModel{
		env:       env,
		theme:     DefaultTheme(),
		coins:     inv.Coins,
		width:     env.Config.ScreenW,
		height:    env.Config.ScreenH,
		keyMapper: NewKeyMapper(),
	}
	m.cities = m.loadProgress()
	return m
}

func (m MenuModel) loadProgress() []storage.CityProgress {
	if m.env.Store != nil {
		progress, err := m.env.Store.Progress(m.env.Profile, m.env.Catalog)
		if err == nil {
			return progress
		}
		m.env.Logger.Warn("could not load progress", "profile", m.env.Profile, "error", err)
	}
	progress := make([]storage.CityProgress, len(m.env.Catalog.Cities))
	for i, c := range m.env.Catalog.Cities {
		progress[i] = storage.CityProgress{City: c, Unlocked: true}
	}
	return progress
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.cities)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.cities) == 0 {
			break
		}
		p := m.cities[m.cursor]
		if !p.Unlocked {
			m.notice = "Earn a star in the previous city to unlock " + p.City.Name
			break
		}
		city := p.City
		m.selected = &city

	case MenuActionShop:
		m.openShop = true

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(t.Title.Render("  T R A S H   H E R O  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.Subtitle.Render("Choose a city to clean up"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(t.Coins.Render(fmt.Sprintf("%d coins", m.coins)), m.width))
	b.WriteString("\n\n")

	for i, p := range m.cities {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var line string
		if p.Unlocked {
			line = fmt.Sprintf("%s%-10s %s  best %4d  %2d litter",
				cursor, p.City.Name, StarString(p.Stars), p.BestScore, p.City.TrashCount)
		} else {
			line = fmt.Sprintf("%s%-10s locked", cursor, p.City.Name)
		}

		style := t.ItemNormal
		switch {
		case i == m.cursor:
			style = t.ItemActive
		case !p.Unlocked:
			style = t.ItemLocked
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(t.Error.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  $: Shop  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(t.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen city, or nil if none selected.
func (m MenuModel) Selected() *config.City {
	return m.selected
}

func (m MenuModel) currentCityID() string {
	if len(m.cities) == 0 {
		return ""
	}
	return m.cities[m.cursor].City.ID
}

// WantsShop returns true if user opened the shop.
func (m MenuModel) WantsShop() bool {
	return m.openShop
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
