package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trash-hero/internal/config"
	"github.com/vovakirdan/trash-hero/internal/shop"
)

// Screen identifies the active view of an AppModel.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
	ScreenShop
	ScreenScores
)

// AppModel manages the full session flow: menu -> game/shop/scores -> menu.
// It is the top-level model for both local and SSH play.
type AppModel struct {
	env     Env
	current Screen
	inv     shop.Inventory

	menu   MenuModel
	game   *GameModel
	shop   ShopModel
	scores ScoreboardModel

	// credited counts finished games already added to inv when there is no store.
	credited int

	// exitOnBack quits instead of returning to the menu, for single-screen commands.
	exitOnBack bool
	quitting   bool
}

// NewAppModel creates an app that starts at the city menu.
func NewAppModel(env Env) AppModel {
	env = env.normalized()
	m := AppModel{env: env}
	m.inv = m.loadInventory()
	m.menu = NewMenuModel(env, m.inv)
	return m
}

// NewPlayModel creates an app that starts directly in the given city and
// exits when the player leaves it.
func NewPlayModel(env Env, city config.City) (AppModel, error) {
	m := NewAppModel(env)
	m.exitOnBack = true
	if err := m.startGame(city); err != nil {
		return AppModel{}, err
	}
	return m, nil
}

// NewScoresModel creates an app that shows the scoreboard for cityID.
func NewScoresModel(env Env, cityID string) AppModel {
	m := NewAppModel(env)
	m.exitOnBack = true
	m.scores = NewScoreboardModel(m.env, cityID)
	m.current = ScreenScores
	return m
}

// NewShopScreenModel creates an app that shows the shop.
func NewShopScreenModel(env Env) AppModel {
	m := NewAppModel(env)
	m.exitOnBack = true
	m.shop = NewShopModel(m.env, m.inv)
	m.current = ScreenShop
	return m
}

func (m AppModel) loadInventory() shop.Inventory {
	if m.env.Store == nil {
		return shop.DefaultInventory()
	}
	inv, err := m.env.Store.Inventory(m.env.Profile)
	if err != nil {
		m.env.Logger.Warn("could not load inventory", "profile", m.env.Profile, "error", err)
		return shop.DefaultInventory()
	}
	return inv
}

func (m *AppModel) startGame(city config.City) error {
	gm, err := NewGameModel(m.env, city, m.inv.Equipped)
	if err != nil {
		return err
	}
	m.game = &gm
	m.credited = 0
	m.current = ScreenGame
	return nil
}

// Init initializes the active screen.
func (m AppModel) Init() tea.Cmd {
	if m.current == ScreenGame && m.game != nil {
		return m.game.Init()
	}
	return nil
}

// Update handles messages for the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.env.Config.ScreenW = wsm.Width
		m.env.Config.ScreenH = wsm.Height
	}

	switch m.current {
	case ScreenGame:
		return m.updateGame(msg)
	case ScreenShop:
		return m.updateShop(msg)
	case ScreenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Selected() != nil:
		city := *m.menu.Selected()
		if err := m.startGame(city); err != nil {
			m.env.Logger.Error("could not start session", "city", city.ID, "error", err)
			m.toMenu()
			return m, nil
		}
		return m, m.game.Init()

	case m.menu.WantsShop():
		m.shop = NewShopModel(m.env, m.inv)
		m.current = ScreenShop
		return m, nil

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.env, m.menu.currentCityID())
		m.current = ScreenScores
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	// Without a store, coins only live for this app session.
	if m.env.Store == nil {
		for m.credited < m.game.Completed() {
			m.inv = m.inv.Earn(m.game.Result().Coins())
			m.credited++
		}
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.back()
	}

	return m, cmd
}

func (m AppModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.shop.Update(msg)
	if shopModel, ok := newModel.(ShopModel); ok {
		m.shop = shopModel
	}
	m.inv = m.shop.Inventory()

	if m.shop.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.shop.IsGoingBack() {
		return m.back()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoresModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.back()
	}
	return m, cmd
}

// back returns to the menu, or quits for single-screen apps.
func (m AppModel) back() (tea.Model, tea.Cmd) {
	if m.exitOnBack {
		m.quitting = true
		return m, tea.Quit
	}
	m.toMenu()
	return m, m.menu.Init()
}

// toMenu rebuilds the menu so it reflects new progress and coins.
func (m *AppModel) toMenu() {
	if m.env.Store != nil {
		m.inv = m.loadInventory()
	}
	m.menu = NewMenuModel(m.env, m.inv)
	m.current = ScreenMenu
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case ScreenGame:
		if m.game != nil {
			return m.game.View()
		}
	case ScreenShop:
		return m.shop.View()
	case ScreenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Current returns the active screen.
func (m AppModel) Current() Screen {
	return m.current
}

// Inventory returns the inventory as last seen by the app.
func (m AppModel) Inventory() shop.Inventory {
	return m.inv
}

// Run starts a Bubble Tea program with the given model.
func Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
