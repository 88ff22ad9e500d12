package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trash-hero/internal/shop"
)

// ShopKeyMap defines the key bindings for the shop.
type ShopKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Unequip key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Unequip, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Unequip},
		{k.Back, k.Quit},
	}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy/equip"),
		),
		Unequip: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unequip"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShopModel lets the player buy and equip items.
type ShopModel struct {
	env    Env
	theme  Theme
	inv    shop.Inventory
	cursor int
	width  int
	height int
	keys   ShopKeyMap
	help   help.Model

	message  string
	msgErr   bool
	quitting bool
	back     bool
}

// NewShopModel creates a shop screen for the inventory.
func NewShopModel(env Env, inv shop.Inventory) ShopModel {
	env = env.normalized()
	return ShopModel{
		env:    env,
		theme:  DefaultTheme(),
		inv:    inv,
		width:  env.Config.ScreenW,
		height: env.Config.ScreenH,
		keys:   DefaultShopKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(shop.Catalog)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selectItem(shop.Catalog[m.cursor])
		case key.Matches(msg, m.keys.Unequip):
			m.unequip(shop.Catalog[m.cursor])
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// selectItem buys an item not yet owned, otherwise equips it.
func (m *ShopModel) selectItem(it shop.Item) {
	var (
		next shop.Inventory
		err  error
		verb string
	)
	if m.inv.Owns(it.ID) {
		next, err = shop.Equip(m.inv, it.ID)
		verb = "Equipped"
	} else {
		next, err = shop.Buy(m.inv, it.ID)
		verb = "Bought"
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.commit(next, fmt.Sprintf("%s %s", verb, it.Name))
}

func (m *ShopModel) unequip(it shop.Item) {
	if !m.inv.IsEquipped(it) {
		m.setError(fmt.Errorf("%s is not equipped", it.Name))
		return
	}
	next, err := shop.Unequip(m.inv, it.Category)
	if err != nil {
		m.setError(err)
		return
	}
	m.commit(next, "Unequipped "+it.Name)
}

// commit saves the inventory and keeps it only if the save succeeds.
func (m *ShopModel) commit(next shop.Inventory, message string) {
	if m.env.Store != nil {
		if err := m.env.Store.SaveInventory(m.env.Profile, next); err != nil {
			m.env.Logger.Error("could not save inventory", "profile", m.env.Profile, "error", err)
			m.setError(err)
			return
		}
	}
	m.inv = next
	m.message = message
	m.msgErr = false
}

func (m *ShopModel) setError(err error) {
	switch {
	case errors.Is(err, shop.ErrInsufficientCoins):
		m.message = "Not enough coins"
	case errors.Is(err, shop.ErrAlreadyOwned):
		m.message = "Already owned"
	default:
		m.message = err.Error()
	}
	m.msgErr = true
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(t.Title.Render("SHOP"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(t.Coins.Render(fmt.Sprintf("%d coins", m.inv.Coins)), m.width))
	b.WriteString("\n")

	var category shop.Category
	for i, it := range shop.Catalog {
		if it.Category != category {
			category = it.Category
			b.WriteString("\n")
			b.WriteString(centerText(t.Subtitle.Render(strings.ToUpper(string(category))), m.width))
			b.WriteString("\n")
		}

		var status string
		switch {
		case m.inv.IsEquipped(it):
			status = t.Tag.Render("equipped")
		case m.inv.Owns(it.ID):
			status = t.Muted.Render("owned")
		default:
			status = t.Price.Render(fmt.Sprintf("%d", it.Price))
		}

		style := t.ItemNormal
		cursor := "  "
		if i == m.cursor {
			style = t.ItemActive
			cursor = "> "
		}
		line := style.Render(fmt.Sprintf("%s%-14s %-42s", cursor, it.Name, it.Description))
		b.WriteString(centerText(line+" "+status, m.width))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		style := t.Success
		if m.msgErr {
			style = t.Error
		}
		b.WriteString(centerText(style.Render(m.message), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(t.Help.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Inventory returns the current inventory.
func (m ShopModel) Inventory() shop.Inventory {
	return m.inv
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}
