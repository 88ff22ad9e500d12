package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trash-hero/internal/core"
)

// heldTicks is how long a direction stays pressed after its last key event.
// Terminals report no key releases, only auto-repeat presses.
const heldTicks = 10

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "e":
		return core.ActionUse, false
	case "f", "x":
		return core.ActionWeapon, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionShop
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "$":
		return MenuActionShop
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HeldInput builds per-tick input frames from key presses.
// Directions stay held for heldTicks after the last press so movement is
// continuous while the terminal auto-repeats a key. Other actions fire once.
type HeldInput struct {
	held    map[core.Action]int
	pending core.InputFrame
}

// NewHeldInput creates an empty input state.
func NewHeldInput() *HeldInput {
	return &HeldInput{held: make(map[core.Action]int)}
}

// Press records an action.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		delete(h.held, opposite(a))
		h.held[a] = heldTicks
	case core.ActionNone:
	default:
		h.pending.Set(a)
	}
}

// Frame returns the input for the next tick and ages held directions.
func (h *HeldInput) Frame() core.InputFrame {
	frame := h.pending
	h.pending.Clear()
	for a, ticks := range h.held {
		frame.Set(a)
		if ticks <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = ticks - 1
		}
	}
	return frame
}

// Reset releases everything.
func (h *HeldInput) Reset() {
	clear(h.held)
	h.pending.Clear()
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
