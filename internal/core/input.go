package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUse            // Space, E - drop into a bin or pick up litter
	ActionWeapon         // F - fire the equipped weapon
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after the session ends
	ActionQuit           // Q, Ctrl+C - exit session
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - go back to menu

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUse:
		return "Use"
	case ActionWeapon:
		return "Weapon"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame represents the intent set for one simulation tick.
// Actions are stored as a bitmask so a frame can be recorded and replayed verbatim.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameFromBits rebuilds a frame from a recorded bitmask.
// Bits that do not correspond to a known action are dropped.
func FrameFromBits(bits uint32) InputFrame {
	return InputFrame{bits: bits & (1<<actionCount - 1) &^ 1}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Bits returns the raw bitmask.
func (f InputFrame) Bits() uint32 {
	return f.bits
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
