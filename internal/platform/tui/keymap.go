package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuisteroids/tuisteroids/internal/core"
)

// Ticks an action stays held after a key event. Terminals deliver presses
// and auto-repeats but never releases, so each event arms the action for a
// short window and auto-repeat keeps it alive while the key is down.
const holdTicks = 6

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
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionRotateLeft, false
	case "right", "d":
		return core.ActionRotateRight, false
	case "up", "w":
		return core.ActionThrust, false
	case " ":
		return core.ActionFire, false
	}
	return core.ActionNone, false
}
