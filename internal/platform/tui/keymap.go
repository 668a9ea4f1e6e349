package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// holdTicks is how long a steering or fire key stays down after a press.
// Terminals report no key release, so key auto-repeat refreshes the hold.
const holdTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "a", "left", "h":
		return core.ActionLeft
	case "d", "right", "l":
		return core.ActionRight
	case " ", "space", "f":
		return core.ActionFire
	case "enter":
		return core.ActionStart
	case "r":
		return core.ActionRestart
	case "p", "esc":
		return core.ActionPause
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// heldInput builds one InputFrame per tick from discrete key presses.
// Steering and fire are held for holdTicks; everything else fires once.
type heldInput struct {
	held    map[core.Action]int
	pending core.InputFrame
}

func newHeldInput() *heldInput {
	return &heldInput{
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press.
func (h *heldInput) Press(a core.Action) {
	switch a {
	case core.ActionNone:
	case core.ActionLeft:
		delete(h.held, core.ActionRight)
		h.held[a] = holdTicks
	case core.ActionRight:
		delete(h.held, core.ActionLeft)
		h.held[a] = holdTicks
	case core.ActionFire:
		h.held[a] = holdTicks
	default:
		h.pending.Set(a)
	}
}

// Frame returns the input for the next tick and ages the held keys.
func (h *heldInput) Frame() core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()
	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = left - 1
		}
	}
	return frame
}

// Release drops every held key.
func (h *heldInput) Release() {
	clear(h.held)
}
