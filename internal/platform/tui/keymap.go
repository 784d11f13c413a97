package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Holder keeps movement actions pressed for a few ticks after each key
// event. Terminals report presses and auto-repeats but never releases, so
// a held arrow key arrives as a stream of presses.
type Holder struct {
	span  int
	left  int
	right int
}

// NewHolder creates a holder that keeps a movement key down for span ticks.
func NewHolder(span int) *Holder {
	if span < 1 {
		span = 1
	}
	return &Holder{span: span}
}

// Press records a key event. Pressing one direction releases the other.
func (h *Holder) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.span, 0
	case core.ActionRight:
		h.right, h.left = h.span, 0
	}
}

// Apply sets the held actions on frame and counts one tick down.
func (h *Holder) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// Release drops every held key.
func (h *Holder) Release() {
	h.left, h.right = 0, 0
}

// holdTicks is roughly one key auto-repeat interval at the given tick rate.
func holdTicks(tickRate int) int {
	return max(tickRate/8, 1)
}
