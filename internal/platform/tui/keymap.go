package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-creeps/internal/core"
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
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ", "space":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// DefaultHoldDuration is how long a movement key counts as held after its
// last press or auto-repeat.
const DefaultHoldDuration = 150 * time.Millisecond

// HeldKeys turns terminal key presses into per-tick input. Terminals only
// report presses, never releases, so a movement key stays held until
// hold has passed since its last repeat. Other actions fire once.
type HeldKeys struct {
	hold    time.Duration
	last    map[core.Action]time.Time
	pending []core.Action
}

// NewHeldKeys creates an empty key state. A non-positive hold uses
// DefaultHoldDuration.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &HeldKeys{
		hold: hold,
		last: make(map[core.Action]time.Time),
	}
}

// opposite returns the movement action pointing the other way.
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

// Press records a key press at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if back := opposite(a); back != core.ActionNone {
		// Reversing releases the other direction at once
		delete(h.last, back)
		h.last[a] = now
		return
	}
	h.pending = append(h.pending, a)
}

// Fill sets the actions active at now into frame and consumes the
// one-shot presses.
func (h *HeldKeys) Fill(frame *core.InputFrame, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) <= h.hold {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	for _, a := range h.pending {
		frame.Set(a)
	}
	h.pending = h.pending[:0]
}

// Release forgets every held key and pending press.
func (h *HeldKeys) Release() {
	clear(h.last)
	h.pending = h.pending[:0]
}
