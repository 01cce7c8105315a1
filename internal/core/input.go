package core

import "github.com/kamstrup/intmap"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move paddle up
	ActionDown           // S, Down arrow - move paddle down
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart the match
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause

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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// holdUntilRelease marks an action pressed with no expiry.
const holdUntilRelease = -1

// KeyState tracks which actions are currently held.
//
// Hosts that see key-up events call Press and Release. Terminals only
// report presses (and auto-repeat), so the terminal host uses Latch to
// keep an action held for a number of ticks and calls Advance once per
// tick to expire old latches.
//
// KeyState is not safe for concurrent use; hosts mutate it on the same
// goroutine that drives the simulation.
type KeyState struct {
	held *intmap.Map[Action, int]
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{
		held: intmap.New[Action, int](int(actionCount)),
	}
}

// Press marks an action held until Release is called.
func (k *KeyState) Press(a Action) {
	k.held.Put(a, holdUntilRelease)
}

// Release marks an action as no longer held.
func (k *KeyState) Release(a Action) {
	k.held.Del(a)
}

// Latch holds an action for the given number of ticks. Latching an
// action that is already pressed without expiry leaves it pressed.
// Re-latching extends the hold.
func (k *KeyState) Latch(a Action, ticks int) {
	if ticks <= 0 {
		return
	}
	if remaining, ok := k.held.Get(a); ok && (remaining == holdUntilRelease || remaining >= ticks) {
		return
	}
	k.held.Put(a, ticks)
}

// IsHeld reports whether the action is currently held.
func (k *KeyState) IsHeld(a Action) bool {
	_, ok := k.held.Get(a)
	return ok
}

// Advance counts down latched actions by one tick and releases the
// ones that expired. Pressed actions are unaffected.
func (k *KeyState) Advance() {
	for a := ActionNone + 1; a < actionCount; a++ {
		remaining, ok := k.held.Get(a)
		if !ok || remaining == holdUntilRelease {
			continue
		}
		if remaining <= 1 {
			k.held.Del(a)
			continue
		}
		k.held.Put(a, remaining-1)
	}
}

// Clear releases every action.
func (k *KeyState) Clear() {
	k.held.Clear()
}

// Len returns the number of held actions.
func (k *KeyState) Len() int {
	return k.held.Len()
}
