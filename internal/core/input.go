package core

import "sync/atomic"

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPause          // P
	ActionRestart        // R, after game over
	ActionQuit           // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement directions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// Intent is the directional input read by the simulation for one tick.
type Intent struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one direction is held.
func (in Intent) Any() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// IntentFlags holds the four direction flags shared between the host's
// input handler and the simulation goroutine. Writers call Press/Release
// from any goroutine; the simulation calls Snapshot once per tick.
type IntentFlags struct {
	up, down, left, right atomic.Bool
}

// Press marks a direction as held. Non-direction actions are ignored.
func (f *IntentFlags) Press(a Action) {
	f.set(a, true)
}

// Release marks a direction as no longer held.
func (f *IntentFlags) Release(a Action) {
	f.set(a, false)
}

// Set replaces all four flags at once.
func (f *IntentFlags) Set(in Intent) {
	f.up.Store(in.Up)
	f.down.Store(in.Down)
	f.left.Store(in.Left)
	f.right.Store(in.Right)
}

// Clear releases every direction.
func (f *IntentFlags) Clear() {
	f.Set(Intent{})
}

// Snapshot reads the current flags without blocking.
func (f *IntentFlags) Snapshot() Intent {
	return Intent{
		Up:    f.up.Load(),
		Down:  f.down.Load(),
		Left:  f.left.Load(),
		Right: f.right.Load(),
	}
}

func (f *IntentFlags) set(a Action, v bool) {
	switch a {
	case ActionUp:
		f.up.Store(v)
	case ActionDown:
		f.down.Store(v)
	case ActionLeft:
		f.left.Store(v)
	case ActionRight:
		f.right.Store(v)
	}
}
