package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; games only ever see actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionRestart        // Enter, R - start a new round after game over
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
