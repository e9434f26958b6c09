package core

// Action represents a semantic game action, abstracted from physical key
// presses. The engine consumes actions in arrival order, so the platform
// collects them into an ordered queue rather than a per-frame set: for a
// falling piece, "left then rotate" and "rotate then left" are different
// moves.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, h - shift piece one column left
	ActionMoveRight        // Right arrow, l - shift piece one column right
	ActionRotateCW         // Up arrow, x, w - rotate clockwise
	ActionRotateCCW        // z, a - rotate counter-clockwise
	ActionSoftDrop         // Down arrow, j - accelerate fall, +1 point per row
	ActionHardDrop         // Space - drop to rest and lock immediately
	ActionHold             // c - stash/swap the active piece
	ActionPause            // p - pause/unpause
	ActionQuit             // q, Esc, Ctrl+C - abort the session
	ActionRestart          // r - restart after a terminal outcome (platform-level)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
