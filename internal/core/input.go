package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionPause           // Space, P - toggle playback
	ActionForward         // Right arrow, L - advance one step
	ActionBackward        // Left arrow, H - rewind one step
	ActionFirst           // Home, G - jump to the start position
	ActionLast            // End, Shift+G - jump to the final position
	ActionFaster          // + - raise the playback rate
	ActionSlower          // - - lower the playback rate
	ActionRestart         // R - rewind and resume playback
	ActionQuit            // Q, Ctrl+C - exit the viewer
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionFirst:
		return "First"
	case ActionLast:
		return "Last"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
