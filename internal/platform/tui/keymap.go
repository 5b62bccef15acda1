package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilescore/internal/core"
)

// KeyMapper translates Bubble Tea key messages to viewer actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a viewer action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case " ", "space", "p":
		return core.ActionPause, false
	case "right", "l":
		return core.ActionForward, false
	case "left", "h":
		return core.ActionBackward, false
	case "home", "g":
		return core.ActionFirst, false
	case "end", "G":
		return core.ActionLast, false
	case "+", "=":
		return core.ActionFaster, false
	case "-", "_":
		return core.ActionSlower, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Controls returns the control hints for the viewer.
func Controls() string {
	return "Space: Play/Pause | ←/→: Step | Home/End: Jump | +/-: Speed | R: Restart | Q: Quit"
}
