// Package tui provides the Bubble Tea front end for tilescore: a replay
// viewer that steps through recorded frames and a leaderboard over the
// score database.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance playback by one step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(stepRate int) tea.Cmd {
	if stepRate <= 0 {
		stepRate = 1
	}
	interval := time.Second / time.Duration(stepRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
