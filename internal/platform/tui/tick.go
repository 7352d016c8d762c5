// Package tui provides the Bubble Tea integration for the solitaire platform.
// It handles the terminal UI loop, pointer and key mapping, and deal bookkeeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxElapsed caps the time step after a stalled tick so cards do not
// jump across the table.
const maxElapsed = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedSince returns the seconds between two ticks, zero for the first.
func elapsedSince(last, now time.Time) float64 {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return min(now.Sub(last).Seconds(), maxElapsed)
}
