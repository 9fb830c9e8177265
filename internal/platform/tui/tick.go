// Package tui runs the game in a terminal through Bubble Tea.
// It handles the frame clock, key mapping and rendering of the cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the elapsed time fed to the game after a stall.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time elapsed between ticks. The first tick counts
// as one nominal frame.
func frameDelta(last, now time.Time, tickRate int) time.Duration {
	nominal := time.Second / time.Duration(tickRate)
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last)
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}
