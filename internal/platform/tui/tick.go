// Package tui runs whack-a-mole in a terminal with Bubble Tea, locally or
// over SSH. Frame ticks pump the game's event loop, keys and mouse clicks
// become clicks on the host document, and the document is drawn each frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the game's event loop to the tick's time.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
