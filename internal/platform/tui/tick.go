// Package tui runs a registered game inside Bubble Tea: it maps keys to
// input frames, drives the tick loop and paints the game's Screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 30

// TickMsg advances the game by one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg, tickRate times per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
