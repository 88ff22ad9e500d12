// Package tui provides the Bubble Tea integration for Trash Hero.
// It handles the terminal UI loop, input mapping, and screen orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick of one game.
type TickMsg struct {
	Game uint64
	Time time.Time
}

// SecondMsg is sent once per wall-clock second to advance the session timer.
type SecondMsg struct {
	Game uint64
	Time time.Time
}

// gameSeq numbers game runs so ticks scheduled for a finished or restarted
// run are ignored.
var gameSeq atomic.Uint64

func nextGameID() uint64 {
	return gameSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Game: id, Time: t}
	})
}

// secondCmd returns a command that sends a SecondMsg after one second.
func secondCmd(id uint64) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return SecondMsg{Game: id, Time: t}
	})
}
