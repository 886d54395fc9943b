// Package tui provides the Bubble Tea integration for the snake game: the
// terminal loop, input mapping, rendering and the tick scheduler.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg triggers one engine tick. The generation stamp identifies the
// scheduling chain it belongs to.
type tickMsg struct {
	gen uint64
}

// tickScheduler implements engine.Scheduler on top of Bubble Tea. The engine
// calls it synchronously from inside Update; the request is parked here and
// turned into a tea.Tick command once control returns to the update loop.
// CancelScheduledTick bumps the generation so an already-dispatched tick from
// before a restart is recognized as stale and dropped, which keeps two tick
// chains from ever racing on the same state.
type tickScheduler struct {
	next    time.Duration
	pending bool
	gen     uint64
}

func (s *tickScheduler) ScheduleTick(after time.Duration) {
	s.next = after
	s.pending = true
}

func (s *tickScheduler) CancelScheduledTick() {
	s.gen++
	s.pending = false
}

// takeCmd converts a parked request into a Bubble Tea command. Returns nil
// when nothing is scheduled.
func (s *tickScheduler) takeCmd() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false

	gen := s.gen
	return tea.Tick(s.next, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// current reports whether msg belongs to the live scheduling chain.
func (s *tickScheduler) current(msg tickMsg) bool {
	return msg.gen == s.gen
}
