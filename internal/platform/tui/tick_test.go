package tui

import (
	"testing"
	"time"
)

func TestSchedulerTakeCmd(t *testing.T) {
	s := &tickScheduler{}

	if cmd := s.takeCmd(); cmd != nil {
		t.Error("takeCmd() should be nil with nothing scheduled")
	}

	s.ScheduleTick(50 * time.Millisecond)
	if cmd := s.takeCmd(); cmd == nil {
		t.Fatal("takeCmd() returned nil after ScheduleTick")
	}
	// The request is consumed.
	if cmd := s.takeCmd(); cmd != nil {
		t.Error("takeCmd() should return each request once")
	}
}

func TestSchedulerCancelInvalidatesChain(t *testing.T) {
	s := &tickScheduler{}

	s.ScheduleTick(50 * time.Millisecond)
	inFlight := tickMsg{gen: s.gen}

	s.CancelScheduledTick()

	if s.current(inFlight) {
		t.Error("tick from before the cancel should be stale")
	}
	if cmd := s.takeCmd(); cmd != nil {
		t.Error("cancel should drop the parked request")
	}

	s.ScheduleTick(30 * time.Millisecond)
	fresh := tickMsg{gen: s.gen}
	if !s.current(fresh) {
		t.Error("tick scheduled after the cancel should be live")
	}
}
