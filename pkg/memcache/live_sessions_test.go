package mem

import (
	"testing"

	"github.com/google/uuid"
)

func TestOpenStartsWatcherOncePerSession(t *testing.T) {
	s := NewLiveSessions()
	j := uuid.New()

	if !s.Open("sess", j) {
		t.Fatal("first Open should report a new watcher")
	}
	if s.Open("sess", j) {
		t.Error("re-opening the same journey should not start a second watcher")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestJourneySwapResetsHighWaterMark(t *testing.T) {
	s := NewLiveSessions()
	oldJourney, newJourney := uuid.New(), uuid.New()

	s.Open("sess", oldJourney)
	s.Advance("sess", oldJourney, 500)

	if s.Open("sess", newJourney) {
		t.Error("swapping journeys should reuse the running watcher")
	}
	gotJourney, mark, ok := s.Snapshot("sess")
	if !ok || gotJourney != newJourney {
		t.Fatalf("Snapshot journey = %v ok=%v, want %v", gotJourney, ok, newJourney)
	}
	if mark != 0 {
		t.Errorf("mark after swap = %d, want 0 (old progress must not suppress new awards)", mark)
	}
}

func TestAdvanceIgnoresStaleJourney(t *testing.T) {
	s := NewLiveSessions()
	oldJourney, newJourney := uuid.New(), uuid.New()

	s.Open("sess", oldJourney)
	s.Open("sess", newJourney)

	// A tick computed against the old journey finishes late.
	s.Advance("sess", oldJourney, 900)

	if _, mark, _ := s.Snapshot("sess"); mark != 0 {
		t.Errorf("stale Advance moved the mark to %d", mark)
	}
}

func TestAdvanceIsMonotonic(t *testing.T) {
	s := NewLiveSessions()
	j := uuid.New()
	s.Open("sess", j)

	s.Advance("sess", j, 120)
	s.Advance("sess", j, 60)

	if _, mark, _ := s.Snapshot("sess"); mark != 120 {
		t.Errorf("mark = %d, want 120", mark)
	}
}

func TestCloseStopsWatcher(t *testing.T) {
	s := NewLiveSessions()
	j := uuid.New()
	s.Open("sess", j)
	done := s.Done("sess")

	s.Close("sess")

	select {
	case <-done:
	default:
		t.Error("done channel not closed after Close")
	}
	if _, _, ok := s.Snapshot("sess"); ok {
		t.Error("session still present after Close")
	}
	// Unknown sessions get an already-closed channel.
	select {
	case <-s.Done("missing"):
	default:
		t.Error("Done for unknown session should be closed")
	}
}
