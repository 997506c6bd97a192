package mem

import (
	"sync"

	"github.com/google/uuid"
)

// LiveSessions tracks, per open client session, which journey is being
// watched and the high-water mark of elapsed seconds the live ticker has
// already evaluated. The mark is purely an efficiency device: losing it (or
// the whole process) only means redundant award attempts, which the award
// transaction's idempotency absorbs.
type LiveSessions struct {
	mu   sync.RWMutex
	data map[string]*liveEntry
}

type liveEntry struct {
	journeyID          uuid.UUID
	lastCheckedSeconds int64
	done               chan struct{}
}

func NewLiveSessions() *LiveSessions {
	return &LiveSessions{data: make(map[string]*liveEntry)}
}

// Open registers sessionID as watching journeyID and reports whether a new
// watcher goroutine must be started. Re-opening with a different journey
// keeps the running watcher but resets the mark to 0, so the new journey's
// early milestones are not suppressed by the old journey's progress.
func (s *LiveSessions) Open(sessionID string, journeyID uuid.UUID) (started bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.data[sessionID]; ok {
		if e.journeyID != journeyID {
			e.journeyID = journeyID
			e.lastCheckedSeconds = 0
		}
		return false
	}

	s.data[sessionID] = &liveEntry{
		journeyID: journeyID,
		done:      make(chan struct{}),
	}
	return true
}

// Close stops the session's watcher and forgets its mark.
func (s *LiveSessions) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.data[sessionID]; ok {
		close(e.done)
		delete(s.data, sessionID)
	}
}

// Done returns the channel a watcher selects on to stop. For an unknown
// session it returns an already-closed channel so the watcher exits at once.
func (s *LiveSessions) Done(sessionID string) <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.data[sessionID]; ok {
		return e.done
	}
	return closedChan
}

// Snapshot reads the session's journey and high-water mark.
func (s *LiveSessions) Snapshot(sessionID string) (journeyID uuid.UUID, lastCheckedSeconds int64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[sessionID]
	if !ok {
		return uuid.Nil, 0, false
	}
	return e.journeyID, e.lastCheckedSeconds, true
}

// Advance moves the mark forward, but only if the session still watches the
// same journey — a swap that raced with a tick must keep its fresh zero mark.
func (s *LiveSessions) Advance(sessionID string, journeyID uuid.UUID, mark int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok || e.journeyID != journeyID {
		return
	}
	if mark > e.lastCheckedSeconds {
		e.lastCheckedSeconds = mark
	}
}

// Len reports how many sessions are open.
func (s *LiveSessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
