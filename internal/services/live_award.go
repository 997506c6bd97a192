package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/repositories"
	mem "kamehameha/pkg/memcache"
	"kamehameha/pkg/utils"
)

type LiveAwardServiceInterface interface {
	// OpenSession starts (or retargets) the low-latency award watcher for a
	// session viewing journeyID. Opening a different journey on an existing
	// session resets the session's high-water mark.
	OpenSession(ctx context.Context, sessionID, journeyID string) error

	// CloseSession stops the session's watcher. Safe to call twice.
	CloseSession(sessionID string)
}

// LiveAwardService complements the sweep with a per-session ticker, so a
// milestone crossed while the user is watching lands within a tick instead
// of a sweep period. It never retries failures itself — advancing the mark
// regardless and leaving catch-up to the sweep keeps each tick cheap.
type LiveAwardService struct {
	sessions    *mem.LiveSessions
	journeyRepo repositories.JourneyRepository
	award       AwardServiceInterface
	interval    time.Duration
	now         func() time.Time
}

func NewLiveAwardService(
	sessions *mem.LiveSessions,
	journeyRepo repositories.JourneyRepository,
	award AwardServiceInterface,
	interval time.Duration,
) *LiveAwardService {
	if interval <= 0 {
		interval = time.Second
	}
	return &LiveAwardService{
		sessions:    sessions,
		journeyRepo: journeyRepo,
		award:       award,
		interval:    interval,
		now:         time.Now,
	}
}

func (l *LiveAwardService) OpenSession(ctx context.Context, sessionID, journeyID string) error {
	id, err := uuid.Parse(journeyID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	journey, err := l.journeyRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if journey == nil {
		return utils.ErrJourneyNotFound
	}
	if !journey.IsActive() {
		return utils.ErrJourneyEnded
	}

	if l.sessions.Open(sessionID, id) {
		go l.watch(sessionID)
	}
	return nil
}

func (l *LiveAwardService) CloseSession(sessionID string) {
	l.sessions.Close(sessionID)
}

func (l *LiveAwardService) watch(sessionID string) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	done := l.sessions.Done(sessionID)
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			l.tick(sessionID)
		}
	}
}

func (l *LiveAwardService) tick(sessionID string) {
	journeyID, mark, ok := l.sessions.Snapshot(sessionID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	journey, err := l.journeyRepo.GetByID(ctx, journeyID)
	if err != nil {
		// Transient; the next tick or the sweep picks it up.
		log.Printf("live: journey %s read failed: %v", journeyID, err)
		return
	}
	if journey == nil || !journey.IsActive() {
		l.sessions.Close(sessionID)
		return
	}

	now := l.now()
	if _, err := l.award.EvaluateJourney(ctx, journey, mark, now, dbm.BadgeSourceLive); err != nil {
		log.Printf("live: journey %s had failed award attempts: %v", journeyID, err)
	}

	// Advance even after failures: the sweep is the backstop, and a stuck
	// mark would just hammer the same threshold every second.
	l.sessions.Advance(sessionID, journeyID, utils.ElapsedSeconds(journey.StartDate, now))
}
