package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"kamehameha/internal/milestones"
	dbm "kamehameha/internal/models/db_models"
	"kamehameha/pkg/utils"
)

// fakeStore implements the journey and badge repositories over a mutex-guarded
// map, honoring the real store's contract: badge insertion and the counter
// increment happen as one unit under the deterministic key.
type fakeStore struct {
	mu       sync.Mutex
	journeys map[uuid.UUID]*dbm.Journey
	badges   map[string]dbm.Badge

	awardErrs     map[int64]error // forced AwardIfAbsent failures per threshold
	listActiveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		journeys:  make(map[uuid.UUID]*dbm.Journey),
		badges:    make(map[string]dbm.Badge),
		awardErrs: make(map[int64]error),
	}
}

func (s *fakeStore) addJourney(accountID uuid.UUID, start time.Time) *dbm.Journey {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &dbm.Journey{
		AccountID: accountID,
		StartDate: start.Unix(),
		EndReason: dbm.EndReasonActive,
	}
	j.ID = uuid.New()
	s.journeys[j.ID] = j
	return j
}

// --- BadgeRepository ---

func (s *fakeStore) AwardIfAbsent(ctx context.Context, journeyID uuid.UUID, milestone milestones.Milestone, source dbm.BadgeSource) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.awardErrs[milestone.Seconds]; err != nil {
		return false, err
	}

	key := dbm.BadgeKey(journeyID, milestone.Seconds)
	if _, exists := s.badges[key]; exists {
		return false, nil
	}
	journey, ok := s.journeys[journeyID]
	if !ok {
		return false, utils.ErrJourneyNotFound
	}

	s.badges[key] = dbm.Badge{
		ID:               key,
		JourneyID:        journeyID,
		MilestoneSeconds: milestone.Seconds,
		Emoji:            milestone.Emoji,
		Name:             milestone.Name,
		Message:          milestone.Message,
		Source:           source,
	}
	journey.AchievementsCount++
	return true, nil
}

func (s *fakeStore) ListByJourney(ctx context.Context, journeyID uuid.UUID) ([]dbm.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []dbm.Badge
	for _, b := range s.badges {
		if b.JourneyID == journeyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) CountByJourney(ctx context.Context, journeyID uuid.UUID) (int64, error) {
	badges, _ := s.ListByJourney(ctx, journeyID)
	return int64(len(badges)), nil
}

// --- JourneyRepository ---

func (s *fakeStore) Create(ctx context.Context, accountID uuid.UUID, startDate time.Time) (*dbm.Journey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.journeys {
		if j.AccountID == accountID && j.EndDate == nil {
			return nil, utils.ErrJourneyActive
		}
	}
	j := &dbm.Journey{
		AccountID: accountID,
		StartDate: startDate.Unix(),
		EndReason: dbm.EndReasonActive,
	}
	j.ID = uuid.New()
	s.journeys[j.ID] = j
	copied := *j
	return &copied, nil
}

func (s *fakeStore) GetByID(ctx context.Context, journeyID uuid.UUID) (*dbm.Journey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.journeys[journeyID]
	if !ok {
		return nil, nil
	}
	copied := *j
	return &copied, nil
}

func (s *fakeStore) GetActiveByAccount(ctx context.Context, accountID uuid.UUID) (*dbm.Journey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.journeys {
		if j.AccountID == accountID && j.EndDate == nil {
			copied := *j
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Journey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []dbm.Journey
	for _, j := range s.journeys {
		if j.AccountID == accountID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (s *fakeStore) ListActive(ctx context.Context) ([]dbm.Journey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listActiveErr != nil {
		return nil, s.listActiveErr
	}
	var out []dbm.Journey
	for _, j := range s.journeys {
		if j.EndDate == nil {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (s *fakeStore) End(ctx context.Context, journeyID uuid.UUID, reason dbm.EndReason, finalSeconds int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.journeys[journeyID]
	if !ok || j.EndDate != nil {
		return utils.ErrJourneyEnded
	}
	now := time.Now().Unix()
	j.EndDate = &now
	j.EndReason = reason
	j.FinalSeconds = finalSeconds
	return nil
}

func (s *fakeStore) IncrementViolations(ctx context.Context, journeyID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.journeys[journeyID]
	if !ok || j.EndDate != nil {
		return utils.ErrJourneyEnded
	}
	j.ViolationsCount++
	return nil
}

// --- CheckInRepository (journey service only needs Create) ---

type fakeCheckIns struct {
	mu      sync.Mutex
	entries []dbm.CheckIn
	err     error
}

func (f *fakeCheckIns) Create(ctx context.Context, checkIn *dbm.CheckIn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *checkIn)
	return nil
}

func (f *fakeCheckIns) ListByJourney(ctx context.Context, journeyID uuid.UUID, page, pageSize int) ([]dbm.CheckIn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []dbm.CheckIn
	for _, c := range f.entries {
		if c.JourneyID == journeyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCheckIns) FindSimilar(ctx context.Context, accountID uuid.UUID, vector pgvector.Vector, limit int) ([]dbm.CheckIn, error) {
	return nil, nil
}
