package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"kamehameha/internal/milestones"
	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/models/response_models"
)

func newSweepForTest(store *fakeStore, award AwardServiceInterface, now time.Time) *SweepService {
	return &SweepService{
		journeyRepo: store,
		award:       award,
		now:         func() time.Time { return now },
	}
}

func TestRunOnceAwardsActiveJourneys(t *testing.T) {
	store := newFakeStore()
	now := time.Now()

	// One journey past two thresholds, one past none, one already ended.
	far := store.addJourney(uuid.New(), now.Add(-400*time.Second))
	store.addJourney(uuid.New(), now.Add(-10*time.Second))
	ended := store.addJourney(uuid.New(), now.Add(-500*time.Second))
	if err := store.End(context.Background(), ended.ID, dbm.EndReasonRelapse, 500); err != nil {
		t.Fatalf("End: %v", err)
	}

	sweep := newSweepForTest(store, NewAwardService(store, milestones.ShortTable), now)
	report, err := sweep.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	if report.JourneysSeen != 2 {
		t.Errorf("JourneysSeen = %d, want 2 (ended journey excluded)", report.JourneysSeen)
	}
	if report.JourneysProcessed != 2 {
		t.Errorf("JourneysProcessed = %d, want 2", report.JourneysProcessed)
	}
	if report.BadgesCreated != 2 {
		t.Errorf("BadgesCreated = %d, want 2", report.BadgesCreated)
	}
	if got := store.journeys[far.ID].AchievementsCount; got != 2 {
		t.Errorf("AchievementsCount = %d, want 2", got)
	}
}

// The sweep holds no state between runs, so a rerun re-attempts everything —
// and the award path's idempotency must make that a no-op.
func TestRunOnceRerunCreatesNothing(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	store.addJourney(uuid.New(), now.Add(-400*time.Second))

	sweep := newSweepForTest(store, NewAwardService(store, milestones.ShortTable), now)
	if _, err := sweep.RunOnce(context.Background()); err != nil {
		t.Fatalf("first RunOnce: %v", err)
	}
	report, err := sweep.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("second RunOnce: %v", err)
	}
	if report.BadgesCreated != 0 {
		t.Errorf("rerun BadgesCreated = %d, want 0", report.BadgesCreated)
	}
	if report.JourneysProcessed != 1 {
		t.Errorf("rerun JourneysProcessed = %d, want 1", report.JourneysProcessed)
	}
}

type stubAward struct {
	failFor uuid.UUID
	calls   int
}

func (s *stubAward) EvaluateJourney(ctx context.Context, journey *dbm.Journey, lastCheckedSeconds int64, now time.Time, source dbm.BadgeSource) (int, error) {
	s.calls++
	if journey.ID == s.failFor {
		return 0, errors.New("award path down for this journey")
	}
	return 1, nil
}

func (s *stubAward) ListBadges(ctx context.Context, journeyID string) ([]response_models.BadgeResponse, error) {
	return nil, nil
}

func TestRunOnceIsolatesFailingJourney(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	store.addJourney(uuid.New(), now.Add(-100*time.Second))
	broken := store.addJourney(uuid.New(), now.Add(-100*time.Second))
	store.addJourney(uuid.New(), now.Add(-100*time.Second))

	award := &stubAward{failFor: broken.ID}
	sweep := newSweepForTest(store, award, now)

	report, err := sweep.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if award.calls != 3 {
		t.Errorf("award called %d times, want 3 (failure must not abort siblings)", award.calls)
	}
	if report.Failures != 1 {
		t.Errorf("Failures = %d, want 1", report.Failures)
	}
	if report.JourneysProcessed != 2 {
		t.Errorf("JourneysProcessed = %d, want 2", report.JourneysProcessed)
	}
	if report.BadgesCreated != 2 {
		t.Errorf("BadgesCreated = %d, want 2", report.BadgesCreated)
	}
}

func TestRunOnceQueryFailure(t *testing.T) {
	store := newFakeStore()
	store.listActiveErr = errors.New("connection refused")

	sweep := newSweepForTest(store, NewAwardService(store, milestones.ShortTable), time.Now())
	report, err := sweep.RunOnce(context.Background())
	if err == nil {
		t.Fatalf("RunOnce swallowed the query failure")
	}
	if report.JourneysSeen != 0 || report.BadgesCreated != 0 {
		t.Errorf("report = %+v, want all zero after query failure", report)
	}
}

func TestSweepSkipReason(t *testing.T) {
	now := time.Now()
	endDate := now.Unix()

	healthy := &dbm.Journey{StartDate: now.Add(-time.Minute).Unix()}
	healthy.ID = uuid.New()

	cases := []struct {
		name    string
		journey *dbm.Journey
		skip    bool
	}{
		{"healthy", healthy, false},
		{"missing id", &dbm.Journey{StartDate: now.Unix()}, true},
		{"end date set", func() *dbm.Journey {
			j := &dbm.Journey{StartDate: now.Unix(), EndDate: &endDate}
			j.ID = uuid.New()
			return j
		}(), true},
		{"missing start date", func() *dbm.Journey {
			j := &dbm.Journey{}
			j.ID = uuid.New()
			return j
		}(), true},
		{"future start date", func() *dbm.Journey {
			j := &dbm.Journey{StartDate: now.Add(time.Hour).Unix()}
			j.ID = uuid.New()
			return j
		}(), true},
	}
	for _, tc := range cases {
		if skip, _ := sweepSkipReason(tc.journey, now); skip != tc.skip {
			t.Errorf("%s: skip = %v, want %v", tc.name, skip, tc.skip)
		}
	}
}
