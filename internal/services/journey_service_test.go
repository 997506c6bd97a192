package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"kamehameha/internal/milestones"
	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/models/request_models"
	"kamehameha/pkg/utils"
)

func newJourneyForTest(store *fakeStore, checkIns *fakeCheckIns, now time.Time) *JourneyService {
	return &JourneyService{
		journeyRepo: store,
		badgeRepo:   store,
		checkInRepo: checkIns,
		now:         func() time.Time { return now },
	}
}

func TestStartJourneyConflictsWithActive(t *testing.T) {
	store := newFakeStore()
	svc := newJourneyForTest(store, &fakeCheckIns{}, time.Now())
	accountID := uuid.NewString()

	if _, err := svc.StartJourney(context.Background(), accountID); err != nil {
		t.Fatalf("StartJourney: %v", err)
	}
	if _, err := svc.StartJourney(context.Background(), accountID); err != utils.ErrJourneyActive {
		t.Errorf("second StartJourney err = %v, want ErrJourneyActive", err)
	}
}

// Racing starts for one account must leave exactly one active journey. The
// fake enforces this the way the real store does with its partial unique
// index on (account_id) WHERE end_date IS NULL: every loser of the race gets
// ErrJourneyActive.
func TestStartJourneyConcurrentSingleWinner(t *testing.T) {
	store := newFakeStore()
	svc := newJourneyForTest(store, &fakeCheckIns{}, time.Now())
	accountID := uuid.New()

	const workers = 8
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.StartJourney(context.Background(), accountID.String())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	started, rejected := 0, 0
	for err := range results {
		switch err {
		case nil:
			started++
		case utils.ErrJourneyActive:
			rejected++
		default:
			t.Errorf("StartJourney: %v", err)
		}
	}
	if started != 1 {
		t.Errorf("%d starts succeeded, want exactly 1", started)
	}
	if rejected != workers-1 {
		t.Errorf("%d starts rejected, want %d", rejected, workers-1)
	}

	active, err := store.GetActiveByAccount(context.Background(), accountID)
	if err != nil || active == nil {
		t.Fatalf("GetActiveByAccount = %v, %v", active, err)
	}
	if got := len(store.journeys); got != 1 {
		t.Errorf("store holds %d journeys, want 1", got)
	}
}

func TestReportRelapseViolationKeepsJourneyRunning(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	accountID := uuid.New()
	journey := store.addJourney(accountID, now.Add(-time.Hour))

	svc := newJourneyForTest(store, &fakeCheckIns{}, now)
	out, err := svc.ReportRelapse(context.Background(), accountID.String(), request_models.RelapseRequest{})
	if err != nil {
		t.Fatalf("ReportRelapse: %v", err)
	}

	if out.ViolationsCount != 1 {
		t.Errorf("ViolationsCount = %d, want 1", out.ViolationsCount)
	}
	if out.EndDate != "" {
		t.Errorf("violation ended the journey: EndDate = %q", out.EndDate)
	}
	if store.journeys[journey.ID].EndDate != nil {
		t.Errorf("journey ended in the store after a non-reset relapse")
	}
}

func TestReportRelapseResetEndsJourney(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	accountID := uuid.New()
	journey := store.addJourney(accountID, now.Add(-400*time.Second))

	svc := newJourneyForTest(store, &fakeCheckIns{}, now)
	out, err := svc.ReportRelapse(context.Background(), accountID.String(), request_models.RelapseRequest{Reset: true})
	if err != nil {
		t.Fatalf("ReportRelapse: %v", err)
	}

	if out.EndReason != string(dbm.EndReasonRelapse) {
		t.Errorf("EndReason = %q, want %q", out.EndReason, dbm.EndReasonRelapse)
	}
	if out.FinalSeconds != 400 {
		t.Errorf("FinalSeconds = %d, want 400", out.FinalSeconds)
	}
	if store.journeys[journey.ID].EndDate == nil {
		t.Errorf("journey still active in the store after reset")
	}

	// The old journey is closed, so a fresh one can start.
	if _, err := svc.StartJourney(context.Background(), accountID.String()); err != nil {
		t.Errorf("StartJourney after reset: %v", err)
	}
}

func TestReportRelapseWithoutActiveJourney(t *testing.T) {
	svc := newJourneyForTest(newFakeStore(), &fakeCheckIns{}, time.Now())
	_, err := svc.ReportRelapse(context.Background(), uuid.NewString(), request_models.RelapseRequest{})
	if err != utils.ErrJourneyNotFound {
		t.Errorf("err = %v, want ErrJourneyNotFound", err)
	}
}

func TestReportRelapseNoteIsBestEffort(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	accountID := uuid.New()
	store.addJourney(accountID, now.Add(-time.Hour))

	checkIns := &fakeCheckIns{err: errors.New("journal store down")}
	svc := newJourneyForTest(store, checkIns, now)

	req := request_models.RelapseRequest{Note: "rough evening", Mood: "low", Tags: []string{"stress"}}
	if _, err := svc.ReportRelapse(context.Background(), accountID.String(), req); err != nil {
		t.Errorf("ReportRelapse failed because the note could not be saved: %v", err)
	}
}

func TestReportRelapseSavesNote(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	accountID := uuid.New()
	journey := store.addJourney(accountID, now.Add(-time.Hour))

	checkIns := &fakeCheckIns{}
	svc := newJourneyForTest(store, checkIns, now)

	req := request_models.RelapseRequest{Note: "slipped", Mood: "low"}
	if _, err := svc.ReportRelapse(context.Background(), accountID.String(), req); err != nil {
		t.Fatalf("ReportRelapse: %v", err)
	}

	saved, err := checkIns.ListByJourney(context.Background(), journey.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListByJourney: %v", err)
	}
	if len(saved) != 1 || saved[0].Note != "slipped" {
		t.Errorf("saved check-ins = %+v, want one with the relapse note", saved)
	}
}

func TestGetJourneyDetailIncludesBadgesAfterEnd(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	accountID := uuid.New()
	journey := store.addJourney(accountID, now.Add(-400*time.Second))

	award := NewAwardService(store, milestones.ShortTable)
	if _, err := award.EvaluateJourney(context.Background(), journey, 0, now, dbm.BadgeSourceSweep); err != nil {
		t.Fatalf("EvaluateJourney: %v", err)
	}

	svc := newJourneyForTest(store, &fakeCheckIns{}, now)
	if _, err := svc.ReportRelapse(context.Background(), accountID.String(), request_models.RelapseRequest{Reset: true}); err != nil {
		t.Fatalf("ReportRelapse: %v", err)
	}

	detail, err := svc.GetJourneyDetail(context.Background(), journey.ID.String())
	if err != nil {
		t.Fatalf("GetJourneyDetail: %v", err)
	}
	if len(detail.Badges) != 2 {
		t.Errorf("detail has %d badges after end, want 2", len(detail.Badges))
	}
	if detail.Journey.AchievementsCount != 2 {
		t.Errorf("AchievementsCount = %d, want 2", detail.Journey.AchievementsCount)
	}
}

func TestListJourneysPagingValidation(t *testing.T) {
	svc := newJourneyForTest(newFakeStore(), &fakeCheckIns{}, time.Now())

	if _, err := svc.ListJourneys(context.Background(), uuid.NewString(), 0, 10); err != utils.ErrInvalidPage {
		t.Errorf("page 0: err = %v, want ErrInvalidPage", err)
	}
	if _, err := svc.ListJourneys(context.Background(), uuid.NewString(), 1, 500); err != utils.ErrInvalidPageSize {
		t.Errorf("page size 500: err = %v, want ErrInvalidPageSize", err)
	}
}
