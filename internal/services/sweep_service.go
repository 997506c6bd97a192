package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/repositories"
)

// SweepReport is the aggregate outcome of one sweep pass.
type SweepReport struct {
	JourneysSeen      int `json:"journeys_seen"`
	JourneysProcessed int `json:"journeys_processed"`
	JourneysSkipped   int `json:"journeys_skipped"`
	BadgesCreated     int `json:"badges_created"`
	Failures          int `json:"failures"`
}

type SweepServiceInterface interface {
	// RunOnce walks every active journey and re-evaluates all thresholds up
	// to its current elapsed time. The sweep keeps no memory between runs:
	// repeated attempts are absorbed by the award transaction's idempotency,
	// which is what makes a crashed or skipped run self-healing.
	RunOnce(ctx context.Context) (SweepReport, error)
}

type SweepService struct {
	journeyRepo repositories.JourneyRepository
	award       AwardServiceInterface
	now         func() time.Time
}

func NewSweepService(journeyRepo repositories.JourneyRepository, award AwardServiceInterface) SweepServiceInterface {
	return &SweepService{
		journeyRepo: journeyRepo,
		award:       award,
		now:         time.Now,
	}
}

func (s *SweepService) RunOnce(ctx context.Context) (SweepReport, error) {
	var report SweepReport

	journeys, err := s.journeyRepo.ListActive(ctx)
	if err != nil {
		// Nothing has mutated yet; the next scheduled run retries from scratch.
		log.Printf("sweep: active journey query failed: %v", err)
		return report, err
	}
	report.JourneysSeen = len(journeys)

	now := s.now()
	for i := range journeys {
		journey := &journeys[i]

		if skip, reason := sweepSkipReason(journey, now); skip {
			log.Printf("sweep: skipping journey %s: %s", journey.ID, reason)
			report.JourneysSkipped++
			continue
		}

		// lastChecked = 0: the sweep re-covers every threshold every run.
		created, err := s.award.EvaluateJourney(ctx, journey, 0, now, dbm.BadgeSourceSweep)
		report.BadgesCreated += created
		if err != nil {
			// One journey's failure never aborts its siblings.
			log.Printf("sweep: journey %s had failed award attempts: %v", journey.ID, err)
			report.Failures++
			continue
		}
		report.JourneysProcessed++
	}

	log.Printf("sweep: seen=%d processed=%d skipped=%d created=%d failures=%d",
		report.JourneysSeen, report.JourneysProcessed, report.JourneysSkipped,
		report.BadgesCreated, report.Failures)
	return report, nil
}

func sweepSkipReason(journey *dbm.Journey, now time.Time) (bool, string) {
	switch {
	case journey.ID == uuid.Nil:
		return true, "missing id"
	case journey.EndDate != nil:
		// ListActive should never return these; treat it as malformed data.
		return true, "end date set on supposedly active journey"
	case journey.StartDate <= 0:
		return true, "missing start date"
	case journey.StartDate > now.Unix():
		return true, "start date in the future"
	}
	return false, ""
}
