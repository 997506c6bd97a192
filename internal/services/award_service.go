package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"kamehameha/internal/milestones"
	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/models/response_models"
	"kamehameha/internal/repositories"
	"kamehameha/pkg/utils"
)

type AwardServiceInterface interface {
	// EvaluateJourney computes the journey's elapsed seconds at now, finds
	// every threshold crossed since lastCheckedSeconds and attempts the award
	// transaction for each. A failed attempt is logged and does not stop the
	// remaining thresholds; the first failure is returned so callers can
	// count it. Returns how many badges were actually created.
	EvaluateJourney(ctx context.Context, journey *dbm.Journey, lastCheckedSeconds int64, now time.Time, source dbm.BadgeSource) (int, error)

	ListBadges(ctx context.Context, journeyID string) ([]response_models.BadgeResponse, error)
}

type AwardService struct {
	badgeRepo repositories.BadgeRepository
	table     []milestones.Milestone
}

func NewAwardService(badgeRepo repositories.BadgeRepository, table []milestones.Milestone) AwardServiceInterface {
	return &AwardService{
		badgeRepo: badgeRepo,
		table:     table,
	}
}

func (s *AwardService) EvaluateJourney(
	ctx context.Context,
	journey *dbm.Journey,
	lastCheckedSeconds int64,
	now time.Time,
	source dbm.BadgeSource,
) (int, error) {

	elapsed := utils.ElapsedSeconds(journey.StartDate, now)
	crossed := milestones.Crossed(s.table, lastCheckedSeconds, elapsed)

	created := 0
	var firstErr error
	for _, seconds := range crossed {
		milestone := milestones.Describe(s.table, seconds)
		ok, err := s.badgeRepo.AwardIfAbsent(ctx, journey.ID, milestone, source)
		if err != nil {
			// Retry is free: the existence check makes a re-attempt by the
			// next tick or sweep side-effect-free.
			log.Printf("award attempt failed: journey=%s threshold=%d source=%s: %v",
				journey.ID, seconds, source, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if ok {
			created++
		}
	}
	return created, firstErr
}

func (s *AwardService) ListBadges(ctx context.Context, journeyID string) ([]response_models.BadgeResponse, error) {
	id, err := uuid.Parse(journeyID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	badges, err := s.badgeRepo.ListByJourney(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BadgeResponse, 0, len(badges))
	for _, b := range badges {
		out = append(out, response_models.BadgeResponse{
			ID:               b.ID,
			JourneyID:        b.JourneyID.String(),
			MilestoneSeconds: b.MilestoneSeconds,
			Emoji:            b.Emoji,
			Name:             b.Name,
			Message:          b.Message,
			Source:           string(b.Source),
			EarnedAt:         utils.FormatRFC3339(utils.FromUnixSeconds(b.EarnedAt)),
		})
	}
	return out, nil
}
