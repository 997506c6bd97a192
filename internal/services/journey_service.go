package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/models/request_models"
	"kamehameha/internal/models/response_models"
	"kamehameha/internal/repositories"
	"kamehameha/pkg/utils"
)

type JourneyServiceInterface interface {
	StartJourney(ctx context.Context, accountID string) (*response_models.JourneyResponse, error)
	GetCurrentJourney(ctx context.Context, accountID string) (*response_models.JourneyDetailResponse, error)
	GetJourneyDetail(ctx context.Context, journeyID string) (*response_models.JourneyDetailResponse, error)
	ListJourneys(ctx context.Context, accountID string, page, pageSize int) ([]response_models.JourneyResponse, error)
	ReportRelapse(ctx context.Context, accountID string, req request_models.RelapseRequest) (*response_models.JourneyResponse, error)
}

type JourneyService struct {
	journeyRepo repositories.JourneyRepository
	badgeRepo   repositories.BadgeRepository
	checkInRepo repositories.CheckInRepository
	now         func() time.Time
}

func NewJourneyService(
	journeyRepo repositories.JourneyRepository,
	badgeRepo repositories.BadgeRepository,
	checkInRepo repositories.CheckInRepository,
) JourneyServiceInterface {
	return &JourneyService{
		journeyRepo: journeyRepo,
		badgeRepo:   badgeRepo,
		checkInRepo: checkInRepo,
		now:         time.Now,
	}
}

func (j *JourneyService) StartJourney(ctx context.Context, accountID string) (*response_models.JourneyResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	journey, err := j.journeyRepo.Create(ctx, id, j.now())
	if err != nil {
		if err == utils.ErrJourneyActive {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	out := j.toResponse(journey)
	return &out, nil
}

func (j *JourneyService) GetCurrentJourney(ctx context.Context, accountID string) (*response_models.JourneyDetailResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	journey, err := j.journeyRepo.GetActiveByAccount(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}

	return j.detail(ctx, journey)
}

func (j *JourneyService) GetJourneyDetail(ctx context.Context, journeyID string) (*response_models.JourneyDetailResponse, error) {
	id, err := uuid.Parse(journeyID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	journey, err := j.journeyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}

	return j.detail(ctx, journey)
}

func (j *JourneyService) ListJourneys(ctx context.Context, accountID string, page, pageSize int) ([]response_models.JourneyResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	journeys, err := j.journeyRepo.ListByAccount(ctx, id, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.JourneyResponse, 0, len(journeys))
	for i := range journeys {
		out = append(out, j.toResponse(&journeys[i]))
	}
	return out, nil
}

func (j *JourneyService) ReportRelapse(ctx context.Context, accountID string, req request_models.RelapseRequest) (*response_models.JourneyResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	journey, err := j.journeyRepo.GetActiveByAccount(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}

	now := j.now()
	if req.Reset {
		finalSeconds := utils.ElapsedSeconds(journey.StartDate, now)
		if err := j.journeyRepo.End(ctx, journey.ID, dbm.EndReasonRelapse, finalSeconds); err != nil {
			if err == utils.ErrJourneyEnded {
				return nil, err
			}
			return nil, utils.ErrDatabaseError
		}
	} else {
		if err := j.journeyRepo.IncrementViolations(ctx, journey.ID); err != nil {
			if err == utils.ErrJourneyEnded {
				return nil, err
			}
			return nil, utils.ErrDatabaseError
		}
	}

	if req.Note != "" {
		checkIn := dbm.CheckIn{
			AccountID: id,
			JourneyID: journey.ID,
			Mood:      req.Mood,
			Note:      req.Note,
			Tags:      req.Tags,
		}
		// Journaling is best-effort here; the relapse itself already landed.
		if err := j.checkInRepo.Create(ctx, &checkIn); err != nil {
			log.Printf("relapse note for journey %s not saved: %v", journey.ID, err)
		}
	}

	updated, err := j.journeyRepo.GetByID(ctx, journey.ID)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	out := j.toResponse(updated)
	return &out, nil
}

func (j *JourneyService) detail(ctx context.Context, journey *dbm.Journey) (*response_models.JourneyDetailResponse, error) {
	badges, err := j.badgeRepo.ListByJourney(ctx, journey.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	badgeOut := make([]response_models.BadgeResponse, 0, len(badges))
	for _, b := range badges {
		badgeOut = append(badgeOut, response_models.BadgeResponse{
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

	return &response_models.JourneyDetailResponse{
		Journey: j.toResponse(journey),
		Badges:  badgeOut,
	}, nil
}

func (j *JourneyService) toResponse(journey *dbm.Journey) response_models.JourneyResponse {
	out := response_models.JourneyResponse{
		ID:                journey.ID.String(),
		StartDate:         utils.FormatRFC3339(utils.FromUnixSeconds(journey.StartDate)),
		EndReason:         string(journey.EndReason),
		AchievementsCount: journey.AchievementsCount,
		ViolationsCount:   journey.ViolationsCount,
	}
	if journey.EndDate != nil {
		out.EndDate = utils.FormatRFC3339(utils.FromUnixSeconds(*journey.EndDate))
		out.FinalSeconds = journey.FinalSeconds
		out.ElapsedSeconds = journey.FinalSeconds
	} else {
		out.ElapsedSeconds = utils.ElapsedSeconds(journey.StartDate, j.now())
	}
	return out
}
