package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/models/request_models"
	"kamehameha/internal/models/response_models"
	"kamehameha/internal/repositories"
	"kamehameha/pkg/utils"
)

type CheckInServiceInterface interface {
	CreateCheckIn(ctx context.Context, accountID string, req request_models.CreateCheckInRequest) (*response_models.CheckInResponse, error)
	ListCheckIns(ctx context.Context, journeyID string, page, pageSize int) ([]response_models.CheckInResponse, error)
	FindSimilar(ctx context.Context, accountID, text string, limit int) ([]response_models.CheckInResponse, error)
}

type CheckInService struct {
	checkInRepo repositories.CheckInRepository
	journeyRepo repositories.JourneyRepository
	ai          utils.AIClientInterface
}

func NewCheckInService(
	checkInRepo repositories.CheckInRepository,
	journeyRepo repositories.JourneyRepository,
	ai utils.AIClientInterface,
) CheckInServiceInterface {
	return &CheckInService{
		checkInRepo: checkInRepo,
		journeyRepo: journeyRepo,
		ai:          ai,
	}
}

func (s *CheckInService) CreateCheckIn(ctx context.Context, accountID string, req request_models.CreateCheckInRequest) (*response_models.CheckInResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	journey, err := s.journeyRepo.GetActiveByAccount(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}

	checkIn := dbm.CheckIn{
		AccountID: id,
		JourneyID: journey.ID,
		Mood:      req.Mood,
		Note:      req.Note,
		Tags:      req.Tags,
	}

	// The embedding is best-effort; a missing AI key or provider outage
	// degrades to a plain note, never a failed check-in.
	if s.ai != nil {
		if vec, err := s.ai.GetEmbedding(ctx, req.Note); err != nil {
			log.Printf("check-in embedding skipped: %v", err)
		} else {
			checkIn.Embedding = &vec
		}
	}

	if err := s.checkInRepo.Create(ctx, &checkIn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := toCheckInResponse(&checkIn)
	return &out, nil
}

func (s *CheckInService) ListCheckIns(ctx context.Context, journeyID string, page, pageSize int) ([]response_models.CheckInResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	id, err := uuid.Parse(journeyID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	checkIns, err := s.checkInRepo.ListByJourney(ctx, id, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CheckInResponse, 0, len(checkIns))
	for i := range checkIns {
		out = append(out, toCheckInResponse(&checkIns[i]))
	}
	return out, nil
}

func (s *CheckInService) FindSimilar(ctx context.Context, accountID, text string, limit int) ([]response_models.CheckInResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if text == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	if s.ai == nil {
		return nil, utils.ErrAIUnavailable
	}

	vec, err := s.ai.GetEmbedding(ctx, text)
	if err != nil {
		return nil, utils.ErrAIUnavailable
	}

	checkIns, err := s.checkInRepo.FindSimilar(ctx, id, vec, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CheckInResponse, 0, len(checkIns))
	for i := range checkIns {
		out = append(out, toCheckInResponse(&checkIns[i]))
	}
	return out, nil
}

func toCheckInResponse(c *dbm.CheckIn) response_models.CheckInResponse {
	return response_models.CheckInResponse{
		ID:        c.ID.String(),
		JourneyID: c.JourneyID.String(),
		Mood:      c.Mood,
		Note:      c.Note,
		Tags:      c.Tags,
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(c.CreatedAt)),
	}
}
