package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kamehameha/internal/repositories"
	"kamehameha/pkg/utils"
)

type CoachServiceInterface interface {
	// Reply returns one supportive coach message seeded with the account's
	// current streak. Stateless: nothing is persisted.
	Reply(ctx context.Context, accountID, message string) (string, error)
}

type CoachService struct {
	journeyRepo repositories.JourneyRepository
	ai          utils.AIClientInterface
}

func NewCoachService(journeyRepo repositories.JourneyRepository, ai utils.AIClientInterface) CoachServiceInterface {
	return &CoachService{
		journeyRepo: journeyRepo,
		ai:          ai,
	}
}

const coachSystemPrompt = `You are a warm, grounded recovery coach inside a streak-tracking app.
Keep replies short (2-4 sentences), practical and non-judgmental. Never
moralize, never shame a relapse, and suggest one concrete next action when it
fits naturally.`

func (s *CoachService) Reply(ctx context.Context, accountID, message string) (string, error) {
	if message == "" {
		return "", utils.ErrInvalidInput
	}
	if s.ai == nil {
		return "", utils.ErrAIUnavailable
	}

	prompt := message
	if id, err := uuid.Parse(accountID); err == nil {
		if journey, err := s.journeyRepo.GetActiveByAccount(ctx, id); err == nil && journey != nil {
			days := utils.ElapsedSeconds(journey.StartDate, time.Now()) / 86400
			prompt = fmt.Sprintf("(Context: the user is %d day(s) into their current streak, with %d milestone badge(s).)\n\n%s",
				days, journey.AchievementsCount, message)
		}
	}

	reply, err := s.ai.Reply(ctx, coachSystemPrompt, prompt)
	if err != nil {
		return "", utils.ErrAIUnavailable
	}
	return reply, nil
}
