package journey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kamehameha/internal/repositories"
	"kamehameha/internal/services"
)

var Module = fx.Provide(
	provideJourneyRepo,
	provideJourneyService)

func provideJourneyRepo(db *gorm.DB) repositories.JourneyRepository {
	return repositories.NewJourneyRepository(db)
}

func provideJourneyService(
	journeyRepo repositories.JourneyRepository,
	badgeRepo repositories.BadgeRepository,
	checkInRepo repositories.CheckInRepository,
) services.JourneyServiceInterface {
	return services.NewJourneyService(journeyRepo, badgeRepo, checkInRepo)
}
