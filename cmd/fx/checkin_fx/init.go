package checkin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kamehameha/internal/repositories"
	"kamehameha/internal/services"
	"kamehameha/pkg/utils"
)

var Module = fx.Provide(
	provideCheckInRepo,
	provideCheckInService)

func provideCheckInRepo(db *gorm.DB) repositories.CheckInRepository {
	return repositories.NewCheckInRepository(db)
}

func provideCheckInService(
	checkInRepo repositories.CheckInRepository,
	journeyRepo repositories.JourneyRepository,
	ai utils.AIClientInterface,
) services.CheckInServiceInterface {
	return services.NewCheckInService(checkInRepo, journeyRepo, ai)
}
