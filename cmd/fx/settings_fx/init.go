package settings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kamehameha/internal/repositories"
	"kamehameha/internal/services"
)

var Module = fx.Provide(
	provideSettingsRepo,
	provideSettingsService)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsService(settingsRepo repositories.SettingsRepository) services.SettingsServiceInterface {
	return services.NewSettingsService(settingsRepo)
}
