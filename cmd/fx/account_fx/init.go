package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kamehameha/internal/repositories"
	"kamehameha/internal/services"
	mem "kamehameha/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, resetTokens mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens)
}
