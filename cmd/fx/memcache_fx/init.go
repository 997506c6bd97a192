package memcache_fx

import (
	"go.uber.org/fx"

	mem "kamehameha/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokens,
	provideLiveSessions)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideLiveSessions() *mem.LiveSessions {
	return mem.NewLiveSessions()
}
