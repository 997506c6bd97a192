package award_fx

import (
	"os"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"kamehameha/internal/milestones"
	"kamehameha/internal/repositories"
	"kamehameha/internal/services"
	mem "kamehameha/pkg/memcache"
)

var Module = fx.Provide(
	provideBadgeRepo,
	provideMilestoneTable,
	provideAwardService,
	provideSweepService,
	provideLiveAwardService)

func provideBadgeRepo(db *gorm.DB) repositories.BadgeRepository {
	return repositories.NewBadgeRepository(db)
}

func provideMilestoneTable() []milestones.Milestone {
	return milestones.ActiveTable()
}

func provideAwardService(badgeRepo repositories.BadgeRepository, table []milestones.Milestone) services.AwardServiceInterface {
	return services.NewAwardService(badgeRepo, table)
}

func provideSweepService(journeyRepo repositories.JourneyRepository, award services.AwardServiceInterface) services.SweepServiceInterface {
	return services.NewSweepService(journeyRepo, award)
}

func provideLiveAwardService(
	sessions *mem.LiveSessions,
	journeyRepo repositories.JourneyRepository,
	award services.AwardServiceInterface,
) services.LiveAwardServiceInterface {
	interval := time.Second
	if v := os.Getenv("LIVE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		}
	}
	return services.NewLiveAwardService(sessions, journeyRepo, award, interval)
}
