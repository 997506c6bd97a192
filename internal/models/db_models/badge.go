package db_models

import (
	"fmt"

	"github.com/google/uuid"
)

type BadgeSource string

const (
	BadgeSourceSweep BadgeSource = "sweep"
	BadgeSourceLive  BadgeSource = "live"
)

// Badge is one earned milestone. The primary key is the deterministic
// {journeyID}_{thresholdSeconds} pair: creating it with an on-conflict guard
// is the entire concurrency control for awards — no lock, no debounce.
//
// Descriptor fields are copied from the milestone table at award time so a
// later table edit never changes how an earned badge renders. Badges are
// never mutated and never deleted.
type Badge struct {
	ID        string    `gorm:"primaryKey;type:text"`
	JourneyID uuid.UUID `gorm:"type:uuid;index"`

	MilestoneSeconds int64
	Emoji            string
	Name             string
	Message          string

	// Source records which trigger won the race, for observability only.
	Source BadgeSource `gorm:"type:varchar(16)"`

	EarnedAt int64 `gorm:"autoCreateTime"`
}

// BadgeKey derives the deterministic badge ID for a journey and threshold.
func BadgeKey(journeyID uuid.UUID, thresholdSeconds int64) string {
	return fmt.Sprintf("%s_%d", journeyID, thresholdSeconds)
}
