package db_models

import (
	"github.com/google/uuid"
)

type EndReason string

const (
	EndReasonActive  EndReason = "active"
	EndReasonRelapse EndReason = "ended-by-relapse"
)

// Journey is one continuous run of the tracked streak. EndDate is nil while
// the journey is active; at most one journey per account is active at a time.
// Journeys are never deleted, and their badges outlive the active period.
type Journey struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`

	StartDate int64     // unix seconds, immutable once set
	EndDate   *int64    `gorm:"index"` // nil = active
	EndReason EndReason `gorm:"type:varchar(32);default:'active'"`

	// FinalSeconds is stamped once when the journey ends.
	FinalSeconds int64

	// Both counters only ever increase. AchievementsCount moves only inside
	// the award transaction, by exactly 1 per created badge.
	AchievementsCount int64
	ViolationsCount   int64

	Badges   []Badge   `gorm:"foreignKey:JourneyID"`
	CheckIns []CheckIn `gorm:"foreignKey:JourneyID"`
}

func (j *Journey) IsActive() bool {
	return j.EndDate == nil
}
