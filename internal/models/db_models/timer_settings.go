package db_models

import "github.com/google/uuid"

// TimerSettings is the focus timer's per-account configuration. The timer
// itself runs client-side; only the preferences are stored.
type TimerSettings struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	FocusMinutes      int `gorm:"default:25"`
	ShortBreakMinutes int `gorm:"default:5"`
	LongBreakMinutes  int `gorm:"default:15"`
	LongBreakEvery    int `gorm:"default:4"`
	SoundEnabled      bool
}
