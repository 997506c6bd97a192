package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// CheckIn is a journal entry written during a journey. The embedding is
// optional; when the AI client is configured it enables similar-reflection
// lookup, otherwise the column stays null and check-ins work as plain notes.
type CheckIn struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	JourneyID uuid.UUID `gorm:"type:uuid;index"`

	Mood string `gorm:"type:varchar(32)"`
	Note string
	Tags pq.StringArray `gorm:"type:text[]"`

	Embedding *pgvector.Vector `gorm:"type:vector(1536)"`
}
