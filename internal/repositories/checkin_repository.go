package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	dbm "kamehameha/internal/models/db_models"
)

type CheckInRepository interface {
	Create(ctx context.Context, checkIn *dbm.CheckIn) error
	ListByJourney(ctx context.Context, journeyID uuid.UUID, page, pageSize int) ([]dbm.CheckIn, error)

	// FindSimilar returns the account's past check-ins closest to the query
	// vector by cosine distance.
	FindSimilar(ctx context.Context, accountID uuid.UUID, vector pgvector.Vector, limit int) ([]dbm.CheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Create(ctx context.Context, checkIn *dbm.CheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

func (r *checkInRepository) ListByJourney(ctx context.Context, journeyID uuid.UUID, page, pageSize int) ([]dbm.CheckIn, error) {
	var checkIns []dbm.CheckIn
	err := r.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepository) FindSimilar(ctx context.Context, accountID uuid.UUID, vector pgvector.Vector, limit int) ([]dbm.CheckIn, error) {
	var results []dbm.CheckIn

	query := `
        SELECT * FROM check_ins
        WHERE account_id = $1
          AND embedding IS NOT NULL
        ORDER BY embedding <=> $2
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, accountID, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
