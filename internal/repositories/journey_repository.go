package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "kamehameha/internal/models/db_models"
	"kamehameha/pkg/utils"
)

type JourneyRepository interface {
	// Create starts a new journey for the account. Fails with ErrJourneyActive
	// while a previous journey is still open.
	Create(ctx context.Context, accountID uuid.UUID, startDate time.Time) (*dbm.Journey, error)

	GetByID(ctx context.Context, journeyID uuid.UUID) (*dbm.Journey, error)
	GetActiveByAccount(ctx context.Context, accountID uuid.UUID) (*dbm.Journey, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Journey, error)

	// ListActive returns every journey with no end date, across all accounts.
	// This is the sweep's work list.
	ListActive(ctx context.Context) ([]dbm.Journey, error)

	// End closes the journey once. Ending an already-ended journey returns
	// ErrJourneyEnded; badges are never touched.
	End(ctx context.Context, journeyID uuid.UUID, reason dbm.EndReason, finalSeconds int64) error

	// IncrementViolations bumps the violation counter of an active journey.
	IncrementViolations(ctx context.Context, journeyID uuid.UUID) error
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

func (r *journeyRepository) Create(ctx context.Context, accountID uuid.UUID, startDate time.Time) (*dbm.Journey, error) {
	journey := dbm.Journey{
		AccountID: accountID,
		StartDate: startDate.Unix(),
		EndReason: dbm.EndReasonActive,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open dbm.Journey
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ? AND end_date IS NULL", accountID).
			First(&open).Error
		switch {
		case err == nil:
			return utils.ErrJourneyActive
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(&journey).Error
	})
	if err != nil {
		// The FOR UPDATE check above locks nothing when no open journey
		// exists, so two simultaneous starts can both pass it; the partial
		// unique index on (account_id) WHERE end_date IS NULL decides the
		// race and the loser lands here.
		if isUniqueViolation(err) {
			return nil, utils.ErrJourneyActive
		}
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) GetByID(ctx context.Context, journeyID uuid.UUID) (*dbm.Journey, error) {
	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("id = ?", journeyID).
		First(&journey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) GetActiveByAccount(ctx context.Context, accountID uuid.UUID) (*dbm.Journey, error) {
	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND end_date IS NULL", accountID).
		First(&journey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Journey, error) {
	var journeys []dbm.Journey
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("start_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&journeys).Error
	if err != nil {
		return nil, err
	}
	return journeys, nil
}

func (r *journeyRepository) ListActive(ctx context.Context) ([]dbm.Journey, error) {
	var journeys []dbm.Journey
	err := r.db.WithContext(ctx).
		Where("end_date IS NULL").
		Find(&journeys).Error
	if err != nil {
		return nil, err
	}
	return journeys, nil
}

func (r *journeyRepository) End(ctx context.Context, journeyID uuid.UUID, reason dbm.EndReason, finalSeconds int64) error {
	now := time.Now().Unix()
	res := r.db.WithContext(ctx).
		Model(&dbm.Journey{}).
		Where("id = ? AND end_date IS NULL", journeyID).
		Updates(map[string]interface{}{
			"end_date":      now,
			"end_reason":    reason,
			"final_seconds": finalSeconds,
			"updated_at":    now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrJourneyEnded
	}
	return nil
}

func (r *journeyRepository) IncrementViolations(ctx context.Context, journeyID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Journey{}).
		Where("id = ? AND end_date IS NULL", journeyID).
		Updates(map[string]interface{}{
			"violations_count": gorm.Expr("violations_count + 1"),
			"updated_at":       time.Now().Unix(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrJourneyEnded
	}
	return nil
}
