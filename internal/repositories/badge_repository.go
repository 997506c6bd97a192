package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kamehameha/internal/milestones"
	dbm "kamehameha/internal/models/db_models"
	"kamehameha/pkg/utils"
)

type BadgeRepository interface {
	// AwardIfAbsent creates the badge for (journeyID, milestone) and bumps the
	// journey's achievement counter by 1, as one atomic unit. It reports
	// created=false without error when the badge already exists; any error
	// means nothing was applied and the call is safe to retry.
	AwardIfAbsent(ctx context.Context, journeyID uuid.UUID, milestone milestones.Milestone, source dbm.BadgeSource) (created bool, err error)

	ListByJourney(ctx context.Context, journeyID uuid.UUID) ([]dbm.Badge, error)
	CountByJourney(ctx context.Context, journeyID uuid.UUID) (int64, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

// The deterministic primary key plus ON CONFLICT DO NOTHING is the sole
// serialization point for concurrent award attempts: whichever trigger's
// insert lands first wins, every other attempt inserts zero rows and skips
// the counter increment. No lock or debounce sits on top of this.
func (r *badgeRepository) AwardIfAbsent(
	ctx context.Context,
	journeyID uuid.UUID,
	milestone milestones.Milestone,
	source dbm.BadgeSource,
) (bool, error) {

	badge := dbm.Badge{
		ID:               dbm.BadgeKey(journeyID, milestone.Seconds),
		JourneyID:        journeyID,
		MilestoneSeconds: milestone.Seconds,
		Emoji:            milestone.Emoji,
		Name:             milestone.Name,
		Message:          milestone.Message,
		Source:           source,
	}

	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&badge)
		if res.Error != nil {
			if isUniqueViolation(res.Error) {
				return nil
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Badge already exists; the counter was bumped by whoever created it.
			return nil
		}

		upd := tx.Model(&dbm.Journey{}).
			Where("id = ?", journeyID).
			Updates(map[string]interface{}{
				"achievements_count": gorm.Expr("achievements_count + 1"),
				"updated_at":         time.Now().Unix(),
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			// Journey row vanished between evaluation and award; roll the
			// badge back rather than leave the counter behind.
			return utils.ErrJourneyNotFound
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *badgeRepository) ListByJourney(ctx context.Context, journeyID uuid.UUID) ([]dbm.Badge, error) {
	var badges []dbm.Badge
	err := r.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Order("milestone_seconds ASC").
		Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *badgeRepository) CountByJourney(ctx context.Context, journeyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Badge{}).
		Where("journey_id = ?", journeyID).
		Count(&count).Error
	return count, err
}

// isUniqueViolation covers drivers that surface the conflict instead of
// reporting zero affected rows.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
