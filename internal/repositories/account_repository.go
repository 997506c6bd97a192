package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "kamehameha/internal/models/db_models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *dbm.Account) error
	FindByEmail(ctx context.Context, email string) (*dbm.Account, error)
	FindByID(ctx context.Context, accountID uuid.UUID) (*dbm.Account, error)
	UpdatePasswordHash(ctx context.Context, accountID uuid.UUID, passwordHash string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *dbm.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(ctx context.Context, accountID uuid.UUID) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", accountID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UpdatePasswordHash(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("id = ?", accountID).
		Update("password_hash", passwordHash).Error
}
