package services

import (
	"context"
	"time"

	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/models/request_models"
	"kamehameha/internal/models/response_models"
	"kamehameha/internal/repositories"
	mem "kamehameha/pkg/memcache"
	"kamehameha/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) (*response_models.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetTokens mem.ResetTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, resetTokens mem.ResetTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := dbm.Account{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
	}
	if err := a.accountRepo.Create(ctx, &account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	return &response_models.LoginResponse{Token: token}, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) (*response_models.ForgotPasswordResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, 15*time.Minute)

	return &response_models.ForgotPasswordResponse{ResetToken: token}, nil
}

func (a *AccountService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(req.Token)
	if email == "" {
		return utils.ErrResetTokenInvalid
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
