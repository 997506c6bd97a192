package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrJourneyNotFound    = errors.New("journey not found")
	ErrJourneyActive      = errors.New("an active journey already exists")
	ErrJourneyEnded       = errors.New("journey already ended")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
	ErrDatabaseError      = errors.New("database error")
	ErrAIUnavailable      = errors.New("ai provider unavailable")
)
