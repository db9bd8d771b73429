package services

import (
	"errors"

	"github.com/skillshare-lk/user-service/internal/repositories"
)

// Signup and login failures. The auth gateway checks rules in a fixed order
// and reports the first violated one.
var (
	ErrMissingFields      = errors.New("all required fields must be provided")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")
	ErrInvalidRole        = errors.New("invalid role specified")
	ErrInvalidPhone       = errors.New("invalid phone number format")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrForbidden        = errors.New("forbidden")
	ErrValidationFailed = errors.New("validation failed")
)

// Re-exported repository sentinels so handlers depend on one error surface.
var (
	ErrUserNotFound    = repositories.ErrUserNotFound
	ErrProfileNotFound = repositories.ErrProfileNotFound
	ErrProfileExists   = repositories.ErrProfileExists
	ErrRoleMismatch    = repositories.ErrRoleMismatch
	ErrNoFields        = repositories.ErrNoFields
)
