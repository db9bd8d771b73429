package repositories

import "errors"

// Storage faults are translated into this taxonomy at the repository boundary
// so callers never see driver-specific error codes.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("user with this email already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrRoleMismatch    = errors.New("user role does not match profile type")
	ErrNoFields        = errors.New("no fields to update")
)
