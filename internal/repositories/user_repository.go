package repositories

import (
	"context"

	"github.com/skillshare-lk/user-service/internal/models"
)

// UserRepository owns the user identity records.
type UserRepository interface {
	// Create fails with ErrDuplicateEmail when a case-insensitive match
	// exists; the email is normalized to lowercase before storage.
	Create(ctx context.Context, user *models.User) error

	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail performs a case-insensitive lookup.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateStatus fails with ErrUserNotFound when the user is absent.
	// Status validity is checked by the service layer.
	UpdateStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error)

	// List returns users ordered by creation time descending.
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)

	// GetStats aggregates account counts; "this month" means the start of
	// the current calendar month in the server's local clock.
	GetStats(ctx context.Context) (*models.UserStats, error)
}
