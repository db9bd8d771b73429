package repositories

import (
	"context"

	"github.com/skillshare-lk/user-service/internal/models"
)

// InstructorRepository owns instructor profile rows. The user existence and
// role guards live in the service layer; the unique index on user_id is the
// backstop for the one-profile-per-user invariant.
type InstructorRepository interface {
	Create(ctx context.Context, profile *models.InstructorProfile) error
	GetByUserID(ctx context.Context, userID string) (*models.InstructorProfile, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)

	// Update applies a partial update; fails with ErrNoFields for an empty
	// set and ErrProfileNotFound when no row matches.
	Update(ctx context.Context, userID string, params UpdateInstructorProfileParams) (*models.InstructorProfile, error)

	Delete(ctx context.Context, userID string) error
	List(ctx context.Context, filters InstructorFilters) ([]*models.InstructorProfile, int64, error)
}

// LearnerRepository owns learner profile rows.
type LearnerRepository interface {
	Create(ctx context.Context, profile *models.LearnerProfile) error
	GetByUserID(ctx context.Context, userID string) (*models.LearnerProfile, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)

	Update(ctx context.Context, userID string, params UpdateLearnerProfileParams) (*models.LearnerProfile, error)
	UpdateProgress(ctx context.Context, userID string, params UpdateLearnerProgressParams) (*models.LearnerProfile, error)

	Delete(ctx context.Context, userID string) error
	List(ctx context.Context, filters LearnerFilters) ([]*models.LearnerProfile, int64, error)
}
