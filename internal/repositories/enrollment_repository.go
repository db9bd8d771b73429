package repositories

import (
	"context"

	"github.com/skillshare-lk/user-service/internal/models"
)

// EnrollmentRepository reads enrollment data this service does not own,
// only what the students listing needs.
type EnrollmentRepository interface {
	// GetInstructorStudents returns distinct students enrolled in any
	// course owned by the instructor, newest enrollment first.
	GetInstructorStudents(ctx context.Context, instructorID string) ([]*models.InstructorStudent, error)
}
