package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
)

type enrollmentPostgreSQL struct {
	db *gorm.DB
}

func NewEnrollmentPostgreSQL(db *gorm.DB) repositories.EnrollmentRepository {
	return &enrollmentPostgreSQL{db: db}
}

func (r *enrollmentPostgreSQL) GetInstructorStudents(ctx context.Context, instructorID string) ([]*models.InstructorStudent, error) {
	var students []*models.InstructorStudent

	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			u.id,
			u.email,
			u.first_name || ' ' || u.last_name AS full_name,
			u.role,
			e.enrolled_at,
			e.progress,
			c.id AS course_id,
			c.title AS course_title
		FROM users u
		JOIN enrollments e ON u.id = e.user_id
		JOIN courses c ON e.course_id = c.id
		WHERE c.instructor_id = ?
		ORDER BY e.enrolled_at DESC`, instructorID).
		Scan(&students).Error
	if err != nil {
		return nil, handleDBError(err, "get instructor students")
	}

	return students, nil
}
