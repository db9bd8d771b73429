package models

import "time"

// Course carries only what the auth core needs: ownership for the
// instructor-students query. Full course CRUD lives outside this service.
type Course struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Title        string `json:"title" gorm:"not null;size:255"`
	InstructorID string `json:"instructor_id" gorm:"index;not null;size:36"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// Enrollment links a learner to a course with progress tracking.
type Enrollment struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserID   string `json:"user_id" gorm:"index;not null;size:36"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Progress int    `json:"progress" gorm:"default:0"`

	EnrolledAt time.Time `json:"enrolled_at" gorm:"autoCreateTime"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
