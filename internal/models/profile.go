package models

import (
	"time"

	"gorm.io/datatypes"
)

// InstructorProfile is the 1:1 extension of an instructor user. The unique
// index on UserID enforces at most one profile per user.
type InstructorProfile struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	UserID          string  `json:"user_id" gorm:"uniqueIndex;not null;size:36"`
	ExperienceYears int     `json:"experience_years" gorm:"default:0"`
	Expertise       *string `json:"expertise" gorm:"size:255"`
	Bio             *string `json:"bio" gorm:"size:2000"`
	PhoneNumber     *string `json:"phone_number" gorm:"size:20"`
	Address         *string `json:"address" gorm:"size:500"`
	ProfilePhoto    *string `json:"profile_photo" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (InstructorProfile) TableName() string {
	return "instructors"
}

const DefaultSkillLevel = "Beginner"

// LearnerProfile is the 1:1 extension of a learner user. Interests is a jsonb
// string array so interest filters can match a substring server-side.
type LearnerProfile struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	UserID        string         `json:"user_id" gorm:"uniqueIndex;not null;size:36"`
	Address       *string        `json:"address" gorm:"size:500"`
	PhoneNumber   *string        `json:"phone_number" gorm:"size:20"`
	ProfilePhoto  *string        `json:"profile_photo" gorm:"size:500"`
	LearningGoals *string        `json:"learning_goals" gorm:"size:2000"`
	Interests     datatypes.JSON `json:"interests" gorm:"type:jsonb"`
	SkillLevel    string         `json:"skill_level" gorm:"size:50;default:Beginner"`

	// Aggregate counters, kept non-negative by the service layer.
	CompletedCourses   int `json:"completed_courses" gorm:"default:0"`
	CertificatesEarned int `json:"certificates_earned" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (LearnerProfile) TableName() string {
	return "learners"
}
