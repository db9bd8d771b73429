package repositories

import (
	"github.com/skillshare-lk/user-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type UserFilters struct {
	Role   *models.UserRole `json:"role"`
	Status *models.UserStatus
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type InstructorFilters struct {
	MinExperience *int    `json:"min_experience"`
	Expertise     *string `json:"expertise"` // substring match
	Limit         int     `json:"limit"`
	Offset        int     `json:"offset"`
}

type LearnerFilters struct {
	SkillLevel *string `json:"skill_level"`
	Interest   *string `json:"interest"` // substring match against interests
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
}

// ===== PARTIAL UPDATE STRUCTS =====

// Partial updates enumerate every updatable field explicitly; unknown request
// keys never reach the storage layer.

type UpdateInstructorProfileParams struct {
	ExperienceYears *int
	Expertise       *string
	Bio             *string
	PhoneNumber     *string
	Address         *string
}

// Fields returns the set clause as column/value pairs. An empty map means the
// caller supplied nothing to update.
func (p UpdateInstructorProfileParams) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.ExperienceYears != nil {
		fields["experience_years"] = *p.ExperienceYears
	}
	if p.Expertise != nil {
		fields["expertise"] = *p.Expertise
	}
	if p.Bio != nil {
		fields["bio"] = *p.Bio
	}
	if p.PhoneNumber != nil {
		fields["phone_number"] = *p.PhoneNumber
	}
	if p.Address != nil {
		fields["address"] = *p.Address
	}
	return fields
}

type UpdateLearnerProfileParams struct {
	Address       *string
	PhoneNumber   *string
	LearningGoals *string
	Interests     []string
	SkillLevel    *string
}

func (p UpdateLearnerProfileParams) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Address != nil {
		fields["address"] = *p.Address
	}
	if p.PhoneNumber != nil {
		fields["phone_number"] = *p.PhoneNumber
	}
	if p.LearningGoals != nil {
		fields["learning_goals"] = *p.LearningGoals
	}
	if p.SkillLevel != nil {
		fields["skill_level"] = *p.SkillLevel
	}
	// Interests handled by the repository since jsonb needs marshaling.
	return fields
}

type UpdateLearnerProgressParams struct {
	CompletedCourses   *int
	CertificatesEarned *int
}

func (p UpdateLearnerProgressParams) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.CompletedCourses != nil {
		fields["completed_courses"] = *p.CompletedCourses
	}
	if p.CertificatesEarned != nil {
		fields["certificates_earned"] = *p.CertificatesEarned
	}
	return fields
}
