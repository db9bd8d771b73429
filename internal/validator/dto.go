package validator

// SignupRequest is bound from the multipart signup form. Field-order
// validation happens in the auth service, so the struct carries no tags for
// the ordered rules.
type SignupRequest struct {
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
	FirstName string `form:"firstName" json:"firstName"`
	LastName  string `form:"lastName" json:"lastName"`
	Role      string `form:"role" json:"role"`

	// Learner extras
	Address       *string  `form:"address" json:"address"`
	PhoneNumber   *string  `form:"phoneNumber" json:"phoneNumber"`
	LearningGoals *string  `form:"learningGoals" json:"learningGoals"`
	Interests     []string `form:"interests" json:"interests"`

	// Instructor extras
	Expertise  *string `form:"expertise" json:"expertise"`
	Experience *int    `form:"experience" json:"experience"`
	Bio        *string `form:"bio" json:"bio"`

	// Set by the upload handler, never bound from the form.
	ProfilePhotoPath *string `form:"-" json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateInstructorProfileRequest struct {
	ExperienceYears int     `json:"experience_years" validate:"min=0,max=80"`
	Expertise       *string `json:"expertise" validate:"omitempty,max=255"`
	Bio             *string `json:"bio" validate:"omitempty,max=2000"`
	PhoneNumber     *string `json:"phone_number" validate:"omitempty,lk_phone"`
	Address         *string `json:"address" validate:"omitempty,max=500"`
}

type UpdateInstructorProfileRequest struct {
	ExperienceYears *int    `json:"experience_years" validate:"omitempty,min=0,max=80"`
	Expertise       *string `json:"expertise" validate:"omitempty,max=255"`
	Bio             *string `json:"bio" validate:"omitempty,max=2000"`
	PhoneNumber     *string `json:"phone_number" validate:"omitempty,lk_phone"`
	Address         *string `json:"address" validate:"omitempty,max=500"`
}

type CreateLearnerProfileRequest struct {
	Address       *string  `json:"address" validate:"omitempty,max=500"`
	PhoneNumber   *string  `json:"phone_number" validate:"omitempty,lk_phone"`
	LearningGoals *string  `json:"learning_goals" validate:"omitempty,max=2000"`
	Interests     []string `json:"interests" validate:"omitempty,max=20,dive,max=50"`
	SkillLevel    *string  `json:"skill_level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

type UpdateLearnerProfileRequest struct {
	Address       *string  `json:"address" validate:"omitempty,max=500"`
	PhoneNumber   *string  `json:"phone_number" validate:"omitempty,lk_phone"`
	LearningGoals *string  `json:"learning_goals" validate:"omitempty,max=2000"`
	Interests     []string `json:"interests" validate:"omitempty,max=20,dive,max=50"`
	SkillLevel    *string  `json:"skill_level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

type UpdateLearnerProgressRequest struct {
	CompletedCourses   *int `json:"completed_courses" validate:"omitempty,min=0"`
	CertificatesEarned *int `json:"certificates_earned" validate:"omitempty,min=0"`
}

// UpdateStatusRequest carries an admin status change. The closed status set is
// checked by the service so the error is status-specific.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
