package services

import (
	"context"
	"errors"
	"testing"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/validator"
)

func newTestLearnerService() (LearnerService, *fakeRepo) {
	repo := newFakeRepo()
	return NewLearnerService(repo, validator.New(), testLogger()), repo
}

func TestCreateLearnerProfileGuards(t *testing.T) {
	svc, repo := newTestLearnerService()
	seedUser(repo, "learner-1", "l@b.com", models.RoleLearner)
	seedUser(repo, "instructor-1", "i@b.com", models.RoleInstructor)

	if _, err := svc.CreateProfile(context.Background(), "ghost", &validator.CreateLearnerProfileRequest{}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.CreateProfile(context.Background(), "instructor-1", &validator.CreateLearnerProfileRequest{}); !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("wrong role error = %v, want ErrRoleMismatch", err)
	}

	if _, err := svc.CreateProfile(context.Background(), "learner-1", &validator.CreateLearnerProfileRequest{}); err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	if _, err := svc.CreateProfile(context.Background(), "learner-1", &validator.CreateLearnerProfileRequest{}); !errors.Is(err, ErrProfileExists) {
		t.Errorf("duplicate profile error = %v, want ErrProfileExists", err)
	}
}

func TestCreateLearnerProfilePhoneValidation(t *testing.T) {
	svc, repo := newTestLearnerService()
	seedUser(repo, "learner-1", "l@b.com", models.RoleLearner)

	tests := []struct {
		phone string
		valid bool
	}{
		{"12345", false},
		{"+94771234567", true},
		{"0771234567", true},
	}

	for _, tt := range tests {
		repo.learners = map[string]*models.LearnerProfile{}
		phone := tt.phone
		_, err := svc.CreateProfile(context.Background(), "learner-1", &validator.CreateLearnerProfileRequest{
			PhoneNumber: &phone,
		})
		if tt.valid && err != nil {
			t.Errorf("phone %q: unexpected error %v", tt.phone, err)
		}
		if !tt.valid && !errors.Is(err, ErrValidationFailed) {
			t.Errorf("phone %q: error = %v, want ErrValidationFailed", tt.phone, err)
		}
	}
}

func TestLearnerProfileDefaultsAndUpdate(t *testing.T) {
	svc, repo := newTestLearnerService()
	seedUser(repo, "learner-1", "l@b.com", models.RoleLearner)

	profile, err := svc.CreateProfile(context.Background(), "learner-1", &validator.CreateLearnerProfileRequest{
		Interests: []string{"pottery"},
	})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	if profile.SkillLevel != models.DefaultSkillLevel {
		t.Errorf("skill level = %q, want %q", profile.SkillLevel, models.DefaultSkillLevel)
	}

	level := "Advanced"
	updated, err := svc.UpdateProfile(context.Background(), "learner-1", &validator.UpdateLearnerProfileRequest{
		SkillLevel: &level,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.SkillLevel != "Advanced" {
		t.Errorf("skill level = %q, want Advanced", updated.SkillLevel)
	}

	// An empty update set is rejected, not a silent no-op.
	if _, err := svc.UpdateProfile(context.Background(), "learner-1", &validator.UpdateLearnerProfileRequest{}); !errors.Is(err, ErrNoFields) {
		t.Errorf("empty update error = %v, want ErrNoFields", err)
	}
}

func TestUpdateProgress(t *testing.T) {
	svc, repo := newTestLearnerService()
	seedUser(repo, "learner-1", "l@b.com", models.RoleLearner)
	if _, err := svc.CreateProfile(context.Background(), "learner-1", &validator.CreateLearnerProfileRequest{}); err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}

	completed := 3
	profile, err := svc.UpdateProgress(context.Background(), "learner-1", &validator.UpdateLearnerProgressRequest{
		CompletedCourses: &completed,
	})
	if err != nil {
		t.Fatalf("UpdateProgress() error = %v", err)
	}
	if profile.CompletedCourses != 3 {
		t.Errorf("completed courses = %d, want 3", profile.CompletedCourses)
	}

	negative := -1
	if _, err := svc.UpdateProgress(context.Background(), "learner-1", &validator.UpdateLearnerProgressRequest{
		CompletedCourses: &negative,
	}); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("negative counter error = %v, want ErrValidationFailed", err)
	}
}

func TestInstructorProfileGuards(t *testing.T) {
	repo := newFakeRepo()
	svc := NewInstructorService(repo, validator.New(), testLogger())
	seedUser(repo, "instructor-1", "i@b.com", models.RoleInstructor)
	seedUser(repo, "learner-1", "l@b.com", models.RoleLearner)

	if _, err := svc.CreateProfile(context.Background(), "learner-1", &validator.CreateInstructorProfileRequest{}); !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("wrong role error = %v, want ErrRoleMismatch", err)
	}

	profile, err := svc.CreateProfile(context.Background(), "instructor-1", &validator.CreateInstructorProfileRequest{
		ExperienceYears: 5,
	})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	if profile.ExperienceYears != 5 {
		t.Errorf("experience = %d, want 5", profile.ExperienceYears)
	}

	if _, err := svc.CreateProfile(context.Background(), "instructor-1", &validator.CreateInstructorProfileRequest{}); !errors.Is(err, ErrProfileExists) {
		t.Errorf("duplicate profile error = %v, want ErrProfileExists", err)
	}
}

func TestGetStudents(t *testing.T) {
	repo := newFakeRepo()
	svc := NewInstructorService(repo, validator.New(), testLogger())
	repo.students = []*models.InstructorStudent{
		{ID: "s1", Email: "s1@b.com", CourseTitle: "Pottery 101"},
	}

	students, err := svc.GetStudents(context.Background(), "instructor-1")
	if err != nil {
		t.Fatalf("GetStudents() error = %v", err)
	}
	if len(students) != 1 || students[0].CourseTitle != "Pottery 101" {
		t.Errorf("unexpected students: %+v", students)
	}
}
