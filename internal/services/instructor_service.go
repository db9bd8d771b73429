package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/validator"
)

type instructorService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    *slog.Logger
}

func NewInstructorService(repo repositories.Repository, v *validator.Validator, logger *slog.Logger) InstructorService {
	return &instructorService{
		repo:      repo,
		validator: v,
		logger:    logger,
	}
}

func (s *instructorService) CreateProfile(ctx context.Context, userID string, req *validator.CreateInstructorProfileRequest) (*models.InstructorProfile, error) {
	if errs := s.validator.Struct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if err := s.guardRole(ctx, userID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Instructor().ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProfileExists
	}

	profile := &models.InstructorProfile{
		UserID:          userID,
		ExperienceYears: req.ExperienceYears,
		Expertise:       req.Expertise,
		Bio:             req.Bio,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
	}
	if err := s.repo.Instructor().Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Instructor profile created", "user_id", userID)
	return s.repo.Instructor().GetByUserID(ctx, userID)
}

func (s *instructorService) GetProfile(ctx context.Context, userID string) (*models.InstructorProfile, error) {
	return s.repo.Instructor().GetByUserID(ctx, userID)
}

func (s *instructorService) UpdateProfile(ctx context.Context, userID string, req *validator.UpdateInstructorProfileRequest) (*models.InstructorProfile, error) {
	if errs := s.validator.Struct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	params := repositories.UpdateInstructorProfileParams{
		ExperienceYears: req.ExperienceYears,
		Expertise:       req.Expertise,
		Bio:             req.Bio,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
	}
	return s.repo.Instructor().Update(ctx, userID, params)
}

func (s *instructorService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.repo.Instructor().Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("Instructor profile deleted", "user_id", userID)
	return nil
}

func (s *instructorService) List(ctx context.Context, filters repositories.InstructorFilters) ([]*models.InstructorProfile, int64, error) {
	return s.repo.Instructor().List(ctx, filters)
}

func (s *instructorService) GetStudents(ctx context.Context, instructorID string) ([]*models.InstructorStudent, error) {
	return s.repo.Enrollment().GetInstructorStudents(ctx, instructorID)
}

// guardRole checks the owning user exists and actually has the instructor
// role before any profile write.
func (s *instructorService) guardRole(ctx context.Context, userID string) error {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleInstructor {
		return ErrRoleMismatch
	}
	return nil
}
