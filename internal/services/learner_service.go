package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/validator"
)

type learnerService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    *slog.Logger
}

func NewLearnerService(repo repositories.Repository, v *validator.Validator, logger *slog.Logger) LearnerService {
	return &learnerService{
		repo:      repo,
		validator: v,
		logger:    logger,
	}
}

func (s *learnerService) CreateProfile(ctx context.Context, userID string, req *validator.CreateLearnerProfileRequest) (*models.LearnerProfile, error) {
	if errs := s.validator.Struct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if err := s.guardRole(ctx, userID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Learner().ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProfileExists
	}

	profile := &models.LearnerProfile{
		UserID:        userID,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		LearningGoals: req.LearningGoals,
		SkillLevel:    models.DefaultSkillLevel,
	}
	if req.SkillLevel != nil {
		profile.SkillLevel = *req.SkillLevel
	}
	if len(req.Interests) > 0 {
		data, err := json.Marshal(req.Interests)
		if err != nil {
			return nil, err
		}
		profile.Interests = datatypes.JSON(data)
	}

	if err := s.repo.Learner().Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Learner profile created", "user_id", userID)
	return s.repo.Learner().GetByUserID(ctx, userID)
}

func (s *learnerService) GetProfile(ctx context.Context, userID string) (*models.LearnerProfile, error) {
	return s.repo.Learner().GetByUserID(ctx, userID)
}

func (s *learnerService) UpdateProfile(ctx context.Context, userID string, req *validator.UpdateLearnerProfileRequest) (*models.LearnerProfile, error) {
	if errs := s.validator.Struct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	params := repositories.UpdateLearnerProfileParams{
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		LearningGoals: req.LearningGoals,
		Interests:     req.Interests,
		SkillLevel:    req.SkillLevel,
	}
	return s.repo.Learner().Update(ctx, userID, params)
}

// UpdateProgress adjusts the aggregate counters; negative values are rejected
// by the request validation.
func (s *learnerService) UpdateProgress(ctx context.Context, userID string, req *validator.UpdateLearnerProgressRequest) (*models.LearnerProfile, error) {
	if errs := s.validator.Struct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	params := repositories.UpdateLearnerProgressParams{
		CompletedCourses:   req.CompletedCourses,
		CertificatesEarned: req.CertificatesEarned,
	}
	return s.repo.Learner().UpdateProgress(ctx, userID, params)
}

func (s *learnerService) DeleteProfile(ctx context.Context, userID string) error {
	if err := s.repo.Learner().Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("Learner profile deleted", "user_id", userID)
	return nil
}

func (s *learnerService) List(ctx context.Context, filters repositories.LearnerFilters) ([]*models.LearnerProfile, int64, error) {
	return s.repo.Learner().List(ctx, filters)
}

func (s *learnerService) guardRole(ctx context.Context, userID string) error {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleLearner {
		return ErrRoleMismatch
	}
	return nil
}
