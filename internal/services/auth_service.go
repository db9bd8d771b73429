package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/skillshare-lk/user-service/internal/auth"
	"github.com/skillshare-lk/user-service/internal/events"
	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/validator"
)

const minPasswordLength = 6

type authService struct {
	repo      repositories.Repository
	tokens    *auth.TokenManager
	hasher    *auth.Hasher
	validator *validator.Validator
	publisher events.Publisher
	logger    *slog.Logger
}

func NewAuthService(
	repo repositories.Repository,
	tokens *auth.TokenManager,
	hasher *auth.Hasher,
	v *validator.Validator,
	publisher events.Publisher,
	logger *slog.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		tokens:    tokens,
		hasher:    hasher,
		validator: v,
		publisher: publisher,
		logger:    logger,
	}
}

// Signup registers a new account. Rules are checked in a fixed order and the
// first violated one is reported; nothing is written before every rule passes.
func (s *authService) Signup(ctx context.Context, req *validator.SignupRequest) (*TokenResponse, error) {
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" || req.Role == "" {
		return nil, ErrMissingFields
	}
	if !s.validator.IsEmail(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}
	role := models.UserRole(req.Role)
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if role == models.RoleLearner && req.PhoneNumber != nil && *req.PhoneNumber != "" {
		if !s.validator.IsLKPhone(*req.PhoneNumber) {
			return nil, ErrInvalidPhone
		}
	}

	email := strings.ToLower(req.Email)
	taken, err := s.repo.User().ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		Status:       models.StatusActive,
	}

	// User row and role profile are created in one transaction so a profile
	// failure never leaves an orphan user.
	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		switch role {
		case models.RoleLearner:
			return tx.Learner().Create(ctx, s.learnerProfileFromSignup(user.ID, req))
		case models.RoleInstructor:
			return tx.Instructor().Create(ctx, s.instructorProfileFromSignup(user.ID, req))
		}
		return nil
	})
	if err != nil {
		// A concurrent signup can win the race between the existence check
		// and the insert; the unique index settles it.
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.publisher.PublishUserRegistered(ctx, user)
	s.logger.Info("User registered", "user_id", user.ID, "role", user.Role)

	return &TokenResponse{Token: token, User: user.PublicView()}, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// yield the identical error so the response never confirms an address exists.
func (s *authService) Login(ctx context.Context, req *validator.LoginRequest) (*TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if !s.validator.IsEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", "user_id", user.ID)

	return &TokenResponse{Token: token, User: user.PublicView()}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.PublicView(), nil
}

func (s *authService) learnerProfileFromSignup(userID string, req *validator.SignupRequest) *models.LearnerProfile {
	profile := &models.LearnerProfile{
		UserID:        userID,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		LearningGoals: req.LearningGoals,
		ProfilePhoto:  req.ProfilePhotoPath,
		SkillLevel:    models.DefaultSkillLevel,
	}
	if len(req.Interests) > 0 {
		if data, err := json.Marshal(req.Interests); err == nil {
			profile.Interests = datatypes.JSON(data)
		}
	}
	return profile
}

func (s *authService) instructorProfileFromSignup(userID string, req *validator.SignupRequest) *models.InstructorProfile {
	profile := &models.InstructorProfile{
		UserID:       userID,
		Expertise:    req.Expertise,
		Bio:          req.Bio,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		ProfilePhoto: req.ProfilePhotoPath,
	}
	if req.Experience != nil && *req.Experience > 0 {
		profile.ExperienceYears = *req.Experience
	}
	return profile
}
