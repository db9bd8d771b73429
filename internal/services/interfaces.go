package services

import (
	"context"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/validator"
)

// TokenResponse is the body returned by signup and login.
type TokenResponse struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

// AuthService orchestrates the signup and login flows.
type AuthService interface {
	Signup(ctx context.Context, req *validator.SignupRequest) (*TokenResponse, error)
	Login(ctx context.Context, req *validator.LoginRequest) (*TokenResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.PublicUser, error)
}

// InstructorService owns instructor profile operations.
type InstructorService interface {
	CreateProfile(ctx context.Context, userID string, req *validator.CreateInstructorProfileRequest) (*models.InstructorProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.InstructorProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *validator.UpdateInstructorProfileRequest) (*models.InstructorProfile, error)
	DeleteProfile(ctx context.Context, userID string) error
	List(ctx context.Context, filters repositories.InstructorFilters) ([]*models.InstructorProfile, int64, error)

	// GetStudents returns the distinct students enrolled in any course owned
	// by the instructor.
	GetStudents(ctx context.Context, instructorID string) ([]*models.InstructorStudent, error)
}

// LearnerService owns learner profile operations.
type LearnerService interface {
	CreateProfile(ctx context.Context, userID string, req *validator.CreateLearnerProfileRequest) (*models.LearnerProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.LearnerProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *validator.UpdateLearnerProfileRequest) (*models.LearnerProfile, error)
	UpdateProgress(ctx context.Context, userID string, req *validator.UpdateLearnerProgressRequest) (*models.LearnerProfile, error)
	DeleteProfile(ctx context.Context, userID string) error
	List(ctx context.Context, filters repositories.LearnerFilters) ([]*models.LearnerProfile, int64, error)
}

// AdminService covers account oversight operations.
type AdminService interface {
	ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*models.PublicUser, int64, error)
	GetStats(ctx context.Context) (*models.UserStats, error)
	UpdateUserStatus(ctx context.Context, adminID, userID string, status string) (*models.PublicUser, error)
}

// ReportService produces downloadable exports.
type ReportService interface {
	// ExportUsers renders the user listing as an xlsx workbook.
	ExportUsers(ctx context.Context, filters repositories.UserFilters) ([]byte, error)
}

// ServiceManager wires and owns all service instances.
type ServiceManager interface {
	Auth() AuthService
	Instructor() InstructorService
	Learner() LearnerService
	Admin() AdminService
	Report() ReportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
