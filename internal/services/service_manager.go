package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skillshare-lk/user-service/internal/auth"
	"github.com/skillshare-lk/user-service/internal/events"
	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/validator"
)

// ServiceManagerConfig carries the dependencies shared across services.
type ServiceManagerConfig struct {
	Repo      repositories.Repository
	Tokens    *auth.TokenManager
	Hasher    *auth.Hasher
	Validator *validator.Validator
	Publisher events.Publisher
	Logger    *slog.Logger
}

type serviceManager struct {
	config ServiceManagerConfig

	authService       AuthService
	instructorService InstructorService
	learnerService    LearnerService
	adminService      AdminService
	reportService     ReportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

func NewServiceManager(config ServiceManagerConfig) ServiceManager {
	return &serviceManager{config: config}
}

// Initialize constructs all service instances.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	cfg := sm.config
	sm.authService = NewAuthService(cfg.Repo, cfg.Tokens, cfg.Hasher, cfg.Validator, cfg.Publisher, cfg.Logger)
	sm.instructorService = NewInstructorService(cfg.Repo, cfg.Validator, cfg.Logger)
	sm.learnerService = NewLearnerService(cfg.Repo, cfg.Validator, cfg.Logger)
	sm.adminService = NewAdminService(cfg.Repo, cfg.Publisher, cfg.Logger)
	sm.reportService = NewReportService(cfg.Repo, cfg.Logger)

	sm.initialized = true
	cfg.Logger.Info("Service manager initialized")

	return nil
}

func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.authService
}

func (sm *serviceManager) Instructor() InstructorService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.instructorService
}

func (sm *serviceManager) Learner() LearnerService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.learnerService
}

func (sm *serviceManager) Admin() AdminService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.adminService
}

func (sm *serviceManager) Report() ReportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.reportService
}

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	return sm.config.Repo.Ping(ctx)
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.config.Logger.Info("Shutting down service manager")

	if sm.config.Publisher != nil {
		if err := sm.config.Publisher.Close(); err != nil {
			sm.config.Logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	return nil
}
