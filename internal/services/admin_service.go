package services

import (
	"context"
	"log/slog"

	"github.com/skillshare-lk/user-service/internal/events"
	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
)

type adminService struct {
	repo      repositories.Repository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewAdminService(repo repositories.Repository, publisher events.Publisher, logger *slog.Logger) AdminService {
	return &adminService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *adminService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*models.PublicUser, int64, error) {
	users, total, err := s.repo.User().List(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	public := make([]*models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.PublicView())
	}
	return public, total, nil
}

func (s *adminService) GetStats(ctx context.Context) (*models.UserStats, error) {
	return s.repo.User().GetStats(ctx)
}

// UpdateUserStatus is the only account mutation besides signup. Accounts are
// never deleted; suspension is the soft removal path.
func (s *adminService) UpdateUserStatus(ctx context.Context, adminID, userID string, status string) (*models.PublicUser, error) {
	newStatus := models.UserStatus(status)
	if !models.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	before, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	oldStatus := before.Status

	updated, err := s.repo.User().UpdateStatus(ctx, userID, newStatus)
	if err != nil {
		return nil, err
	}

	if oldStatus != updated.Status {
		s.publisher.PublishUserStatusChanged(ctx, updated, oldStatus, adminID)
	}
	s.logger.Info("User status updated",
		"user_id", userID,
		"old_status", oldStatus,
		"new_status", updated.Status,
		"changed_by", adminID,
	)

	return updated.PublicView(), nil
}
