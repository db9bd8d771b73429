package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/skillshare-lk/user-service/internal/cache"
	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
)

type userPostgreSQL struct {
	db    *gorm.DB
	cache *cache.CacheManager
}

func NewUserPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.UserRepository {
	return &userPostgreSQL{
		db:    db,
		cache: cacheManager,
	}
}

func (r *userPostgreSQL) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateEmail
		}
		return handleDBError(err, "create user")
	}

	_ = r.cache.Stats.InvalidatePattern(ctx, "users*")
	return nil
}

// GetByID sits on the auth middleware hot path, so it is cache-aside.
func (r *userPostgreSQL) GetByID(ctx context.Context, id string) (*models.User, error) {
	var cached models.User
	if err := r.cache.User.Get(ctx, "id:"+id, &cached); err == nil {
		return &cached, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, handleDBError(err, "get user by id")
	}

	_ = r.cache.User.Set(ctx, "id:"+id, &user, cache.UserCacheTTL)
	return &user, nil
}

func (r *userPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, handleDBError(err, "get user by email")
	}
	return &user, nil
}

func (r *userPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "check email exists")
	}
	return count > 0, nil
}

func (r *userPostgreSQL) UpdateStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, handleDBError(result.Error, "update user status")
	}
	if result.RowsAffected == 0 {
		return nil, repositories.ErrUserNotFound
	}

	r.cache.InvalidateUser(ctx, id)

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "reload user after status update")
	}
	return &user, nil
}

func (r *userPostgreSQL) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if filters.Role != nil {
		query = query.Where("role = ?", *filters.Role)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count users")
	}

	query = applyPagination(query.Order("created_at DESC"), filters.Limit, filters.Offset)
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, handleDBError(err, "list users")
	}

	return users, total, nil
}

func (r *userPostgreSQL) GetStats(ctx context.Context) (*models.UserStats, error) {
	var cached models.UserStats
	if err := r.cache.Stats.Get(ctx, "users", &cached); err == nil {
		return &cached, nil
	}

	stats := &models.UserStats{
		UsersByRole: make(map[string]int64),
	}

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, handleDBError(err, "count total users")
	}

	var roleCounts []struct {
		Role  string
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&roleCounts).Error; err != nil {
		return nil, handleDBError(err, "count users by role")
	}
	for _, rc := range roleCounts {
		stats.UsersByRole[rc.Role] = rc.Count
	}

	// Month boundary is the start of the current calendar month in the
	// server's local clock.
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("created_at >= ?", monthStart).
		Count(&stats.NewUsersThisMonth).Error; err != nil {
		return nil, handleDBError(err, "count new users this month")
	}

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("status = ?", models.StatusActive).
		Count(&stats.ActiveUsers).Error; err != nil {
		return nil, handleDBError(err, "count active users")
	}

	_ = r.cache.Stats.Set(ctx, "users", stats, cache.StatsCacheTTL)
	return stats, nil
}
