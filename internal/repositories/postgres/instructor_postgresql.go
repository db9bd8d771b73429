package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
)

type instructorPostgreSQL struct {
	db *gorm.DB
}

func NewInstructorPostgreSQL(db *gorm.DB) repositories.InstructorRepository {
	return &instructorPostgreSQL{db: db}
}

func (r *instructorPostgreSQL) Create(ctx context.Context, profile *models.InstructorProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrProfileExists
		}
		return handleDBError(err, "create instructor profile")
	}
	return nil
}

func (r *instructorPostgreSQL) GetByUserID(ctx context.Context, userID string) (*models.InstructorProfile, error) {
	var profile models.InstructorProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrProfileNotFound
		}
		return nil, handleDBError(err, "get instructor profile")
	}
	return &profile, nil
}

func (r *instructorPostgreSQL) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InstructorProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "check instructor profile exists")
	}
	return count > 0, nil
}

func (r *instructorPostgreSQL) Update(ctx context.Context, userID string, params repositories.UpdateInstructorProfileParams) (*models.InstructorProfile, error) {
	fields := params.Fields()
	if len(fields) == 0 {
		return nil, repositories.ErrNoFields
	}

	result := r.db.WithContext(ctx).
		Model(&models.InstructorProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return nil, handleDBError(result.Error, "update instructor profile")
	}
	if result.RowsAffected == 0 {
		return nil, repositories.ErrProfileNotFound
	}

	return r.GetByUserID(ctx, userID)
}

func (r *instructorPostgreSQL) Delete(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.InstructorProfile{})
	if result.Error != nil {
		return handleDBError(result.Error, "delete instructor profile")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrProfileNotFound
	}
	return nil
}

func (r *instructorPostgreSQL) List(ctx context.Context, filters repositories.InstructorFilters) ([]*models.InstructorProfile, int64, error) {
	var profiles []*models.InstructorProfile
	var total int64

	query := r.db.WithContext(ctx).Model(&models.InstructorProfile{})
	if filters.MinExperience != nil {
		query = query.Where("experience_years >= ?", *filters.MinExperience)
	}
	if filters.Expertise != nil {
		query = query.Where("expertise ILIKE ?", "%"+*filters.Expertise+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count instructors")
	}

	query = applyPagination(query.Preload("User").Order("created_at DESC"), filters.Limit, filters.Offset)
	if err := query.Find(&profiles).Error; err != nil {
		return nil, 0, handleDBError(err, "list instructors")
	}

	return profiles, total, nil
}
