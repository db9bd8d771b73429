package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
)

type learnerPostgreSQL struct {
	db *gorm.DB
}

func NewLearnerPostgreSQL(db *gorm.DB) repositories.LearnerRepository {
	return &learnerPostgreSQL{db: db}
}

func (r *learnerPostgreSQL) Create(ctx context.Context, profile *models.LearnerProfile) error {
	if profile.SkillLevel == "" {
		profile.SkillLevel = models.DefaultSkillLevel
	}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrProfileExists
		}
		return handleDBError(err, "create learner profile")
	}
	return nil
}

func (r *learnerPostgreSQL) GetByUserID(ctx context.Context, userID string) (*models.LearnerProfile, error) {
	var profile models.LearnerProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrProfileNotFound
		}
		return nil, handleDBError(err, "get learner profile")
	}
	return &profile, nil
}

func (r *learnerPostgreSQL) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LearnerProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "check learner profile exists")
	}
	return count > 0, nil
}

func (r *learnerPostgreSQL) Update(ctx context.Context, userID string, params repositories.UpdateLearnerProfileParams) (*models.LearnerProfile, error) {
	fields := params.Fields()
	if params.Interests != nil {
		data, err := json.Marshal(params.Interests)
		if err != nil {
			return nil, handleDBError(err, "marshal interests")
		}
		fields["interests"] = datatypes.JSON(data)
	}
	if len(fields) == 0 {
		return nil, repositories.ErrNoFields
	}

	result := r.db.WithContext(ctx).
		Model(&models.LearnerProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return nil, handleDBError(result.Error, "update learner profile")
	}
	if result.RowsAffected == 0 {
		return nil, repositories.ErrProfileNotFound
	}

	return r.GetByUserID(ctx, userID)
}

func (r *learnerPostgreSQL) UpdateProgress(ctx context.Context, userID string, params repositories.UpdateLearnerProgressParams) (*models.LearnerProfile, error) {
	fields := params.Fields()
	if len(fields) == 0 {
		return nil, repositories.ErrNoFields
	}

	result := r.db.WithContext(ctx).
		Model(&models.LearnerProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return nil, handleDBError(result.Error, "update learner progress")
	}
	if result.RowsAffected == 0 {
		return nil, repositories.ErrProfileNotFound
	}

	return r.GetByUserID(ctx, userID)
}

func (r *learnerPostgreSQL) Delete(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.LearnerProfile{})
	if result.Error != nil {
		return handleDBError(result.Error, "delete learner profile")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrProfileNotFound
	}
	return nil
}

func (r *learnerPostgreSQL) List(ctx context.Context, filters repositories.LearnerFilters) ([]*models.LearnerProfile, int64, error) {
	var profiles []*models.LearnerProfile
	var total int64

	query := r.db.WithContext(ctx).Model(&models.LearnerProfile{})
	if filters.SkillLevel != nil {
		query = query.Where("skill_level = ?", *filters.SkillLevel)
	}
	if filters.Interest != nil {
		query = query.Where("interests::text ILIKE ?", "%"+*filters.Interest+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count learners")
	}

	query = applyPagination(query.Preload("User").Order("created_at DESC"), filters.Limit, filters.Offset)
	if err := query.Find(&profiles).Error; err != nil {
		return nil, 0, handleDBError(err, "list learners")
	}

	return profiles, total, nil
}
