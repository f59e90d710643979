package repository

import (
	"context"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
)

type ActivityFilter struct {
	Status []entity.ActivityStatus
}

type ActivityRepository interface {
	Create(ctx context.Context, data *entity.Activity) error
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	GetList(ctx context.Context, filter ActivityFilter, offset, limit int) ([]entity.Activity, error)
	UpdateByID(ctx context.Context, id string, data *entity.Activity) error
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(ctx context.Context, data *entity.Activity) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	var result entity.Activity
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *activityRepository) GetList(
	ctx context.Context, filter ActivityFilter, offset, limit int,
) ([]entity.Activity, error) {
	tx := xcontext.DB(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit)

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	result := []entity.Activity{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) UpdateByID(ctx context.Context, id string, data *entity.Activity) error {
	return xcontext.DB(ctx).
		Model(&entity.Activity{}).
		Where("id=?", id).
		Updates(data).Error
}
