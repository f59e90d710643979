package repository

import (
	"context"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
)

type TaskRepository interface {
	Create(ctx context.Context, data *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	// GetListByAreaID returns the active tasks of an area ordered by index,
	// ties broken by creation time.
	GetListByAreaID(ctx context.Context, areaID string) ([]entity.Task, error)
	CountActiveByAreaID(ctx context.Context, areaID string) (int64, error)
	CountByAreaID(ctx context.Context, areaID string) (int64, error)
	CountByActivityID(ctx context.Context, activityID string) (int64, error)
	UpdateByID(ctx context.Context, id string, data *entity.Task) error
	DeleteByID(ctx context.Context, id string) error
}

type taskRepository struct{}

func NewTaskRepository() *taskRepository {
	return &taskRepository{}
}

func (r *taskRepository) Create(ctx context.Context, data *entity.Task) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	var result entity.Task
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *taskRepository) GetListByAreaID(ctx context.Context, areaID string) ([]entity.Task, error) {
	result := []entity.Task{}
	err := xcontext.DB(ctx).
		Where("area_id=? AND is_active=?", areaID, true).
		Order("`index` ASC, created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskRepository) CountActiveByAreaID(ctx context.Context, areaID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Task{}).
		Where("area_id=? AND is_active=?", areaID, true).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *taskRepository) CountByAreaID(ctx context.Context, areaID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Task{}).
		Where("area_id=?", areaID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *taskRepository) CountByActivityID(ctx context.Context, activityID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Task{}).
		Where("activity_id=?", activityID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *taskRepository) UpdateByID(ctx context.Context, id string, data *entity.Task) error {
	return xcontext.DB(ctx).
		Model(&entity.Task{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *taskRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Task{}, "id=?", id).Error
}
