package repository

import (
	"context"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
)

type AreaRepository interface {
	Create(ctx context.Context, data *entity.Area) error
	GetByID(ctx context.Context, id string) (*entity.Area, error)
	// GetListByActivityID returns the active areas of an activity ordered by
	// index, ties broken by creation time. The ordering must be stable
	// between calls since area position determines the unlock chain.
	GetListByActivityID(ctx context.Context, activityID string) ([]entity.Area, error)
	UpdateByID(ctx context.Context, id string, data *entity.Area) error
	DeleteByID(ctx context.Context, id string) error
}

type areaRepository struct{}

func NewAreaRepository() *areaRepository {
	return &areaRepository{}
}

func (r *areaRepository) Create(ctx context.Context, data *entity.Area) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *areaRepository) GetByID(ctx context.Context, id string) (*entity.Area, error) {
	var result entity.Area
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *areaRepository) GetListByActivityID(
	ctx context.Context, activityID string,
) ([]entity.Area, error) {
	result := []entity.Area{}
	err := xcontext.DB(ctx).
		Where("activity_id=? AND is_active=?", activityID, true).
		Order("`index` ASC, created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *areaRepository) UpdateByID(ctx context.Context, id string, data *entity.Area) error {
	return xcontext.DB(ctx).
		Model(&entity.Area{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *areaRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Area{}, "id=?", id).Error
}
