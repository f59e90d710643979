package repository

import (
	"context"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	Create(ctx context.Context, data *entity.Participant) error
	Get(ctx context.Context, userID, activityID string) (*entity.Participant, error)
	GetListByActivityID(ctx context.Context, activityID string, offset, limit int) ([]entity.Participant, error)
	UpdateStatus(ctx context.Context, userID, activityID string, status entity.ParticipantStatus) error
}

type participantRepository struct{}

func NewParticipantRepository() *participantRepository {
	return &participantRepository{}
}

func (r *participantRepository) Create(ctx context.Context, data *entity.Participant) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *participantRepository) Get(
	ctx context.Context, userID, activityID string,
) (*entity.Participant, error) {
	var result entity.Participant
	err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND activity_id=?", userID, activityID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *participantRepository) GetListByActivityID(
	ctx context.Context, activityID string, offset, limit int,
) ([]entity.Participant, error) {
	result := []entity.Participant{}
	err := xcontext.DB(ctx).
		Where("activity_id=?", activityID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *participantRepository) UpdateStatus(
	ctx context.Context, userID, activityID string, status entity.ParticipantStatus,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Participant{}).
		Where("user_id=? AND activity_id=?", userID, activityID).
		Update("status", status)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
