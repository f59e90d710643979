package repository

import (
	"context"
	"errors"
	"time"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TaskRecordRepository interface {
	// Create inserts the record of a first submission. The unique index on
	// (user_id, task_id) rejects a concurrent duplicate.
	Create(ctx context.Context, data *entity.TaskRecord) error
	Get(ctx context.Context, userID, taskID string) (*entity.TaskRecord, error)
	GetListByUserAndArea(ctx context.Context, userID, areaID string) ([]entity.TaskRecord, error)
	GetListByUserAndActivity(ctx context.Context, userID, activityID string) ([]entity.TaskRecord, error)
	CountCorrectByArea(ctx context.Context, userID, areaID string) (int64, error)
	CountByTaskID(ctx context.Context, taskID string) (int64, error)
	// UpdateAttempt registers one more incorrect attempt on an existing
	// record.
	UpdateAttempt(ctx context.Context, id, answer string) error
	// CheckAndComplete turns an existing record correct and freezes its
	// earned points. It affects nothing if the record is already correct,
	// in which case gorm.ErrRecordNotFound is returned. This is the
	// compare-and-set that keeps a task from being awarded twice.
	CheckAndComplete(ctx context.Context, id, answer string, points uint64, completedAt time.Time) error
}

type taskRecordRepository struct{}

func NewTaskRecordRepository() *taskRecordRepository {
	return &taskRecordRepository{}
}

func (r *taskRecordRepository) Create(ctx context.Context, data *entity.TaskRecord) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *taskRecordRepository) Get(ctx context.Context, userID, taskID string) (*entity.TaskRecord, error) {
	var result entity.TaskRecord
	err := xcontext.DB(ctx).
		Take(&result, "user_id=? AND task_id=?", userID, taskID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *taskRecordRepository) GetListByUserAndArea(
	ctx context.Context, userID, areaID string,
) ([]entity.TaskRecord, error) {
	result := []entity.TaskRecord{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND area_id=?", userID, areaID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskRecordRepository) GetListByUserAndActivity(
	ctx context.Context, userID, activityID string,
) ([]entity.TaskRecord, error) {
	result := []entity.TaskRecord{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND activity_id=?", userID, activityID).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskRecordRepository) CountCorrectByArea(
	ctx context.Context, userID, areaID string,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.TaskRecord{}).
		Where("user_id=? AND area_id=? AND is_correct=?", userID, areaID, true).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *taskRecordRepository) CountByTaskID(ctx context.Context, taskID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.TaskRecord{}).
		Where("task_id=?", taskID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *taskRecordRepository) UpdateAttempt(ctx context.Context, id, answer string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.TaskRecord{}).
		Where("id=?", id).
		Updates(map[string]any{
			"last_answer":   answer,
			"attempt_count": gorm.Expr("attempt_count+1"),
			"error_count":   gorm.Expr("error_count+1"),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *taskRecordRepository) CheckAndComplete(
	ctx context.Context, id, answer string, points uint64, completedAt time.Time,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.TaskRecord{}).
		Where("id=? AND is_correct=?", id, false).
		Updates(map[string]any{
			"last_answer":   answer,
			"attempt_count": gorm.Expr("attempt_count+1"),
			"is_correct":    true,
			"points_earned": points,
			"completed_at":  completedAt,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
