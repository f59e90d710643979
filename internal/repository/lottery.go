package repository

import (
	"context"
	"time"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
)

type LotteryFilter struct {
	Status []entity.LotteryStatus
}

type LotteryRepository interface {
	Create(ctx context.Context, data *entity.Lottery) error
	GetByID(ctx context.Context, id string) (*entity.Lottery, error)
	GetList(ctx context.Context, filter LotteryFilter, offset, limit int) ([]entity.Lottery, error)
	UpdateByID(ctx context.Context, id string, data *entity.Lottery) error

	// CountDrawsInRange counts the records a user drew from a lottery with
	// created_at in [from, to).
	CountDrawsInRange(ctx context.Context, userID, lotteryID string, from, to time.Time) (int64, error)
	CreateRecord(ctx context.Context, data *entity.LotteryRecord) error
	GetRecordsByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.LotteryRecord, error)
}

type lotteryRepository struct{}

func NewLotteryRepository() *lotteryRepository {
	return &lotteryRepository{}
}

func (r *lotteryRepository) Create(ctx context.Context, data *entity.Lottery) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *lotteryRepository) GetByID(ctx context.Context, id string) (*entity.Lottery, error) {
	var result entity.Lottery
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *lotteryRepository) GetList(
	ctx context.Context, filter LotteryFilter, offset, limit int,
) ([]entity.Lottery, error) {
	tx := xcontext.DB(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit)

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	result := []entity.Lottery{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *lotteryRepository) UpdateByID(ctx context.Context, id string, data *entity.Lottery) error {
	return xcontext.DB(ctx).
		Model(&entity.Lottery{}).
		Where("id=?", id).
		Updates(data).Error
}

func (r *lotteryRepository) CountDrawsInRange(
	ctx context.Context, userID, lotteryID string, from, to time.Time,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.LotteryRecord{}).
		Where("user_id=? AND lottery_id=? AND created_at >= ? AND created_at < ?",
			userID, lotteryID, from, to).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *lotteryRepository) CreateRecord(ctx context.Context, data *entity.LotteryRecord) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *lotteryRepository) GetRecordsByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.LotteryRecord, error) {
	result := []entity.LotteryRecord{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
