package repository

import (
	"context"
	"errors"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.User, error)
	GetTopByPoints(ctx context.Context, limit int) ([]entity.User, error)
	IncreasePoint(ctx context.Context, userID string, points uint64) error
	UpdateLevel(ctx context.Context, userID string, level int, thresholdPoints uint64) error
	IncreaseTaskStats(ctx context.Context, userID string, isCorrect bool) error
	IncreaseDrawCount(ctx context.Context, userID string) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "name=?", name).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.User, error) {
	result := []entity.User{}
	if err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) GetTopByPoints(ctx context.Context, limit int) ([]entity.User, error) {
	result := []entity.User{}
	err := xcontext.DB(ctx).
		Order("points DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// IncreasePoint adds points to a user with a single atomic update. It never
// reads the current value at the application layer.
func (r *userRepository) IncreasePoint(ctx context.Context, userID string, points uint64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", userID).
		Update("points", gorm.Expr("points+?", points))

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

// UpdateLevel promotes a user to level if the stored points still reach the
// threshold. A stale computed level loses against a concurrent higher one.
func (r *userRepository) UpdateLevel(
	ctx context.Context, userID string, level int, thresholdPoints uint64,
) error {
	return xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=? AND points >= ? AND level < ?", userID, thresholdPoints, level).
		Update("level", level).Error
}

func (r *userRepository) IncreaseTaskStats(ctx context.Context, userID string, isCorrect bool) error {
	updateMap := map[string]any{
		"total_task_count": gorm.Expr("total_task_count+1"),
	}

	if isCorrect {
		updateMap["correct_task_count"] = gorm.Expr("correct_task_count+1")
	}

	return xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", userID).
		Updates(updateMap).Error
}

func (r *userRepository) IncreaseDrawCount(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", userID).
		Update("total_draw_count", gorm.Expr("total_draw_count+1")).Error
}
