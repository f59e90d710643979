package common

import (
	"context"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/xcontext"
)

// PointLeaderboard receives point deltas for ranking purposes. It is
// implemented by the statistic domain.
type PointLeaderboard interface {
	ChangePointLeaderboard(ctx context.Context, value int64, userID string) error
}

// ScoreLedger is the single place allowed to change user points. Points only
// ever increase and the increment happens inside the database, so concurrent
// submissions and draws from the same user cannot lose updates.
type ScoreLedger struct {
	userRepo    repository.UserRepository
	leaderboard PointLeaderboard
}

func NewScoreLedger(userRepo repository.UserRepository, leaderboard PointLeaderboard) *ScoreLedger {
	return &ScoreLedger{userRepo: userRepo, leaderboard: leaderboard}
}

func (l *ScoreLedger) AddPoints(ctx context.Context, userID string, delta uint64) error {
	if delta == 0 {
		return nil
	}

	if err := l.userRepo.IncreasePoint(ctx, userID, delta); err != nil {
		return err
	}

	user, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	level := entity.LevelOf(user.Points)
	if level > user.Level {
		err := l.userRepo.UpdateLevel(ctx, userID, level, entity.LevelThreshold(level))
		if err != nil {
			return err
		}
	}

	if l.leaderboard != nil {
		if err := l.leaderboard.ChangePointLeaderboard(ctx, int64(delta), userID); err != nil {
			// The leaderboard is a cache over the users table.
			xcontext.Logger(ctx).Warnf("Cannot update point leaderboard: %v", err)
		}
	}

	return nil
}
