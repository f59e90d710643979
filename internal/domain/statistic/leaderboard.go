package statistic

import (
	"context"

	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/citytrail/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

const pointLeaderboardKey = "leaderboard:point"

// backfillSize bounds the number of users loaded from the database when the
// sorted set is empty, usually right after a redis restart.
const backfillSize = 1000

type Leaderboard struct {
	userRepo    repository.UserRepository
	redisClient xredis.Client
}

func NewLeaderboard(userRepo repository.UserRepository, redisClient xredis.Client) *Leaderboard {
	return &Leaderboard{userRepo: userRepo, redisClient: redisClient}
}

// ChangePointLeaderboard shifts the ranking score of a user. It implements
// common.PointLeaderboard.
func (l *Leaderboard) ChangePointLeaderboard(ctx context.Context, value int64, userID string) error {
	if err := l.load(ctx); err != nil {
		return err
	}

	return l.redisClient.ZIncrBy(ctx, pointLeaderboardKey, value, userID)
}

// GetTopUsers returns user ids in descending point order together with their
// scores.
func (l *Leaderboard) GetTopUsers(ctx context.Context, offset, limit int) ([]redis.Z, error) {
	if err := l.load(ctx); err != nil {
		return nil, err
	}

	return l.redisClient.ZRevRangeWithScores(ctx, pointLeaderboardKey, offset, limit)
}

// GetRank returns the 1-based rank of a user.
func (l *Leaderboard) GetRank(ctx context.Context, userID string) (uint64, error) {
	if err := l.load(ctx); err != nil {
		return 0, err
	}

	rank, err := l.redisClient.ZRevRank(ctx, pointLeaderboardKey, userID)
	if err != nil {
		return 0, err
	}

	return rank + 1, nil
}

func (l *Leaderboard) load(ctx context.Context) error {
	exist, err := l.redisClient.Exist(ctx, pointLeaderboardKey)
	if err != nil {
		return err
	}

	if exist {
		return nil
	}

	users, err := l.userRepo.GetTopByPoints(ctx, backfillSize)
	if err != nil {
		return err
	}

	for _, user := range users {
		err := l.redisClient.ZAdd(ctx, pointLeaderboardKey, redis.Z{
			Member: user.ID,
			Score:  float64(user.Points),
		})
		if err != nil {
			return err
		}
	}

	xcontext.Logger(ctx).Infof("Backfilled point leaderboard with %d users", len(users))
	return nil
}
