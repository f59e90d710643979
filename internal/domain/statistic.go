package domain

import (
	"context"
	"errors"

	"github.com/citytrail/backend/internal/domain/statistic"
	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
)

type StatisticDomain interface {
	GetLeaderboard(ctx context.Context, req *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	GetRank(ctx context.Context, req *model.GetRankRequest) (*model.GetRankResponse, error)
}

type statisticDomain struct {
	leaderboard *statistic.Leaderboard
	userRepo    repository.UserRepository
}

func NewStatisticDomain(
	leaderboard *statistic.Leaderboard,
	userRepo repository.UserRepository,
) StatisticDomain {
	return &statisticDomain{leaderboard: leaderboard, userRepo: userRepo}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	if req.Limit == 0 {
		req.Limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	top, err := d.leaderboard.GetTopUsers(ctx, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the point leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	ids := make([]string, 0, len(top))
	for _, z := range top {
		id, ok := z.Member.(string)
		if !ok {
			xcontext.Logger(ctx).Errorf("Invalid member type %T in leaderboard", z.Member)
			return nil, errorx.Unknown
		}

		ids = append(ids, id)
	}

	users, err := d.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users of leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	userByID := map[string]*entity.User{}
	for i := range users {
		userByID[users[i].ID] = &users[i]
	}

	resp := &model.GetLeaderboardResponse{Leaderboard: make([]model.UserStatistic, 0, len(top))}
	for i, z := range top {
		resp.Leaderboard = append(resp.Leaderboard, model.UserStatistic{
			User:        model.ConvertUser(userByID[ids[i]]),
			Value:       int(z.Score),
			CurrentRank: req.Offset + i + 1,
		})
	}

	return resp, nil
}

func (d *statisticDomain) GetRank(
	ctx context.Context, req *model.GetRankRequest,
) (*model.GetRankResponse, error) {
	rank, err := d.leaderboard.GetRank(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorx.New(errorx.NotFound, "You are not ranked yet")
		}

		xcontext.Logger(ctx).Errorf("Cannot get rank: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetRankResponse{Rank: rank}, nil
}
