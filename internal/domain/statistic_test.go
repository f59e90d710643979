package domain

import (
	"testing"

	"github.com/citytrail/backend/internal/domain/statistic"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/internal/testutil"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.IncreasePoint(ctx, testutil.User1.ID, 30))
	require.NoError(t, userRepo.IncreasePoint(ctx, testutil.User2.ID, 10))

	leaderboard := statistic.NewLeaderboard(userRepo, testutil.NewRedisClient(t))
	d := NewStatisticDomain(leaderboard, userRepo)

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 3)
	require.Equal(t, testutil.User1.ID, resp.Leaderboard[0].User.ID)
	require.Equal(t, 30, resp.Leaderboard[0].Value)
	require.Equal(t, 1, resp.Leaderboard[0].CurrentRank)
	require.Equal(t, testutil.User2.ID, resp.Leaderboard[1].User.ID)

	rank, err := d.GetRank(xcontext.WithRequestUserID(ctx, testutil.User2.ID), &model.GetRankRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), rank.Rank)
}

func Test_statisticDomain_GetLeaderboard_followsPointChanges(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	leaderboard := statistic.NewLeaderboard(userRepo, testutil.NewRedisClient(t))
	d := NewStatisticDomain(leaderboard, userRepo)

	require.NoError(t, leaderboard.ChangePointLeaderboard(ctx, 10, testutil.User1.ID))
	require.NoError(t, leaderboard.ChangePointLeaderboard(ctx, 25, testutil.User2.ID))

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 2)
	require.Equal(t, testutil.User2.ID, resp.Leaderboard[0].User.ID)
	require.Equal(t, 25, resp.Leaderboard[0].Value)
}
