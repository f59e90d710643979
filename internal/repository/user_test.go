package repository

import (
	"testing"

	"github.com/citytrail/backend/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_userRepository_IncreasePoint(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewUserRepository()

	require.NoError(t, repo.IncreasePoint(ctx, testutil.User1.ID, 10))
	require.NoError(t, repo.IncreasePoint(ctx, testutil.User1.ID, 15))

	user, err := repo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(25), user.Points)

	err = repo.IncreasePoint(ctx, "missing", 10)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_userRepository_UpdateLevel(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewUserRepository()

	require.NoError(t, repo.IncreasePoint(ctx, testutil.User1.ID, 250))
	require.NoError(t, repo.UpdateLevel(ctx, testutil.User1.ID, 3, 200))

	user, err := repo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 3, user.Level)

	// A promotion below the current level changes nothing.
	require.NoError(t, repo.UpdateLevel(ctx, testutil.User1.ID, 2, 100))

	user, err = repo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 3, user.Level)
}

func Test_userRepository_IncreaseTaskStats(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewUserRepository()

	require.NoError(t, repo.IncreaseTaskStats(ctx, testutil.User1.ID, true))
	require.NoError(t, repo.IncreaseTaskStats(ctx, testutil.User1.ID, false))
	require.NoError(t, repo.IncreaseDrawCount(ctx, testutil.User1.ID))

	user, err := repo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 2, user.TotalTaskCount)
	require.Equal(t, 1, user.CorrectTaskCount)
	require.Equal(t, 1, user.TotalDrawCount)
}
