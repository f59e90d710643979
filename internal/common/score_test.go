package common

import (
	"testing"

	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/internal/testutil"
	"github.com/stretchr/testify/require"
)

func Test_ScoreLedger_AddPoints(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewUserRepository()
	ledger := NewScoreLedger(repo, nil)

	require.NoError(t, ledger.AddPoints(ctx, testutil.User1.ID, 150))

	user, err := repo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(150), user.Points)
	require.Equal(t, 2, user.Level)

	require.NoError(t, ledger.AddPoints(ctx, testutil.User1.ID, 400))

	user, err = repo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(550), user.Points)
	require.Equal(t, 4, user.Level)

	// A zero delta touches nothing.
	require.NoError(t, ledger.AddPoints(ctx, testutil.User1.ID, 0))

	require.Error(t, ledger.AddPoints(ctx, "missing", 10))
}
