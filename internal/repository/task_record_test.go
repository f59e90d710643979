package repository

import (
	"testing"
	"time"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_taskRecordRepository_CheckAndComplete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewTaskRecordRepository()

	record := &entity.TaskRecord{
		Base:             entity.Base{ID: "record1"},
		UserID:           testutil.User1.ID,
		TaskID:           testutil.Task1.ID,
		AreaID:           testutil.Area1.ID,
		ActivityID:       testutil.Activity1.ID,
		LastAnswer:       "10",
		AttemptCount:     1,
		ErrorCount:       1,
		FirstSubmittedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, record))

	require.NoError(t, repo.CheckAndComplete(ctx, record.ID, "11", 10, time.Now()))

	got, err := repo.Get(ctx, testutil.User1.ID, testutil.Task1.ID)
	require.NoError(t, err)
	require.True(t, got.IsCorrect)
	require.Equal(t, uint64(10), got.PointsEarned)
	require.Equal(t, 2, got.AttemptCount)
	require.Equal(t, "11", got.LastAnswer)
	require.True(t, got.CompletedAt.Valid)

	// A second completion finds no row to flip.
	err = repo.CheckAndComplete(ctx, record.ID, "11", 10, time.Now())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err = repo.Get(ctx, testutil.User1.ID, testutil.Task1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(10), got.PointsEarned)
	require.Equal(t, 2, got.AttemptCount)
}

func Test_taskRecordRepository_Create_rejectsDuplicate(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewTaskRecordRepository()

	first := &entity.TaskRecord{
		Base:             entity.Base{ID: "record1"},
		UserID:           testutil.User1.ID,
		TaskID:           testutil.Task1.ID,
		AreaID:           testutil.Area1.ID,
		ActivityID:       testutil.Activity1.ID,
		AttemptCount:     1,
		FirstSubmittedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, first))

	duplicate := &entity.TaskRecord{
		Base:             entity.Base{ID: "record2"},
		UserID:           testutil.User1.ID,
		TaskID:           testutil.Task1.ID,
		AreaID:           testutil.Area1.ID,
		ActivityID:       testutil.Activity1.ID,
		AttemptCount:     1,
		FirstSubmittedAt: time.Now(),
	}
	require.Error(t, repo.Create(ctx, duplicate))
}

func Test_taskRecordRepository_UpdateAttempt(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	repo := NewTaskRecordRepository()

	record := &entity.TaskRecord{
		Base:             entity.Base{ID: "record1"},
		UserID:           testutil.User1.ID,
		TaskID:           testutil.Task1.ID,
		AreaID:           testutil.Area1.ID,
		ActivityID:       testutil.Activity1.ID,
		LastAnswer:       "10",
		AttemptCount:     1,
		ErrorCount:       1,
		FirstSubmittedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, record))
	require.NoError(t, repo.UpdateAttempt(ctx, record.ID, "12"))

	got, err := repo.Get(ctx, testutil.User1.ID, testutil.Task1.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.AttemptCount)
	require.Equal(t, 2, got.ErrorCount)
	require.Equal(t, "12", got.LastAnswer)
	require.False(t, got.IsCorrect)

	require.ErrorIs(t, repo.UpdateAttempt(ctx, "missing", "12"), gorm.ErrRecordNotFound)
}
