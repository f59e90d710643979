package domain

import (
	"context"
	"testing"

	"github.com/citytrail/backend/internal/common"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/internal/testutil"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestSubmissionDomain() SubmissionDomain {
	userRepo := repository.NewUserRepository()
	return NewSubmissionDomain(
		repository.NewTaskRepository(),
		repository.NewTaskRecordRepository(),
		repository.NewAreaRepository(),
		userRepo,
		repository.NewParticipantRepository(),
		common.NewScoreLedger(userRepo, nil),
	)
}

func Test_submissionDomain_Submit(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()

	resp, err := d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: "10"})
	require.NoError(t, err)
	require.False(t, resp.IsCorrect)
	require.Equal(t, 1, resp.AttemptCount)
	require.Contains(t, resp.Feedback, testutil.Task1.Hint)
	require.Empty(t, resp.NextTaskID)

	resp, err = d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: " 11 "})
	require.NoError(t, err)
	require.True(t, resp.IsCorrect)
	require.Equal(t, uint64(10), resp.PointsEarned)
	require.Equal(t, 2, resp.AttemptCount)
	require.Equal(t, testutil.Task2.ID, resp.NextTaskID)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(10), user.Points)
	require.Equal(t, 2, user.TotalTaskCount)
	require.Equal(t, 1, user.CorrectTaskCount)

	_, err = d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: "11"})
	require.Equal(t, errorx.New(errorx.Unavailable, "This task was already completed"), err)
}

func Test_submissionDomain_Submit_outOfOrder(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()

	_, err := d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task2.ID, Answer: "1886"})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "This task is still locked"), err)

	_, err = d.Submit(ctx, &model.SubmitTaskRequest{
		TaskID:  testutil.Task3.ID,
		Answers: []string{"red", "white"},
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "This task is still locked"), err)
}

func Test_submissionDomain_Submit_unlocksNextArea(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()

	_, err := d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: "11"})
	require.NoError(t, err)

	resp, err := d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task2.ID, Answer: "1886"})
	require.NoError(t, err)
	require.True(t, resp.IsCorrect)
	require.Empty(t, resp.NextTaskID)

	resp, err = d.Submit(ctx, &model.SubmitTaskRequest{
		TaskID:  testutil.Task3.ID,
		Answers: []string{"WHITE", "red"},
	})
	require.NoError(t, err)
	require.True(t, resp.IsCorrect)
	require.Equal(t, uint64(30), resp.PointsEarned)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(60), user.Points)
}

func Test_submissionDomain_Submit_attemptLimit(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()

	for i := 0; i < 3; i++ {
		resp, err := d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: "wrong"})
		require.NoError(t, err)
		require.False(t, resp.IsCorrect)
		require.Equal(t, i+1, resp.AttemptCount)
	}

	_, err := d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: "11"})
	require.Equal(t, errorx.New(errorx.TooManyRequests, "No attempt left for this task"), err)
}

func Test_submissionDomain_Submit_requiresApproval(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()

	pending := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err := d.Submit(pending, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: "11"})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "You have not joined this activity"), err)

	stranger := xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	_, err = d.Submit(stranger, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: "11"})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "You have not joined this activity"), err)
}

func Test_submissionDomain_Submit_validation(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()

	_, err := d.Submit(ctx, &model.SubmitTaskRequest{TaskID: "unknown", Answer: "11"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found task"), err)

	_, err = d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID})
	require.Equal(t, errorx.New(errorx.BadRequest, "Require an answer"), err)

	_, err = d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task3.ID})
	require.Equal(t, errorx.New(errorx.BadRequest, "Require a list of answers"), err)
}

func completeAreaOne(t *testing.T, ctx context.Context, d SubmissionDomain) {
	t.Helper()
	_, err := d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task1.ID, Answer: "11"})
	require.NoError(t, err)
	_, err = d.Submit(ctx, &model.SubmitTaskRequest{TaskID: testutil.Task2.ID, Answer: "1886"})
	require.NoError(t, err)
}
