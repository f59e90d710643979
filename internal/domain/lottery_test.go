package domain

import (
	"testing"
	"time"

	"github.com/citytrail/backend/internal/common"
	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/internal/testutil"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestLotteryDomain() LotteryDomain {
	userRepo := repository.NewUserRepository()
	return NewLotteryDomain(
		repository.NewLotteryRepository(),
		userRepo,
		common.NewScoreLedger(userRepo, nil),
	)
}

func Test_lotteryDomain_Draw(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestLotteryDomain()

	pointsByItem := map[string]uint64{"Sticker": 5, "Postcard": 10, "Mug": 20}

	resp, err := d.Draw(ctx, &model.DrawLotteryRequest{LotteryID: testutil.Lottery1.ID})
	require.NoError(t, err)
	require.Contains(t, pointsByItem, resp.Item)
	require.Equal(t, pointsByItem[resp.Item], resp.AwardedPoints)
	require.Equal(t, 1, resp.DrawsRemainingToday)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, resp.AwardedPoints, user.Points)
	require.Equal(t, 1, user.TotalDrawCount)

	history, err := d.GetHistory(ctx, &model.GetLotteryHistoryRequest{})
	require.NoError(t, err)
	require.Len(t, history.Records, 1)
	require.Equal(t, resp.Item, history.Records[0].Item)
}

func Test_lotteryDomain_Draw_dailyLimit(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestLotteryDomain()

	for i := 0; i < testutil.Lottery1.MaxDrawsPerDay; i++ {
		_, err := d.Draw(ctx, &model.DrawLotteryRequest{LotteryID: testutil.Lottery1.ID})
		require.NoError(t, err)
	}

	_, err := d.Draw(ctx, &model.DrawLotteryRequest{LotteryID: testutil.Lottery1.ID})
	require.Equal(t, errorx.New(errorx.TooManyRequests, "You ran out of draws for today"), err)

	// Backdating the records frees the quota of the new day.
	yesterday := time.Now().Add(-24 * time.Hour)
	err = xcontext.DB(ctx).
		Model(&entity.LotteryRecord{}).
		Where("user_id=?", testutil.User1.ID).
		Update("created_at", yesterday).Error
	require.NoError(t, err)

	_, err = d.Draw(ctx, &model.DrawLotteryRequest{LotteryID: testutil.Lottery1.ID})
	require.NoError(t, err)
}

func Test_lotteryDomain_Draw_notActive(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestLotteryDomain()

	inactive := entity.Lottery{
		Base:           entity.Base{ID: "lottery2"},
		Title:          "Paused wheel",
		Items:          []entity.LotteryItem{{Name: "Pin", Probability: 100}},
		MaxDrawsPerDay: 1,
		Status:         entity.LotteryInactive,
	}
	require.NoError(t, xcontext.DB(ctx).Create(&inactive).Error)

	_, err := d.Draw(ctx, &model.DrawLotteryRequest{LotteryID: inactive.ID})
	require.Equal(t, errorx.New(errorx.Unavailable, "Lottery is not active"), err)

	_, err = d.Draw(ctx, &model.DrawLotteryRequest{LotteryID: "unknown"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found lottery"), err)
}

func Test_lotteryDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.Admin.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestLotteryDomain()

	resp, err := d.Create(ctx, &model.CreateLotteryRequest{
		Title:          "Weekend wheel",
		Items:          []model.LotteryItem{{Name: "Badge", Probability: 70}, {Name: "Shirt", Probability: 30}},
		MaxDrawsPerDay: 1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	_, err = d.Create(ctx, &model.CreateLotteryRequest{
		Title:          "Broken wheel",
		Items:          []model.LotteryItem{{Name: "Badge", Probability: 70}},
		MaxDrawsPerDay: 1,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Probabilities must sum to 100"), err)

	userCtx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(userCtx)
	_, err = d.Create(userCtx, &model.CreateLotteryRequest{
		Title:          "Forbidden wheel",
		Items:          []model.LotteryItem{{Name: "Badge", Probability: 100}},
		MaxDrawsPerDay: 1,
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)
}

func Test_lotteryDomain_UpdateStatus(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.Admin.ID)
	testutil.CreateFixtureDb(ctx)
	d := newTestLotteryDomain()

	_, err := d.UpdateStatus(ctx, &model.UpdateLotteryStatusRequest{
		ID:     testutil.Lottery1.ID,
		Status: "ended",
	})
	require.NoError(t, err)

	lottery, err := repository.NewLotteryRepository().GetByID(ctx, testutil.Lottery1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.LotteryEnded, lottery.Status)

	_, err = d.UpdateStatus(ctx, &model.UpdateLotteryStatusRequest{
		ID:     testutil.Lottery1.ID,
		Status: "broken",
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid status broken"), err)
}

func Test_spin_distribution(t *testing.T) {
	items := []entity.LotteryItem{
		{Name: "a", Probability: 40},
		{Name: "b", Probability: 25},
		{Name: "c", Probability: 20},
		{Name: "d", Probability: 10},
		{Name: "e", Probability: 4},
		{Name: "f", Probability: 1},
	}

	const draws = 100000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[spin(items).Name]++
	}

	for _, item := range items {
		got := float64(counts[item.Name]) * 100 / draws
		require.InDelta(t, item.Probability, got, 1.5, "item %s", item.Name)
	}
}

func Test_pointsForProbability(t *testing.T) {
	require.Equal(t, uint64(5), pointsForProbability(60))
	require.Equal(t, uint64(5), pointsForProbability(50))
	require.Equal(t, uint64(10), pointsForProbability(20))
	require.Equal(t, uint64(20), pointsForProbability(10))
	require.Equal(t, uint64(50), pointsForProbability(5))
	require.Equal(t, uint64(100), pointsForProbability(4.9))
	require.Equal(t, uint64(100), pointsForProbability(1))
}
