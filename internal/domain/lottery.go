package domain

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/citytrail/backend/internal/common"
	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/crypto"
	"github.com/citytrail/backend/pkg/dateutil"
	"github.com/citytrail/backend/pkg/enum"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// probabilityEpsilon bounds the float drift tolerated when item probabilities
// are required to sum to 100 percent.
const probabilityEpsilon = 0.01

type LotteryDomain interface {
	GetList(ctx context.Context, req *model.GetLotteryListRequest) (*model.GetLotteryListResponse, error)
	Create(ctx context.Context, req *model.CreateLotteryRequest) (*model.CreateLotteryResponse, error)
	UpdateStatus(ctx context.Context, req *model.UpdateLotteryStatusRequest) (*model.UpdateLotteryStatusResponse, error)
	Draw(ctx context.Context, req *model.DrawLotteryRequest) (*model.DrawLotteryResponse, error)
	GetHistory(ctx context.Context, req *model.GetLotteryHistoryRequest) (*model.GetLotteryHistoryResponse, error)
}

type lotteryDomain struct {
	lotteryRepo  repository.LotteryRepository
	userRepo     repository.UserRepository
	ledger       *common.ScoreLedger
	roleVerifier *common.GlobalRoleVerifier
}

func NewLotteryDomain(
	lotteryRepo repository.LotteryRepository,
	userRepo repository.UserRepository,
	ledger *common.ScoreLedger,
) LotteryDomain {
	return &lotteryDomain{
		lotteryRepo:  lotteryRepo,
		userRepo:     userRepo,
		ledger:       ledger,
		roleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *lotteryDomain) GetList(
	ctx context.Context, req *model.GetLotteryListRequest,
) (*model.GetLotteryListResponse, error) {
	if req.Limit == 0 {
		req.Limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	lotteries, err := d.lotteryRepo.GetList(ctx, repository.LotteryFilter{
		Status: []entity.LotteryStatus{entity.LotteryActive, entity.LotteryInactive},
	}, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get lottery list: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetLotteryListResponse{Lotteries: make([]model.Lottery, 0, len(lotteries))}
	for i := range lotteries {
		resp.Lotteries = append(resp.Lotteries, model.ConvertLottery(&lotteries[i]))
	}

	return resp, nil
}

func (d *lotteryDomain) Create(
	ctx context.Context, req *model.CreateLotteryRequest,
) (*model.CreateLotteryResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if req.MaxDrawsPerDay <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive daily draw limit")
	}

	if err := validateLotteryItems(req.Items); err != nil {
		return nil, err
	}

	items := make(entity.Array[entity.LotteryItem], 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.LotteryItem{Name: item.Name, Probability: item.Probability})
	}

	lottery := &entity.Lottery{
		Base:           entity.Base{ID: uuid.NewString()},
		Title:          req.Title,
		Description:    req.Description,
		Items:          items,
		MaxDrawsPerDay: req.MaxDrawsPerDay,
		Status:         entity.LotteryInactive,
	}

	if err := d.lotteryRepo.Create(ctx, lottery); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create lottery: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateLotteryResponse{ID: lottery.ID}, nil
}

func validateLotteryItems(items []model.LotteryItem) error {
	if len(items) == 0 {
		return errorx.New(errorx.BadRequest, "Require at least one item")
	}

	sum := 0.0
	for _, item := range items {
		if item.Name == "" {
			return errorx.New(errorx.BadRequest, "Not allow an item without name")
		}

		if item.Probability <= 0 {
			return errorx.New(errorx.BadRequest, "Require a positive probability for %s", item.Name)
		}

		sum += item.Probability
	}

	if math.Abs(sum-100) > probabilityEpsilon {
		return errorx.New(errorx.BadRequest, "Probabilities must sum to 100")
	}

	return nil
}

func (d *lotteryDomain) UpdateStatus(
	ctx context.Context, req *model.UpdateLotteryStatusRequest,
) (*model.UpdateLotteryStatusResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	status, err := enum.ToEnum[entity.LotteryStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	if _, err := d.lotteryRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found lottery")
		}

		xcontext.Logger(ctx).Errorf("Cannot get lottery: %v", err)
		return nil, errorx.Unknown
	}

	err = d.lotteryRepo.UpdateByID(ctx, req.ID, &entity.Lottery{Status: status})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update lottery status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateLotteryStatusResponse{}, nil
}

func (d *lotteryDomain) Draw(
	ctx context.Context, req *model.DrawLotteryRequest,
) (*model.DrawLotteryResponse, error) {
	lottery, err := d.lotteryRepo.GetByID(ctx, req.LotteryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found lottery")
		}

		xcontext.Logger(ctx).Errorf("Cannot get lottery: %v", err)
		return nil, errorx.Unknown
	}

	if lottery.Status != entity.LotteryActive {
		return nil, errorx.New(errorx.Unavailable, "Lottery is not active")
	}

	userID := xcontext.RequestUserID(ctx)
	now := time.Now()

	// The quota check and the record insert share one transaction so two
	// concurrent draws cannot both pass the daily limit.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	count, err := d.lotteryRepo.CountDrawsInRange(
		ctx, userID, lottery.ID, dateutil.BeginningOfDay(now), dateutil.NextDay(now))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count draws of today: %v", err)
		return nil, errorx.Unknown
	}

	if count >= int64(lottery.MaxDrawsPerDay) {
		return nil, errorx.New(errorx.TooManyRequests, "You ran out of draws for today")
	}

	item := spin(lottery.Items)
	points := pointsForProbability(item.Probability)

	record := &entity.LotteryRecord{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        userID,
		LotteryID:     lottery.ID,
		Item:          item.Name,
		Probability:   item.Probability,
		AwardedPoints: points,
	}

	if err := d.lotteryRepo.CreateRecord(ctx, record); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create lottery record: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.IncreaseDrawCount(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user draw count: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ledger.AddPoints(ctx, userID, points); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot award draw points: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DrawLotteryResponse{
		Item:                item.Name,
		AwardedPoints:       points,
		DrawsRemainingToday: lottery.MaxDrawsPerDay - int(count) - 1,
	}, nil
}

// spin picks an item with the inverse transform walk over the probability
// percentages. Float drift can leave the accumulated sum slightly under the
// drawn value, in which case the last item wins.
func spin(items []entity.LotteryItem) entity.LotteryItem {
	r := crypto.RandFloat() * 100
	cumulative := 0.0
	for _, item := range items {
		cumulative += item.Probability
		if r < cumulative {
			return item
		}
	}

	return items[len(items)-1]
}

// pointsForProbability awards more points the rarer the drawn item is.
func pointsForProbability(probability float64) uint64 {
	switch {
	case probability >= 50:
		return 5
	case probability >= 20:
		return 10
	case probability >= 10:
		return 20
	case probability >= 5:
		return 50
	default:
		return 100
	}
}

func (d *lotteryDomain) GetHistory(
	ctx context.Context, req *model.GetLotteryHistoryRequest,
) (*model.GetLotteryHistoryResponse, error) {
	if req.Limit == 0 {
		req.Limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	records, err := d.lotteryRepo.GetRecordsByUserID(
		ctx, xcontext.RequestUserID(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get lottery records: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetLotteryHistoryResponse{Records: make([]model.LotteryRecord, 0, len(records))}
	for i := range records {
		resp.Records = append(resp.Records, model.ConvertLotteryRecord(&records[i]))
	}

	return resp, nil
}
