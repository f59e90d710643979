package domain

import (
	"context"
	"errors"
	"time"

	"github.com/citytrail/backend/internal/common"
	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/enum"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityDomain interface {
	GetList(ctx context.Context, req *model.GetActivityListRequest) (*model.GetActivityListResponse, error)
	Create(ctx context.Context, req *model.CreateActivityRequest) (*model.CreateActivityResponse, error)
	UpdateStatus(ctx context.Context, req *model.UpdateActivityStatusRequest) (*model.UpdateActivityStatusResponse, error)
	Register(ctx context.Context, req *model.RegisterActivityRequest) (*model.RegisterActivityResponse, error)
	ReviewRegistration(ctx context.Context, req *model.ReviewRegistrationRequest) (*model.ReviewRegistrationResponse, error)
}

type activityDomain struct {
	activityRepo    repository.ActivityRepository
	participantRepo repository.ParticipantRepository
	roleVerifier    *common.GlobalRoleVerifier
}

func NewActivityDomain(
	activityRepo repository.ActivityRepository,
	participantRepo repository.ParticipantRepository,
	userRepo repository.UserRepository,
) ActivityDomain {
	return &activityDomain{
		activityRepo:    activityRepo,
		participantRepo: participantRepo,
		roleVerifier:    common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *activityDomain) GetList(
	ctx context.Context, req *model.GetActivityListRequest,
) (*model.GetActivityListResponse, error) {
	if req.Limit == 0 {
		req.Limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	filter := repository.ActivityFilter{}
	if req.Status != "" {
		status, err := enum.ToEnum[entity.ActivityStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = []entity.ActivityStatus{status}
	}

	activities, err := d.activityRepo.GetList(ctx, filter, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activity list: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetActivityListResponse{Activities: make([]model.Activity, 0, len(activities))}
	for i := range activities {
		resp.Activities = append(resp.Activities, model.ConvertActivity(&activities[i]))
	}

	return resp, nil
}

func (d *activityDomain) Create(
	ctx context.Context, req *model.CreateActivityRequest,
) (*model.CreateActivityResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, errorx.New(errorx.BadRequest, "End time must be after start time")
	}

	if !req.RegistrationEndTime.After(req.RegistrationBeginTime) {
		return nil, errorx.New(errorx.BadRequest, "Registration window is invalid")
	}

	activity := &entity.Activity{
		Base:                  entity.Base{ID: uuid.NewString()},
		Title:                 req.Title,
		Description:           []byte(req.Description),
		Status:                entity.ActivityUpcoming,
		RegistrationBeginTime: req.RegistrationBeginTime,
		RegistrationEndTime:   req.RegistrationEndTime,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
	}

	if err := d.activityRepo.Create(ctx, activity); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create activity: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateActivityResponse{ID: activity.ID}, nil
}

func (d *activityDomain) UpdateStatus(
	ctx context.Context, req *model.UpdateActivityStatusRequest,
) (*model.UpdateActivityStatusResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	status, err := enum.ToEnum[entity.ActivityStatus](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	if _, err := d.activityRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	err = d.activityRepo.UpdateByID(ctx, req.ID, &entity.Activity{Status: status})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update activity status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateActivityStatusResponse{}, nil
}

func (d *activityDomain) Register(
	ctx context.Context, req *model.RegisterActivityRequest,
) (*model.RegisterActivityResponse, error) {
	activity, err := d.activityRepo.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	if activity.Status == entity.ActivityCancelled || activity.Status == entity.ActivityCompleted {
		return nil, errorx.New(errorx.Unavailable, "Activity no longer accepts registrations")
	}

	now := time.Now()
	if now.Before(activity.RegistrationBeginTime) || now.After(activity.RegistrationEndTime) {
		return nil, errorx.New(errorx.Unavailable, "Registration window is closed")
	}

	userID := xcontext.RequestUserID(ctx)
	if _, err := d.participantRepo.Get(ctx, userID, activity.ID); err == nil {
		return nil, errorx.New(errorx.Unavailable, "You already registered for this activity")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	err = d.participantRepo.Create(ctx, &entity.Participant{
		UserID:     userID,
		ActivityID: activity.ID,
		Status:     entity.ParticipantPending,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create participant: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterActivityResponse{}, nil
}

func (d *activityDomain) ReviewRegistration(
	ctx context.Context, req *model.ReviewRegistrationRequest,
) (*model.ReviewRegistrationResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	var status entity.ParticipantStatus
	switch req.Action {
	case "approve":
		status = entity.ParticipantApproved
	case "reject":
		status = entity.ParticipantRejected
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid action %s", req.Action)
	}

	err := d.participantRepo.UpdateStatus(ctx, req.UserID, req.ActivityID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found registration")
		}

		xcontext.Logger(ctx).Errorf("Cannot update registration: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ReviewRegistrationResponse{}, nil
}
