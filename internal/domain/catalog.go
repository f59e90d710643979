package domain

import (
	"context"
	"errors"

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

// CatalogDomain manages the areas and tasks an activity is built of.
type CatalogDomain interface {
	CreateArea(ctx context.Context, req *model.CreateAreaRequest) (*model.CreateAreaResponse, error)
	UpdateArea(ctx context.Context, req *model.UpdateAreaRequest) (*model.UpdateAreaResponse, error)
	DeleteArea(ctx context.Context, req *model.DeleteAreaRequest) (*model.DeleteAreaResponse, error)
	CreateTask(ctx context.Context, req *model.CreateTaskRequest) (*model.CreateTaskResponse, error)
	UpdateTask(ctx context.Context, req *model.UpdateTaskRequest) (*model.UpdateTaskResponse, error)
	DeleteTask(ctx context.Context, req *model.DeleteTaskRequest) (*model.DeleteTaskResponse, error)
}

type catalogDomain struct {
	activityRepo   repository.ActivityRepository
	areaRepo       repository.AreaRepository
	taskRepo       repository.TaskRepository
	taskRecordRepo repository.TaskRecordRepository
	roleVerifier   *common.GlobalRoleVerifier
}

func NewCatalogDomain(
	activityRepo repository.ActivityRepository,
	areaRepo repository.AreaRepository,
	taskRepo repository.TaskRepository,
	taskRecordRepo repository.TaskRecordRepository,
	userRepo repository.UserRepository,
) CatalogDomain {
	return &catalogDomain{
		activityRepo:   activityRepo,
		areaRepo:       areaRepo,
		taskRepo:       taskRepo,
		taskRecordRepo: taskRecordRepo,
		roleVerifier:   common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *catalogDomain) CreateArea(
	ctx context.Context, req *model.CreateAreaRequest,
) (*model.CreateAreaResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	if req.Index < 0 {
		return nil, errorx.New(errorx.BadRequest, "Index must not be negative")
	}

	if _, err := d.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	area := &entity.Area{
		Base:        entity.Base{ID: uuid.NewString()},
		ActivityID:  req.ActivityID,
		Name:        req.Name,
		Description: req.Description,
		Index:       req.Index,
		IsActive:    true,
	}

	if err := d.areaRepo.Create(ctx, area); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create area: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateAreaResponse{ID: area.ID}, nil
}

func (d *catalogDomain) UpdateArea(
	ctx context.Context, req *model.UpdateAreaRequest,
) (*model.UpdateAreaResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if _, err := d.areaRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found area")
		}

		xcontext.Logger(ctx).Errorf("Cannot get area: %v", err)
		return nil, errorx.Unknown
	}

	err := d.areaRepo.UpdateByID(ctx, req.ID, &entity.Area{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update area: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateAreaResponse{}, nil
}

func (d *catalogDomain) DeleteArea(
	ctx context.Context, req *model.DeleteAreaRequest,
) (*model.DeleteAreaResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if _, err := d.areaRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found area")
		}

		xcontext.Logger(ctx).Errorf("Cannot get area: %v", err)
		return nil, errorx.Unknown
	}

	count, err := d.taskRepo.CountByAreaID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count tasks of area: %v", err)
		return nil, errorx.Unknown
	}

	if count > 0 {
		return nil, errorx.New(errorx.Unavailable, "Cannot delete an area still holding tasks")
	}

	if err := d.areaRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete area: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteAreaResponse{}, nil
}

func (d *catalogDomain) CreateTask(
	ctx context.Context, req *model.CreateTaskRequest,
) (*model.CreateTaskResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Title == "" || req.Question == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a title and a question")
	}

	questionType, err := enum.ToEnum[entity.QuestionType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid question type %s", req.Type)
	}

	matchType := entity.MatchExact
	if req.MatchType != "" {
		matchType, err = enum.ToEnum[entity.MatchType](req.MatchType)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid match type %s", req.MatchType)
		}
	}

	if questionType == entity.QuestionMultiple {
		if len(req.Answers) == 0 {
			return nil, errorx.New(errorx.BadRequest, "Require a list of expected answers")
		}
	} else if req.Answer == "" {
		return nil, errorx.New(errorx.BadRequest, "Require an expected answer")
	}

	if req.NumberTolerance < 0 {
		return nil, errorx.New(errorx.BadRequest, "Tolerance must not be negative")
	}

	if req.MaxAttempts < 0 {
		return nil, errorx.New(errorx.BadRequest, "Max attempts must not be negative")
	}

	area, err := d.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found area")
		}

		xcontext.Logger(ctx).Errorf("Cannot get area: %v", err)
		return nil, errorx.Unknown
	}

	task := &entity.Task{
		Base:            entity.Base{ID: uuid.NewString()},
		ActivityID:      area.ActivityID,
		AreaID:          area.ID,
		Index:           req.Index,
		Title:           req.Title,
		Question:        req.Question,
		Type:            questionType,
		Options:         req.Options,
		Answer:          req.Answer,
		Answers:         req.Answers,
		MatchType:       matchType,
		CaseSensitive:   req.CaseSensitive,
		NumberTolerance: req.NumberTolerance,
		Hint:            req.Hint,
		Points:          req.Points,
		MaxAttempts:     req.MaxAttempts,
		IsActive:        true,
	}

	if err := d.taskRepo.Create(ctx, task); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create task: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateTaskResponse{ID: task.ID}, nil
}

func (d *catalogDomain) UpdateTask(
	ctx context.Context, req *model.UpdateTaskRequest,
) (*model.UpdateTaskResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.MaxAttempts < 0 {
		return nil, errorx.New(errorx.BadRequest, "Max attempts must not be negative")
	}

	if _, err := d.taskRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	err := d.taskRepo.UpdateByID(ctx, req.ID, &entity.Task{
		Title:       req.Title,
		Question:    req.Question,
		Hint:        req.Hint,
		Points:      req.Points,
		MaxAttempts: req.MaxAttempts,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update task: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateTaskResponse{}, nil
}

func (d *catalogDomain) DeleteTask(
	ctx context.Context, req *model.DeleteTaskRequest,
) (*model.DeleteTaskResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.AdminRole); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if _, err := d.taskRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	count, err := d.taskRecordRepo.CountByTaskID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count task records: %v", err)
		return nil, errorx.Unknown
	}

	if count > 0 {
		return nil, errorx.New(errorx.Unavailable, "Cannot delete a task already submitted to")
	}

	if err := d.taskRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete task: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteTaskResponse{}, nil
}
