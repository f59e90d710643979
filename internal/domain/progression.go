package domain

import (
	"context"
	"errors"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProgressionDomain interface {
	GetAreaList(ctx context.Context, req *model.GetAreaListRequest) (*model.GetAreaListResponse, error)
	GetTaskList(ctx context.Context, req *model.GetTaskListRequest) (*model.GetTaskListResponse, error)
	GetProgress(ctx context.Context, req *model.GetProgressRequest) (*model.GetProgressResponse, error)
}

// progressionTracker answers the unlocking questions shared by the read APIs
// and the submission flow.
type progressionTracker struct {
	areaRepo       repository.AreaRepository
	taskRepo       repository.TaskRepository
	taskRecordRepo repository.TaskRecordRepository
}

func newProgressionTracker(
	areaRepo repository.AreaRepository,
	taskRepo repository.TaskRepository,
	taskRecordRepo repository.TaskRecordRepository,
) *progressionTracker {
	return &progressionTracker{
		areaRepo:       areaRepo,
		taskRepo:       taskRepo,
		taskRecordRepo: taskRecordRepo,
	}
}

type areaState struct {
	area       entity.Area
	isUnlocked bool
	progress   model.AreaProgress
}

// areaStates walks the active areas of an activity in order and computes the
// unlock flag and progress counters of each one for a user. The first area is
// always unlocked. A later area unlocks once the previous one has at least one
// active task and every active task of it was answered correctly. An area
// without active tasks never unlocks its successor.
func (t *progressionTracker) areaStates(
	ctx context.Context, userID, activityID string,
) ([]areaState, error) {
	areas, err := t.areaRepo.GetListByActivityID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	states := make([]areaState, 0, len(areas))
	previousUnlocksNext := false
	for i, area := range areas {
		tasks, err := t.taskRepo.GetListByAreaID(ctx, area.ID)
		if err != nil {
			return nil, err
		}

		records, err := t.taskRecordRepo.GetListByUserAndArea(ctx, userID, area.ID)
		if err != nil {
			return nil, err
		}

		correctByTask := map[string]*entity.TaskRecord{}
		for j := range records {
			if records[j].IsCorrect {
				correctByTask[records[j].TaskID] = &records[j]
			}
		}

		progress := model.AreaProgress{Total: len(tasks)}
		for _, task := range tasks {
			if record, ok := correctByTask[task.ID]; ok {
				progress.Completed++
				progress.Points += record.PointsEarned
			}
		}

		if progress.Total > 0 {
			progress.Percentage = progress.Completed * 100 / progress.Total
			progress.IsCompleted = progress.Completed == progress.Total
		}

		isUnlocked := i == 0 || previousUnlocksNext
		states = append(states, areaState{
			area:       area,
			isUnlocked: isUnlocked,
			progress:   progress,
		})

		previousUnlocksNext = isUnlocked && progress.Total > 0 && progress.IsCompleted
	}

	return states, nil
}

// canAccessTask reports whether a user may submit an answer to a task. The
// area of the task must be unlocked, and within the area tasks complete
// strictly in order, so the task must be the first active one of its area or
// the one right before it must already be correct.
func (t *progressionTracker) canAccessTask(
	ctx context.Context, userID string, task *entity.Task,
) (bool, error) {
	states, err := t.areaStates(ctx, userID, task.ActivityID)
	if err != nil {
		return false, err
	}

	var state *areaState
	for i := range states {
		if states[i].area.ID == task.AreaID {
			state = &states[i]
			break
		}
	}

	if state == nil || !state.isUnlocked {
		return false, nil
	}

	tasks, err := t.taskRepo.GetListByAreaID(ctx, task.AreaID)
	if err != nil {
		return false, err
	}

	position := -1
	for i := range tasks {
		if tasks[i].ID == task.ID {
			position = i
			break
		}
	}

	if position == -1 {
		return false, nil
	}

	if position == 0 {
		return true, nil
	}

	previous, err := t.taskRecordRepo.Get(ctx, userID, tasks[position-1].ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return previous.IsCorrect, nil
}

// nextTask returns the first task of an area the user has not answered
// correctly yet, or nil if the area is complete.
func (t *progressionTracker) nextTask(
	ctx context.Context, userID, areaID string,
) (*entity.Task, error) {
	tasks, err := t.taskRepo.GetListByAreaID(ctx, areaID)
	if err != nil {
		return nil, err
	}

	records, err := t.taskRecordRepo.GetListByUserAndArea(ctx, userID, areaID)
	if err != nil {
		return nil, err
	}

	correct := map[string]bool{}
	for _, record := range records {
		if record.IsCorrect {
			correct[record.TaskID] = true
		}
	}

	for i := range tasks {
		if !correct[tasks[i].ID] {
			return &tasks[i], nil
		}
	}

	return nil, nil
}

type progressionDomain struct {
	tracker        *progressionTracker
	activityRepo   repository.ActivityRepository
	areaRepo       repository.AreaRepository
	taskRepo       repository.TaskRepository
	taskRecordRepo repository.TaskRecordRepository
}

func NewProgressionDomain(
	activityRepo repository.ActivityRepository,
	areaRepo repository.AreaRepository,
	taskRepo repository.TaskRepository,
	taskRecordRepo repository.TaskRecordRepository,
) ProgressionDomain {
	return &progressionDomain{
		tracker:        newProgressionTracker(areaRepo, taskRepo, taskRecordRepo),
		activityRepo:   activityRepo,
		areaRepo:       areaRepo,
		taskRepo:       taskRepo,
		taskRecordRepo: taskRecordRepo,
	}
}

func (d *progressionDomain) GetAreaList(
	ctx context.Context, req *model.GetAreaListRequest,
) (*model.GetAreaListResponse, error) {
	if _, err := d.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	states, err := d.tracker.areaStates(ctx, xcontext.RequestUserID(ctx), req.ActivityID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute area states: %v", err)
		return nil, errorx.Unknown
	}

	areas := make([]model.Area, 0, len(states))
	for i := range states {
		areas = append(areas, model.ConvertArea(&states[i].area, states[i].isUnlocked, states[i].progress))
	}

	return &model.GetAreaListResponse{Areas: areas}, nil
}

func (d *progressionDomain) GetTaskList(
	ctx context.Context, req *model.GetTaskListRequest,
) (*model.GetTaskListResponse, error) {
	area, err := d.areaRepo.GetByID(ctx, req.AreaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found area")
		}

		xcontext.Logger(ctx).Errorf("Cannot get area: %v", err)
		return nil, errorx.Unknown
	}

	tasks, err := d.taskRepo.GetListByAreaID(ctx, area.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get task list: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	records, err := d.taskRecordRepo.GetListByUserAndArea(ctx, userID, area.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get task records: %v", err)
		return nil, errorx.Unknown
	}

	recordByTask := map[string]*entity.TaskRecord{}
	for i := range records {
		recordByTask[records[i].TaskID] = &records[i]
	}

	resp := &model.GetTaskListResponse{Tasks: make([]model.Task, 0, len(tasks))}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, model.ConvertTask(&tasks[i], recordByTask[tasks[i].ID]))
	}

	return resp, nil
}

func (d *progressionDomain) GetProgress(
	ctx context.Context, req *model.GetProgressRequest,
) (*model.GetProgressResponse, error) {
	if _, err := d.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	states, err := d.tracker.areaStates(ctx, userID, req.ActivityID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute area states: %v", err)
		return nil, errorx.Unknown
	}

	records, err := d.taskRecordRepo.GetListByUserAndActivity(ctx, userID, req.ActivityID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get task records: %v", err)
		return nil, errorx.Unknown
	}

	stats := model.ActivityStats{}
	areas := make([]model.Area, 0, len(states))
	for i := range states {
		stats.TotalTasks += states[i].progress.Total
		stats.CorrectTasks += states[i].progress.Completed
		stats.TotalPoints += states[i].progress.Points
		areas = append(areas, model.ConvertArea(&states[i].area, states[i].isUnlocked, states[i].progress))
	}

	for _, record := range records {
		stats.TotalAttempts += record.AttemptCount
		stats.TotalErrors += record.ErrorCount
	}

	if stats.TotalAttempts > 0 {
		stats.Accuracy = (stats.TotalAttempts - stats.TotalErrors) * 100 / stats.TotalAttempts
	}

	return &model.GetProgressResponse{Stats: stats, Areas: areas}, nil
}
