package domain

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/citytrail/backend/internal/common"
	"github.com/citytrail/backend/internal/domain/taskmatch"
	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/errorx"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionDomain interface {
	Submit(ctx context.Context, req *model.SubmitTaskRequest) (*model.SubmitTaskResponse, error)
}

type submissionDomain struct {
	taskRepo         repository.TaskRepository
	taskRecordRepo   repository.TaskRecordRepository
	userRepo         repository.UserRepository
	tracker          *progressionTracker
	approvalVerifier *common.ApprovalVerifier
	ledger           *common.ScoreLedger
}

func NewSubmissionDomain(
	taskRepo repository.TaskRepository,
	taskRecordRepo repository.TaskRecordRepository,
	areaRepo repository.AreaRepository,
	userRepo repository.UserRepository,
	participantRepo repository.ParticipantRepository,
	ledger *common.ScoreLedger,
) SubmissionDomain {
	return &submissionDomain{
		taskRepo:         taskRepo,
		taskRecordRepo:   taskRecordRepo,
		userRepo:         userRepo,
		tracker:          newProgressionTracker(areaRepo, taskRepo, taskRecordRepo),
		approvalVerifier: common.NewApprovalVerifier(participantRepo),
		ledger:           ledger,
	}
}

func (d *submissionDomain) Submit(
	ctx context.Context, req *model.SubmitTaskRequest,
) (*model.SubmitTaskResponse, error) {
	task, err := d.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	if !task.IsActive {
		return nil, errorx.New(errorx.NotFound, "Not found task")
	}

	if task.Type == entity.QuestionMultiple {
		if len(req.Answers) == 0 {
			return nil, errorx.New(errorx.BadRequest, "Require a list of answers")
		}
	} else if req.Answer == "" {
		return nil, errorx.New(errorx.BadRequest, "Require an answer")
	}

	if err := d.approvalVerifier.Verify(ctx, task.ActivityID); err != nil {
		xcontext.Logger(ctx).Debugf("Submission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "You have not joined this activity")
	}

	userID := xcontext.RequestUserID(ctx)
	accessible, err := d.tracker.canAccessTask(ctx, userID, task)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check task access: %v", err)
		return nil, errorx.Unknown
	}

	if !accessible {
		return nil, errorx.New(errorx.PermissionDenied, "This task is still locked")
	}

	record, err := d.taskRecordRepo.Get(ctx, userID, task.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get task record: %v", err)
		return nil, errorx.Unknown
	}

	if record != nil {
		if record.IsCorrect {
			return nil, errorx.New(errorx.Unavailable, "This task was already completed")
		}

		if task.MaxAttempts > 0 && record.AttemptCount >= task.MaxAttempts {
			return nil, errorx.New(errorx.TooManyRequests, "No attempt left for this task")
		}
	}

	isCorrect := taskmatch.Match(ctx, *task, taskmatch.Answer{
		Value:  req.Answer,
		Values: req.Answers,
	})

	answerText := req.Answer
	if task.Type == entity.QuestionMultiple {
		answerText = strings.Join(req.Answers, ", ")
	}

	now := time.Now()
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	attemptCount := 1
	var pointsEarned uint64
	if isCorrect {
		pointsEarned = task.Points
	}

	if record == nil {
		newRecord := &entity.TaskRecord{
			Base:             entity.Base{ID: uuid.NewString()},
			UserID:           userID,
			TaskID:           task.ID,
			AreaID:           task.AreaID,
			ActivityID:       task.ActivityID,
			LastAnswer:       answerText,
			IsCorrect:        isCorrect,
			AttemptCount:     1,
			PointsEarned:     pointsEarned,
			FirstSubmittedAt: now,
		}

		if !isCorrect {
			newRecord.ErrorCount = 1
		} else {
			newRecord.CompletedAt = sql.NullTime{Time: now, Valid: true}
		}

		if err := d.taskRecordRepo.Create(ctx, newRecord); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create task record: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		attemptCount = record.AttemptCount + 1
		if isCorrect {
			err := d.taskRecordRepo.CheckAndComplete(ctx, record.ID, answerText, task.Points, now)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, errorx.New(errorx.Unavailable, "This task was already completed")
				}

				xcontext.Logger(ctx).Errorf("Cannot complete task record: %v", err)
				return nil, errorx.Unknown
			}
		} else {
			if err := d.taskRecordRepo.UpdateAttempt(ctx, record.ID, answerText); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot update task record: %v", err)
				return nil, errorx.Unknown
			}
		}
	}

	if err := d.userRepo.IncreaseTaskStats(ctx, userID, isCorrect); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user task stats: %v", err)
		return nil, errorx.Unknown
	}

	if isCorrect {
		if err := d.ledger.AddPoints(ctx, userID, task.Points); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot award task points: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	resp := &model.SubmitTaskResponse{
		IsCorrect:    isCorrect,
		PointsEarned: pointsEarned,
		AttemptCount: attemptCount,
		Feedback:     "Correct answer",
	}

	if !isCorrect {
		resp.Feedback = "Wrong answer"
		if task.Hint != "" {
			resp.Feedback = "Wrong answer. Hint: " + task.Hint
		}

		return resp, nil
	}

	next, err := d.tracker.nextTask(ctx, userID, task.AreaID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot determine next task: %v", err)
		return resp, nil
	}

	if next != nil {
		resp.NextTaskID = next.ID
	}

	return resp, nil
}
