package model

import (
	"github.com/citytrail/backend/internal/entity"
)

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	accuracy := 0
	if user.TotalTaskCount > 0 {
		accuracy = user.CorrectTaskCount * 100 / user.TotalTaskCount
	}

	return User{
		ID:               user.ID,
		Name:             user.Name,
		Points:           user.Points,
		Level:            user.Level,
		TotalTaskCount:   user.TotalTaskCount,
		CorrectTaskCount: user.CorrectTaskCount,
		TotalDrawCount:   user.TotalDrawCount,
		Accuracy:         accuracy,
	}
}

func ConvertActivity(activity *entity.Activity) Activity {
	if activity == nil {
		return Activity{}
	}

	return Activity{
		ID:                    activity.ID,
		Title:                 activity.Title,
		Description:           string(activity.Description),
		Status:                string(activity.Status),
		RegistrationBeginTime: activity.RegistrationBeginTime,
		RegistrationEndTime:   activity.RegistrationEndTime,
		StartTime:             activity.StartTime,
		EndTime:               activity.EndTime,
	}
}

func ConvertArea(area *entity.Area, isUnlocked bool, progress AreaProgress) Area {
	if area == nil {
		return Area{}
	}

	return Area{
		ID:          area.ID,
		ActivityID:  area.ActivityID,
		Name:        area.Name,
		Description: area.Description,
		Index:       area.Index,
		IsUnlocked:  isUnlocked,
		Progress:    progress,
	}
}

func ConvertTask(task *entity.Task, record *entity.TaskRecord) Task {
	if task == nil {
		return Task{}
	}

	result := Task{
		ID:          task.ID,
		AreaID:      task.AreaID,
		ActivityID:  task.ActivityID,
		Index:       task.Index,
		Title:       task.Title,
		Question:    task.Question,
		Type:        string(task.Type),
		Options:     task.Options,
		Hint:        task.Hint,
		Points:      task.Points,
		MaxAttempts: task.MaxAttempts,
	}

	if record != nil {
		result.UserRecord = ConvertTaskRecord(record)
	}

	return result
}

func ConvertTaskRecord(record *entity.TaskRecord) *TaskRecord {
	if record == nil {
		return nil
	}

	result := &TaskRecord{
		IsCorrect:    record.IsCorrect,
		LastAnswer:   record.LastAnswer,
		AttemptCount: record.AttemptCount,
		ErrorCount:   record.ErrorCount,
		PointsEarned: record.PointsEarned,
	}

	if record.CompletedAt.Valid {
		completedAt := record.CompletedAt.Time
		result.CompletedAt = &completedAt
	}

	return result
}

func ConvertLottery(lottery *entity.Lottery) Lottery {
	if lottery == nil {
		return Lottery{}
	}

	items := []LotteryItem{}
	for _, item := range lottery.Items {
		items = append(items, LotteryItem{Name: item.Name, Probability: item.Probability})
	}

	return Lottery{
		ID:             lottery.ID,
		Title:          lottery.Title,
		Description:    lottery.Description,
		Items:          items,
		MaxDrawsPerDay: lottery.MaxDrawsPerDay,
		Status:         string(lottery.Status),
	}
}

func ConvertLotteryRecord(record *entity.LotteryRecord) LotteryRecord {
	if record == nil {
		return LotteryRecord{}
	}

	return LotteryRecord{
		ID:            record.ID,
		LotteryID:     record.LotteryID,
		Item:          record.Item,
		AwardedPoints: record.AwardedPoints,
		DrawnAt:       record.CreatedAt,
	}
}
