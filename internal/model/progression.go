package model

import "time"

type AreaProgress struct {
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
	Percentage  int    `json:"percentage"`
	IsCompleted bool   `json:"is_completed"`
	Points      uint64 `json:"points"`
}

type Area struct {
	ID          string       `json:"id"`
	ActivityID  string       `json:"activity_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Index       int          `json:"index"`
	IsUnlocked  bool         `json:"is_unlocked"`
	Progress    AreaProgress `json:"progress"`
}

type GetAreaListRequest struct {
	ActivityID string `json:"activity_id"`
}

type GetAreaListResponse struct {
	Areas []Area `json:"areas"`
}

type TaskRecord struct {
	IsCorrect    bool       `json:"is_correct"`
	LastAnswer   string     `json:"last_answer"`
	AttemptCount int        `json:"attempt_count"`
	ErrorCount   int        `json:"error_count"`
	PointsEarned uint64     `json:"points_earned"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

type Task struct {
	ID          string   `json:"id"`
	AreaID      string   `json:"area_id"`
	ActivityID  string   `json:"activity_id"`
	Index       int      `json:"index"`
	Title       string   `json:"title"`
	Question    string   `json:"question"`
	Type        string   `json:"type"`
	Options     []string `json:"options"`
	Hint        string   `json:"hint"`
	Points      uint64   `json:"points"`
	MaxAttempts int      `json:"max_attempts"`

	UserRecord *TaskRecord `json:"user_record,omitempty"`
}

type GetTaskListRequest struct {
	AreaID string `json:"area_id"`
}

type GetTaskListResponse struct {
	Tasks []Task `json:"tasks"`
}

type ActivityStats struct {
	TotalTasks    int    `json:"total_tasks"`
	CorrectTasks  int    `json:"correct_tasks"`
	TotalPoints   uint64 `json:"total_points"`
	Accuracy      int    `json:"accuracy"`
	TotalAttempts int    `json:"total_attempts"`
	TotalErrors   int    `json:"total_errors"`
}

type GetProgressRequest struct {
	ActivityID string `json:"activity_id"`
}

type GetProgressResponse struct {
	Stats ActivityStats `json:"stats"`
	Areas []Area        `json:"areas"`
}

type SubmitTaskRequest struct {
	TaskID string `json:"task_id"`

	// Answer carries the submission of single-answer question types,
	// Answers the one of the multiple question type.
	Answer  string   `json:"answer"`
	Answers []string `json:"answers"`
}

type SubmitTaskResponse struct {
	IsCorrect    bool   `json:"is_correct"`
	PointsEarned uint64 `json:"points_earned"`
	AttemptCount int    `json:"attempt_count"`
	Feedback     string `json:"feedback"`
	NextTaskID   string `json:"next_task_id,omitempty"`
}
