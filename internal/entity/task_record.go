package entity

import (
	"database/sql"
	"time"
)

type TaskRecord struct {
	Base

	UserID string `gorm:"uniqueIndex:idx_task_records_user_task"`
	User   User   `gorm:"foreignKey:UserID"`

	TaskID string `gorm:"uniqueIndex:idx_task_records_user_task"`
	Task   Task   `gorm:"foreignKey:TaskID"`

	AreaID     string `gorm:"index"`
	ActivityID string `gorm:"index"`

	LastAnswer string
	IsCorrect  bool

	AttemptCount int
	ErrorCount   int

	// PointsEarned is written once, on the submission that completes the
	// task, and never changes afterwards.
	PointsEarned uint64

	FirstSubmittedAt time.Time
	CompletedAt      sql.NullTime
}
