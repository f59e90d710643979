package entity

import (
	"time"

	"github.com/citytrail/backend/pkg/enum"
)

type ActivityStatus string

var (
	ActivityUpcoming  = enum.New(ActivityStatus("upcoming"))
	ActivityOngoing   = enum.New(ActivityStatus("ongoing"))
	ActivityCompleted = enum.New(ActivityStatus("completed"))
	ActivityCancelled = enum.New(ActivityStatus("cancelled"))
)

type Activity struct {
	Base

	Title       string
	Description []byte `gorm:"type:longtext"`
	Status      ActivityStatus

	RegistrationBeginTime time.Time
	RegistrationEndTime   time.Time
	StartTime             time.Time
	EndTime               time.Time
}
