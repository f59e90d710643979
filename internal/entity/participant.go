package entity

import (
	"time"

	"github.com/citytrail/backend/pkg/enum"
	"gorm.io/gorm"
)

type ParticipantStatus string

var (
	ParticipantPending  = enum.New(ParticipantStatus("pending"))
	ParticipantApproved = enum.New(ParticipantStatus("approved"))
	ParticipantRejected = enum.New(ParticipantStatus("rejected"))
)

type Participant struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	ActivityID string   `gorm:"primaryKey"`
	Activity   Activity `gorm:"foreignKey:ActivityID"`

	Status ParticipantStatus
}
