package entity

import "github.com/citytrail/backend/pkg/enum"

type LotteryStatus string

var (
	LotteryActive   = enum.New(LotteryStatus("active"))
	LotteryInactive = enum.New(LotteryStatus("inactive"))
	LotteryEnded    = enum.New(LotteryStatus("ended"))
)

type LotteryItem struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

type Lottery struct {
	Base

	Title       string
	Description string

	// Items are walked in slice order when drawing; probabilities are
	// percentages and must sum to 100 within an epsilon of 0.01.
	Items Array[LotteryItem]

	MaxDrawsPerDay int
	Status         LotteryStatus
}

type LotteryRecord struct {
	Base

	UserID string `gorm:"index:idx_lottery_records_user_lottery"`
	User   User   `gorm:"foreignKey:UserID"`

	LotteryID string  `gorm:"index:idx_lottery_records_user_lottery"`
	Lottery   Lottery `gorm:"foreignKey:LotteryID"`

	Item          string
	Probability   float64
	AwardedPoints uint64
}
