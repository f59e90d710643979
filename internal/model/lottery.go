package model

import "time"

type LotteryItem struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

type Lottery struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Items          []LotteryItem `json:"items"`
	MaxDrawsPerDay int           `json:"max_draws_per_day"`
	Status         string        `json:"status"`
}

type GetLotteryListRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetLotteryListResponse struct {
	Lotteries []Lottery `json:"lotteries"`
}

type CreateLotteryRequest struct {
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Items          []LotteryItem `json:"items"`
	MaxDrawsPerDay int           `json:"max_draws_per_day"`
}

type CreateLotteryResponse struct {
	ID string `json:"id"`
}

type UpdateLotteryStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateLotteryStatusResponse struct{}

type DrawLotteryRequest struct {
	LotteryID string `json:"lottery_id"`
}

type DrawLotteryResponse struct {
	Item                string `json:"item"`
	AwardedPoints       uint64 `json:"awarded_points"`
	DrawsRemainingToday int    `json:"draws_remaining_today"`
}

type LotteryRecord struct {
	ID            string    `json:"id"`
	LotteryID     string    `json:"lottery_id"`
	Item          string    `json:"item"`
	AwardedPoints uint64    `json:"awarded_points"`
	DrawnAt       time.Time `json:"drawn_at"`
}

type GetLotteryHistoryRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetLotteryHistoryResponse struct {
	Records []LotteryRecord `json:"records"`
}
