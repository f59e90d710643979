package model

import "time"

type Activity struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Status                string    `json:"status"`
	RegistrationBeginTime time.Time `json:"registration_begin_time"`
	RegistrationEndTime   time.Time `json:"registration_end_time"`
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
}

type GetActivityListRequest struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetActivityListResponse struct {
	Activities []Activity `json:"activities"`
}

type CreateActivityRequest struct {
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	RegistrationBeginTime time.Time `json:"registration_begin_time"`
	RegistrationEndTime   time.Time `json:"registration_end_time"`
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
}

type CreateActivityResponse struct {
	ID string `json:"id"`
}

type UpdateActivityStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateActivityStatusResponse struct{}

type CreateAreaRequest struct {
	ActivityID  string `json:"activity_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Index       int    `json:"index"`
}

type CreateAreaResponse struct {
	ID string `json:"id"`
}

type UpdateAreaRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateAreaResponse struct{}

type DeleteAreaRequest struct {
	ID string `json:"id"`
}

type DeleteAreaResponse struct{}

type CreateTaskRequest struct {
	AreaID          string   `json:"area_id"`
	Index           int      `json:"index"`
	Title           string   `json:"title"`
	Question        string   `json:"question"`
	Type            string   `json:"type"`
	Options         []string `json:"options"`
	Answer          string   `json:"answer"`
	Answers         []string `json:"answers"`
	MatchType       string   `json:"match_type"`
	CaseSensitive   bool     `json:"case_sensitive"`
	NumberTolerance float64  `json:"number_tolerance"`
	Hint            string   `json:"hint"`
	Points          uint64   `json:"points"`
	MaxAttempts     int      `json:"max_attempts"`
}

type CreateTaskResponse struct {
	ID string `json:"id"`
}

type UpdateTaskRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Question    string `json:"question"`
	Hint        string `json:"hint"`
	Points      uint64 `json:"points"`
	MaxAttempts int    `json:"max_attempts"`
}

type UpdateTaskResponse struct{}

type DeleteTaskRequest struct {
	ID string `json:"id"`
}

type DeleteTaskResponse struct{}

type RegisterActivityRequest struct {
	ActivityID string `json:"activity_id"`
}

type RegisterActivityResponse struct{}

type ReviewRegistrationRequest struct {
	UserID     string `json:"user_id"`
	ActivityID string `json:"activity_id"`
	Action     string `json:"action"`
}

type ReviewRegistrationResponse struct{}
