package model

type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Points           uint64 `json:"points"`
	Level            int    `json:"level"`
	TotalTaskCount   int    `json:"total_task_count"`
	CorrectTaskCount int    `json:"correct_task_count"`
	TotalDrawCount   int    `json:"total_draw_count"`
	Accuracy         int    `json:"accuracy"`
}

type SignInRequest struct {
	Name string `json:"name"`
}

type SignInResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserResponse struct {
	User User `json:"user"`
}
