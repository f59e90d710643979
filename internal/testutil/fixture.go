package testutil

import (
	"context"
	"time"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
)

var (
	User1 = entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "alice",
		Role: entity.UserRole,
	}

	User2 = entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "bob",
		Role: entity.UserRole,
	}

	Admin = entity.User{
		Base: entity.Base{ID: "admin"},
		Name: "admin",
		Role: entity.AdminRole,
	}

	Activity1 = entity.Activity{
		Base:                  entity.Base{ID: "activity1"},
		Title:                 "Old Town Trail",
		Description:           []byte("A walk through the old town"),
		Status:                entity.ActivityOngoing,
		RegistrationBeginTime: time.Now().Add(-time.Hour),
		RegistrationEndTime:   time.Now().Add(24 * time.Hour),
		StartTime:             time.Now().Add(-time.Hour),
		EndTime:               time.Now().Add(24 * time.Hour),
	}

	Area1 = entity.Area{
		Base:       entity.Base{ID: "area1"},
		ActivityID: Activity1.ID,
		Name:       "Market Square",
		Index:      0,
		IsActive:   true,
	}

	Area2 = entity.Area{
		Base:       entity.Base{ID: "area2"},
		ActivityID: Activity1.ID,
		Name:       "Cathedral Hill",
		Index:      1,
		IsActive:   true,
	}

	// Area3 has no tasks, so it never unlocks its successors.
	Area3 = entity.Area{
		Base:       entity.Base{ID: "area3"},
		ActivityID: Activity1.ID,
		Name:       "River Docks",
		Index:      2,
		IsActive:   true,
	}

	Task1 = entity.Task{
		Base:        entity.Base{ID: "task1"},
		ActivityID:  Activity1.ID,
		AreaID:      Area1.ID,
		Index:       0,
		Title:       "Town hall columns",
		Question:    "How many columns does the town hall facade have?",
		Type:        entity.QuestionText,
		Answer:      "11",
		MatchType:   entity.MatchExact,
		Hint:        "Count the ones on both sides of the door",
		Points:      10,
		MaxAttempts: 3,
		IsActive:    true,
	}

	Task2 = entity.Task{
		Base:            entity.Base{ID: "task2"},
		ActivityID:      Activity1.ID,
		AreaID:          Area1.ID,
		Index:           1,
		Title:           "Fountain year",
		Question:        "Which year is engraved on the fountain?",
		Type:            entity.QuestionNumber,
		Answer:          "1886",
		MatchType:       entity.MatchNumber,
		NumberTolerance: 0.5,
		Points:          20,
		IsActive:        true,
	}

	Task3 = entity.Task{
		Base:       entity.Base{ID: "task3"},
		ActivityID: Activity1.ID,
		AreaID:     Area2.ID,
		Index:      0,
		Title:      "Flag colors",
		Question:   "Which colors does the city flag carry?",
		Type:       entity.QuestionMultiple,
		Answers:    []string{"red", "white"},
		Points:     30,
		IsActive:   true,
	}

	Lottery1 = entity.Lottery{
		Base:  entity.Base{ID: "lottery1"},
		Title: "Daily wheel",
		Items: []entity.LotteryItem{
			{Name: "Sticker", Probability: 60},
			{Name: "Postcard", Probability: 30},
			{Name: "Mug", Probability: 10},
		},
		MaxDrawsPerDay: 2,
		Status:         entity.LotteryActive,
	}

	Participant1 = entity.Participant{
		UserID:     User1.ID,
		ActivityID: Activity1.ID,
		Status:     entity.ParticipantApproved,
	}

	Participant2 = entity.Participant{
		UserID:     User2.ID,
		ActivityID: Activity1.ID,
		Status:     entity.ParticipantPending,
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertActivities(ctx)
	insertAreas(ctx)
	insertTasks(ctx)
	insertLotteries(ctx)
	insertParticipants(ctx)
}

func insertUsers(ctx context.Context) {
	for _, u := range []entity.User{User1, User2, Admin} {
		if err := xcontext.DB(ctx).Create(&u).Error; err != nil {
			panic(err)
		}
	}
}

func insertActivities(ctx context.Context) {
	if err := xcontext.DB(ctx).Create(&Activity1).Error; err != nil {
		panic(err)
	}
}

func insertAreas(ctx context.Context) {
	for _, a := range []entity.Area{Area1, Area2, Area3} {
		if err := xcontext.DB(ctx).Create(&a).Error; err != nil {
			panic(err)
		}
	}
}

func insertTasks(ctx context.Context) {
	for _, task := range []entity.Task{Task1, Task2, Task3} {
		if err := xcontext.DB(ctx).Create(&task).Error; err != nil {
			panic(err)
		}
	}
}

func insertLotteries(ctx context.Context) {
	if err := xcontext.DB(ctx).Create(&Lottery1).Error; err != nil {
		panic(err)
	}
}

func insertParticipants(ctx context.Context) {
	for _, p := range []entity.Participant{Participant1, Participant2} {
		if err := xcontext.DB(ctx).Create(&p).Error; err != nil {
			panic(err)
		}
	}
}
