package main

import (
	"github.com/citytrail/backend/internal/middleware"
	"github.com/citytrail/backend/pkg/router"
)

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.LogRequest())

	router.POST(s.router, "/signIn", s.userDomain.SignIn)
	router.GET(s.router, "/getActivities", s.activityDomain.GetList)
	router.GET(s.router, "/getLeaderboard", s.statisticDomain.GetLeaderboard)

	onlyTokenAuth := s.router.Branch()
	onlyTokenAuth.Before(s.authVerifier.Middleware())

	router.GET(onlyTokenAuth, "/getMe", s.userDomain.GetMe)
	router.GET(onlyTokenAuth, "/getUser", s.userDomain.GetUser)
	router.GET(onlyTokenAuth, "/getRank", s.statisticDomain.GetRank)

	router.POST(onlyTokenAuth, "/registerActivity", s.activityDomain.Register)
	router.GET(onlyTokenAuth, "/getAreas", s.progressionDomain.GetAreaList)
	router.GET(onlyTokenAuth, "/getTasks", s.progressionDomain.GetTaskList)
	router.GET(onlyTokenAuth, "/getProgress", s.progressionDomain.GetProgress)
	router.POST(onlyTokenAuth, "/submitTask", s.submissionDomain.Submit)

	router.GET(onlyTokenAuth, "/getLotteries", s.lotteryDomain.GetList)
	router.POST(onlyTokenAuth, "/drawLottery", s.lotteryDomain.Draw)
	router.GET(onlyTokenAuth, "/getLotteryHistory", s.lotteryDomain.GetHistory)

	// Admin endpoints. The role is verified inside the domains.
	router.POST(onlyTokenAuth, "/createActivity", s.activityDomain.Create)
	router.POST(onlyTokenAuth, "/updateActivityStatus", s.activityDomain.UpdateStatus)
	router.POST(onlyTokenAuth, "/reviewRegistration", s.activityDomain.ReviewRegistration)
	router.POST(onlyTokenAuth, "/createArea", s.catalogDomain.CreateArea)
	router.POST(onlyTokenAuth, "/updateArea", s.catalogDomain.UpdateArea)
	router.POST(onlyTokenAuth, "/deleteArea", s.catalogDomain.DeleteArea)
	router.POST(onlyTokenAuth, "/createTask", s.catalogDomain.CreateTask)
	router.POST(onlyTokenAuth, "/updateTask", s.catalogDomain.UpdateTask)
	router.POST(onlyTokenAuth, "/deleteTask", s.catalogDomain.DeleteTask)
	router.POST(onlyTokenAuth, "/createLottery", s.lotteryDomain.Create)
	router.POST(onlyTokenAuth, "/updateLotteryStatus", s.lotteryDomain.UpdateStatus)
}
