package main

import (
	"context"
	"net/http"

	"github.com/citytrail/backend/internal/common"
	"github.com/citytrail/backend/internal/domain"
	"github.com/citytrail/backend/internal/domain/statistic"
	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/middleware"
	"github.com/citytrail/backend/internal/model"
	"github.com/citytrail/backend/internal/repository"
	"github.com/citytrail/backend/pkg/authenticator"
	"github.com/citytrail/backend/pkg/logger"
	"github.com/citytrail/backend/pkg/router"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/citytrail/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	ctx context.Context

	userRepo        repository.UserRepository
	activityRepo    repository.ActivityRepository
	areaRepo        repository.AreaRepository
	taskRepo        repository.TaskRepository
	taskRecordRepo  repository.TaskRecordRepository
	lotteryRepo     repository.LotteryRepository
	participantRepo repository.ParticipantRepository

	userDomain        domain.UserDomain
	activityDomain    domain.ActivityDomain
	catalogDomain     domain.CatalogDomain
	progressionDomain domain.ProgressionDomain
	submissionDomain  domain.SubmissionDomain
	lotteryDomain     domain.LotteryDomain
	statisticDomain   domain.StatisticDomain

	redisClient  xredis.Client
	authVerifier *middleware.AuthVerifier
	router       *router.Router
	server       *http.Server
}

func (s *srv) startApi(*cli.Context) error {
	cfg := loadConfig()
	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(cfg.ApiServer.LogLevel))

	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	xcontext.Logger(s.ctx).Infof("Server is starting on %s", cfg.ApiServer.Address())
	s.server = &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadDatabase() {
	dbCfg := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(
		mysql.Open(dbCfg.ConnectionString()),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = client
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.activityRepo = repository.NewActivityRepository()
	s.areaRepo = repository.NewAreaRepository()
	s.taskRepo = repository.NewTaskRepository()
	s.taskRecordRepo = repository.NewTaskRecordRepository()
	s.lotteryRepo = repository.NewLotteryRepository()
	s.participantRepo = repository.NewParticipantRepository()
}

func (s *srv) loadDomains() {
	cfg := xcontext.Configs(s.ctx)
	accessTokenEngine := authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration)

	leaderboard := statistic.NewLeaderboard(s.userRepo, s.redisClient)
	ledger := common.NewScoreLedger(s.userRepo, leaderboard)

	s.userDomain = domain.NewUserDomain(s.userRepo, accessTokenEngine)
	s.activityDomain = domain.NewActivityDomain(s.activityRepo, s.participantRepo, s.userRepo)
	s.catalogDomain = domain.NewCatalogDomain(
		s.activityRepo, s.areaRepo, s.taskRepo, s.taskRecordRepo, s.userRepo)
	s.progressionDomain = domain.NewProgressionDomain(
		s.activityRepo, s.areaRepo, s.taskRepo, s.taskRecordRepo)
	s.submissionDomain = domain.NewSubmissionDomain(
		s.taskRepo, s.taskRecordRepo, s.areaRepo, s.userRepo, s.participantRepo, ledger)
	s.lotteryDomain = domain.NewLotteryDomain(s.lotteryRepo, s.userRepo, ledger)
	s.statisticDomain = domain.NewStatisticDomain(leaderboard, s.userRepo)

	s.authVerifier = middleware.NewAuthVerifier(accessTokenEngine)
}
