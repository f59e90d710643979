package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/citytrail/backend/config"
	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/logger"
	"github.com/citytrail/backend/pkg/xcontext"
	"github.com/citytrail/backend/pkg/xredis"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	cfg := config.Configs{
		Env: "test",
		ApiServer: config.ServerConfigs{
			LogLevel:     logger.ERROR,
			DefaultLimit: 10,
			MaxLimit:     50,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(cfg.ApiServer.LogLevel))

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	ctx = xcontext.WithDB(ctx, db)
	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}

// NewRedisClient returns a client backed by an in-process redis, torn down
// with the test.
func NewRedisClient(t *testing.T) xredis.Client {
	s := miniredis.RunT(t)
	return xredis.NewClientWith(redis.NewClient(&redis.Options{Addr: s.Addr()}))
}
