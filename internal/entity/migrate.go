package entity

import (
	"context"

	"github.com/citytrail/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Activity{},
		&Area{},
		&Task{},
		&TaskRecord{},
		&Lottery{},
		&LotteryRecord{},
		&Participant{},
	)
}
