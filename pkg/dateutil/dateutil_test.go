package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_BeginningOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	moment := time.Date(2024, 3, 15, 23, 45, 12, 0, loc)

	begin := BeginningOfDay(moment)
	require.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), begin)

	next := NextDay(moment)
	require.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, loc), next)
	require.Equal(t, 24*time.Hour, next.Sub(begin))
}
