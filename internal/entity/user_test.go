package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LevelOf(t *testing.T) {
	require.Equal(t, 1, LevelOf(0))
	require.Equal(t, 1, LevelOf(99))
	require.Equal(t, 2, LevelOf(100))
	require.Equal(t, 3, LevelOf(200))
	require.Equal(t, 3, LevelOf(499))
	require.Equal(t, 4, LevelOf(500))
	require.Equal(t, 10, LevelOf(10000))
	require.Equal(t, 10, LevelOf(1000000))
}

func Test_LevelThreshold(t *testing.T) {
	require.Equal(t, uint64(0), LevelThreshold(1))
	require.Equal(t, uint64(100), LevelThreshold(2))
	require.Equal(t, uint64(10000), LevelThreshold(10))
}
