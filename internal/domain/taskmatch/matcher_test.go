package taskmatch

import (
	"testing"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/internal/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Match_exact(t *testing.T) {
	ctx := testutil.MockContext()
	task := entity.Task{Answer: "Eleven", MatchType: entity.MatchExact}

	require.True(t, Match(ctx, task, Answer{Value: "eleven"}))
	require.True(t, Match(ctx, task, Answer{Value: "  Eleven  "}))
	require.False(t, Match(ctx, task, Answer{Value: "twelve"}))

	task.CaseSensitive = true
	require.False(t, Match(ctx, task, Answer{Value: "eleven"}))
	require.True(t, Match(ctx, task, Answer{Value: "Eleven"}))
}

func Test_Match_contains(t *testing.T) {
	ctx := testutil.MockContext()
	task := entity.Task{Answer: "town hall", MatchType: entity.MatchContains}

	require.True(t, Match(ctx, task, Answer{Value: "the old TOWN HALL building"}))
	require.True(t, Match(ctx, task, Answer{Value: "town"}))
	require.False(t, Match(ctx, task, Answer{Value: "cathedral"}))
}

func Test_Match_number(t *testing.T) {
	ctx := testutil.MockContext()
	task := entity.Task{Answer: "41", MatchType: entity.MatchNumber, NumberTolerance: 2}

	require.True(t, Match(ctx, task, Answer{Value: "39"}))
	require.True(t, Match(ctx, task, Answer{Value: "43.0"}))
	require.False(t, Match(ctx, task, Answer{Value: "38.4"}))
	require.False(t, Match(ctx, task, Answer{Value: "not a number"}))

	task.NumberTolerance = 0
	require.True(t, Match(ctx, task, Answer{Value: "41"}))
	require.False(t, Match(ctx, task, Answer{Value: "41.1"}))
}

func Test_Match_regex(t *testing.T) {
	ctx := testutil.MockContext()
	task := entity.Task{Answer: "^(eleven|11)$", MatchType: entity.MatchRegex}

	require.True(t, Match(ctx, task, Answer{Value: "11"}))
	require.True(t, Match(ctx, task, Answer{Value: "ELEVEN"}))
	require.False(t, Match(ctx, task, Answer{Value: "twelve"}))
}

func Test_Match_regex_fallsBackToExactOnBadPattern(t *testing.T) {
	ctx := testutil.MockContext()
	task := entity.Task{Answer: "(unclosed", MatchType: entity.MatchRegex}

	require.True(t, Match(ctx, task, Answer{Value: "(unclosed"}))
	require.False(t, Match(ctx, task, Answer{Value: "anything"}))
}

func Test_Match_multiple(t *testing.T) {
	ctx := testutil.MockContext()
	task := entity.Task{Type: entity.QuestionMultiple, Answers: []string{"red", "white"}}

	require.True(t, Match(ctx, task, Answer{Values: []string{"white", "RED "}}))
	require.False(t, Match(ctx, task, Answer{Values: []string{"red"}}))
	require.False(t, Match(ctx, task, Answer{Values: []string{"red", "blue"}}))
	require.False(t, Match(ctx, task, Answer{Values: []string{"red", "white", "blue"}}))
	require.False(t, Match(ctx, task, Answer{Values: []string{"red", "red"}}))
}
