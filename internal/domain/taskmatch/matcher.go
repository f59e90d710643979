package taskmatch

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/citytrail/backend/internal/entity"
	"github.com/citytrail/backend/pkg/xcontext"
)

// Answer is the normalized submission payload. Single-answer question types
// use Value, the multiple question type uses Values.
type Answer struct {
	Value  string
	Values []string
}

// Match reports whether an answer satisfies a task. It never mutates
// anything and a data error in the stored task (such as a malformed regex
// pattern) degrades the comparison instead of failing the request.
func Match(ctx context.Context, task entity.Task, answer Answer) bool {
	if task.Type == entity.QuestionMultiple {
		return matchSet(task, answer.Values)
	}

	userAnswer := strings.TrimSpace(answer.Value)
	expected := strings.TrimSpace(task.Answer)

	switch task.MatchType {
	case entity.MatchContains:
		userAnswer, expected = fold(task, userAnswer), fold(task, expected)
		// Symmetric on purpose: extra words are tolerated on either side.
		return strings.Contains(userAnswer, expected) || strings.Contains(expected, userAnswer)

	case entity.MatchNumber:
		userNum, err1 := strconv.ParseFloat(userAnswer, 64)
		expectedNum, err2 := strconv.ParseFloat(expected, 64)
		if err1 != nil || err2 != nil {
			return false
		}

		diff := userNum - expectedNum
		if diff < 0 {
			diff = -diff
		}

		return diff <= task.NumberTolerance

	case entity.MatchRegex:
		pattern, err := regexp.Compile("(?i)" + expected)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot compile answer pattern of task %s: %v", task.ID, err)
			return fold(task, userAnswer) == fold(task, expected)
		}

		return pattern.MatchString(userAnswer)

	default:
		return fold(task, userAnswer) == fold(task, expected)
	}
}

func matchSet(task entity.Task, values []string) bool {
	if len(values) != len(task.Answers) {
		return false
	}

	remaining := make(map[string]int, len(task.Answers))
	for _, expected := range task.Answers {
		remaining[fold(task, strings.TrimSpace(expected))]++
	}

	for _, value := range values {
		key := fold(task, strings.TrimSpace(value))
		if remaining[key] == 0 {
			return false
		}

		remaining[key]--
	}

	return true
}

func fold(task entity.Task, s string) string {
	if task.CaseSensitive {
		return s
	}

	return strings.ToLower(s)
}
