package entity

import "github.com/citytrail/backend/pkg/enum"

type QuestionType string

var (
	QuestionText     = enum.New(QuestionType("text"))
	QuestionNumber   = enum.New(QuestionType("number"))
	QuestionChoice   = enum.New(QuestionType("choice"))
	QuestionMultiple = enum.New(QuestionType("multiple"))
)

type MatchType string

var (
	MatchExact    = enum.New(MatchType("exact"))
	MatchContains = enum.New(MatchType("contains"))
	MatchRegex    = enum.New(MatchType("regex"))
	MatchNumber   = enum.New(MatchType("number"))
)

type Task struct {
	Base

	ActivityID string   `gorm:"index"`
	Activity   Activity `gorm:"foreignKey:ActivityID"`

	AreaID string `gorm:"index"`
	Area   Area   `gorm:"foreignKey:AreaID"`

	Index    int
	Title    string
	Question string
	Type     QuestionType

	Options Array[string]

	// Answer holds the expected answer of single-answer questions. Answers
	// holds the expected set of the multiple question type.
	Answer  string
	Answers Array[string]

	MatchType       MatchType
	CaseSensitive   bool
	NumberTolerance float64

	Hint        string
	Points      uint64
	MaxAttempts int
	IsActive    bool `gorm:"default:true"`
}
