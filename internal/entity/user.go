package entity

type User struct {
	Base
	Name string `gorm:"unique"`
	Role string `gorm:"default:USER"`

	Points uint64
	Level  int `gorm:"default:1"`

	TotalTaskCount   int
	CorrectTaskCount int
	TotalDrawCount   int
}

const (
	AdminRole = "ADMIN"
	UserRole  = "USER"
)

// levelThresholds is a game design constant shared with the mobile clients.
var levelThresholds = []uint64{0, 100, 200, 500, 1000, 2000, 4000, 6000, 8000, 10000}

// LevelOf maps cumulative points to a level in [1, 10].
func LevelOf(points uint64) int {
	level := 1
	for i, t := range levelThresholds {
		if points >= t {
			level = i + 1
		}
	}

	return level
}

// LevelThreshold returns the minimum points needed for a level.
func LevelThreshold(level int) uint64 {
	return levelThresholds[level-1]
}
