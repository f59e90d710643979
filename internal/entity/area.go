package entity

type Area struct {
	Base

	ActivityID string   `gorm:"index"`
	Activity   Activity `gorm:"foreignKey:ActivityID"`

	Name        string
	Description string

	// Index is the 0-based position of the area inside its activity. The
	// area at index 0 is the entry stage and is always unlocked.
	Index int

	IsActive bool `gorm:"default:true"`
}
