package models

import (
	"gorm.io/gorm"
)

// ReminderTime is the user's daily logging reminder, stored as a 12-hour
// clock. Pure configuration; scheduling and delivery happen client-side.
type ReminderTime struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex;not null" json:"-"`
	Hour   int    `json:"hour"`   // 0 to 12
	Minute int    `json:"minute"` // 0 to 59
	AmPm   string `gorm:"size:2" json:"amPm"` // "AM" | "PM"
}
