package models

import (
	"gorm.io/gorm"
)

// Defaults used when a user has never saved goals.
const (
	DefaultStepGoal        = 6000
	DefaultWaterIntakeGoal = 3000 // ml
)

// HealthGoals holds a user's daily step and water targets. One row per user;
// the two fields can be updated independently.
type HealthGoals struct {
	gorm.Model
	UserID          uint `gorm:"uniqueIndex;not null" json:"-"`
	StepGoal        int  `json:"stepGoal"`
	WaterIntakeGoal int  `json:"waterIntakeGoal"` // ml
}

func DefaultHealthGoals(userID uint) HealthGoals {
	return HealthGoals{
		UserID:          userID,
		StepGoal:        DefaultStepGoal,
		WaterIntakeGoal: DefaultWaterIntakeGoal,
	}
}
