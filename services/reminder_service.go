package services

import (
	"fmt"

	"github.com/msherazsadiq/Healthify/models"
	"github.com/msherazsadiq/Healthify/store"
)

type ReminderService struct {
	store store.EntryStore
}

func NewReminderService(st store.EntryStore) *ReminderService {
	return &ReminderService{store: st}
}

// Get returns the user's saved reminder time; core.ErrNotFound when none
// was ever saved (the client falls back to its own default).
func (s *ReminderService) Get(userID uint) (*models.ReminderTime, error) {
	return s.store.GetReminder(userID)
}

func (s *ReminderService) Set(userID uint, hour, minute int, amPm string) error {
	if hour < 0 || hour > 12 {
		return fmt.Errorf("hour must be between 0 and 12")
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("minute must be between 0 and 59")
	}
	if amPm != "AM" && amPm != "PM" {
		return fmt.Errorf(`amPm must be "AM" or "PM"`)
	}
	return s.store.PutReminder(userID, models.ReminderTime{
		UserID: userID,
		Hour:   hour,
		Minute: minute,
		AmPm:   amPm,
	})
}
