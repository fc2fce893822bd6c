package store

import (
	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/models"
)

// EntryStore is the persistence collaborator behind the tracking engine.
// Every method takes the owning user explicitly. Implementations report a
// missing row as core.ErrNotFound and wrap any backend failure in a
// core.StoreError; they never return partial or loosely decoded data.
type EntryStore interface {
	// GetDailyEntry returns the record stored under (userID, date),
	// date in "yyyy-mm-dd" form.
	GetDailyEntry(userID uint, date string) (*models.DailyEntry, error)
	// PutDailyEntry writes the full record for (userID, date), creating
	// the row on first write for that date.
	PutDailyEntry(userID uint, date string, entry models.DailyEntry) error

	GetGoals(userID uint) (*models.HealthGoals, error)
	PutGoals(userID uint, goals models.HealthGoals) error

	GetReminder(userID uint) (*models.ReminderTime, error)
	PutReminder(userID uint, reminder models.ReminderTime) error

	// AllWeightSamples returns every day that has a parseable weight,
	// ordered by ascending date.
	AllWeightSamples(userID uint) ([]core.WeightSample, error)
}
