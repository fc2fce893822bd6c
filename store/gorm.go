package store

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/models"
)

// GormStore is the Postgres-backed EntryStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetDailyEntry(userID uint, date string) (*models.DailyEntry, error) {
	var entry models.DailyEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, &core.StoreError{Op: "get daily entry", Err: err}
	}
	return &entry, nil
}

func (s *GormStore) PutDailyEntry(userID uint, date string, entry models.DailyEntry) error {
	entry.Model = gorm.Model{} // insert fresh, let the conflict target find the row
	entry.UserID = userID
	entry.Date = date
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"steps_intake", "water_intake", "sleep_entries", "mood_entries", "weight", "updated_at",
		}),
	}).Create(&entry).Error
	if err != nil {
		return &core.StoreError{Op: "put daily entry", Err: err}
	}
	return nil
}

func (s *GormStore) GetGoals(userID uint) (*models.HealthGoals, error) {
	var goals models.HealthGoals
	err := s.db.Where("user_id = ?", userID).First(&goals).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, &core.StoreError{Op: "get goals", Err: err}
	}
	return &goals, nil
}

func (s *GormStore) PutGoals(userID uint, goals models.HealthGoals) error {
	goals.Model = gorm.Model{}
	goals.UserID = userID
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"step_goal", "water_intake_goal", "updated_at"}),
	}).Create(&goals).Error
	if err != nil {
		return &core.StoreError{Op: "put goals", Err: err}
	}
	return nil
}

func (s *GormStore) GetReminder(userID uint) (*models.ReminderTime, error) {
	var reminder models.ReminderTime
	err := s.db.Where("user_id = ?", userID).First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, &core.StoreError{Op: "get reminder", Err: err}
	}
	return &reminder, nil
}

func (s *GormStore) PutReminder(userID uint, reminder models.ReminderTime) error {
	reminder.Model = gorm.Model{}
	reminder.UserID = userID
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"hour", "minute", "am_pm", "updated_at"}),
	}).Create(&reminder).Error
	if err != nil {
		return &core.StoreError{Op: "put reminder", Err: err}
	}
	return nil
}

func (s *GormStore) AllWeightSamples(userID uint) ([]core.WeightSample, error) {
	var rows []models.DailyEntry
	err := s.db.
		Select("date", "weight").
		Where("user_id = ? AND weight <> ''", userID).
		Order("date asc").
		Find(&rows).Error
	if err != nil {
		return nil, &core.StoreError{Op: "list weights", Err: err}
	}

	samples := make([]core.WeightSample, 0, len(rows))
	for _, row := range rows {
		w, err := strconv.ParseFloat(row.Weight, 64)
		if err != nil {
			continue // a malformed weight never blocks the rest of the series
		}
		samples = append(samples, core.WeightSample{Weight: w, Date: row.Date})
	}
	return samples, nil
}
