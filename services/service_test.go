package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/models"
)

// fakeStore is an in-memory EntryStore for service tests.
type fakeStore struct {
	entries   map[entryKey]models.DailyEntry
	goals     map[uint]models.HealthGoals
	reminders map[uint]models.ReminderTime
	failWith  error // when set, every call fails with this error
}

type entryKey struct {
	userID uint
	date   string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries:   make(map[entryKey]models.DailyEntry),
		goals:     make(map[uint]models.HealthGoals),
		reminders: make(map[uint]models.ReminderTime),
	}
}

func (f *fakeStore) GetDailyEntry(userID uint, date string) (*models.DailyEntry, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	e, ok := f.entries[entryKey{userID, date}]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &e, nil
}

func (f *fakeStore) PutDailyEntry(userID uint, date string, entry models.DailyEntry) error {
	if f.failWith != nil {
		return f.failWith
	}
	entry.UserID = userID
	entry.Date = date
	f.entries[entryKey{userID, date}] = entry
	return nil
}

func (f *fakeStore) GetGoals(userID uint) (*models.HealthGoals, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	g, ok := f.goals[userID]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &g, nil
}

func (f *fakeStore) PutGoals(userID uint, goals models.HealthGoals) error {
	if f.failWith != nil {
		return f.failWith
	}
	goals.UserID = userID
	f.goals[userID] = goals
	return nil
}

func (f *fakeStore) GetReminder(userID uint) (*models.ReminderTime, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	r, ok := f.reminders[userID]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &r, nil
}

func (f *fakeStore) PutReminder(userID uint, reminder models.ReminderTime) error {
	if f.failWith != nil {
		return f.failWith
	}
	reminder.UserID = userID
	f.reminders[userID] = reminder
	return nil
}

func (f *fakeStore) AllWeightSamples(userID uint) ([]core.WeightSample, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var samples []core.WeightSample
	for k, e := range f.entries {
		if k.userID != userID || e.Weight == "" {
			continue
		}
		w, err := strconv.ParseFloat(e.Weight, 64)
		if err != nil {
			continue
		}
		samples = append(samples, core.WeightSample{Weight: w, Date: k.date})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Date < samples[j].Date })
	return samples, nil
}

// fixedClock pins today and now for deterministic service tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Today() string  { return c.now.Format(core.DateLayout) }
func (c fixedClock) Now() time.Time { return c.now }

func testClock() fixedClock {
	return fixedClock{now: time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)}
}
