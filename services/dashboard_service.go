package services

import (
	"errors"

	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/store"
)

// DashboardSnapshot is everything the dashboard screen shows for today,
// derived fresh from the stored record and goals on every call.
type DashboardSnapshot struct {
	Date        string                    `json:"date"`
	Steps       core.StepIntakeMetrics    `json:"steps"`
	Water       core.WaterIntakeMetrics   `json:"water"`
	TotalSleep  string                    `json:"totalSleep"` // "HH:mm"
	Mood        string                    `json:"mood"`
	Weight      float64                   `json:"weight"`
	WeightTrend []core.MonthlyWeightPoint `json:"weightTrend"`
}

type DashboardService struct {
	store store.EntryStore
	goals *GoalService
	clock Clock
}

func NewDashboardService(st store.EntryStore, goals *GoalService, clock Clock) *DashboardService {
	return &DashboardService{store: st, goals: goals, clock: clock}
}

// Snapshot computes today's dashboard for the user. No record yet today is
// not an error; the metrics come back zeroed.
func (s *DashboardService) Snapshot(userID uint) (*DashboardSnapshot, error) {
	date := s.clock.Today()

	entry, err := s.store.GetDailyEntry(userID, date)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	goals, err := s.goals.Effective(userID)
	if err != nil {
		return nil, err
	}

	samples, err := s.store.AllWeightSamples(userID)
	if err != nil {
		return nil, err
	}

	mood, _ := core.MoodOfDay(entry)
	weight, _ := core.WeightOfDay(entry)

	return &DashboardSnapshot{
		Date:        date,
		Steps:       core.StepMetrics(entry, goals),
		Water:       core.WaterMetrics(entry, goals),
		TotalSleep:  core.TotalSleepTime(entry),
		Mood:        mood,
		Weight:      weight,
		WeightTrend: core.LastSixMonths(samples, s.clock.Now()),
	}, nil
}
