package core

import (
	"fmt"
	"strconv"

	"github.com/msherazsadiq/Healthify/models"
)

const (
	stepsPerKm      = 1312.0 // average stride, steps per kilometre
	caloriesPerStep = 0.04
	mlPerCup        = 250
)

// StepIntakeMetrics is the dashboard view of a day's steps. Recomputed on
// every read, never stored.
type StepIntakeMetrics struct {
	CurrentSteps   int     `json:"currentSteps"`
	Goal           int     `json:"goal"`
	Percentage     int     `json:"percentage"` // clamped to [0,100]
	DistanceKm     float64 `json:"distanceKm"`
	CaloriesBurned float64 `json:"caloriesBurned"`
}

// WaterIntakeMetrics is the dashboard view of a day's water intake, in ml.
type WaterIntakeMetrics struct {
	CurrentIntake int `json:"currentIntake"` // clamped to the goal
	Goal          int `json:"goal"`
	Percentage    int `json:"percentage"` // clamped to [0,100]
}

// StepMetrics derives the step dashboard numbers from a day's record and the
// user's goals. A nil entry counts as an empty day.
func StepMetrics(entry *models.DailyEntry, goals models.HealthGoals) StepIntakeMetrics {
	currentSteps := 0
	if entry != nil {
		for _, e := range entry.StepsIntake {
			currentSteps += e.Steps
		}
	}

	percentage := 0
	if goals.StepGoal > 0 {
		percentage = currentSteps * 100 / goals.StepGoal
		if percentage > 100 {
			percentage = 100
		}
	}

	return StepIntakeMetrics{
		CurrentSteps:   currentSteps,
		Goal:           goals.StepGoal,
		Percentage:     percentage,
		DistanceKm:     float64(currentSteps) / stepsPerKm,
		CaloriesBurned: float64(currentSteps) * caloriesPerStep,
	}
}

// WaterMetrics derives the water dashboard numbers. The reported intake is
// clamped to the goal so the display never exceeds 100% even when the raw
// sum does.
func WaterMetrics(entry *models.DailyEntry, goals models.HealthGoals) WaterIntakeMetrics {
	currentMl := 0
	if entry != nil {
		for _, e := range entry.WaterIntake {
			currentMl += e.Cups * mlPerCup
		}
	}

	goal := goals.WaterIntakeGoal
	percentage := 0
	adjusted := currentMl
	if goal > 0 {
		p := float64(currentMl) / float64(goal) * 100
		if p > 100 {
			p = 100
		}
		percentage = int(p)
		if adjusted > goal {
			adjusted = goal
		}
	} else {
		adjusted = 0
	}

	return WaterIntakeMetrics{CurrentIntake: adjusted, Goal: goal, Percentage: percentage}
}

// TotalSleepMinutes sums the durations of all sleep entries for the day.
// An entry with an unparseable time contributes zero minutes; one bad
// record never blanks the day.
func TotalSleepMinutes(entry *models.DailyEntry) int {
	if entry == nil {
		return 0
	}
	total := 0
	for _, e := range entry.SleepEntries {
		minutes, err := SleepDuration(e.GetInBedTime, e.WakeUpTime)
		if err != nil {
			continue
		}
		total += minutes
	}
	return total
}

// TotalSleepTime formats the day's total sleep as zero-padded "HH:mm".
func TotalSleepTime(entry *models.DailyEntry) string {
	total := TotalSleepMinutes(entry)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// MoodOfDay returns the most recently logged mood, false when no mood was
// logged. Equal timestamps resolve to the later entry in the list.
func MoodOfDay(entry *models.DailyEntry) (string, bool) {
	if entry == nil || len(entry.MoodEntries) == 0 {
		return "", false
	}
	latest := entry.MoodEntries[0]
	for _, e := range entry.MoodEntries[1:] {
		if e.Timestamp >= latest.Timestamp {
			latest = e
		}
	}
	return latest.Mood, true
}

// WeightOfDay parses the day's weight field, false when unset or malformed.
func WeightOfDay(entry *models.DailyEntry) (float64, bool) {
	if entry == nil || entry.Weight == "" {
		return 0, false
	}
	w, err := strconv.ParseFloat(entry.Weight, 64)
	if err != nil {
		return 0, false
	}
	return w, true
}
