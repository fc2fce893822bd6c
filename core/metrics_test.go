package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msherazsadiq/Healthify/models"
)

func goals(step, water int) models.HealthGoals {
	return models.HealthGoals{StepGoal: step, WaterIntakeGoal: water}
}

func TestStepMetrics_SumAndDerived(t *testing.T) {
	e := AppendStep(nil, 1000, 1)
	e = AppendStep(&e, 2000, 2)
	e = AppendStep(&e, 3000, 3)

	m := StepMetrics(&e, goals(6000, 3000))
	require.Equal(t, 6000, m.CurrentSteps)
	require.Equal(t, 100, m.Percentage)
	require.InDelta(t, 4.573, m.DistanceKm, 0.001)
	require.InDelta(t, 240.0, m.CaloriesBurned, 0.0001)
}

func TestStepMetrics_PercentageClampsAndTruncates(t *testing.T) {
	e := AppendStep(nil, 1000, 1)

	m := StepMetrics(&e, goals(6000, 3000))
	require.Equal(t, 16, m.Percentage) // 16.67% truncates

	m = StepMetrics(&e, goals(500, 3000))
	require.Equal(t, 100, m.Percentage)
}

func TestStepMetrics_ZeroGoal(t *testing.T) {
	e := AppendStep(nil, 4000, 1)
	m := StepMetrics(&e, goals(0, 3000))
	require.Equal(t, 0, m.Percentage)
	require.Equal(t, 4000, m.CurrentSteps)
}

func TestStepMetrics_NilEntry(t *testing.T) {
	m := StepMetrics(nil, goals(6000, 3000))
	require.Equal(t, StepIntakeMetrics{Goal: 6000}, m)
}

func TestWaterMetrics_ClampedToGoal(t *testing.T) {
	// 16 cups * 250ml = 4000ml against a 3000ml goal
	e := AppendWater(nil, 10, "08:00")
	e = AppendWater(&e, 6, "12:00")

	m := WaterMetrics(&e, goals(6000, 3000))
	require.Equal(t, 3000, m.CurrentIntake) // never shown above the goal
	require.Equal(t, 100, m.Percentage)
}

func TestWaterMetrics_PartialIntake(t *testing.T) {
	e := AppendWater(nil, 4, "09:00") // 1000ml
	m := WaterMetrics(&e, goals(6000, 3000))
	require.Equal(t, 1000, m.CurrentIntake)
	require.Equal(t, 33, m.Percentage)
}

func TestTotalSleepTime_SumsAndPads(t *testing.T) {
	e := AppendSleep(nil, "23:00", "06:00") // 7h
	e = AppendSleep(&e, "13:30", "14:35")   // 1h05m

	require.Equal(t, 485, TotalSleepMinutes(&e))
	require.Equal(t, "08:05", TotalSleepTime(&e))
}

func TestTotalSleepTime_BadEntryContributesZero(t *testing.T) {
	e := AppendSleep(nil, "23:00", "06:00")
	e = AppendSleep(&e, "junk", "06:00")

	require.Equal(t, 420, TotalSleepMinutes(&e))
	require.Equal(t, "07:00", TotalSleepTime(&e))
}

func TestTotalSleepTime_Empty(t *testing.T) {
	require.Equal(t, "00:00", TotalSleepTime(nil))
}

func TestMoodOfDay_LatestTimestampWins(t *testing.T) {
	e := AppendMood(nil, "Sad", 100)
	e = AppendMood(&e, "Happy", 300)
	e = AppendMood(&e, "Tired", 200)

	mood, ok := MoodOfDay(&e)
	require.True(t, ok)
	require.Equal(t, "Happy", mood)
}

func TestMoodOfDay_TieGoesToLaterEntry(t *testing.T) {
	e := AppendMood(nil, "Calm", 500)
	e = AppendMood(&e, "Energetic", 500)

	mood, ok := MoodOfDay(&e)
	require.True(t, ok)
	require.Equal(t, "Energetic", mood)
}

func TestMoodOfDay_Absent(t *testing.T) {
	_, ok := MoodOfDay(nil)
	require.False(t, ok)

	e := AppendStep(nil, 100, 1)
	_, ok = MoodOfDay(&e)
	require.False(t, ok)
}

func TestWeightOfDay(t *testing.T) {
	e := SetWeight(nil, 71.5)
	w, ok := WeightOfDay(&e)
	require.True(t, ok)
	require.Equal(t, 71.5, w)

	_, ok = WeightOfDay(nil)
	require.False(t, ok)

	bad := models.DailyEntry{Weight: "heavy"}
	w, ok = WeightOfDay(&bad)
	require.False(t, ok)
	require.Zero(t, w)
}

func TestMetrics_Idempotent(t *testing.T) {
	e := AppendStep(nil, 1234, 1)
	e = AppendWater(&e, 3, "08:00")
	e = AppendSleep(&e, "22:15", "05:45")
	g := goals(6000, 3000)

	require.Equal(t, StepMetrics(&e, g), StepMetrics(&e, g))
	require.Equal(t, WaterMetrics(&e, g), WaterMetrics(&e, g))
	require.Equal(t, TotalSleepTime(&e), TotalSleepTime(&e))
}
