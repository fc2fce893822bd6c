package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msherazsadiq/Healthify/models"
)

func newDashboard(st *fakeStore) (*DashboardService, *EntryService) {
	goals := NewGoalService(st)
	dash := NewDashboardService(st, goals, testClock())
	entries := NewEntryService(st, testClock(), nil, dash)
	return dash, entries
}

func TestSnapshot_EmptyDay(t *testing.T) {
	dash, _ := newDashboard(newFakeStore())

	snap, err := dash.Snapshot(1)
	require.NoError(t, err)
	require.Equal(t, "2025-06-15", snap.Date)
	require.Zero(t, snap.Steps.CurrentSteps)
	require.Equal(t, models.DefaultStepGoal, snap.Steps.Goal)
	require.Equal(t, "00:00", snap.TotalSleep)
	require.Empty(t, snap.Mood)
	require.Zero(t, snap.Weight)
	require.Len(t, snap.WeightTrend, 6)
}

func TestSnapshot_ReflectsLoggedEntries(t *testing.T) {
	st := newFakeStore()
	dash, entries := newDashboard(st)

	require.NoError(t, entries.LogSteps(1, 1000))
	require.NoError(t, entries.LogSteps(1, 2000))
	require.NoError(t, entries.LogSteps(1, 3000))
	require.NoError(t, entries.LogWater(1, 16)) // 4000ml, clamps to 3000
	require.NoError(t, entries.LogSleep(1, "23:00", "06:00"))
	require.NoError(t, entries.LogMood(1, "Happy"))
	require.NoError(t, entries.LogWeight(1, 72))

	snap, err := dash.Snapshot(1)
	require.NoError(t, err)
	require.Equal(t, 6000, snap.Steps.CurrentSteps)
	require.Equal(t, 100, snap.Steps.Percentage)
	require.InDelta(t, 240.0, snap.Steps.CaloriesBurned, 0.0001)
	require.Equal(t, 3000, snap.Water.CurrentIntake)
	require.Equal(t, 100, snap.Water.Percentage)
	require.Equal(t, "07:00", snap.TotalSleep)
	require.Equal(t, "Happy", snap.Mood)
	require.Equal(t, 72.0, snap.Weight)

	// June is the last trend bucket and carries today's weight
	require.Equal(t, "June", snap.WeightTrend[5].Month)
	require.Equal(t, 72.0, snap.WeightTrend[5].Weight)
}

func TestSnapshot_UsesStoredGoals(t *testing.T) {
	st := newFakeStore()
	dash, entries := newDashboard(st)
	goalSvc := NewGoalService(st)

	require.NoError(t, goalSvc.UpdateStepGoal(1, 12000))
	require.NoError(t, entries.LogSteps(1, 3000))

	snap, err := dash.Snapshot(1)
	require.NoError(t, err)
	require.Equal(t, 12000, snap.Steps.Goal)
	require.Equal(t, 25, snap.Steps.Percentage)
}
