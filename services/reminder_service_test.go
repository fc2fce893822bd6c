package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msherazsadiq/Healthify/core"
)

func TestReminder_RoundTripAndValidation(t *testing.T) {
	svc := NewReminderService(newFakeStore())

	_, err := svc.Get(1)
	require.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, svc.Set(1, 8, 30, "PM"))

	reminder, err := svc.Get(1)
	require.NoError(t, err)
	require.Equal(t, 8, reminder.Hour)
	require.Equal(t, 30, reminder.Minute)
	require.Equal(t, "PM", reminder.AmPm)

	require.Error(t, svc.Set(1, 13, 0, "AM"))
	require.Error(t, svc.Set(1, 8, 60, "AM"))
	require.Error(t, svc.Set(1, 8, 30, "am"))
}
