package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msherazsadiq/Healthify/core"
)

func TestRange_SkipsGapDays(t *testing.T) {
	st := newFakeStore()
	for _, date := range []string{"2025-06-02", "2025-06-04", "2025-06-06"} {
		entry := core.AppendStep(nil, 1000, 1)
		require.NoError(t, st.PutDailyEntry(1, date, entry))
	}
	svc := NewHistoryService(st)

	summaries, err := svc.Range(1, "2025-06-01", "2025-06-07")
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	require.Equal(t, "2025-06-02", summaries[0].Date)
	require.Equal(t, "2025-06-06", summaries[2].Date)
}

func TestRange_InvertedRangeFails(t *testing.T) {
	svc := NewHistoryService(newFakeStore())

	_, err := svc.Range(1, "2025-06-07", "2025-06-01")
	require.ErrorIs(t, err, core.ErrInvalidRange)
}

func TestRange_OtherUsersDataInvisible(t *testing.T) {
	st := newFakeStore()
	entry := core.AppendStep(nil, 1000, 1)
	require.NoError(t, st.PutDailyEntry(2, "2025-06-03", entry))
	svc := NewHistoryService(st)

	summaries, err := svc.Range(1, "2025-06-01", "2025-06-07")
	require.NoError(t, err)
	require.Empty(t, summaries)
}
