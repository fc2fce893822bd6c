package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClock_OK(t *testing.T) {
	m, err := ParseClock("00:00")
	require.NoError(t, err)
	require.Equal(t, 0, m)

	m, err = ParseClock("23:59")
	require.NoError(t, err)
	require.Equal(t, 23*60+59, m)

	m, err = ParseClock("08:05")
	require.NoError(t, err)
	require.Equal(t, 8*60+5, m)
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{"", "12", "24:00", "12:60", "-1:30", "ab:cd", "12:3x"} {
		_, err := ParseClock(in)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", in)
	}
}

func TestSleepDuration_SameDay(t *testing.T) {
	m, err := SleepDuration("22:30", "23:00")
	require.NoError(t, err)
	require.Equal(t, 30, m)
}

func TestSleepDuration_OvernightWrap(t *testing.T) {
	m, err := SleepDuration("23:00", "06:00")
	require.NoError(t, err)
	require.Equal(t, 420, m)
}

func TestSleepDuration_BadInput(t *testing.T) {
	_, err := SleepDuration("25:00", "06:00")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = SleepDuration("23:00", "nope")
	require.ErrorAs(t, err, &parseErr)
}
