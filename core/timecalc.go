package core

import (
	"strconv"
	"strings"
)

// DateLayout is the document key format for daily entries.
const DateLayout = "2006-01-02"

const minutesPerDay = 24 * 60

// ParseClock converts a "HH:mm" string (hour 0-23, minute 0-59) into
// minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, &ParseError{Input: s, Want: `"HH:mm" clock time`}
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, &ParseError{Input: s, Want: `"HH:mm" clock time`}
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, &ParseError{Input: s, Want: `"HH:mm" clock time`}
	}
	return hour*60 + minute, nil
}

// SleepDuration returns the elapsed minutes between a bed time and a wake
// time, both "HH:mm". A wake time earlier than the bed time means the sleep
// crossed midnight, so a full day is added. Aggregating callers should count
// a ParseError as zero minutes rather than aborting the whole day.
func SleepDuration(bedTime, wakeTime string) (int, error) {
	bed, err := ParseClock(bedTime)
	if err != nil {
		return 0, err
	}
	wake, err := ParseClock(wakeTime)
	if err != nil {
		return 0, err
	}
	diff := wake - bed
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff, nil
}
