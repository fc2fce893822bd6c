package core

import (
	"strconv"

	"github.com/msherazsadiq/Healthify/models"
)

// The Append functions are pure: they never modify their input. Each returns
// a copy of the day's record with the new entry added to the right list and
// everything else untouched. A nil record stands for "nothing stored yet for
// that date" and yields a fresh record holding only the new entry. Lists are
// append-only; no entry kind is ever removed here.

func AppendStep(entry *models.DailyEntry, steps int, timestampMs int64) models.DailyEntry {
	next := cloneEntry(entry)
	next.StepsIntake = append(next.StepsIntake, models.StepEntry{Steps: steps, Timestamp: timestampMs})
	return next
}

func AppendWater(entry *models.DailyEntry, cups int, clock string) models.DailyEntry {
	next := cloneEntry(entry)
	next.WaterIntake = append(next.WaterIntake, models.WaterEntry{Cups: cups, Time: clock})
	return next
}

func AppendSleep(entry *models.DailyEntry, bedTime, wakeTime string) models.DailyEntry {
	next := cloneEntry(entry)
	next.SleepEntries = append(next.SleepEntries, models.SleepEntry{GetInBedTime: bedTime, WakeUpTime: wakeTime})
	return next
}

func AppendMood(entry *models.DailyEntry, mood string, timestampMs int64) models.DailyEntry {
	next := cloneEntry(entry)
	next.MoodEntries = append(next.MoodEntries, models.MoodEntry{Mood: mood, Timestamp: timestampMs})
	return next
}

// SetWeight replaces the day's weight; unlike the entry lists, weight is
// last-write-wins. The engine accepts any value, positivity checks belong to
// the caller.
func SetWeight(entry *models.DailyEntry, weight float64) models.DailyEntry {
	next := cloneEntry(entry)
	next.Weight = strconv.FormatFloat(weight, 'f', -1, 64)
	return next
}

// cloneEntry copies the record and its lists so appends never alias the
// caller's slices.
func cloneEntry(entry *models.DailyEntry) models.DailyEntry {
	if entry == nil {
		return models.DailyEntry{}
	}
	next := *entry
	next.StepsIntake = append(models.StepEntryList(nil), entry.StepsIntake...)
	next.WaterIntake = append(models.WaterEntryList(nil), entry.WaterIntake...)
	next.SleepEntries = append(models.SleepEntryList(nil), entry.SleepEntries...)
	next.MoodEntries = append(models.MoodEntryList(nil), entry.MoodEntries...)
	return next
}
