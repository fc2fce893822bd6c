package core

import (
	"errors"
	"time"

	"github.com/msherazsadiq/Healthify/models"
)

// DailySummary is one day's totals for the history view. Derived on demand,
// never persisted.
type DailySummary struct {
	Date            string   `json:"date"`
	TotalSteps      int      `json:"totalSteps"`
	TotalWaterCups  int      `json:"totalWaterCups"`
	TotalSleepHours float64  `json:"totalSleepHours"`
	MoodList        []string `json:"moodList"`
	Weight          float64  `json:"weight"`
}

// LookupFunc fetches the stored record for one date key. Implementations
// report a missing day either as (nil, nil) or as ErrNotFound.
type LookupFunc func(date string) (*models.DailyEntry, error)

// SummarizeRange walks every calendar date from startDate to endDate
// inclusive and builds one DailySummary per day that has a stored record.
// Days without a record are skipped, not zero-filled, so history charts stay
// dense for users with gaps. Returns ErrInvalidRange when startDate is after
// endDate and a ParseError when either date is not "yyyy-mm-dd"; store
// failures from the lookup propagate as-is.
func SummarizeRange(startDate, endDate string, lookup LookupFunc) ([]DailySummary, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, &ParseError{Input: startDate, Want: `"yyyy-mm-dd" date`}
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, &ParseError{Input: endDate, Want: `"yyyy-mm-dd" date`}
	}
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	var summaries []DailySummary
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		entry, err := lookup(date)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if entry == nil {
			continue
		}
		summaries = append(summaries, summarizeDay(date, entry))
	}
	return summaries, nil
}

func summarizeDay(date string, entry *models.DailyEntry) DailySummary {
	totalSteps := 0
	for _, e := range entry.StepsIntake {
		totalSteps += e.Steps
	}

	totalCups := 0
	for _, e := range entry.WaterIntake {
		totalCups += e.Cups
	}

	var sleepHours float64
	for _, e := range entry.SleepEntries {
		minutes, err := SleepDuration(e.GetInBedTime, e.WakeUpTime)
		if err != nil {
			continue
		}
		sleepHours += float64(minutes) / 60
	}

	moods := make([]string, 0, len(entry.MoodEntries))
	for _, e := range entry.MoodEntries {
		moods = append(moods, e.Mood)
	}

	weight, _ := WeightOfDay(entry)

	return DailySummary{
		Date:            date,
		TotalSteps:      totalSteps,
		TotalWaterCups:  totalCups,
		TotalSleepHours: sleepHours,
		MoodList:        moods,
		Weight:          weight,
	}
}
