package core

import (
	"time"
)

// WeightSample is one logged weight tagged with its "yyyy-mm-dd" date key.
type WeightSample struct {
	Weight float64
	Date   string
}

// MonthlyWeightPoint is one month of the weight trend chart.
type MonthlyWeightPoint struct {
	Weight float64 `json:"weight"`
	Month  string  `json:"month"` // full English month name
}

// LastSixMonths buckets weight samples by calendar month name and returns
// the maximum weight seen in each of the six months ending at now's month,
// oldest first. Always exactly six points; months without a sample carry
// weight 0. The maximum, not the average, is the representative so recent
// progress shows. Bucketing is by month name only, so a sample older than a
// year folds into the same-named recent month.
func LastSixMonths(samples []WeightSample, now time.Time) []MonthlyWeightPoint {
	maxByMonth := make(map[string]float64)
	seen := make(map[string]bool)
	for _, s := range samples {
		d, err := time.Parse(DateLayout, s.Date)
		if err != nil {
			continue
		}
		month := d.Month().String()
		if !seen[month] || s.Weight > maxByMonth[month] {
			maxByMonth[month] = s.Weight
			seen[month] = true
		}
	}

	current := int(now.Month()) - 1 // 0-based
	points := make([]MonthlyWeightPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		idx := ((current-i)%12 + 12) % 12
		month := time.Month(idx + 1).String()
		points = append(points, MonthlyWeightPoint{Weight: maxByMonth[month], Month: month})
	}
	return points
}
