package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// DailyEntry holds everything a user logged on one calendar day. One row per
// (user, date); the date doubles as the document key ("yyyy-mm-dd") and the
// entry lists are stored as JSONB so the row mirrors the mobile client's
// document shape field for field.
type DailyEntry struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:idx_user_date;not null" json:"-"`
	Date   string `gorm:"uniqueIndex:idx_user_date;size:10;not null" json:"date"`

	StepsIntake  StepEntryList  `gorm:"type:jsonb" json:"stepsIntake"`
	WaterIntake  WaterEntryList `gorm:"type:jsonb" json:"waterIntake"`
	SleepEntries SleepEntryList `gorm:"type:jsonb" json:"sleepEntries"`
	MoodEntries  MoodEntryList  `gorm:"type:jsonb" json:"moodEntries"`

	// Decimal-as-string, "" means no weight logged. Last write wins.
	Weight string `gorm:"size:16" json:"weight"`
}

type StepEntry struct {
	Steps     int   `json:"steps"`
	Timestamp int64 `json:"timestamp"` // unix millis
}

type WaterEntry struct {
	Cups int    `json:"cups"`
	Time string `json:"time"` // "HH:mm"
}

type SleepEntry struct {
	GetInBedTime string `json:"getInBedTime"` // "HH:mm"
	WakeUpTime   string `json:"wakeUpTime"`   // "HH:mm"
}

type MoodEntry struct {
	Mood      string `json:"mood"`
	Timestamp int64  `json:"timestamp"`
}

type (
	StepEntryList  []StepEntry
	WaterEntryList []WaterEntry
	SleepEntryList []SleepEntry
	MoodEntryList  []MoodEntry
)

func (l StepEntryList) Value() (driver.Value, error)  { return jsonValue(l) }
func (l *StepEntryList) Scan(src any) error           { return jsonScan(src, l) }
func (l WaterEntryList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *WaterEntryList) Scan(src any) error          { return jsonScan(src, l) }
func (l SleepEntryList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *SleepEntryList) Scan(src any) error          { return jsonScan(src, l) }
func (l MoodEntryList) Value() (driver.Value, error)  { return jsonValue(l) }
func (l *MoodEntryList) Scan(src any) error           { return jsonScan(src, l) }

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func jsonScan(src, dst any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
