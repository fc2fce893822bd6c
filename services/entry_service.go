package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/models"
	"github.com/msherazsadiq/Healthify/store"
)

// EntryService appends wellness entries into the user's record for today.
// Each call is a read-merge-write cycle against the store; the cycle is not
// atomic across processes, so two devices logging into the same (user, day)
// at the same instant can lose one append. Deployments that care must
// serialize writes per user-day in front of the store.
type EntryService struct {
	store store.EntryStore
	clock Clock
	hub   *RealtimeHub
	dash  *DashboardService
}

// NewEntryService wires the logging path. hub may be nil when realtime push
// is not wanted (tests, batch imports).
func NewEntryService(st store.EntryStore, clock Clock, hub *RealtimeHub, dash *DashboardService) *EntryService {
	return &EntryService{store: st, clock: clock, hub: hub, dash: dash}
}

func (s *EntryService) LogSteps(userID uint, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive")
	}
	ts := s.clock.Now().UnixMilli()
	return s.log(userID, func(entry *models.DailyEntry) models.DailyEntry {
		return core.AppendStep(entry, steps, ts)
	})
}

func (s *EntryService) LogWater(userID uint, cups int) error {
	if cups <= 0 {
		return fmt.Errorf("cups must be positive")
	}
	clock := s.clock.Now().Format("15:04")
	return s.log(userID, func(entry *models.DailyEntry) models.DailyEntry {
		return core.AppendWater(entry, cups, clock)
	})
}

func (s *EntryService) LogSleep(userID uint, bedTime, wakeTime string) error {
	// Validate up front so a bad pair never reaches storage; stored entries
	// are only tolerated as zero-duration, not created that way.
	if _, err := core.SleepDuration(bedTime, wakeTime); err != nil {
		return err
	}
	return s.log(userID, func(entry *models.DailyEntry) models.DailyEntry {
		return core.AppendSleep(entry, bedTime, wakeTime)
	})
}

func (s *EntryService) LogMood(userID uint, mood string) error {
	if strings.TrimSpace(mood) == "" {
		return fmt.Errorf("mood must not be empty")
	}
	ts := s.clock.Now().UnixMilli()
	return s.log(userID, func(entry *models.DailyEntry) models.DailyEntry {
		return core.AppendMood(entry, mood, ts)
	})
}

func (s *EntryService) LogWeight(userID uint, weight float64) error {
	if weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	return s.log(userID, func(entry *models.DailyEntry) models.DailyEntry {
		return core.SetWeight(entry, weight)
	})
}

func (s *EntryService) log(userID uint, apply func(*models.DailyEntry) models.DailyEntry) error {
	date := s.clock.Today()

	current, err := s.store.GetDailyEntry(userID, date)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return err
	}

	next := apply(current)
	if err := s.store.PutDailyEntry(userID, date, next); err != nil {
		return err
	}

	s.pushDashboard(userID)
	return nil
}

func (s *EntryService) pushDashboard(userID uint) {
	if s.hub == nil || s.dash == nil {
		return
	}
	snapshot, err := s.dash.Snapshot(userID)
	if err != nil {
		log.Printf("realtime: snapshot for user %d: %v", userID, err)
		return
	}
	s.hub.PushDashboard(userID, snapshot)
}
