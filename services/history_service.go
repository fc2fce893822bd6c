package services

import (
	"github.com/msherazsadiq/Healthify/core"
	"github.com/msherazsadiq/Healthify/models"
	"github.com/msherazsadiq/Healthify/store"
)

type HistoryService struct {
	store store.EntryStore
}

func NewHistoryService(st store.EntryStore) *HistoryService {
	return &HistoryService{store: st}
}

// Range returns one summary per day with data between start and end
// inclusive ("yyyy-mm-dd"), ascending. Days without a record are skipped.
func (s *HistoryService) Range(userID uint, start, end string) ([]core.DailySummary, error) {
	return core.SummarizeRange(start, end, func(date string) (*models.DailyEntry, error) {
		return s.store.GetDailyEntry(userID, date)
	})
}
