package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cskyle2026/Diabetes/models"
)

const (
	progressDateKey = "progressDate"
	progressKey     = "dailyProgress"
)

// ProgressService owns persistence of the daily accumulator. Day rollover
// is lazy: every load compares the stored date stamp against the supplied
// day, so no scheduler is needed — the store is only touched on user
// interaction anyway.
type ProgressService struct {
	store KV
}

func NewProgressService(store KV) *ProgressService {
	return &ProgressService{store: store}
}

// Today is the ISO date stamp the store is keyed by.
func Today() string {
	return time.Now().Format("2006-01-02")
}

func (s *ProgressService) slotKeys(userID uint) (dateKey, progKey string) {
	return fmt.Sprintf("%s:%d", progressDateKey, userID), fmt.Sprintf("%s:%d", progressKey, userID)
}

// Load returns the persisted totals when they were saved on today's date
// and are structurally sound (both consumed and goals present). Anything
// else — a different day, a missing slot, a malformed payload, a store
// error — silently falls back to the defaults.
func (s *ProgressService) Load(userID uint, today string) models.DailyProgress {
	dateKey, progKey := s.slotKeys(userID)

	stored, ok, err := s.store.Get(dateKey)
	if err != nil || !ok || stored != today {
		return models.DefaultDailyProgress()
	}

	raw, ok, err := s.store.Get(progKey)
	if err != nil || !ok {
		return models.DefaultDailyProgress()
	}

	var decoded struct {
		Consumed *models.NutrientTotals `json:"consumed"`
		Goals    *models.NutrientTotals `json:"goals"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil || decoded.Consumed == nil || decoded.Goals == nil {
		return models.DefaultDailyProgress()
	}

	return models.DailyProgress{Consumed: *decoded.Consumed, Goals: *decoded.Goals}
}

// Save writes the totals and the date stamp unconditionally.
func (s *ProgressService) Save(userID uint, progress models.DailyProgress, today string) error {
	dateKey, progKey := s.slotKeys(userID)

	raw, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	if err := s.store.Set(progKey, string(raw)); err != nil {
		return err
	}
	return s.store.Set(dateKey, today)
}

// AddFood applies one confirmed food to today's totals and persists the
// result.
func (s *ProgressService) AddFood(userID uint, delta models.NutrientDelta, today string) (models.DailyProgress, error) {
	progress := s.Load(userID, today)
	progress.AddFood(delta)
	if err := s.Save(userID, progress, today); err != nil {
		return progress, err
	}
	return progress, nil
}
