package memory

import (
	"context"
	"sync"

	"github.com/stagepass/core-service/internal/domain"
)

type SettingsStore struct {
	mu         sync.RWMutex
	byCalendar map[string]domain.CalendarSettings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{byCalendar: map[string]domain.CalendarSettings{}}
}

func (s *SettingsStore) Upsert(ctx context.Context, cfg domain.CalendarSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byCalendar[cfg.CalendarID] = cfg
	return nil
}

// Get falls back to the platform defaults for unconfigured calendars.
func (s *SettingsStore) Get(ctx context.Context, calendarID string) (domain.CalendarSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cfg, ok := s.byCalendar[calendarID]; ok {
		return cfg, nil
	}
	return domain.DefaultCalendarSettings(calendarID), nil
}
