package moderation

import (
	"context"
	"strings"

	"github.com/stagepass/core-service/internal/domain"
)

// SetDemeritSystemEnabled upserts the calendar's configuration. A zero
// threshold falls back to the platform default; negative values are
// rejected.
func (s *Service) SetDemeritSystemEnabled(ctx context.Context, calendarID string, enabled bool, pointsThreshold int) (domain.CalendarSettings, error) {
	calendarID = strings.TrimSpace(calendarID)
	if calendarID == "" {
		return domain.CalendarSettings{}, domain.ErrValidation("calendarId is required")
	}
	if pointsThreshold < 0 {
		return domain.CalendarSettings{}, domain.ErrValidation("pointsThreshold must be a positive integer")
	}
	if pointsThreshold == 0 {
		pointsThreshold = domain.DefaultPointsThreshold
	}

	cfg := domain.CalendarSettings{
		CalendarID:      calendarID,
		Enabled:         enabled,
		PointsThreshold: pointsThreshold,
	}
	if err := s.settings.Upsert(ctx, cfg); err != nil {
		return domain.CalendarSettings{}, err
	}
	return cfg, nil
}

func (s *Service) GetDemeritSettings(ctx context.Context, calendarID string) (domain.CalendarSettings, error) {
	return s.settings.Get(ctx, calendarID)
}
