package promo

import (
	"context"
	"time"

	"github.com/stagepass/core-service/internal/domain"
)

type CreateCmd struct {
	Code       string
	Type       domain.DiscountType
	Value      float64
	EventID    string
	CalendarID string
	MaxUses    int
	ValidFrom  *time.Time
	ValidUntil *time.Time
}

// CreateCode registers a new discount code in its scope. Uniqueness is per
// scope, so the same code string may exist for different events.
func (s *Service) CreateCode(ctx context.Context, cmd CreateCmd) (*domain.DiscountCode, error) {
	d, err := domain.NewDiscountCode(cmd.Code, cmd.Type, cmd.Value, cmd.EventID, cmd.CalendarID, cmd.MaxUses, cmd.ValidFrom, cmd.ValidUntil, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListCodes returns the codes scoped to one event or calendar.
func (s *Service) ListCodes(ctx context.Context, eventID, calendarID string) ([]*domain.DiscountCode, error) {
	if eventID == "" && calendarID == "" {
		return nil, domain.ErrValidation("eventId or calendarId is required")
	}
	return s.repo.ListByScope(ctx, eventID, calendarID)
}
