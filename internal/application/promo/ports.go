package promo

import (
	"context"
	"time"

	"github.com/stagepass/core-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type DiscountRepo interface {
	Create(ctx context.Context, d *domain.DiscountCode) error
	Find(ctx context.Context, code, eventID, calendarID string) (*domain.DiscountCode, error)
	ListByScope(ctx context.Context, eventID, calendarID string) ([]*domain.DiscountCode, error)
	Use(ctx context.Context, id string, now time.Time) (bool, string, error)
}
