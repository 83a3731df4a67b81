package waitlist

import (
	"context"
	"time"

	"github.com/stagepass/core-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type WaitlistRepo interface {
	Add(ctx context.Context, e *domain.WaitlistEntry) (bool, error)
	Remove(ctx context.Context, eventID, userID string) (bool, error)
	List(ctx context.Context, eventID string) ([]domain.WaitlistPosition, error)
	Position(ctx context.Context, eventID, userID string) (int, bool, error)
	Next(ctx context.Context, eventID string) (*domain.WaitlistEntry, error)
	PopNext(ctx context.Context, eventID string) (*domain.WaitlistEntry, error)
	MarkNotified(ctx context.Context, eventID, userID string) (bool, error)
}

type NotificationPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
