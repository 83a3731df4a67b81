package moderation

import (
	"context"
	"time"

	"github.com/stagepass/core-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type DemeritRepo interface {
	Add(ctx context.Context, d *domain.DemeritRecord) error
	GetByID(ctx context.Context, id string) (*domain.DemeritRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.DemeritRecord, error)
	List(ctx context.Context, calendarID string) ([]*domain.DemeritRecord, error)
	SetAppealStatus(ctx context.Context, id string, status domain.AppealStatus) error
}

type AppealRepo interface {
	Add(ctx context.Context, a *domain.Appeal) error
	GetByID(ctx context.Context, id string) (*domain.Appeal, error)
	Update(ctx context.Context, a *domain.Appeal) error
	HasPendingForDemerit(ctx context.Context, demeritID string) (bool, error)
	ListPending(ctx context.Context) ([]*domain.Appeal, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Appeal, error)
}

type SettingsRepo interface {
	Upsert(ctx context.Context, cfg domain.CalendarSettings) error
	Get(ctx context.Context, calendarID string) (domain.CalendarSettings, error)
}

type NotificationPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
