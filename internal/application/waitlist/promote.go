package waitlist

import (
	"context"

	"github.com/stagepass/core-service/internal/domain"
	"github.com/stagepass/core-service/internal/metrics"
)

// PromoteNext removes the head of the queue and emits a promotion
// notification so downstream channels can offer the freed spot. Returns nil
// when the waitlist is empty.
func (s *Service) PromoteNext(ctx context.Context, eventID string) (*domain.WaitlistEntry, error) {
	e, err := s.repo.PopNext(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}

	metrics.RecordWaitlistPromotion()
	if s.audit != nil {
		s.audit.WaitlistPromoted(ctx, e.EventID, e.UserID)
	}
	_ = s.pub.Publish(ctx, "waitlist.promoted", map[string]any{
		"event_id": e.EventID,
		"user_id":  e.UserID,
		"email":    e.Email,
		"name":     e.Name,
	})

	e.Notified = true
	return e, nil
}

// MarkNotified flags an entry after a spot-available notification went out,
// without moving it off the list.
func (s *Service) MarkNotified(ctx context.Context, eventID, userID string) error {
	_, err := s.repo.MarkNotified(ctx, eventID, userID)
	return err
}
