package promo

import (
	"context"

	"github.com/stagepass/core-service/internal/metrics"
)

// ApplyCode re-validates (amount-independent) and increments the usage
// counter in one store operation. The caller is responsible for calling it
// exactly once per completed transaction.
func (s *Service) ApplyCode(ctx context.Context, code, eventID, calendarID string) (bool, string, error) {
	d, err := s.repo.Find(ctx, code, eventID, calendarID)
	if err != nil {
		return false, "", err
	}
	if d == nil {
		metrics.RecordDiscountApplied("rejected")
		return false, "discount code not found for this event", nil
	}

	ok, msg, err := s.repo.Use(ctx, d.ID, s.clock.Now())
	if err != nil {
		return false, "", err
	}
	if !ok {
		metrics.RecordDiscountApplied("rejected")
		return false, msg, nil
	}

	metrics.RecordDiscountApplied("ok")
	if s.audit != nil {
		s.audit.DiscountApplied(ctx, code, eventID)
	}
	return true, "", nil
}
