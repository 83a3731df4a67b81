package moderation

import (
	"context"

	"github.com/stagepass/core-service/internal/domain"
	"github.com/stagepass/core-service/internal/metrics"
)

type AddDemeritCmd struct {
	UserID      string
	Reason      string
	Points      int
	EventID     string
	CalendarID  string
	Description string
	CreatedBy   string
}

// AddDemerit appends a new ledger entry. Records are append-only: the point
// value and reason never change afterwards.
func (s *Service) AddDemerit(ctx context.Context, cmd AddDemeritCmd) (*domain.DemeritRecord, error) {
	now := s.clock.Now()
	d, err := domain.NewDemerit(cmd.UserID, cmd.Reason, cmd.Points, cmd.EventID, cmd.CalendarID, cmd.Description, cmd.CreatedBy, now)
	if err != nil {
		return nil, err
	}
	if err := s.demerits.Add(ctx, d); err != nil {
		return nil, err
	}

	metrics.RecordDemeritIssued(string(d.Reason))
	if s.audit != nil {
		s.audit.DemeritIssued(ctx, d.ID, d.UserID, string(d.Reason), d.Points, d.CreatedBy)
	}
	_ = s.pub.Publish(ctx, "demerit.issued", map[string]any{
		"demerit_id": d.ID,
		"user_id":    d.UserID,
		"reason":     d.Reason,
		"points":     d.Points,
	})

	s.checkTierCrossing(ctx, d.UserID, d.Points)
	return d, nil
}

// checkTierCrossing fires audit/notification hooks for restrictions that
// became active with this addition. Best effort: the ledger write already
// succeeded and is not rolled back on publish failures.
func (s *Service) checkTierCrossing(ctx context.Context, userID string, addedPoints int) {
	total, err := s.GetUserTotalPoints(ctx, userID)
	if err != nil {
		return
	}

	after := domain.EvaluateRestrictions(total)
	before := domain.EvaluateRestrictions(total - addedPoints)
	for _, r := range after.Restrictions {
		if before.Has(r) {
			continue
		}
		if s.audit != nil {
			s.audit.RestrictionTriggered(ctx, userID, total, string(r))
		}
		_ = s.pub.Publish(ctx, "restriction.triggered", map[string]any{
			"user_id":      userID,
			"total_points": total,
			"restriction":  r,
		})
	}
}
