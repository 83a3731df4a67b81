package moderation

import (
	"context"

	"github.com/stagepass/core-service/internal/domain"
)

func (s *Service) GetDemeritByID(ctx context.Context, id string) (*domain.DemeritRecord, error) {
	return s.demerits.GetByID(ctx, id)
}

// GetUserDemerits returns all of the user's records in creation order.
func (s *Service) GetUserDemerits(ctx context.Context, userID string) ([]*domain.DemeritRecord, error) {
	return s.demerits.ListByUser(ctx, userID)
}

// GetUserTotalPoints sums points over records whose appeal was not approved.
// This is the single aggregate the restriction policy consumes.
func (s *Service) GetUserTotalPoints(ctx context.Context, userID string) (int, error) {
	records, err := s.demerits.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, d := range records {
		if d.CountsTowardTotal() {
			total += d.Points
		}
	}
	return total, nil
}

// UserStatus bundles the ledger view the UI renders for one user.
type UserStatus struct {
	Records     []*domain.DemeritRecord
	TotalPoints int
	Evaluation  domain.Evaluation
}

// GetUserStatus evaluates restrictions on demand. With a calendarID the
// calendar's configured threshold gates the registration tier; without one
// the fixed platform tiers apply.
func (s *Service) GetUserStatus(ctx context.Context, userID, calendarID string) (*UserStatus, error) {
	records, err := s.demerits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, d := range records {
		if d.CountsTowardTotal() {
			total += d.Points
		}
	}

	var ev domain.Evaluation
	if calendarID != "" {
		cfg, err := s.settings.Get(ctx, calendarID)
		if err != nil {
			return nil, err
		}
		ev = domain.EvaluateRestrictionsForCalendar(total, cfg)
	} else {
		ev = domain.EvaluateRestrictions(total)
	}

	return &UserStatus{Records: records, TotalPoints: total, Evaluation: ev}, nil
}
