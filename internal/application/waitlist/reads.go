package waitlist

import (
	"context"

	"github.com/stagepass/core-service/internal/domain"
)

// List returns the event's waitlist in joinedAt order with derived
// positions. The slice is fresh on every call.
func (s *Service) List(ctx context.Context, eventID string) ([]domain.WaitlistPosition, error) {
	return s.repo.List(ctx, eventID)
}

// Position returns the user's 1-based rank, or 0/false when absent.
func (s *Service) Position(ctx context.Context, eventID, userID string) (int, bool, error) {
	return s.repo.Position(ctx, eventID, userID)
}

func (s *Service) IsOnWaitlist(ctx context.Context, eventID, userID string) (bool, error) {
	_, ok, err := s.repo.Position(ctx, eventID, userID)
	return ok, err
}

// Next peeks at position 1 without removing the entry. Promotion is a
// separate explicit call.
func (s *Service) Next(ctx context.Context, eventID string) (*domain.WaitlistEntry, error) {
	return s.repo.Next(ctx, eventID)
}
