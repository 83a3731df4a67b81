package waitlist

import "context"

// Leave removes the user's entry. Absent event or user is a silent no-op:
// that is expected steady-state traffic, not an error.
func (s *Service) Leave(ctx context.Context, eventID, userID string) error {
	_, err := s.repo.Remove(ctx, eventID, userID)
	return err
}
