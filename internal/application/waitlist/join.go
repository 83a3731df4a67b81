package waitlist

import (
	"context"

	"github.com/stagepass/core-service/internal/domain"
	"github.com/stagepass/core-service/internal/metrics"
)

type JoinCmd struct {
	EventID string
	UserID  string
	Email   string
	Name    string
}

// Join adds the user to the event's waitlist and returns their 1-based
// position. Idempotent: if the user or email is already waitlisted the
// existing position is returned and nothing changes.
func (s *Service) Join(ctx context.Context, cmd JoinCmd) (int, error) {
	e, err := domain.NewWaitlistEntry(cmd.EventID, cmd.UserID, cmd.Email, cmd.Name, s.clock.Now())
	if err != nil {
		return 0, err
	}

	added, err := s.repo.Add(ctx, e)
	if err != nil {
		return 0, err
	}

	pos, ok, err := s.repo.Position(ctx, e.EventID, e.UserID)
	if err != nil {
		return 0, err
	}
	if !ok {
		// duplicate email under a different userId: report the rank of the
		// entry that owns the email
		entries, err := s.repo.List(ctx, e.EventID)
		if err != nil {
			return 0, err
		}
		for _, p := range entries {
			if p.Email == e.Email {
				return p.Position, nil
			}
		}
		return len(entries), nil
	}

	if added {
		metrics.RecordWaitlistJoin()
		if s.audit != nil {
			s.audit.WaitlistJoined(ctx, e.EventID, e.UserID, pos)
		}
	}
	return pos, nil
}
