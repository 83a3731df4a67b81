package memory

import (
	"context"
	"sync"

	"github.com/stagepass/core-service/internal/domain"
)

type AppealStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Appeal
	ordered []string // submission order
}

func NewAppealStore() *AppealStore {
	return &AppealStore{byID: map[string]*domain.Appeal{}}
}

func (s *AppealStore) Add(ctx context.Context, a *domain.Appeal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *a
	s.byID[a.ID] = &cp
	s.ordered = append(s.ordered, a.ID)
	return nil
}

func (s *AppealStore) GetByID(ctx context.Context, id string) (*domain.Appeal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("appeal not found")
	}
	cp := *a
	return &cp, nil
}

// Update replaces a stored appeal after a review transition.
func (s *AppealStore) Update(ctx context.Context, a *domain.Appeal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[a.ID]; !ok {
		return domain.ErrNotFound("appeal not found")
	}
	cp := *a
	s.byID[a.ID] = &cp
	return nil
}

// HasPendingForDemerit enforces the at-most-one-outstanding-appeal rule.
func (s *AppealStore) HasPendingForDemerit(ctx context.Context, demeritID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.byID {
		if a.DemeritID == demeritID && a.Status == domain.AppealPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *AppealStore) ListPending(ctx context.Context) ([]*domain.Appeal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Appeal
	for _, id := range s.ordered {
		a := s.byID[id]
		if a.Status == domain.AppealPending {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *AppealStore) ListByUser(ctx context.Context, userID string) ([]*domain.Appeal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Appeal
	for _, id := range s.ordered {
		a := s.byID[id]
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}
