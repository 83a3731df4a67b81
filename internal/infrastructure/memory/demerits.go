// Package memory holds the process-local stores backing the application
// services. Each store owns its records outright: methods return copies,
// never aliases of internal storage, so callers can serialize results
// without racing writers.
package memory

import (
	"context"
	"sync"

	"github.com/stagepass/core-service/internal/domain"
)

type DemeritStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.DemeritRecord
	ordered []string // creation order
}

func NewDemeritStore() *DemeritStore {
	return &DemeritStore{byID: map[string]*domain.DemeritRecord{}}
}

func (s *DemeritStore) Add(ctx context.Context, d *domain.DemeritRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *d
	s.byID[d.ID] = &cp
	s.ordered = append(s.ordered, d.ID)
	return nil
}

func (s *DemeritStore) GetByID(ctx context.Context, id string) (*domain.DemeritRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("demerit not found")
	}
	cp := *d
	return &cp, nil
}

// ListByUser returns the user's records in creation order.
func (s *DemeritStore) ListByUser(ctx context.Context, userID string) ([]*domain.DemeritRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.DemeritRecord
	for _, id := range s.ordered {
		d := s.byID[id]
		if d.UserID == userID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

// List returns all records, optionally scoped to one calendar.
func (s *DemeritStore) List(ctx context.Context, calendarID string) ([]*domain.DemeritRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.DemeritRecord
	for _, id := range s.ordered {
		d := s.byID[id]
		if calendarID != "" && d.CalendarID != calendarID {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

// SetAppealStatus is the only mutation allowed on a stored record.
func (s *DemeritStore) SetAppealStatus(ctx context.Context, id string, status domain.AppealStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound("demerit not found")
	}
	d.AppealStatus = status
	return nil
}
