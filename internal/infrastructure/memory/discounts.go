package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stagepass/core-service/internal/domain"
)

type DiscountStore struct {
	mu      sync.RWMutex
	byID    map[string]*domain.DiscountCode
	ordered []string
}

func NewDiscountStore() *DiscountStore {
	return &DiscountStore{byID: map[string]*domain.DiscountCode{}}
}

// Create enforces code uniqueness per scope: the same code string may exist
// for different events or calendars, but not twice within one scope.
func (s *DiscountStore) Create(ctx context.Context, d *domain.DiscountCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byID {
		if existing.Code != d.Code {
			continue
		}
		if d.EventID != "" && existing.EventID == d.EventID {
			return domain.ErrConflict("discount code already exists for this event")
		}
		if d.EventID == "" && d.CalendarID != "" && existing.EventID == "" && existing.CalendarID == d.CalendarID {
			return domain.ErrConflict("discount code already exists for this calendar")
		}
	}

	cp := *d
	s.byID[d.ID] = &cp
	s.ordered = append(s.ordered, d.ID)
	return nil
}

// Find resolves a code for a purchase: event scope first, then the event's
// calendar scope. Returns nil when no code matches either scope.
func (s *DiscountStore) Find(ctx context.Context, code, eventID, calendarID string) (*domain.DiscountCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if eventID != "" {
		for _, id := range s.ordered {
			d := s.byID[id]
			if d.Code == code && d.EventID == eventID {
				cp := *d
				return &cp, nil
			}
		}
	}
	if calendarID != "" {
		for _, id := range s.ordered {
			d := s.byID[id]
			if d.Code == code && d.EventID == "" && d.CalendarID == calendarID {
				cp := *d
				return &cp, nil
			}
		}
	}
	return nil, nil
}

// ListByScope returns codes for one event or one calendar, creation order.
func (s *DiscountStore) ListByScope(ctx context.Context, eventID, calendarID string) ([]*domain.DiscountCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.DiscountCode
	for _, id := range s.ordered {
		d := s.byID[id]
		if eventID != "" && d.EventID != eventID {
			continue
		}
		if eventID == "" && calendarID != "" && (d.EventID != "" || d.CalendarID != calendarID) {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

// Use re-checks window and cap under the write lock and increments the
// usage counter in the same critical section, so a capped code cannot be
// driven past MaxUses by concurrent applications.
func (s *DiscountStore) Use(ctx context.Context, id string, now time.Time) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byID[id]
	if !ok {
		return false, "discount code not found", nil
	}
	if ok, msg := d.Usable(now); !ok {
		return false, msg, nil
	}
	d.UsesCount++
	return true, "", nil
}
