package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stagepass/core-service/internal/domain"
)

type WaitlistStore struct {
	mu      sync.RWMutex
	byEvent map[string][]*domain.WaitlistEntry
}

func NewWaitlistStore() *WaitlistStore {
	return &WaitlistStore{byEvent: map[string][]*domain.WaitlistEntry{}}
}

// Add appends an entry and re-sorts by JoinedAt ascending (stable, so ties
// keep insertion order). Returns false without modifying anything when the
// user or email is already on the event's waitlist.
func (s *WaitlistStore) Add(ctx context.Context, e *domain.WaitlistEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byEvent[e.EventID]
	for _, existing := range entries {
		if existing.UserID == e.UserID || existing.Email == e.Email {
			return false, nil
		}
	}

	cp := *e
	entries = append(entries, &cp)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].JoinedAt.Before(entries[j].JoinedAt)
	})
	s.byEvent[e.EventID] = entries
	return true, nil
}

// Remove deletes the matching entry. Absent event or user is a no-op.
func (s *WaitlistStore) Remove(ctx context.Context, eventID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byEvent[eventID]
	for i, e := range entries {
		if e.UserID == userID {
			s.byEvent[eventID] = append(entries[:i:i], entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// List returns a fresh slice with derived 1-based positions.
func (s *WaitlistStore) List(ctx context.Context, eventID string) ([]domain.WaitlistPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.byEvent[eventID]
	out := make([]domain.WaitlistPosition, 0, len(entries))
	for i, e := range entries {
		out = append(out, domain.WaitlistPosition{WaitlistEntry: *e, Position: i + 1})
	}
	return out, nil
}

// Position returns the 1-based rank, or false when absent.
func (s *WaitlistStore) Position(ctx context.Context, eventID, userID string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, e := range s.byEvent[eventID] {
		if e.UserID == userID {
			return i + 1, true, nil
		}
	}
	return 0, false, nil
}

// Next peeks at the head of the queue without removing it.
func (s *WaitlistStore) Next(ctx context.Context, eventID string) (*domain.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.byEvent[eventID]
	if len(entries) == 0 {
		return nil, nil
	}
	cp := *entries[0]
	return &cp, nil
}

// PopNext removes and returns the head of the queue, or nil when empty.
func (s *WaitlistStore) PopNext(ctx context.Context, eventID string) (*domain.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byEvent[eventID]
	if len(entries) == 0 {
		return nil, nil
	}
	head := entries[0]
	s.byEvent[eventID] = entries[1:]
	cp := *head
	return &cp, nil
}

func (s *WaitlistStore) MarkNotified(ctx context.Context, eventID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.byEvent[eventID] {
		if e.UserID == userID {
			e.Notified = true
			return true, nil
		}
	}
	return false, nil
}
