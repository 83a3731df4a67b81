package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stagepass/core-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func entry(eventID, userID, email string, joined time.Time) *domain.WaitlistEntry {
	return &domain.WaitlistEntry{EventID: eventID, UserID: userID, Email: email, JoinedAt: joined}
}

func TestWaitlistStore_Ordering(t *testing.T) {
	ctx := context.Background()
	base, _ := time.Parse(time.RFC3339, "2026-03-01T10:00:00Z")

	t.Run("sorted_by_joined_at_not_insertion", func(t *testing.T) {
		s := NewWaitlistStore()

		_, _ = s.Add(ctx, entry("evt1", "late", "late@x.com", base.Add(2*time.Minute)))
		_, _ = s.Add(ctx, entry("evt1", "early", "early@x.com", base))

		list, err := s.List(ctx, "evt1")
		assert.NoError(t, err)
		assert.Equal(t, "early", list[0].UserID)
		assert.Equal(t, 1, list[0].Position)
		assert.Equal(t, "late", list[1].UserID)
		assert.Equal(t, 2, list[1].Position)
	})

	t.Run("ties_keep_insertion_order", func(t *testing.T) {
		s := NewWaitlistStore()

		_, _ = s.Add(ctx, entry("evt1", "first", "first@x.com", base))
		_, _ = s.Add(ctx, entry("evt1", "second", "second@x.com", base))

		list, _ := s.List(ctx, "evt1")
		assert.Equal(t, "first", list[0].UserID)
		assert.Equal(t, "second", list[1].UserID)
	})

	t.Run("duplicate_email_is_rejected_even_with_new_user", func(t *testing.T) {
		s := NewWaitlistStore()

		added, _ := s.Add(ctx, entry("evt1", "u1", "shared@x.com", base))
		assert.True(t, added)

		added, _ = s.Add(ctx, entry("evt1", "u2", "shared@x.com", base.Add(time.Minute)))
		assert.False(t, added)

		list, _ := s.List(ctx, "evt1")
		assert.Len(t, list, 1)
	})
}

func TestWaitlistStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	base, _ := time.Parse(time.RFC3339, "2026-03-01T10:00:00Z")
	s := NewWaitlistStore()

	_, _ = s.Add(ctx, entry("evt1", "u1", "u1@x.com", base))

	head, _ := s.Next(ctx, "evt1")
	head.Notified = true

	fresh, _ := s.Next(ctx, "evt1")
	assert.False(t, fresh.Notified)
}

func TestDemeritStore_ListScoping(t *testing.T) {
	ctx := context.Background()
	now, _ := time.Parse(time.RFC3339, "2026-03-01T10:00:00Z")
	s := NewDemeritStore()

	d1, _ := domain.NewDemerit("u1", "no-show", 10, "", "cal1", "", "admin", now)
	d2, _ := domain.NewDemerit("u1", "spam", 15, "", "cal2", "", "admin", now)
	d3, _ := domain.NewDemerit("u2", "spam", 15, "", "cal1", "", "admin", now)
	_ = s.Add(ctx, d1)
	_ = s.Add(ctx, d2)
	_ = s.Add(ctx, d3)

	t.Run("by_user_in_creation_order", func(t *testing.T) {
		got, err := s.ListByUser(ctx, "u1")
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, d1.ID, got[0].ID)
		assert.Equal(t, d2.ID, got[1].ID)
	})

	t.Run("by_calendar", func(t *testing.T) {
		got, err := s.List(ctx, "cal1")
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unscoped_returns_all", func(t *testing.T) {
		got, err := s.List(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("returned_records_are_copies", func(t *testing.T) {
		got, _ := s.GetByID(ctx, d1.ID)
		got.Points = 999

		fresh, _ := s.GetByID(ctx, d1.ID)
		assert.Equal(t, 10, fresh.Points)
	})
}

func TestAppealStore_PendingIndex(t *testing.T) {
	ctx := context.Background()
	now, _ := time.Parse(time.RFC3339, "2026-03-01T10:00:00Z")
	s := NewAppealStore()

	a1, _ := domain.NewAppeal("dem1", "u1", "reason", "", now)
	a2, _ := domain.NewAppeal("dem2", "u2", "reason", "", now)
	_ = s.Add(ctx, a1)
	_ = s.Add(ctx, a2)

	pending, err := s.HasPendingForDemerit(ctx, "dem1")
	assert.NoError(t, err)
	assert.True(t, pending)

	assert.NoError(t, a1.Review(domain.DecisionRejected, "admin", "", now))
	assert.NoError(t, s.Update(ctx, a1))

	pending, _ = s.HasPendingForDemerit(ctx, "dem1")
	assert.False(t, pending)

	queue, _ := s.ListPending(ctx)
	assert.Len(t, queue, 1)
	assert.Equal(t, a2.ID, queue[0].ID)
}
