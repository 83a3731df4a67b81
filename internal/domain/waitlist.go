package domain

import (
	"strings"
	"time"
)

// WaitlistEntry is one user's place in an event's FIFO waitlist.
// Ordering is strictly joinedAt ascending, ties broken by insertion order.
type WaitlistEntry struct {
	EventID  string
	UserID   string
	Email    string
	Name     string
	JoinedAt time.Time
	Notified bool
}

// WaitlistPosition is a read model: an entry plus its derived 1-based rank.
type WaitlistPosition struct {
	WaitlistEntry
	Position int
}

func NewWaitlistEntry(eventID, userID, email, name string, now time.Time) (*WaitlistEntry, error) {
	eventID = strings.TrimSpace(eventID)
	userID = strings.TrimSpace(userID)
	email = strings.TrimSpace(email)

	if eventID == "" {
		return nil, ErrValidation("eventId is required")
	}
	if userID == "" {
		return nil, ErrValidation("userId is required")
	}
	if email == "" {
		return nil, ErrValidation("email is required")
	}

	return &WaitlistEntry{
		EventID:  eventID,
		UserID:   userID,
		Email:    email,
		Name:     strings.TrimSpace(name),
		JoinedAt: now.UTC(),
	}, nil
}
