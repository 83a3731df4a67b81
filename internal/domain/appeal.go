package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AppealDecision string

const (
	DecisionApproved AppealDecision = "approved"
	DecisionRejected AppealDecision = "rejected"
)

func (d AppealDecision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Appeal challenges exactly one demerit record. pending is the only
// non-terminal state; approved/rejected are terminal.
type Appeal struct {
	ID          string
	DemeritID   string
	UserID      string
	Reason      string
	Description string

	Status      AppealStatus
	ReviewedBy  string
	ReviewNotes string

	SubmittedAt time.Time
	ReviewedAt  *time.Time
}

func NewAppeal(demeritID, userID, reason, description string, now time.Time) (*Appeal, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrValidation("reason is required")
	}

	return &Appeal{
		ID:          uuid.NewString(),
		DemeritID:   demeritID,
		UserID:      userID,
		Reason:      reason,
		Description: strings.TrimSpace(description),
		Status:      AppealPending,
		SubmittedAt: now.UTC(),
	}, nil
}

// Review moves a pending appeal to a terminal state. Re-reviewing a
// terminal appeal fails: the transition is one-way.
func (a *Appeal) Review(decision AppealDecision, reviewedBy, notes string, now time.Time) error {
	if a.Status != AppealPending {
		return ErrNotFound("appeal is not pending")
	}
	if !decision.Valid() {
		return ErrValidation("status must be approved or rejected")
	}

	t := now.UTC()
	a.Status = AppealStatus(decision)
	a.ReviewedBy = strings.TrimSpace(reviewedBy)
	a.ReviewNotes = strings.TrimSpace(notes)
	a.ReviewedAt = &t
	return nil
}
