package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AppealStatus string

const (
	AppealNone     AppealStatus = "none"
	AppealPending  AppealStatus = "pending"
	AppealApproved AppealStatus = "approved"
	AppealRejected AppealStatus = "rejected"
)

// DemeritReason is a key into the fixed reason table. Unknown keys are
// folded into ReasonOther with the original text kept in the description.
type DemeritReason string

const (
	ReasonNoShow             DemeritReason = "no-show"
	ReasonLateCancellation   DemeritReason = "late-cancellation"
	ReasonDisruptiveBehavior DemeritReason = "disruptive-behavior"
	ReasonSpam               DemeritReason = "spam"
	ReasonPaymentDispute     DemeritReason = "payment-dispute"
	ReasonFakeRegistration   DemeritReason = "fake-registration"
	ReasonOther              DemeritReason = "other"
)

// ReasonTable maps each known reason to its suggested point value.
var ReasonTable = map[DemeritReason]int{
	ReasonNoShow:             10,
	ReasonLateCancellation:   5,
	ReasonDisruptiveBehavior: 25,
	ReasonSpam:               15,
	ReasonPaymentDispute:     20,
	ReasonFakeRegistration:   30,
	ReasonOther:              0,
}

func (r DemeritReason) Known() bool {
	_, ok := ReasonTable[r]
	return ok
}

// DemeritRecord is an append-only ledger entry. Points and reason are
// immutable after creation; only AppealStatus mutates.
type DemeritRecord struct {
	ID          string
	UserID      string
	Reason      DemeritReason
	Points      int
	EventID     string
	CalendarID  string
	Description string
	CreatedBy   string
	CreatedAt   time.Time

	AppealStatus AppealStatus
}

func NewDemerit(userID string, reason string, points int, eventID, calendarID, description, createdBy string, now time.Time) (*DemeritRecord, error) {
	userID = strings.TrimSpace(userID)
	reason = strings.TrimSpace(reason)
	description = strings.TrimSpace(description)

	if userID == "" {
		return nil, ErrValidation("userId is required")
	}
	if reason == "" {
		return nil, ErrValidation("reason is required")
	}
	if points <= 0 {
		return nil, ErrValidation("points must be a positive integer")
	}

	key := DemeritReason(reason)
	if !key.Known() {
		// free-form reason: keep the text, file it under "other"
		if description == "" {
			description = reason
		}
		key = ReasonOther
	}

	return &DemeritRecord{
		ID:           uuid.NewString(),
		UserID:       userID,
		Reason:       key,
		Points:       points,
		EventID:      strings.TrimSpace(eventID),
		CalendarID:   strings.TrimSpace(calendarID),
		Description:  description,
		CreatedBy:    strings.TrimSpace(createdBy),
		CreatedAt:    now.UTC(),
		AppealStatus: AppealNone,
	}, nil
}

// CountsTowardTotal reports whether the record contributes to the user's
// aggregate. An approved appeal zeroes the contribution; the record stays
// in the ledger for audit.
func (d *DemeritRecord) CountsTowardTotal() bool {
	return d.AppealStatus != AppealApproved
}
