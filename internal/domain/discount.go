package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// DiscountCode is scoped to either an event or a calendar. The same code
// string may exist under different scopes. Codes are never deleted; usage
// history is retained.
type DiscountCode struct {
	ID    string
	Code  string
	Type  DiscountType
	Value float64

	EventID    string
	CalendarID string

	MaxUses   int // 0 = unlimited
	UsesCount int

	ValidFrom  *time.Time
	ValidUntil *time.Time

	CreatedAt time.Time
}

func NewDiscountCode(code string, typ DiscountType, value float64, eventID, calendarID string, maxUses int, validFrom, validUntil *time.Time, now time.Time) (*DiscountCode, error) {
	code = strings.TrimSpace(code)
	eventID = strings.TrimSpace(eventID)
	calendarID = strings.TrimSpace(calendarID)

	if code == "" {
		return nil, ErrValidation("code is required")
	}
	if !typ.Valid() {
		return nil, ErrValidation("type must be percentage or fixed")
	}
	if value <= 0 {
		return nil, ErrValidation("value must be positive")
	}
	if typ == DiscountPercentage && value > 100 {
		return nil, ErrValidation("percentage value must be in (0,100]")
	}
	if eventID == "" && calendarID == "" {
		return nil, ErrValidation("eventId or calendarId scope is required")
	}
	if maxUses < 0 {
		return nil, ErrValidation("maxUses must be >= 0 (0 means unlimited)")
	}
	if validFrom != nil && validUntil != nil && validUntil.Before(*validFrom) {
		return nil, ErrValidation("validUntil must not be before validFrom")
	}

	d := &DiscountCode{
		ID:         uuid.NewString(),
		Code:       code,
		Type:       typ,
		Value:      value,
		EventID:    eventID,
		CalendarID: calendarID,
		MaxUses:    maxUses,
		CreatedAt:  now.UTC(),
	}
	if validFrom != nil {
		t := validFrom.UTC()
		d.ValidFrom = &t
	}
	if validUntil != nil {
		t := validUntil.UTC()
		d.ValidUntil = &t
	}
	return d, nil
}

// Usable checks the time window and the usage cap at the given instant.
// It returns a human-readable rejection message on failure.
func (d *DiscountCode) Usable(now time.Time) (bool, string) {
	if d.ValidFrom != nil && now.Before(*d.ValidFrom) {
		return false, "discount code is not active yet"
	}
	if d.ValidUntil != nil && now.After(*d.ValidUntil) {
		return false, "discount code has expired"
	}
	if d.MaxUses > 0 && d.UsesCount >= d.MaxUses {
		return false, "discount code has reached its usage limit"
	}
	return true, ""
}

// DiscountAmount computes the discount for a charge. Fixed discounts are
// capped at the charged amount so totals never go negative.
func (d *DiscountCode) DiscountAmount(amount float64) float64 {
	if d.Type == DiscountPercentage {
		return amount * d.Value / 100
	}
	if d.Value > amount {
		return amount
	}
	return d.Value
}
