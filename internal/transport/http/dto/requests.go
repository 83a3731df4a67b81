package dto

import "time"

// Write endpoints dispatch on an "action" discriminator, matching the
// platform's existing clients.

type AddDemeritReq struct {
	Action      string `json:"action" validate:"required,eq=add"`
	UserID      string `json:"userId" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	Points      int    `json:"points" validate:"required,gt=0"`
	EventID     string `json:"eventId"`
	CalendarID  string `json:"calendarId"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
}

type AppealReq struct {
	Action string `json:"action" validate:"required,oneof=submit review"`

	// submit
	DemeritID   string `json:"demeritId"`
	UserID      string `json:"userId"`
	Reason      string `json:"reason"`
	Description string `json:"description"`

	// review
	AppealID    string `json:"appealId"`
	Status      string `json:"status"`
	ReviewedBy  string `json:"reviewedBy"`
	ReviewNotes string `json:"reviewNotes"`
}

type WaitlistReq struct {
	Action string `json:"action" validate:"required,oneof=add remove promote"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type DemeritSettingsReq struct {
	Enabled         bool `json:"enabled"`
	PointsThreshold int  `json:"pointsThreshold" validate:"gte=0"`
}

type CreateDiscountReq struct {
	Code       string     `json:"code" validate:"required"`
	Type       string     `json:"type" validate:"required,oneof=percentage fixed"`
	Value      float64    `json:"value" validate:"required,gt=0"`
	EventID    string     `json:"eventId"`
	CalendarID string     `json:"calendarId"`
	MaxUses    int        `json:"maxUses" validate:"gte=0"`
	ValidFrom  *time.Time `json:"validFrom"`
	ValidUntil *time.Time `json:"validUntil"`
}

type ApplyDiscountReq struct {
	Code       string `json:"code" validate:"required"`
	EventID    string `json:"eventId" validate:"required"`
	CalendarID string `json:"calendarId"`
}
