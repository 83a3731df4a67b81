package dto

import "time"

type DemeritResp struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Reason       string    `json:"reason"`
	Points       int       `json:"points"`
	EventID      string    `json:"eventId,omitempty"`
	CalendarID   string    `json:"calendarId,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	AppealStatus string    `json:"appealStatus"`
}

type AppealResp struct {
	ID          string     `json:"id"`
	DemeritID   string     `json:"demeritId"`
	UserID      string     `json:"userId"`
	Reason      string     `json:"reason"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	ReviewedBy  string     `json:"reviewedBy,omitempty"`
	ReviewNotes string     `json:"reviewNotes,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
}

type UserDemeritsResp struct {
	UserID        string        `json:"userId"`
	Records       []DemeritResp `json:"records"`
	TotalPoints   int           `json:"totalPoints"`
	Restrictions  []string      `json:"restrictions"`
	Notifications []string      `json:"notifications"`
}

type DemeritSettingsResp struct {
	CalendarID      string `json:"calendarId"`
	Enabled         bool   `json:"enabled"`
	PointsThreshold int    `json:"pointsThreshold"`
}

type ReasonCountResp struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
	Points int    `json:"points"`
}

type DemeritStatsResp struct {
	TotalRecords int               `json:"totalRecords"`
	TotalPoints  int               `json:"totalPoints"`
	TopReasons   []ReasonCountResp `json:"topReasons"`
}

type WaitlistEntryResp struct {
	EventID  string    `json:"eventId"`
	UserID   string    `json:"userId"`
	Email    string    `json:"email"`
	Name     string    `json:"name,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
	Notified bool      `json:"notified"`
	Position int       `json:"position,omitempty"`
}

type WaitlistJoinResp struct {
	EventID  string `json:"eventId"`
	UserID   string `json:"userId"`
	Position int    `json:"position"`
}

type WaitlistPositionResp struct {
	EventID  string `json:"eventId"`
	UserID   string `json:"userId"`
	Position *int   `json:"position"`
}

type DiscountResp struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Type       string     `json:"type"`
	Value      float64    `json:"value"`
	EventID    string     `json:"eventId,omitempty"`
	CalendarID string     `json:"calendarId,omitempty"`
	MaxUses    int        `json:"maxUses,omitempty"`
	UsesCount  int        `json:"usesCount"`
	ValidFrom  *time.Time `json:"validFrom,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type DiscountValidationResp struct {
	Code           string  `json:"code"`
	Type           string  `json:"type"`
	Value          float64 `json:"value"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
}
