package promo

import (
	"context"

	"github.com/stagepass/core-service/internal/domain"
)

type ValidateCmd struct {
	Code       string
	EventID    string
	CalendarID string
	Amount     float64
}

// ValidationResult is returned for every outcome: rejected codes come back
// with Valid=false and a human-readable message, not an error.
type ValidationResult struct {
	Valid          bool
	Message        string
	Code           *domain.DiscountCode
	DiscountAmount float64
	FinalAmount    float64
}

// ValidateCode checks a code against a purchase without consuming a use.
// Lookup is event scope first, then the event's calendar. Only a malformed
// amount is an error; every business rejection is a Valid=false result.
func (s *Service) ValidateCode(ctx context.Context, cmd ValidateCmd) (*ValidationResult, error) {
	if cmd.Code == "" {
		return nil, domain.ErrValidation("code is required")
	}
	if cmd.Amount < 0 {
		return nil, domain.ErrValidation("amount must be >= 0")
	}

	d, err := s.repo.Find(ctx, cmd.Code, cmd.EventID, cmd.CalendarID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return &ValidationResult{Valid: false, Message: "discount code not found for this event"}, nil
	}

	if ok, msg := d.Usable(s.clock.Now()); !ok {
		return &ValidationResult{Valid: false, Message: msg}, nil
	}

	discount := d.DiscountAmount(cmd.Amount)
	return &ValidationResult{
		Valid:          true,
		Message:        "discount code applied",
		Code:           d,
		DiscountAmount: discount,
		FinalAmount:    cmd.Amount - discount,
	}, nil
}
