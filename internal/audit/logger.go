package audit

import (
	"context"

	"github.com/rs/zerolog"

	appCtx "github.com/stagepass/core-service/internal/pkg/context"
)

// Logger provides structured audit logging for moderation and billing events.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// DemeritIssued logs a new ledger entry.
func (l *Logger) DemeritIssued(ctx context.Context, demeritID, userID, reason string, points int, createdBy string) {
	l.log.Warn().
		Str("action", "demerit_issued").
		Str("demerit_id", demeritID).
		Str("user_id", userID).
		Str("reason", reason).
		Int("points", points).
		Str("created_by", createdBy).
		Str("trace_id", appCtx.GetRequestID(ctx)).
		Msg("Demerit issued")
}

// AppealSubmitted logs a new pending appeal.
func (l *Logger) AppealSubmitted(ctx context.Context, appealID, demeritID, userID string) {
	l.log.Info().
		Str("action", "appeal_submitted").
		Str("appeal_id", appealID).
		Str("demerit_id", demeritID).
		Str("user_id", userID).
		Str("trace_id", appCtx.GetRequestID(ctx)).
		Msg("Appeal submitted")
}

// AppealReviewed logs a terminal review decision.
func (l *Logger) AppealReviewed(ctx context.Context, appealID, demeritID, decision, reviewedBy string) {
	l.log.Info().
		Str("action", "appeal_reviewed").
		Str("appeal_id", appealID).
		Str("demerit_id", demeritID).
		Str("decision", decision).
		Str("reviewed_by", reviewedBy).
		Str("trace_id", appCtx.GetRequestID(ctx)).
		Msg("Appeal reviewed")
}

// WaitlistJoined logs a new waitlist entry.
func (l *Logger) WaitlistJoined(ctx context.Context, eventID, userID string, position int) {
	l.log.Info().
		Str("action", "waitlist_joined").
		Str("event_id", eventID).
		Str("user_id", userID).
		Int("position", position).
		Str("trace_id", appCtx.GetRequestID(ctx)).
		Msg("User joined waitlist")
}

// WaitlistPromoted logs a user being promoted off the waitlist.
func (l *Logger) WaitlistPromoted(ctx context.Context, eventID, userID string) {
	l.log.Info().
		Str("action", "waitlist_promoted").
		Str("event_id", eventID).
		Str("user_id", userID).
		Str("trace_id", appCtx.GetRequestID(ctx)).
		Msg("User promoted from waitlist")
}

// DiscountApplied logs a successful usage-counter increment.
func (l *Logger) DiscountApplied(ctx context.Context, code, eventID string) {
	l.log.Info().
		Str("action", "discount_applied").
		Str("code", code).
		Str("event_id", eventID).
		Str("trace_id", appCtx.GetRequestID(ctx)).
		Msg("Discount code applied")
}

// RestrictionTriggered logs a user crossing a restriction tier.
func (l *Logger) RestrictionTriggered(ctx context.Context, userID string, totalPoints int, restriction string) {
	l.log.Warn().
		Str("action", "restriction_triggered").
		Str("user_id", userID).
		Int("total_points", totalPoints).
		Str("restriction", restriction).
		Str("trace_id", appCtx.GetRequestID(ctx)).
		Msg("Restriction triggered")
}
