package moderation

import (
	"context"

	"github.com/stagepass/core-service/internal/domain"
	"github.com/stagepass/core-service/internal/metrics"
)

type SubmitAppealCmd struct {
	DemeritID   string
	UserID      string
	Reason      string
	Description string
}

// SubmitAppeal opens a pending appeal against one demerit. Only the owner
// of the demerit may appeal it, only one appeal may be outstanding per
// demerit at a time, and a demerit reversed by an approved appeal cannot
// be appealed again. A rejected appeal may be retried.
func (s *Service) SubmitAppeal(ctx context.Context, cmd SubmitAppealCmd) (*domain.Appeal, error) {
	d, err := s.demerits.GetByID(ctx, cmd.DemeritID)
	if err != nil {
		return nil, err
	}
	if d.UserID != cmd.UserID {
		return nil, domain.ErrForbidden("appeal must be submitted by the demerit's owner")
	}
	if d.AppealStatus == domain.AppealApproved {
		// approved is terminal: the demerit was already reversed
		return nil, domain.ErrConflict("demerit was already reversed by an approved appeal")
	}

	pending, err := s.appeals.HasPendingForDemerit(ctx, cmd.DemeritID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrConflict("a pending appeal already exists for this demerit")
	}

	a, err := domain.NewAppeal(cmd.DemeritID, cmd.UserID, cmd.Reason, cmd.Description, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.appeals.Add(ctx, a); err != nil {
		return nil, err
	}
	if err := s.demerits.SetAppealStatus(ctx, d.ID, domain.AppealPending); err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.AppealSubmitted(ctx, a.ID, a.DemeritID, a.UserID)
	}
	return a, nil
}

type ReviewAppealCmd struct {
	AppealID    string
	Decision    domain.AppealDecision
	ReviewedBy  string
	ReviewNotes string
}

// ReviewAppeal moves a pending appeal to a terminal state and propagates
// the decision to the demerit record. An approved appeal excludes the
// demerit from the user's total; a rejected one keeps it counting.
func (s *Service) ReviewAppeal(ctx context.Context, cmd ReviewAppealCmd) (*domain.Appeal, error) {
	if !cmd.Decision.Valid() {
		return nil, domain.ErrValidation("status must be approved or rejected")
	}

	a, err := s.appeals.GetByID(ctx, cmd.AppealID)
	if err != nil {
		return nil, err
	}
	if err := a.Review(cmd.Decision, cmd.ReviewedBy, cmd.ReviewNotes, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.appeals.Update(ctx, a); err != nil {
		return nil, err
	}
	if err := s.demerits.SetAppealStatus(ctx, a.DemeritID, a.Status); err != nil {
		return nil, err
	}

	metrics.RecordAppealReviewed(string(cmd.Decision))
	if s.audit != nil {
		s.audit.AppealReviewed(ctx, a.ID, a.DemeritID, string(cmd.Decision), a.ReviewedBy)
	}
	_ = s.pub.Publish(ctx, "appeal.reviewed", map[string]any{
		"appeal_id":  a.ID,
		"demerit_id": a.DemeritID,
		"user_id":    a.UserID,
		"decision":   a.Status,
	})
	return a, nil
}

func (s *Service) GetPendingAppeals(ctx context.Context) ([]*domain.Appeal, error) {
	return s.appeals.ListPending(ctx)
}

func (s *Service) GetUserAppeals(ctx context.Context, userID string) ([]*domain.Appeal, error) {
	return s.appeals.ListByUser(ctx, userID)
}
