package dto

import (
	"github.com/stagepass/core-service/internal/application/moderation"
	"github.com/stagepass/core-service/internal/application/promo"
	"github.com/stagepass/core-service/internal/domain"
)

func ToDemeritResp(d *domain.DemeritRecord) DemeritResp {
	return DemeritResp{
		ID:           d.ID,
		UserID:       d.UserID,
		Reason:       string(d.Reason),
		Points:       d.Points,
		EventID:      d.EventID,
		CalendarID:   d.CalendarID,
		Description:  d.Description,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		AppealStatus: string(d.AppealStatus),
	}
}

func ToAppealResp(a *domain.Appeal) AppealResp {
	return AppealResp{
		ID:          a.ID,
		DemeritID:   a.DemeritID,
		UserID:      a.UserID,
		Reason:      a.Reason,
		Description: a.Description,
		Status:      string(a.Status),
		ReviewedBy:  a.ReviewedBy,
		ReviewNotes: a.ReviewNotes,
		SubmittedAt: a.SubmittedAt,
		ReviewedAt:  a.ReviewedAt,
	}
}

func ToUserDemeritsResp(userID string, st *moderation.UserStatus) UserDemeritsResp {
	records := make([]DemeritResp, 0, len(st.Records))
	for _, d := range st.Records {
		records = append(records, ToDemeritResp(d))
	}
	restrictions := make([]string, 0, len(st.Evaluation.Restrictions))
	for _, r := range st.Evaluation.Restrictions {
		restrictions = append(restrictions, string(r))
	}
	notifications := st.Evaluation.Notifications
	if notifications == nil {
		notifications = []string{}
	}
	return UserDemeritsResp{
		UserID:        userID,
		Records:       records,
		TotalPoints:   st.TotalPoints,
		Restrictions:  restrictions,
		Notifications: notifications,
	}
}

func ToSettingsResp(cfg domain.CalendarSettings) DemeritSettingsResp {
	return DemeritSettingsResp{
		CalendarID:      cfg.CalendarID,
		Enabled:         cfg.Enabled,
		PointsThreshold: cfg.PointsThreshold,
	}
}

func ToStatsResp(st *moderation.Stats) DemeritStatsResp {
	top := make([]ReasonCountResp, 0, len(st.TopReasons))
	for _, rc := range st.TopReasons {
		top = append(top, ReasonCountResp{
			Reason: string(rc.Reason),
			Count:  rc.Count,
			Points: rc.Points,
		})
	}
	return DemeritStatsResp{
		TotalRecords: st.TotalRecords,
		TotalPoints:  st.TotalPoints,
		TopReasons:   top,
	}
}

func ToWaitlistEntryResp(p domain.WaitlistPosition) WaitlistEntryResp {
	return WaitlistEntryResp{
		EventID:  p.EventID,
		UserID:   p.UserID,
		Email:    p.Email,
		Name:     p.Name,
		JoinedAt: p.JoinedAt,
		Notified: p.Notified,
		Position: p.Position,
	}
}

func ToDiscountResp(d *domain.DiscountCode) DiscountResp {
	return DiscountResp{
		ID:         d.ID,
		Code:       d.Code,
		Type:       string(d.Type),
		Value:      d.Value,
		EventID:    d.EventID,
		CalendarID: d.CalendarID,
		MaxUses:    d.MaxUses,
		UsesCount:  d.UsesCount,
		ValidFrom:  d.ValidFrom,
		ValidUntil: d.ValidUntil,
		CreatedAt:  d.CreatedAt,
	}
}

func ToDiscountValidationResp(res *promo.ValidationResult) DiscountValidationResp {
	return DiscountValidationResp{
		Code:           res.Code.Code,
		Type:           string(res.Code.Type),
		Value:          res.Code.Value,
		DiscountAmount: res.DiscountAmount,
		FinalAmount:    res.FinalAmount,
	}
}
