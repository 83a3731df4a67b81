package moderation

import (
	"context"
	"sort"

	"github.com/stagepass/core-service/internal/domain"
)

type ReasonCount struct {
	Reason domain.DemeritReason
	Count  int
	Points int
}

type Stats struct {
	TotalRecords int
	TotalPoints  int
	ByReason     map[domain.DemeritReason]ReasonCount
	TopReasons   []ReasonCount
}

// GetDemeritStats aggregates counts by reason across all users, optionally
// scoped to one calendar. Totals count every record issued, including ones
// later reversed on appeal: this is an issuance statistic, not a balance.
func (s *Service) GetDemeritStats(ctx context.Context, calendarID string) (*Stats, error) {
	records, err := s.demerits.List(ctx, calendarID)
	if err != nil {
		return nil, err
	}

	out := &Stats{ByReason: map[domain.DemeritReason]ReasonCount{}}
	for _, d := range records {
		out.TotalRecords++
		out.TotalPoints += d.Points

		rc := out.ByReason[d.Reason]
		rc.Reason = d.Reason
		rc.Count++
		rc.Points += d.Points
		out.ByReason[d.Reason] = rc
	}

	for _, rc := range out.ByReason {
		out.TopReasons = append(out.TopReasons, rc)
	}
	sort.Slice(out.TopReasons, func(i, j int) bool {
		if out.TopReasons[i].Count != out.TopReasons[j].Count {
			return out.TopReasons[i].Count > out.TopReasons[j].Count
		}
		return out.TopReasons[i].Reason < out.TopReasons[j].Reason
	})
	return out, nil
}
