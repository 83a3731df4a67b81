package handlers

import (
	"net/http"

	"github.com/stagepass/core-service/internal/application/moderation"
	"github.com/stagepass/core-service/internal/domain"
	"github.com/stagepass/core-service/internal/transport/http/dto"
	"github.com/stagepass/core-service/internal/transport/http/middleware"
	"github.com/stagepass/core-service/internal/transport/http/response"
	"github.com/stagepass/core-service/internal/transport/http/validate"
)

type AppealsHandler struct {
	svc *moderation.Service
}

func NewAppealsHandler(svc *moderation.Service) *AppealsHandler {
	return &AppealsHandler{svc: svc}
}

// Post handles POST /demerits/appeals with action "submit" or "review".
func (h *AppealsHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req dto.AppealReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}

	switch req.Action {
	case "submit":
		h.submit(w, r, req)
	case "review":
		h.review(w, r, req)
	default:
		response.Err(w, domain.ErrValidation("action must be submit or review"))
	}
}

func (h *AppealsHandler) submit(w http.ResponseWriter, r *http.Request, req dto.AppealReq) {
	if req.DemeritID == "" || req.UserID == "" || req.Reason == "" {
		response.Err(w, domain.ErrValidationMeta("missing or invalid fields", map[string]string{
			"required": "demeritId, userId, reason",
		}))
		return
	}

	a, err := h.svc.SubmitAppeal(r.Context(), moderation.SubmitAppealCmd{
		DemeritID:   req.DemeritID,
		UserID:      req.UserID,
		Reason:      req.Reason,
		Description: req.Description,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToAppealResp(a))
}

func (h *AppealsHandler) review(w http.ResponseWriter, r *http.Request, req dto.AppealReq) {
	if req.AppealID == "" || req.Status == "" {
		response.Err(w, domain.ErrValidationMeta("missing or invalid fields", map[string]string{
			"required": "appealId, status",
		}))
		return
	}

	reviewedBy := req.ReviewedBy
	if reviewedBy == "" {
		reviewedBy = middleware.ActorID(r)
	}

	a, err := h.svc.ReviewAppeal(r.Context(), moderation.ReviewAppealCmd{
		AppealID:    req.AppealID,
		Decision:    domain.AppealDecision(req.Status),
		ReviewedBy:  reviewedBy,
		ReviewNotes: req.ReviewNotes,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToAppealResp(a))
}

// List handles GET /demerits/appeals. With ?userId= it lists that user's
// appeals; otherwise it lists the pending review queue.
func (h *AppealsHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		appeals []*domain.Appeal
		err     error
	)

	if userID := r.URL.Query().Get("userId"); userID != "" {
		appeals, err = h.svc.GetUserAppeals(r.Context(), userID)
	} else {
		appeals, err = h.svc.GetPendingAppeals(r.Context())
	}
	if err != nil {
		response.Err(w, err)
		return
	}

	out := make([]dto.AppealResp, 0, len(appeals))
	for _, a := range appeals {
		out = append(out, dto.ToAppealResp(a))
	}
	response.Data(w, http.StatusOK, out)
}
