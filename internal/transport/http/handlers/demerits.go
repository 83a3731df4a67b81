package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stagepass/core-service/internal/application/moderation"
	"github.com/stagepass/core-service/internal/domain"
	"github.com/stagepass/core-service/internal/transport/http/dto"
	"github.com/stagepass/core-service/internal/transport/http/middleware"
	"github.com/stagepass/core-service/internal/transport/http/response"
	"github.com/stagepass/core-service/internal/transport/http/validate"
)

type DemeritsHandler struct {
	svc *moderation.Service
}

func NewDemeritsHandler(svc *moderation.Service) *DemeritsHandler {
	return &DemeritsHandler{svc: svc}
}

// Post handles POST /demerits. The body carries an action discriminator;
// "add" is the only write this resource accepts.
func (h *DemeritsHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req dto.AddDemeritReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = middleware.ActorID(r)
	}

	d, err := h.svc.AddDemerit(r.Context(), moderation.AddDemeritCmd{
		UserID:      req.UserID,
		Reason:      req.Reason,
		Points:      req.Points,
		EventID:     req.EventID,
		CalendarID:  req.CalendarID,
		Description: req.Description,
		CreatedBy:   createdBy,
	})
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Data(w, http.StatusCreated, dto.ToDemeritResp(d))
}

func (h *DemeritsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "demerit_id")
	d, err := h.svc.GetDemeritByID(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToDemeritResp(d))
}

// Stats handles GET /demerits/stats?calendarId=...
func (h *DemeritsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GetDemeritStats(r.Context(), r.URL.Query().Get("calendarId"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToStatsResp(st))
}

// UserDemerits handles GET /users/{user_id}/demerits?calendarId=...
// Restrictions are evaluated on demand: with a calendarId the calendar's
// threshold gates the registration tier.
func (h *DemeritsHandler) UserDemerits(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		response.Err(w, domain.ErrValidation("userId is required"))
		return
	}

	st, err := h.svc.GetUserStatus(r.Context(), userID, r.URL.Query().Get("calendarId"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToUserDemeritsResp(userID, st))
}
