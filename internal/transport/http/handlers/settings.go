package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stagepass/core-service/internal/application/moderation"
	"github.com/stagepass/core-service/internal/transport/http/dto"
	"github.com/stagepass/core-service/internal/transport/http/response"
	"github.com/stagepass/core-service/internal/transport/http/validate"
)

type SettingsHandler struct {
	svc *moderation.Service
}

func NewSettingsHandler(svc *moderation.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Put handles PUT /calendars/{calendar_id}/demerit-settings.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendar_id")

	var req dto.DemeritSettingsReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}

	cfg, err := h.svc.SetDemeritSystemEnabled(r.Context(), calendarID, req.Enabled, req.PointsThreshold)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToSettingsResp(cfg))
}

// Get handles GET /calendars/{calendar_id}/demerit-settings. Unconfigured
// calendars report the platform defaults.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendar_id")

	cfg, err := h.svc.GetDemeritSettings(r.Context(), calendarID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToSettingsResp(cfg))
}
