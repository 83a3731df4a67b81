package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stagepass/core-service/internal/application/waitlist"
	"github.com/stagepass/core-service/internal/domain"
	"github.com/stagepass/core-service/internal/transport/http/dto"
	"github.com/stagepass/core-service/internal/transport/http/response"
	"github.com/stagepass/core-service/internal/transport/http/validate"
)

type WaitlistHandler struct {
	svc *waitlist.Service
}

func NewWaitlistHandler(svc *waitlist.Service) *WaitlistHandler {
	return &WaitlistHandler{svc: svc}
}

// Post handles POST /events/{event_id}/waitlist with action add, remove or
// promote.
func (h *WaitlistHandler) Post(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	var req dto.WaitlistReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}

	switch req.Action {
	case "add":
		h.add(w, r, eventID, req)
	case "remove":
		h.remove(w, r, eventID, req)
	case "promote":
		h.promote(w, r, eventID)
	default:
		response.Err(w, domain.ErrValidation("action must be add, remove or promote"))
	}
}

func (h *WaitlistHandler) add(w http.ResponseWriter, r *http.Request, eventID string, req dto.WaitlistReq) {
	pos, err := h.svc.Join(r.Context(), waitlist.JoinCmd{
		EventID: eventID,
		UserID:  req.UserID,
		Email:   req.Email,
		Name:    req.Name,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.WaitlistJoinResp{
		EventID:  eventID,
		UserID:   req.UserID,
		Position: pos,
	})
}

func (h *WaitlistHandler) remove(w http.ResponseWriter, r *http.Request, eventID string, req dto.WaitlistReq) {
	if req.UserID == "" {
		response.Err(w, domain.ErrValidation("userId is required"))
		return
	}
	if err := h.svc.Leave(r.Context(), eventID, req.UserID); err != nil {
		response.Err(w, err)
		return
	}
	response.DataMsg(w, http.StatusOK, nil, "removed from waitlist")
}

func (h *WaitlistHandler) promote(w http.ResponseWriter, r *http.Request, eventID string) {
	e, err := h.svc.PromoteNext(r.Context(), eventID)
	if err != nil {
		response.Err(w, err)
		return
	}
	if e == nil {
		response.DataMsg(w, http.StatusOK, nil, "waitlist is empty")
		return
	}
	response.Data(w, http.StatusOK, dto.ToWaitlistEntryResp(domain.WaitlistPosition{WaitlistEntry: *e}))
}

// List handles GET /events/{event_id}/waitlist.
func (h *WaitlistHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	entries, err := h.svc.List(r.Context(), eventID)
	if err != nil {
		response.Err(w, err)
		return
	}

	out := make([]dto.WaitlistEntryResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToWaitlistEntryResp(e))
	}
	response.Data(w, http.StatusOK, out)
}

// Position handles GET /events/{event_id}/waitlist/position?userId=...
// Absent users get a null position, not an error.
func (h *WaitlistHandler) Position(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		response.Err(w, domain.ErrValidation("userId is required"))
		return
	}

	pos, ok, err := h.svc.Position(r.Context(), eventID, userID)
	if err != nil {
		response.Err(w, err)
		return
	}

	resp := dto.WaitlistPositionResp{EventID: eventID, UserID: userID}
	if ok {
		resp.Position = &pos
	}
	response.Data(w, http.StatusOK, resp)
}

// Next handles GET /events/{event_id}/waitlist/next: peeks at position 1
// without removing the entry.
func (h *WaitlistHandler) Next(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	e, err := h.svc.Next(r.Context(), eventID)
	if err != nil {
		response.Err(w, err)
		return
	}
	if e == nil {
		response.DataMsg(w, http.StatusOK, nil, "waitlist is empty")
		return
	}
	resp := dto.ToWaitlistEntryResp(domain.WaitlistPosition{WaitlistEntry: *e, Position: 1})
	response.Data(w, http.StatusOK, resp)
}
