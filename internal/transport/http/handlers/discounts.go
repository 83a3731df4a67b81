package handlers

import (
	"net/http"
	"strconv"

	"github.com/stagepass/core-service/internal/application/promo"
	"github.com/stagepass/core-service/internal/domain"
	"github.com/stagepass/core-service/internal/transport/http/dto"
	"github.com/stagepass/core-service/internal/transport/http/response"
	"github.com/stagepass/core-service/internal/transport/http/validate"
)

type DiscountsHandler struct {
	svc *promo.Service
}

func NewDiscountsHandler(svc *promo.Service) *DiscountsHandler {
	return &DiscountsHandler{svc: svc}
}

// Create handles POST /payments/discount.
func (h *DiscountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDiscountReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}

	d, err := h.svc.CreateCode(r.Context(), promo.CreateCmd{
		Code:       req.Code,
		Type:       domain.DiscountType(req.Type),
		Value:      req.Value,
		EventID:    req.EventID,
		CalendarID: req.CalendarID,
		MaxUses:    req.MaxUses,
		ValidFrom:  req.ValidFrom,
		ValidUntil: req.ValidUntil,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToDiscountResp(d))
}

// Validate handles GET /payments/discount?code&eventId&amount. Rejected
// codes come back as success=false with a message, always HTTP 200; a
// missing or malformed amount is a 400.
func (h *DiscountsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw := q.Get("amount")
	if raw == "" {
		response.Err(w, domain.ErrValidation("amount is required"))
		return
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		response.Err(w, domain.ErrValidation("amount must be a non-negative number"))
		return
	}

	res, err := h.svc.ValidateCode(r.Context(), promo.ValidateCmd{
		Code:       q.Get("code"),
		EventID:    q.Get("eventId"),
		CalendarID: q.Get("calendarId"),
		Amount:     amount,
	})
	if err != nil {
		response.Err(w, err)
		return
	}

	if !res.Valid {
		response.Rejected(w, res.Message)
		return
	}
	response.DataMsg(w, http.StatusOK, dto.ToDiscountValidationResp(res), res.Message)
}

// Apply handles POST /payments/discount/apply: increments the usage
// counter. Callers apply exactly once per completed transaction.
func (h *DiscountsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyDiscountReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}

	ok, msg, err := h.svc.ApplyCode(r.Context(), req.Code, req.EventID, req.CalendarID)
	if err != nil {
		response.Err(w, err)
		return
	}
	if !ok {
		response.Rejected(w, msg)
		return
	}
	response.DataMsg(w, http.StatusOK, nil, "discount code applied")
}

// ListCodes handles GET /payments/discount/codes?eventId=|calendarId=.
func (h *DiscountsHandler) ListCodes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	codes, err := h.svc.ListCodes(r.Context(), q.Get("eventId"), q.Get("calendarId"))
	if err != nil {
		response.Err(w, err)
		return
	}

	out := make([]dto.DiscountResp, 0, len(codes))
	for _, d := range codes {
		out = append(out, dto.ToDiscountResp(d))
	}
	response.Data(w, http.StatusOK, out)
}
