// Package response writes the platform's uniform JSON envelope:
// {"success": bool, "data": ..., "message": ..., "error": ...}.
// Existing clients depend on these exact field names and status codes.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/stagepass/core-service/internal/domain"
)

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data wraps a success payload.
func Data(w http.ResponseWriter, status int, payload any) {
	JSON(w, status, Envelope{Success: true, Data: payload})
}

// DataMsg wraps a success payload with a human-readable message.
func DataMsg(w http.ResponseWriter, status int, payload any, message string) {
	JSON(w, status, Envelope{Success: true, Data: payload, Message: message})
}

// Rejected writes a business rejection: HTTP 200, success=false, message.
// Used where a failed check is an expected answer, not an error (discount
// validation).
func Rejected(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Envelope{Success: false, Message: message})
}

// Fail writes an error envelope.
func Fail(w http.ResponseWriter, status int, message, errDetail string) {
	JSON(w, status, Envelope{Success: false, Message: message, Error: errDetail})
}

// Err maps a domain error onto the envelope and status code. Unexpected
// errors are surfaced as 500 with a generic message plus the underlying
// error string for diagnostics.
func Err(w http.ResponseWriter, err error) {
	if err == nil {
		Fail(w, http.StatusInternalServerError, "internal error", "unknown error")
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		Fail(w, statusFromCode(ae.Code), ae.Message, string(ae.Code))
		return
	}

	// keep details in logs too
	zlog.Error().Err(err).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal error", err.Error())
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeConflict:
		// clients treat conflicts as correctable input, same as validation
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
