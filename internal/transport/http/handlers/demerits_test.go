package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/stagepass/core-service/internal/application/moderation"
	"github.com/stagepass/core-service/internal/infrastructure/memory"
)

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

func testClock() fakeClock {
	t, _ := time.Parse(time.RFC3339, "2026-03-01T10:00:00Z")
	return fakeClock{t: t.UTC()}
}

func newModerationService() *moderation.Service {
	return moderation.New(memory.NewDemeritStore(), memory.NewAppealStore(), memory.NewSettingsStore(), nil, testClock(), nil)
}

func withURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, body string) map[string]any {
	var out map[string]any
	assert.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestDemeritsHandler_Post(t *testing.T) {
	h := NewDemeritsHandler(newModerationService())

	t.Run("creates_record", func(t *testing.T) {
		body := `{"action":"add","userId":"user1","reason":"no-show","points":10,"createdBy":"admin1"}`
		req := httptest.NewRequest("POST", "/demerits", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Post(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr.Body.String())
		assert.Equal(t, true, env["success"])

		data := env["data"].(map[string]any)
		assert.NotEmpty(t, data["id"])
		assert.Equal(t, "no-show", data["reason"])
		assert.Equal(t, "none", data["appealStatus"])
	})

	t.Run("400_on_missing_points", func(t *testing.T) {
		body := `{"action":"add","userId":"user1","reason":"no-show"}`
		req := httptest.NewRequest("POST", "/demerits", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Post(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "validation_error")
	})

	t.Run("400_on_wrong_action", func(t *testing.T) {
		body := `{"action":"delete","userId":"user1","reason":"no-show","points":10}`
		req := httptest.NewRequest("POST", "/demerits", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.Post(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("400_on_malformed_json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/demerits", strings.NewReader("{nope"))
		rr := httptest.NewRecorder()

		h.Post(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDemeritsHandler_Get(t *testing.T) {
	svc := newModerationService()
	h := NewDemeritsHandler(svc)

	d, _ := svc.AddDemerit(context.Background(), moderation.AddDemeritCmd{
		UserID: "user1", Reason: "spam", Points: 15,
	})

	t.Run("found", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest("GET", "/demerits/"+d.ID, nil), "demerit_id", d.ID)
		rr := httptest.NewRecorder()

		h.Get(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), d.ID)
	})

	t.Run("404_on_unknown_id", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest("GET", "/demerits/nope", nil), "demerit_id", "nope")
		rr := httptest.NewRecorder()

		h.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "not_found")
	})
}

func TestDemeritsHandler_UserDemerits(t *testing.T) {
	svc := newModerationService()
	h := NewDemeritsHandler(svc)
	ctx := context.Background()

	_, _ = svc.AddDemerit(ctx, moderation.AddDemeritCmd{UserID: "user1", Reason: "fake-registration", Points: 30})
	_, _ = svc.AddDemerit(ctx, moderation.AddDemeritCmd{UserID: "user1", Reason: "disruptive-behavior", Points: 25})

	req := withURLParam(httptest.NewRequest("GET", "/users/user1/demerits", nil), "user_id", "user1")
	rr := httptest.NewRecorder()

	h.UserDemerits(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr.Body.String())
	data := env["data"].(map[string]any)
	assert.Equal(t, float64(55), data["totalPoints"])

	restrictions := data["restrictions"].([]any)
	assert.Contains(t, restrictions, "cannot_register_events")
	assert.NotContains(t, restrictions, "cannot_create_events")
}

func TestDemeritsHandler_Stats(t *testing.T) {
	svc := newModerationService()
	h := NewDemeritsHandler(svc)

	_, _ = svc.AddDemerit(context.Background(), moderation.AddDemeritCmd{UserID: "u1", Reason: "no-show", Points: 10})

	req := httptest.NewRequest("GET", "/demerits/stats", nil)
	rr := httptest.NewRecorder()

	h.Stats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr.Body.String())
	data := env["data"].(map[string]any)
	assert.Equal(t, float64(1), data["totalRecords"])
	assert.Equal(t, float64(10), data["totalPoints"])
}
