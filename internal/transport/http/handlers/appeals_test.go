package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stagepass/core-service/internal/application/moderation"
)

func TestAppealsHandler_Post(t *testing.T) {
	svc := newModerationService()
	h := NewAppealsHandler(svc)
	ctx := context.Background()

	d, _ := svc.AddDemerit(ctx, moderation.AddDemeritCmd{UserID: "user1", Reason: "no-show", Points: 10})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/demerits/appeals", strings.NewReader(body))
		rr := httptest.NewRecorder()
		h.Post(rr, req)
		return rr
	}

	t.Run("submit_creates_pending_appeal", func(t *testing.T) {
		rr := post(`{"action":"submit","demeritId":"` + d.ID + `","userId":"user1","reason":"I attended"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr.Body.String())
		data := env["data"].(map[string]any)
		assert.Equal(t, "pending", data["status"])
	})

	t.Run("duplicate_submit_is_400_conflict", func(t *testing.T) {
		rr := post(`{"action":"submit","demeritId":"` + d.ID + `","userId":"user1","reason":"again"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "conflict")
	})

	t.Run("submit_by_non_owner_is_403", func(t *testing.T) {
		d2, _ := svc.AddDemerit(ctx, moderation.AddDemeritCmd{UserID: "user1", Reason: "spam", Points: 15})
		rr := post(`{"action":"submit","demeritId":"` + d2.ID + `","userId":"intruder","reason":"hm"}`)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("review_resolves_the_appeal", func(t *testing.T) {
		appeals, _ := svc.GetUserAppeals(ctx, "user1")
		assert.NotEmpty(t, appeals)
		id := appeals[0].ID

		rr := post(`{"action":"review","appealId":"` + id + `","status":"approved","reviewedBy":"admin1","reviewNotes":"checked"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr.Body.String())
		data := env["data"].(map[string]any)
		assert.Equal(t, "approved", data["status"])
		assert.Equal(t, "admin1", data["reviewedBy"])
	})

	t.Run("review_with_bad_status_is_400", func(t *testing.T) {
		rr := post(`{"action":"review","appealId":"whatever","status":"maybe"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("submit_missing_fields_is_400", func(t *testing.T) {
		rr := post(`{"action":"submit","demeritId":"` + d.ID + `"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAppealsHandler_List(t *testing.T) {
	svc := newModerationService()
	h := NewAppealsHandler(svc)
	ctx := context.Background()

	d, _ := svc.AddDemerit(ctx, moderation.AddDemeritCmd{UserID: "user1", Reason: "no-show", Points: 10})
	_, _ = svc.SubmitAppeal(ctx, moderation.SubmitAppealCmd{DemeritID: d.ID, UserID: "user1", Reason: "r"})

	t.Run("pending_queue_by_default", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/demerits/appeals", nil)
		rr := httptest.NewRecorder()

		h.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr.Body.String())
		assert.Len(t, env["data"].([]any), 1)
	})

	t.Run("filtered_by_user", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/demerits/appeals?userId=nobody", nil)
		rr := httptest.NewRecorder()

		h.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr.Body.String())
		assert.Len(t, env["data"].([]any), 0)
	})
}
