package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsHandler(t *testing.T) {
	h := NewSettingsHandler(newModerationService())

	t.Run("get_unconfigured_returns_defaults", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest("GET", "/calendars/cal1/demerit-settings", nil), "calendar_id", "cal1")
		rr := httptest.NewRecorder()

		h.Get(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr.Body.String())
		data := env["data"].(map[string]any)
		assert.Equal(t, false, data["enabled"])
		assert.Equal(t, float64(50), data["pointsThreshold"])
	})

	t.Run("put_then_get", func(t *testing.T) {
		body := `{"enabled":true,"pointsThreshold":40}`
		req := withURLParam(httptest.NewRequest("PUT", "/calendars/cal1/demerit-settings", strings.NewReader(body)), "calendar_id", "cal1")
		rr := httptest.NewRecorder()

		h.Put(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		req = withURLParam(httptest.NewRequest("GET", "/calendars/cal1/demerit-settings", nil), "calendar_id", "cal1")
		rr = httptest.NewRecorder()
		h.Get(rr, req)

		env := decodeEnvelope(t, rr.Body.String())
		data := env["data"].(map[string]any)
		assert.Equal(t, true, data["enabled"])
		assert.Equal(t, float64(40), data["pointsThreshold"])
	})

	t.Run("negative_threshold_is_400", func(t *testing.T) {
		body := `{"enabled":true,"pointsThreshold":-5}`
		req := withURLParam(httptest.NewRequest("PUT", "/calendars/cal1/demerit-settings", strings.NewReader(body)), "calendar_id", "cal1")
		rr := httptest.NewRecorder()

		h.Put(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
