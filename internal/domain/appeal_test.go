package domain_test

import (
	"testing"
	"time"

	"github.com/stagepass/core-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAppeal_Review(t *testing.T) {
	now := mustTime("2026-03-01T10:00:00Z")
	later := now.Add(24 * time.Hour)

	t.Run("approve_pending_appeal", func(t *testing.T) {
		a, err := domain.NewAppeal("dem1", "user1", "I was present", "", now)
		assert.NoError(t, err)
		assert.Equal(t, domain.AppealPending, a.Status)

		err = a.Review(domain.DecisionApproved, "admin1", "verified attendance", later)
		assert.NoError(t, err)
		assert.Equal(t, domain.AppealApproved, a.Status)
		assert.Equal(t, "admin1", a.ReviewedBy)
		assert.NotNil(t, a.ReviewedAt)
		assert.Equal(t, later, *a.ReviewedAt)
	})

	t.Run("terminal_appeal_cannot_be_rereviewed", func(t *testing.T) {
		a, _ := domain.NewAppeal("dem1", "user1", "reason", "", now)
		assert.NoError(t, a.Review(domain.DecisionRejected, "admin1", "", later))

		err := a.Review(domain.DecisionApproved, "admin2", "", later)
		assert.Error(t, err)
		assert.Equal(t, domain.AppealRejected, a.Status)
	})

	t.Run("rejects_invalid_decision", func(t *testing.T) {
		a, _ := domain.NewAppeal("dem1", "user1", "reason", "", now)

		err := a.Review(domain.AppealDecision("maybe"), "admin1", "", later)
		assert.Error(t, err)
		assert.Equal(t, domain.AppealPending, a.Status)
	})

	t.Run("reason_is_required", func(t *testing.T) {
		_, err := domain.NewAppeal("dem1", "user1", "  ", "", now)
		assert.Error(t, err)
	})
}
