package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "core_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "status"},
	)

	demeritsIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "core_demerits_issued_total",
			Help: "Total number of demerit records created",
		},
		[]string{"reason"},
	)

	appealsReviewedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "core_appeals_reviewed_total",
			Help: "Total number of appeal review decisions",
		},
		[]string{"decision"},
	)

	waitlistJoinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "core_waitlist_joins_total",
			Help: "Total number of waitlist entries created",
		},
	)

	waitlistPromotionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "core_waitlist_promotions_total",
			Help: "Total number of users promoted off a waitlist",
		},
	)

	discountsAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "core_discounts_applied_total",
			Help: "Total number of discount code applications",
		},
		[]string{"result"},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, status string, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}

// RecordDemeritIssued records a new ledger entry.
func RecordDemeritIssued(reason string) {
	demeritsIssuedTotal.WithLabelValues(reason).Inc()
}

// RecordAppealReviewed records a terminal appeal decision.
func RecordAppealReviewed(decision string) {
	appealsReviewedTotal.WithLabelValues(decision).Inc()
}

// RecordWaitlistJoin records a new waitlist entry.
func RecordWaitlistJoin() {
	waitlistJoinsTotal.Inc()
}

// RecordWaitlistPromotion records a promotion off the waitlist.
func RecordWaitlistPromotion() {
	waitlistPromotionsTotal.Inc()
}

// RecordDiscountApplied records an apply attempt by result ("ok"/"rejected").
func RecordDiscountApplied(result string) {
	discountsAppliedTotal.WithLabelValues(result).Inc()
}

// Handler returns the Prometheus metrics handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
