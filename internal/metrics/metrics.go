package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "meister",
			Name:      "booking_created_total",
			Help:      "Count of appointments successfully booked.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meister",
			Name:      "booking_rejected_total",
			Help:      "Count of booking attempts rejected by reason code.",
		},
		[]string{"reason"},
	)

	bookingCancelled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "meister",
			Name:      "booking_cancelled_total",
			Help:      "Count of cancelled appointments by source.",
		},
		[]string{"source"},
	)

	remindersSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "meister",
			Name:      "reminders_sent_total",
			Help:      "Count of reminder notifications dispatched.",
		},
	)

	reviewRequestsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "meister",
			Name:      "review_requests_sent_total",
			Help:      "Count of review request notifications dispatched.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingRejected, bookingCancelled, remindersSent, reviewRequestsSent)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingRejected(reason string) {
	bookingRejected.WithLabelValues(reason).Inc()
}

func IncBookingCancelled(source string) {
	bookingCancelled.WithLabelValues(source).Inc()
}

func IncReminderSent() {
	remindersSent.Inc()
}

func IncReviewRequestSent() {
	reviewRequestsSent.Inc()
}
