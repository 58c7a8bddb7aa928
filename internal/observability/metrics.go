package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	enrollmentOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster",
		Subsystem: "enrollment",
		Name:      "operations_total",
		Help:      "Signup and unregister attempts partitioned by outcome.",
	}, []string{"operation", "outcome"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "roster",
		Subsystem: "activity",
		Name:      "participants",
		Help:      "Participants currently signed up per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(enrollmentOps, participantsGauge)
}

// RecordEnrollment counts one signup or unregister attempt.
func RecordEnrollment(operation, outcome string) {
	enrollmentOps.WithLabelValues(operation, outcome).Inc()
}

// RecordParticipants sets the participant gauge for an activity.
func RecordParticipants(activity string, count int) {
	if activity == "" {
		return
	}
	participantsGauge.WithLabelValues(activity).Set(float64(count))
}
