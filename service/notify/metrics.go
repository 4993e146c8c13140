package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var attemptCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "event_checkout",
	Subsystem: "notify",
	Name:      "attempts_total",
	Help:      "Notification attempts by type and outcome",
}, []string{"type", "outcome"})

var filteredCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "event_checkout",
	Subsystem: "notify",
	Name:      "filtered_total",
	Help:      "Recipients dropped by their delivery preference",
}, []string{"type"})
