package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reconcileCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "event_checkout",
	Subsystem: "reconcile",
	Name:      "runs_total",
	Help:      "Reconciliation runs by final state",
}, []string{"state"})

var oversubscribedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "event_checkout",
	Subsystem: "reconcile",
	Name:      "oversubscribed_total",
	Help:      "Reconciled orders that pushed an event over its capacity",
})
