// Package observability exposes prometheus instrumentation for the
// registry. The gauges mirror the registry's in-memory totals and are
// refreshed after every mutation.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	usersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "volunteer_api",
		Subsystem: "registry",
		Name:      "users",
		Help:      "Number of registered users held by the registry.",
	})
	activitiesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "volunteer_api",
		Subsystem: "registry",
		Name:      "activities",
		Help:      "Number of volunteer activities held by the registry.",
	})
	registrationsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "volunteer_api",
		Subsystem: "registry",
		Name:      "registrations",
		Help:      "Total participation: sum of participants across all activities.",
	})
)

func init() {
	prometheus.MustRegister(usersGauge, activitiesGauge, registrationsGauge)
}

// RecordRegistryTotals updates the registry gauges.
func RecordRegistryTotals(users, activities, registrations int) {
	usersGauge.Set(float64(users))
	activitiesGauge.Set(float64(activities))
	registrationsGauge.Set(float64(registrations))
}
