package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Trips
	TripsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trips_created_total",
			Help: "Total trips created",
		},
	)
	TripTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_transitions_total",
			Help: "Total trip lifecycle transitions",
		},
		[]string{"action"}, // cancel|complete
	)

	// Auth
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"outcome"}, // ok|failed
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(TripsCreatedTotal)
	prometheus.MustRegister(TripTransitionsTotal)
	prometheus.MustRegister(LoginsTotal)
}
