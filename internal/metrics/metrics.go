package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RoutedEvents counts inbound events by the router branch that handled
	// them and how the branch ended.
	RoutedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_routed_events_total",
			Help: "Inbound dialog events by router branch and outcome.",
		},
		[]string{"branch", "outcome"},
	)

	// HTTPRequests counts webhook requests by method, route and status class.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(RoutedEvents, HTTPRequests)
}
