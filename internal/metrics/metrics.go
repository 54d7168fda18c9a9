// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Backend fetches (positions, regions, crossings, tracks)
// - View state freshness and dataset sizes
// - Filter commits and manual refreshes
// - View API endpoint latency and throughput
// - Circuit breaker around the backend client

var (
	// Backend Fetch Metrics
	BackendFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_fetch_duration_seconds",
			Help:    "Duration of backend fetches in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"dataset"},
	)

	BackendFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_fetch_total",
			Help: "Total number of backend fetches by outcome",
		},
		[]string{"dataset", "result"}, // result: "success", "network", "http", "decode", "rejected"
	)

	BackendFetchInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "backend_fetch_in_flight",
			Help: "Current number of outstanding backend fetches",
		},
		[]string{"dataset"},
	)

	// View State Metrics
	ViewDatasetItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "view_dataset_items",
			Help: "Number of items currently held per dataset",
		},
		[]string{"dataset"},
	)

	ViewDatasetLastUpdate = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "view_dataset_last_update_timestamp",
			Help: "Unix timestamp of the last applied result per dataset",
		},
		[]string{"dataset"},
	)

	ViewStaleResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_stale_responses_total",
			Help: "Responses discarded because a newer request was already dispatched",
		},
		[]string{"dataset"},
	)

	// Filter and Refresh Metrics
	FilterCommits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filter_commits_total",
			Help: "Total number of filter commits",
		},
		[]string{"action"}, // "apply", "clear"
	)

	RefreshRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refresh_requests_total",
			Help: "Total number of refresh requests",
		},
		[]string{"source", "result"}, // source: "manual", "poller"; result: "accepted", "throttled"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordBackendFetch records the outcome of one backend fetch. result is
// "success" or the failure kind.
func RecordBackendFetch(dataset, result string, duration time.Duration) {
	BackendFetchDuration.WithLabelValues(dataset).Observe(duration.Seconds())
	BackendFetchTotal.WithLabelValues(dataset, result).Inc()
}

// TrackFetchInFlight adjusts the outstanding fetch gauge for dataset.
func TrackFetchInFlight(dataset string, inc bool) {
	if inc {
		BackendFetchInFlight.WithLabelValues(dataset).Inc()
	} else {
		BackendFetchInFlight.WithLabelValues(dataset).Dec()
	}
}

// RecordDatasetApplied records that a fetched result replaced dataset.
func RecordDatasetApplied(dataset string, items int) {
	ViewDatasetItems.WithLabelValues(dataset).Set(float64(items))
	ViewDatasetLastUpdate.WithLabelValues(dataset).Set(float64(time.Now().Unix()))
}

// RecordStaleResponse counts a discarded out-of-order response.
func RecordStaleResponse(dataset string) {
	ViewStaleResponses.WithLabelValues(dataset).Inc()
}

// RecordFilterCommit counts an apply or clear.
func RecordFilterCommit(action string) {
	FilterCommits.WithLabelValues(action).Inc()
}

// RecordRefresh counts a refresh request and whether it was throttled.
func RecordRefresh(source string, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "throttled"
	}
	RefreshRequests.WithLabelValues(source, result).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
