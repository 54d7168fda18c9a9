// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package metrics provides Prometheus instrumentation for Assetwatch.

Metrics are registered on the default registry through promauto and exposed
by the API router at /metrics via promhttp.

Metric Families:

  - backend_fetch_*: per-dataset fetch latency, outcome and in-flight count
  - view_dataset_*: current item counts and last update time per dataset
  - view_stale_responses_total: responses dropped in ordered mode
  - filter_commits_total, refresh_requests_total: user actions
  - api_*: view API latency and throughput
  - circuit_breaker_*: backend circuit breaker state

Datasets are labelled "positions", "regions", "crossings" and "track".

Example alert:

	- alert: BackendFetchesFailing
	  expr: sum(rate(backend_fetch_total{result!="success"}[5m])) > 0.5
	  for: 10m
*/
package metrics
