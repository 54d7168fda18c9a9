// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package middleware provides the HTTP middleware shared by the view API.

  - RequestID: request and correlation ids for logging
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - Compression: gzip for clients that accept it

All middleware use the func(http.Handler) http.Handler shape so they plug
straight into chi's r.Use and r.With.
*/
package middleware
