// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package backend is the HTTP client for the tracking backend.

Endpoints consumed:

	GET  /api/positions?limit&asset_type&start_time&end_time&region_id  -> {count, positions}
	GET  /api/positions/{assetID}/track[?start_time&end_time]           -> track
	GET  /api/regions                                                   -> [region]
	GET  /api/crossings?limit=N                                         -> [crossing]
	POST /api/positions                                                 -> created position

Each operation issues exactly one request and returns either the parsed
result or a *FetchError whose Kind is network, http or decode. There are no
retries. Superseded requests are not cancelled; deciding which response wins
is the caller's job.

The base URL comes from configuration. A CircuitBreakerClient can be layered
on top when enabled; it rejects calls while open and otherwise passes results
through unchanged.
*/
package backend
