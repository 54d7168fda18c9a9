// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package api serves the map view over HTTP using the Chi router.

Routes:

	GET   /api/v1/view                                 projected layers
	GET   /api/v1/filters                              pending and committed criteria
	PATCH /api/v1/filters/pending                      {field, value} edit
	POST  /api/v1/filters/pending/asset-types/{type}   toggle an asset type
	POST  /api/v1/filters/apply                        commit and fetch positions
	POST  /api/v1/filters/clear                        reset and fetch positions
	POST  /api/v1/markers/{assetID}/click              select asset, fetch track
	POST  /api/v1/rows/{positionID}/select             select a table row
	POST  /api/v1/refresh                              refetch positions
	POST  /api/v1/alerts/refresh                       refetch crossings
	GET   /api/v1/alerts/filter                        current crossings filter
	PUT   /api/v1/alerts/filter                        replace filter, refetch crossings
	POST  /api/v1/positions                            forward a position report
	GET   /api/v1/health/live, /api/v1/health/ready
	GET   /metrics                                     Prometheus

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "...", "request_id": "..."}}

Endpoints that trigger fetches answer 202 Accepted; the result shows up in
a later GET /api/v1/view.
*/
package api
