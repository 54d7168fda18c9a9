// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package coordinator keeps the view state in sync with the backend.

Triggers and the fetches they cause:

	Activate (once)        regions, crossings, positions
	filter Apply / Clear   positions for the committed criteria
	SelectAsset            track of the clicked asset
	SelectPosition         none
	Refresh                positions (rate limited)
	RefreshAlerts          crossings (rate limited)
	Poller tick            positions, skipped while one is outstanding

Each fetch runs on its own goroutine and applies its result to the view
state in a single step. Failures are recorded per dataset and never clear
existing data. Nothing is retried.
*/
package coordinator
