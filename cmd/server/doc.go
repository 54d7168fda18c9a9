// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package main is the entry point for the assetwatch server.

Assetwatch keeps an asset-tracking map view in sync with a tracking
backend. It holds the filter bar state, fetches positions, regions,
boundary crossings and asset tracks over the backend's REST API, and
serves the projected map layers (region polygons, markers, the selected
track, the positions table and the alerts panel) as JSON.

# Process Layout

	assetwatch (root supervisor)
	├── sync-layer
	│   ├── sync-coordinator   mount fetches on start, cancels fetches on stop
	│   └── positions-poller   only when POLL_INTERVAL > 0
	└── api-layer
	    └── view-api           chi router on HTTP_HOST:HTTP_PORT

# Configuration

Configuration is layered with Koanf v2 (highest priority wins):
  - Environment variables
  - Config file (CONFIG_PATH, or ./config.yaml)
  - Built-in defaults

Common settings:

	BACKEND_URL=http://localhost:8000   tracking backend origin
	ORDERED_RESPONSES=false             true discards out-of-order responses
	POLL_INTERVAL=0s                    periodic positions refresh
	BACKEND_CIRCUIT_BREAKER=false       reject calls while the backend is failing
	LOG_LEVEL=info LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
within HTTP_SHUTDOWN_TIMEOUT and outstanding backend fetches are
cancelled.
*/
package main
