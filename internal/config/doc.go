// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package config loads Assetwatch configuration with koanf.

Sources, lowest to highest precedence:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, config.yaml, config.yml, /etc/assetwatch/config.yaml
 3. Environment variables listed in envMappings

Example config.yaml:

	backend:
	  base_url: http://tracking.internal:8000
	  timeout: 10s
	  positions_limit: 250
	sync:
	  ordered_responses: true
	  poll_interval: 30s
	map:
	  center_latitude: 51.5
	  center_longitude: -0.12

Environment Variables:

  - BACKEND_URL, BACKEND_TIMEOUT, POSITIONS_LIMIT, CROSSINGS_LIMIT
  - BACKEND_CIRCUIT_BREAKER (true/false)
  - ORDERED_RESPONSES, POLL_INTERVAL, REFRESH_RATE, REFRESH_BURST
  - MAP_CENTER_LATITUDE, MAP_CENTER_LONGITUDE, MAP_ZOOM, MAP_SELECT_ZOOM, TZ_DISPLAY
  - HTTP_HOST, HTTP_PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

The backend request timeout defaults to zero (none); a stalled backend then
leaves the affected dataset in its loading state rather than failing it.
*/
package config
