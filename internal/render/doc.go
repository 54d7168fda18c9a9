// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

// Package render projects a view snapshot into map layers, table rows and
// the alerts panel. Geometry is stored longitude first and emitted
// latitude first. Projection is pure: no fetches, no state changes.
package render
