// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package models

import "github.com/paulmach/orb"

// Crossing records an asset entering or leaving a region.
type Crossing struct {
	ID           int64
	AssetID      string
	RegionID     int64
	CrossingType CrossingType
	CrossingTime string

	// Position is where the crossing was detected, when the backend reports it.
	Position *orb.Point
}
