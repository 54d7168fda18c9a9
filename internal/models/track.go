// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package models

import "github.com/paulmach/orb"

// Track is the historical path of one asset, oldest point first.
// Path vertices are in storage order (lon, lat).
type Track struct {
	AssetID    string
	AssetType  AssetType
	PointCount int
	Path       orb.LineString
}

// Bound returns the bounding box of the path. ok is false for an empty path.
func (t *Track) Bound() (b orb.Bound, ok bool) {
	if t == nil || len(t.Path) == 0 {
		return orb.Bound{}, false
	}
	return t.Path.Bound(), true
}
