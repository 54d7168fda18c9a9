// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package models defines the domain values shared by every Assetwatch package:
positions, regions, crossings, tracks and the user's filter criteria.

Geometry follows storage order (longitude, latitude) using paulmach/orb
types. Conversion to the (latitude, longitude) order expected by map
renderers happens only in the render package.

Values received from the backend are treated as immutable. Enumerations are
closed (AssetType, CrossingType) but unknown values are kept verbatim rather
than rejected.
*/
package models
