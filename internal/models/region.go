// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package models

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Region is a named polygonal boundary used as a map overlay and as a
// position filter. Boundary is the outer ring in storage order (lon, lat),
// closed so that the first and last vertices are equal.
type Region struct {
	ID         int64
	Name       string
	RegionType string
	Boundary   orb.Ring
	Properties map[string]interface{}
}

// Contains reports whether the point (lon, lat) lies inside the region's
// outer ring or on its edge.
func (r *Region) Contains(p orb.Point) bool {
	if len(r.Boundary) < 4 || !r.Boundary.Bound().Contains(p) {
		return false
	}
	return planar.RingContains(r.Boundary, p)
}

// RegionAt returns the first region in regions whose boundary contains p.
func RegionAt(regions []Region, p orb.Point) (*Region, bool) {
	for i := range regions {
		if regions[i].Contains(p) {
			return &regions[i], true
		}
	}
	return nil, false
}
