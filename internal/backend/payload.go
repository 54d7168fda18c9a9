// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package backend

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/assetwatch/internal/models"
)

// Wire shapes of the backend responses. Geometry fields are GeoJSON and are
// decoded with orb/geojson, then flattened into the domain types.

// positionsEnvelope keeps Positions as a pointer so a body without the key
// can be told apart from an empty result.
type positionsEnvelope struct {
	Count     int                `json:"count"`
	Positions *[]models.Position `json:"positions"`
}

type regionPayload struct {
	ID         int64                  `json:"id"`
	Name       string                 `json:"name"`
	RegionType string                 `json:"region_type"`
	Boundary   *geojson.Geometry      `json:"boundary"`
	Properties map[string]interface{} `json:"properties"`
}

type crossingPayload struct {
	ID           int64             `json:"id"`
	AssetID      string            `json:"asset_id"`
	RegionID     int64             `json:"region_id"`
	CrossingType string            `json:"crossing_type"`
	CrossingTime string            `json:"crossing_time"`
	Position     *geojson.Geometry `json:"position"`
}

// trackPayload accepts both the GeoJSON form {track: LineString} and the
// plain form {asset_id, path: [[lon, lat], ...]}.
type trackPayload struct {
	AssetID    string            `json:"asset_id"`
	AssetType  models.AssetType  `json:"asset_type"`
	PointCount int               `json:"point_count"`
	Track      *geojson.Geometry `json:"track"`
	Path       orb.LineString    `json:"path"`
}

func (p *regionPayload) toModel() (models.Region, error) {
	r := models.Region{
		ID:         p.ID,
		Name:       p.Name,
		RegionType: p.RegionType,
		Properties: p.Properties,
	}
	if p.Boundary == nil {
		return r, nil
	}
	ring, err := outerRing(p.Boundary.Geometry())
	if err != nil {
		return r, fmt.Errorf("region %d boundary: %w", p.ID, err)
	}
	r.Boundary = ring
	return r, nil
}

// outerRing extracts coordinates[0] of a Polygon. For a MultiPolygon the
// first polygon's outer ring is used.
func outerRing(g orb.Geometry) (orb.Ring, error) {
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) == 0 {
			return nil, nil
		}
		return geom[0], nil
	case orb.MultiPolygon:
		if len(geom) == 0 || len(geom[0]) == 0 {
			return nil, nil
		}
		return geom[0][0], nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("expected Polygon, got %s", geom.GeoJSONType())
	}
}

func (p *crossingPayload) toModel() models.Crossing {
	c := models.Crossing{
		ID:           p.ID,
		AssetID:      p.AssetID,
		RegionID:     p.RegionID,
		CrossingType: models.NormalizeCrossingType(p.CrossingType),
		CrossingTime: p.CrossingTime,
	}
	if p.Position != nil {
		if pt, ok := p.Position.Geometry().(orb.Point); ok {
			c.Position = &pt
		}
	}
	return c
}

func (p *trackPayload) toModel(assetID string) (*models.Track, error) {
	t := &models.Track{
		AssetID:    p.AssetID,
		AssetType:  p.AssetType,
		PointCount: p.PointCount,
		Path:       p.Path,
	}
	if t.AssetID == "" {
		t.AssetID = assetID
	}
	if p.Track != nil {
		switch geom := p.Track.Geometry().(type) {
		case orb.LineString:
			t.Path = geom
		case orb.MultiPoint:
			t.Path = orb.LineString(geom)
		case orb.Point:
			t.Path = orb.LineString{geom}
		case nil:
		default:
			return nil, fmt.Errorf("track geometry: expected LineString, got %s", geom.GeoJSONType())
		}
	}
	if t.PointCount == 0 {
		t.PointCount = len(t.Path)
	}
	return t, nil
}
