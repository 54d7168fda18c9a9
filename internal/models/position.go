// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package models

import (
	"strings"
	"time"
)

// Position is a single reported location of an asset.
//
// Positions are produced by the backend and never modified after decode.
// Timestamp keeps the ISO-8601 text the backend sent; it is parsed only
// for display (see ParseTimestamp) and never compared.
type Position struct {
	ID         int64     `json:"id"`
	AssetID    string    `json:"asset_id"`
	AssetType  AssetType `json:"asset_type"`
	Timestamp  string    `json:"timestamp"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	SpeedKnots *float64  `json:"speed_knots,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
}

// NewPosition is the payload accepted by the backend's position write path.
type NewPosition struct {
	AssetID    string                 `json:"asset_id" validate:"required,max=50"`
	AssetType  AssetType              `json:"asset_type" validate:"required,assettype"`
	Timestamp  string                 `json:"timestamp" validate:"required,iso8601"`
	Latitude   float64                `json:"latitude" validate:"latitude"`
	Longitude  float64                `json:"longitude" validate:"longitude"`
	SpeedKnots *float64               `json:"speed_knots,omitempty"`
	Heading    *float64               `json:"heading,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// CreatedPosition is the backend's answer to a position write, including any
// region crossings the new position caused.
type CreatedPosition struct {
	ID              int64                 `json:"id"`
	AssetID         string                `json:"asset_id"`
	Timestamp       string                `json:"timestamp"`
	RegionCrossings []PositionRegionEvent `json:"region_crossings"`
}

// PositionRegionEvent is one crossing reported with a created position.
type PositionRegionEvent struct {
	RegionID     int64        `json:"region_id"`
	RegionName   string       `json:"region_name"`
	CrossingType CrossingType `json:"crossing_type"`
}

// timestampLayouts are the ISO-8601 forms seen from the backend and from
// datetime-local form inputs. Zone-less forms are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp in any of the accepted layouts.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
