// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

// Package query maps committed filter criteria onto the query parameters
// understood by the tracking backend.
package query

import (
	"net/url"
	"strconv"

	"github.com/tomtom215/assetwatch/internal/models"
)

// DefaultLimit is the number of positions requested when no limit is configured.
const DefaultLimit = 100

// Backend query parameter names.
const (
	ParamLimit     = "limit"
	ParamAssetType = "asset_type"
	ParamStartTime = "start_time"
	ParamEndTime   = "end_time"
	ParamRegionID  = "region_id"
	ParamAssetID   = "asset_id"
)

// Params is the typed form of a positions query. Empty string fields are
// omitted from the encoded query; Limit is always sent.
type Params struct {
	Limit     int
	AssetType models.AssetType
	StartTime string
	EndTime   string
	RegionID  string
}

// Build derives positions query parameters from committed criteria using
// DefaultLimit.
func Build(c models.FilterCriteria) Params {
	return BuildWithLimit(c, DefaultLimit)
}

// BuildWithLimit derives positions query parameters from committed criteria.
//
// Only the first selected asset type is sent; the backend filters on a
// single type and selecting several does not produce a union. A
// non-positive limit falls back to DefaultLimit.
func BuildWithLimit(c models.FilterCriteria, limit int) Params {
	if limit <= 0 {
		limit = DefaultLimit
	}
	p := Params{
		Limit:     limit,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		RegionID:  c.RegionID,
	}
	if len(c.AssetTypes) > 0 {
		p.AssetType = c.AssetTypes[0]
	}
	return p
}

// Values converts p to url.Values.
func (p Params) Values() url.Values {
	v := url.Values{}
	v.Set(ParamLimit, strconv.Itoa(p.Limit))
	setIf(v, ParamAssetType, string(p.AssetType))
	setIf(v, ParamStartTime, p.StartTime)
	setIf(v, ParamEndTime, p.EndTime)
	setIf(v, ParamRegionID, p.RegionID)
	return v
}

// Encode returns the URL-encoded query string, keys sorted.
func (p Params) Encode() string {
	return p.Values().Encode()
}

// TrackParams builds the optional time window accepted by the track endpoint.
func TrackParams(startTime, endTime string) url.Values {
	v := url.Values{}
	setIf(v, ParamStartTime, startTime)
	setIf(v, ParamEndTime, endTime)
	return v
}

// CrossingFilter narrows a crossings query.
type CrossingFilter struct {
	AssetID   string
	RegionID  string
	StartTime string
	EndTime   string
}

// CrossingParams builds a crossings query. A non-positive limit is omitted
// and the backend default applies.
func CrossingParams(limit int, f CrossingFilter) url.Values {
	v := url.Values{}
	if limit > 0 {
		v.Set(ParamLimit, strconv.Itoa(limit))
	}
	setIf(v, ParamAssetID, f.AssetID)
	setIf(v, ParamRegionID, f.RegionID)
	setIf(v, ParamStartTime, f.StartTime)
	setIf(v, ParamEndTime, f.EndTime)
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
