// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package models

// FilterCriteria is the user's position filter.
//
// AssetTypes keeps selection order; an empty slice means every type.
// StartTime, EndTime and RegionID hold raw form values and are empty when
// absent. StartTime <= EndTime is expected but not enforced.
type FilterCriteria struct {
	AssetTypes []AssetType `json:"asset_types"`
	StartTime  string      `json:"start_time"`
	EndTime    string      `json:"end_time"`
	RegionID   string      `json:"region_id"`
}

// Clone returns a deep copy so the caller may mutate it freely.
func (c FilterCriteria) Clone() FilterCriteria {
	out := c
	out.AssetTypes = make([]AssetType, len(c.AssetTypes))
	copy(out.AssetTypes, c.AssetTypes)
	return out
}

// IsEmpty reports whether no criterion is set.
func (c FilterCriteria) IsEmpty() bool {
	return len(c.AssetTypes) == 0 && c.StartTime == "" && c.EndTime == "" && c.RegionID == ""
}

// HasAssetType reports whether t is selected.
func (c FilterCriteria) HasAssetType(t AssetType) bool {
	for _, s := range c.AssetTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Equal compares two criteria field by field, including asset type order.
func (c FilterCriteria) Equal(o FilterCriteria) bool {
	if c.StartTime != o.StartTime || c.EndTime != o.EndTime || c.RegionID != o.RegionID {
		return false
	}
	if len(c.AssetTypes) != len(o.AssetTypes) {
		return false
	}
	for i := range c.AssetTypes {
		if c.AssetTypes[i] != o.AssetTypes[i] {
			return false
		}
	}
	return true
}

// TimeRangeInverted reports whether both bounds are present, parse, and the
// start is after the end.
func (c FilterCriteria) TimeRangeInverted() bool {
	start, okStart := ParseTimestamp(c.StartTime)
	end, okEnd := ParseTimestamp(c.EndTime)
	return okStart && okEnd && start.After(end)
}
