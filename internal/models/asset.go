// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package models

import "strings"

// AssetType identifies the kind of tracked asset.
//
// The set is closed: VESSEL, AIRCRAFT and VEHICLE. Values outside the set
// can still arrive from the backend; they are kept verbatim so nothing is
// lost on decode, and Known reports false for them.
type AssetType string

const (
	AssetVessel   AssetType = "VESSEL"
	AssetAircraft AssetType = "AIRCRAFT"
	AssetVehicle  AssetType = "VEHICLE"
)

// AssetTypes lists the known asset types in display order.
var AssetTypes = []AssetType{AssetVessel, AssetAircraft, AssetVehicle}

// Known reports whether t is one of the enumerated asset types.
func (t AssetType) Known() bool {
	switch t {
	case AssetVessel, AssetAircraft, AssetVehicle:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t AssetType) String() string {
	return string(t)
}

// ParseAssetType normalizes s (case-insensitive, surrounding space ignored)
// and reports whether the result is a known asset type.
func ParseAssetType(s string) (AssetType, bool) {
	t := AssetType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Known()
}

// CrossingType is the direction of a region boundary crossing.
type CrossingType string

const (
	CrossingEnter CrossingType = "ENTER"
	CrossingExit  CrossingType = "EXIT"
)

// NormalizeCrossingType maps backend spellings onto CrossingType.
// The backend records entries as "ENTRY"; both spellings mean ENTER.
// Unrecognized values are returned upper-cased and otherwise untouched.
func NormalizeCrossingType(s string) CrossingType {
	switch v := strings.ToUpper(strings.TrimSpace(s)); v {
	case "ENTER", "ENTRY":
		return CrossingEnter
	case "EXIT":
		return CrossingExit
	default:
		return CrossingType(v)
	}
}
