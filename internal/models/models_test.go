// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package models

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestParseAssetType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  AssetType
		known bool
	}{
		{"VESSEL", AssetVessel, true},
		{" aircraft ", AssetAircraft, true},
		{"Vehicle", AssetVehicle, true},
		{"submarine", AssetType("SUBMARINE"), false},
		{"", AssetType(""), false},
	}

	for _, tt := range tests {
		got, known := ParseAssetType(tt.in)
		if got != tt.want || known != tt.known {
			t.Errorf("ParseAssetType(%q) = %q, %v; want %q, %v", tt.in, got, known, tt.want, tt.known)
		}
	}
}

func TestNormalizeCrossingType(t *testing.T) {
	t.Parallel()

	tests := map[string]CrossingType{
		"ENTRY":  CrossingEnter,
		"enter":  CrossingEnter,
		"EXIT":   CrossingExit,
		" exit ": CrossingExit,
		"hover":  CrossingType("HOVER"),
	}
	for in, want := range tests {
		if got := NormalizeCrossingType(in); got != want {
			t.Errorf("NormalizeCrossingType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00.123456",
		"2024-01-15T10:30",
		"2024-01-15 10:30:00",
		"2024-01-15",
	}
	for _, s := range valid {
		if _, ok := ParseTimestamp(s); !ok {
			t.Errorf("ParseTimestamp(%q) failed", s)
		}
	}
	for _, s := range []string{"", "yesterday", "2024-13-45"} {
		if _, ok := ParseTimestamp(s); ok {
			t.Errorf("ParseTimestamp(%q) should fail", s)
		}
	}
}

func TestFilterCriteria_CloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := FilterCriteria{AssetTypes: []AssetType{AssetVessel}, RegionID: "3"}
	cp := orig.Clone()
	cp.AssetTypes[0] = AssetVehicle
	cp.RegionID = "4"

	if orig.AssetTypes[0] != AssetVessel || orig.RegionID != "3" {
		t.Errorf("mutating clone changed original: %+v", orig)
	}
	if !orig.Equal(orig.Clone()) {
		t.Error("clone should equal original")
	}
}

func TestFilterCriteria_TimeRangeInverted(t *testing.T) {
	t.Parallel()

	c := FilterCriteria{StartTime: "2024-02-01T00:00", EndTime: "2024-01-01T00:00"}
	if !c.TimeRangeInverted() {
		t.Error("expected inverted range")
	}
	c.EndTime = ""
	if c.TimeRangeInverted() {
		t.Error("open range is never inverted")
	}
	if !(FilterCriteria{}).IsEmpty() {
		t.Error("zero criteria should be empty")
	}
}

func TestRegion_Contains(t *testing.T) {
	t.Parallel()

	r := Region{Boundary: orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	if !r.Contains(orb.Point{5, 5}) {
		t.Error("center should be inside")
	}
	if r.Contains(orb.Point{15, 5}) {
		t.Error("point east of ring should be outside")
	}
	if !r.Contains(orb.Point{10, 5}) {
		t.Error("point on an edge should be inside")
	}
	if (&Region{}).Contains(orb.Point{0, 0}) {
		t.Error("empty boundary contains nothing")
	}

	// concave ring: the notch between the arms is outside
	u := Region{Boundary: orb.Ring{{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}, {0, 0}}}
	if u.Contains(orb.Point{1.5, 2}) {
		t.Error("notch of a concave ring should be outside")
	}
	if !u.Contains(orb.Point{0.5, 2}) {
		t.Error("arm of a concave ring should be inside")
	}
}

func TestRegionAt(t *testing.T) {
	t.Parallel()

	regions := []Region{
		{ID: 1, Name: "West", Boundary: orb.Ring{{0, 0}, {5, 0}, {5, 5}, {0, 5}, {0, 0}}},
		{ID: 2, Name: "Wide", Boundary: orb.Ring{{0, 0}, {10, 0}, {10, 5}, {0, 5}, {0, 0}}},
	}

	tests := []struct {
		name   string
		point  orb.Point
		wantID int64
		wantOK bool
	}{
		{"first match wins", orb.Point{2, 2}, 1, true},
		{"only second", orb.Point{8, 2}, 2, true},
		{"outside all", orb.Point{20, 20}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := RegionAt(regions, tt.point)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && r.ID != tt.wantID {
				t.Errorf("region = %d, want %d", r.ID, tt.wantID)
			}
		})
	}

	if _, ok := RegionAt(nil, orb.Point{1, 1}); ok {
		t.Error("no regions should match nothing")
	}
}

func TestTrack_Bound(t *testing.T) {
	t.Parallel()

	var nilTrack *Track
	if _, ok := nilTrack.Bound(); ok {
		t.Error("nil track has no bound")
	}
	tr := &Track{Path: orb.LineString{{-75, 39}, {-74, 40}}}
	b, ok := tr.Bound()
	if !ok {
		t.Fatal("expected bound")
	}
	if b.Min != (orb.Point{-75, 39}) || b.Max != (orb.Point{-74, 40}) {
		t.Errorf("unexpected bound %+v", b)
	}
}
