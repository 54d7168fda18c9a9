// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package render

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/paulmach/orb"

	"github.com/tomtom215/assetwatch/internal/models"
	"github.com/tomtom215/assetwatch/internal/view"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Location = time.UTC
	return opts
}

func loaded(s *view.State, positions []models.Position, regions []models.Region, crossings []models.Crossing) {
	s.ApplyPositions(s.Begin(view.Positions), positions)
	s.ApplyRegions(s.Begin(view.Regions), regions)
	s.ApplyCrossings(s.Begin(view.Crossings), crossings)
}

func TestProject_RegionCoordinateSwap(t *testing.T) {
	s := view.New(false)
	ring := orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	loaded(s, nil, []models.Region{{ID: 1, Name: "Square", Boundary: ring}}, nil)

	layers := Project(s.Snapshot(), testOptions())

	if len(layers.Regions) != 1 {
		t.Fatalf("regions = %d, want 1", len(layers.Regions))
	}
	want := []LatLng{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	if got := layers.Regions[0].Vertices; !reflect.DeepEqual(got, want) {
		t.Errorf("vertices = %v, want %v", got, want)
	}
	if layers.Regions[0].Style != RegionStyle {
		t.Errorf("style = %+v", layers.Regions[0].Style)
	}
}

func TestProject_RowOrderMatchesFetchOrder(t *testing.T) {
	s := view.New(false)
	ps := []models.Position{
		{ID: 30, AssetID: "C", AssetType: models.AssetVehicle, Timestamp: "2024-03-01T12:00:00Z"},
		{ID: 10, AssetID: "A", AssetType: models.AssetVessel, Timestamp: "2024-03-01T10:00:00Z"},
		{ID: 20, AssetID: "B", AssetType: models.AssetAircraft, Timestamp: "2024-03-01T11:00:00Z"},
	}
	loaded(s, ps, nil, nil)

	layers := Project(s.Snapshot(), testOptions())

	var ids []int64
	for _, r := range layers.Rows {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []int64{30, 10, 20}) {
		t.Errorf("row ids = %v, want fetch order", ids)
	}
	if got := layers.Rows[1].Time; got != "3/1/2024, 10:00:00 AM" {
		t.Errorf("row time = %q", got)
	}
}

func TestProject_RowRegion(t *testing.T) {
	s := view.New(false)
	harbor := orb.Ring{{-74.1, 40.6}, {-73.9, 40.6}, {-73.9, 40.8}, {-74.1, 40.8}, {-74.1, 40.6}}
	bay := orb.Ring{{-74.2, 40.5}, {-73.8, 40.5}, {-73.8, 40.9}, {-74.2, 40.9}, {-74.2, 40.5}}
	regions := []models.Region{
		{ID: 1, Name: "Harbor", Boundary: harbor},
		{ID: 2, Name: "Bay", Boundary: bay},
	}
	ps := []models.Position{
		{ID: 1, AssetID: "V1", Latitude: 40.7, Longitude: -74.0},
		{ID: 2, AssetID: "V2", Latitude: 40.55, Longitude: -74.15},
		{ID: 3, AssetID: "V3", Latitude: 10, Longitude: 10},
	}
	loaded(s, ps, regions, nil)

	layers := Project(s.Snapshot(), testOptions())

	want := []string{"Harbor", "Bay", ""}
	for i, row := range layers.Rows {
		if row.Region != want[i] {
			t.Errorf("row %d region = %q, want %q", row.ID, row.Region, want[i])
		}
	}
}

func TestProject_Markers(t *testing.T) {
	s := view.New(false)
	ps := []models.Position{
		{ID: 1, AssetID: "V1", AssetType: models.AssetVessel, Latitude: 42.1, Longitude: -70.5},
		{ID: 2, AssetID: "X1", AssetType: models.AssetType("SUBMARINE"), Latitude: 1, Longitude: 2},
	}
	loaded(s, ps, nil, nil)

	var clicked []string
	opts := testOptions()
	opts.OnMarkerClick = func(id string) { clicked = append(clicked, id) }

	layers := Project(s.Snapshot(), opts)

	if len(layers.Markers) != 2 {
		t.Fatalf("markers = %d", len(layers.Markers))
	}
	m := layers.Markers[0]
	if m.At != (LatLng{42.1, -70.5}) {
		t.Errorf("marker at = %v", m.At)
	}
	if m.Icon != IconVessel {
		t.Errorf("icon = %+v", m.Icon)
	}
	if m.Popup != "V1 - VESSEL" {
		t.Errorf("popup = %q", m.Popup)
	}
	if layers.Markers[1].Icon != IconDefault {
		t.Errorf("unknown type icon = %s, want default", layers.Markers[1].Icon.Name)
	}

	m.Click()
	layers.Markers[1].Click()
	if !reflect.DeepEqual(clicked, []string{"V1", "X1"}) {
		t.Errorf("clicked = %v", clicked)
	}
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		in   models.AssetType
		want string
	}{
		{models.AssetVessel, "blue"},
		{models.AssetAircraft, "red"},
		{models.AssetVehicle, "green"},
		{models.AssetType(""), "default"},
		{models.AssetType("vessel"), "default"},
	}
	for _, tt := range tests {
		if got := IconFor(tt.in).Name; got != tt.want {
			t.Errorf("IconFor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if !strings.HasSuffix(IconVessel.URL, "marker-icon-blue.png") {
		t.Errorf("vessel url = %s", IconVessel.URL)
	}
}

func TestProject_TrackAndCenter(t *testing.T) {
	s := view.New(false)
	loaded(s, []models.Position{{ID: 5, AssetID: "V1", AssetType: models.AssetVessel, Latitude: 42, Longitude: -71}}, nil, nil)
	s.SelectAsset("V1")
	s.ApplyTrack(s.Begin(view.Track), &models.Track{
		AssetID: "V1",
		Path:    orb.LineString{{-71, 42}, {-70, 43}},
	})
	if _, ok := s.SelectPosition(5); !ok {
		t.Fatal("SelectPosition(5) failed")
	}

	layers := Project(s.Snapshot(), testOptions())

	if layers.Track == nil {
		t.Fatal("track missing")
	}
	if want := []LatLng{{42, -71}, {43, -70}}; !reflect.DeepEqual(layers.Track.Path, want) {
		t.Errorf("path = %v, want %v", layers.Track.Path, want)
	}
	if want := [2]LatLng{{42, -71}, {43, -70}}; layers.Track.Bounds != want {
		t.Errorf("bounds = %v, want %v", layers.Track.Bounds, want)
	}
	if layers.Track.Style != TrackStyle {
		t.Errorf("track style = %+v", layers.Track.Style)
	}

	if layers.CenterOn == nil || layers.CenterOn.At != (LatLng{42, -71}) || layers.CenterOn.Zoom != 10 {
		t.Errorf("center on = %+v", layers.CenterOn)
	}
	if !layers.Rows[0].Selected || !layers.Markers[0].Selected {
		t.Error("selected row and marker should be flagged")
	}
	if layers.View.Zoom != 4 || layers.View.At != (LatLng{39.8283, -98.5795}) {
		t.Errorf("default view = %+v", layers.View)
	}
}

func TestProject_NoSelection(t *testing.T) {
	layers := Project(view.New(false).Snapshot(), testOptions())
	if layers.Track != nil || layers.CenterOn != nil {
		t.Error("empty snapshot should have no track or center instruction")
	}
	if layers.Markers == nil || layers.Rows == nil || layers.Regions == nil {
		t.Error("layer slices should be non-nil")
	}
}

func TestProject_AlertsStates(t *testing.T) {
	crossing := models.Crossing{
		ID:           1,
		AssetID:      "V1",
		RegionID:     3,
		CrossingType: models.CrossingEnter,
		CrossingTime: "2024-03-01T10:00:00Z",
	}

	t.Run("not yet loaded", func(t *testing.T) {
		s := view.New(false)
		s.Begin(view.Crossings)
		panel := Project(s.Snapshot(), testOptions()).Alerts
		if panel.State != AlertsLoading || panel.Message != AlertsLoadingMessage {
			t.Errorf("panel = %+v", panel)
		}
	})

	t.Run("failed before any load", func(t *testing.T) {
		s := view.New(false)
		s.Fail(s.Begin(view.Crossings), errors.New("boom"))
		panel := Project(s.Snapshot(), testOptions()).Alerts
		if panel.State != AlertsFailed || panel.Message != AlertsFailedMessage {
			t.Errorf("panel = %+v", panel)
		}
	})

	t.Run("loaded empty", func(t *testing.T) {
		s := view.New(false)
		s.ApplyCrossings(s.Begin(view.Crossings), []models.Crossing{})
		panel := Project(s.Snapshot(), testOptions()).Alerts
		if panel.State != AlertsEmpty || panel.Message != AlertsEmptyMessage {
			t.Errorf("panel = %+v", panel)
		}
		if len(panel.Lines) != 0 {
			t.Errorf("lines = %v", panel.Lines)
		}
	})

	t.Run("one crossing", func(t *testing.T) {
		s := view.New(false)
		s.ApplyCrossings(s.Begin(view.Crossings), []models.Crossing{crossing})
		panel := Project(s.Snapshot(), testOptions()).Alerts
		if panel.State != AlertsReady || len(panel.Lines) != 1 {
			t.Fatalf("panel = %+v", panel)
		}
		line := panel.Lines[0]
		for _, part := range []string{"V1", "ENTER", "region 3"} {
			if !strings.Contains(line.Text, part) {
				t.Errorf("line %q missing %q", line.Text, part)
			}
		}
		if line.Class != "crossing-enter" {
			t.Errorf("class = %q", line.Class)
		}
	})

	t.Run("refresh failed after load", func(t *testing.T) {
		s := view.New(false)
		s.ApplyCrossings(s.Begin(view.Crossings), []models.Crossing{crossing})
		s.Fail(s.Begin(view.Crossings), errors.New("boom"))
		panel := Project(s.Snapshot(), testOptions()).Alerts
		if panel.State != AlertsReady || !panel.Stale || len(panel.Lines) != 1 {
			t.Errorf("panel = %+v", panel)
		}
	})
}

func TestRegionOptions(t *testing.T) {
	got := RegionOptions([]models.Region{{ID: 2, Name: "Harbor"}, {ID: 7, Name: "Airfield"}})
	want := []Option{{"", AllRegionsLabel}, {"2", "Harbor"}, {"7", "Airfield"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("options = %v, want %v", got, want)
	}
}

func TestDisplayTime(t *testing.T) {
	if got := DisplayTime("not a time", time.UTC); got != "not a time" {
		t.Errorf("unparseable = %q", got)
	}
	est := time.FixedZone("EST", -5*3600)
	if got := DisplayTime("2024-03-01T15:30:00Z", est); got != "3/1/2024, 10:30:00 AM" {
		t.Errorf("DisplayTime = %q", got)
	}
}

func TestProject_DoesNotMutateSnapshot(t *testing.T) {
	s := view.New(false)
	ring := orb.Ring{{0, 0}, {0, 1}, {1, 1}, {0, 0}}
	loaded(s, nil, []models.Region{{ID: 1, Boundary: ring}}, nil)
	snap := s.Snapshot()

	Project(snap, testOptions())

	if !reflect.DeepEqual(snap.Regions[0].Boundary, ring) {
		t.Errorf("boundary mutated: %v", snap.Regions[0].Boundary)
	}
}
