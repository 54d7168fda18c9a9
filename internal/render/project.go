// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/tomtom215/assetwatch/internal/models"
	"github.com/tomtom215/assetwatch/internal/view"
)

// DisplayLayout formats timestamps for display.
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// AllRegionsLabel is the first entry of the region select box.
const AllRegionsLabel = "All Regions"

// Options configures a projection.
type Options struct {
	// OnMarkerClick receives the asset id of a clicked marker.
	OnMarkerClick func(assetID string)

	DefaultCenter LatLng
	DefaultZoom   int
	SelectZoom    int

	// Location is the display time zone. Nil means time.Local.
	Location *time.Location
}

// DefaultOptions returns the stock map view.
func DefaultOptions() Options {
	return Options{
		DefaultCenter: LatLng{39.8283, -98.5795},
		DefaultZoom:   4,
		SelectZoom:    10,
	}
}

// Project derives the render layers from a view snapshot. It does not
// modify the snapshot.
func Project(snap view.Snapshot, opts Options) Layers {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	layers := Layers{
		View:          Center{At: opts.DefaultCenter, Zoom: opts.DefaultZoom},
		Regions:       make([]Polygon, 0, len(snap.Regions)),
		Markers:       make([]Marker, 0, len(snap.Positions)),
		Rows:          make([]Row, 0, len(snap.Positions)),
		RegionOptions: RegionOptions(snap.Regions),
		Alerts:        projectAlerts(snap, loc),
		Status:        make(map[string]DatasetStatus, len(view.Datasets)),
	}

	for _, r := range snap.Regions {
		layers.Regions = append(layers.Regions, Polygon{
			RegionID: r.ID,
			Name:     r.Name,
			Vertices: ringToLatLng(r.Boundary),
			Style:    RegionStyle,
		})
	}

	var selectedID int64
	hasSelected := snap.SelectedPosition != nil
	if hasSelected {
		selectedID = snap.SelectedPosition.ID
	}

	for _, p := range snap.Positions {
		var region string
		if r, ok := models.RegionAt(snap.Regions, orb.Point{p.Longitude, p.Latitude}); ok {
			region = r.Name
		}
		layers.Markers = append(layers.Markers, Marker{
			ID:        p.ID,
			AssetID:   p.AssetID,
			AssetType: p.AssetType,
			At:        LatLng{p.Latitude, p.Longitude},
			Icon:      IconFor(p.AssetType),
			Popup:     p.AssetID + " - " + string(p.AssetType),
			Selected:  p.AssetID == snap.SelectedAssetID && snap.SelectedAssetID != "",
			OnClick:   opts.OnMarkerClick,
		})
		layers.Rows = append(layers.Rows, Row{
			ID:         p.ID,
			AssetID:    p.AssetID,
			AssetType:  p.AssetType,
			Time:       DisplayTime(p.Timestamp, loc),
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			SpeedKnots: p.SpeedKnots,
			Region:     region,
			Selected:   hasSelected && p.ID == selectedID,
		})
	}

	if tr := snap.SelectedTrack; tr != nil {
		line := &Polyline{
			AssetID: tr.AssetID,
			Path:    lineToLatLng(tr.Path),
			Style:   TrackStyle,
		}
		if b, ok := tr.Bound(); ok {
			line.Bounds = boundToLatLng(b)
		}
		layers.Track = line
	}

	if sp := snap.SelectedPosition; sp != nil {
		layers.CenterOn = &Center{
			At:   LatLng{sp.Latitude, sp.Longitude},
			Zoom: opts.SelectZoom,
		}
	}

	for _, d := range view.Datasets {
		st := snap.StatusOf(d)
		layers.Status[string(d)] = DatasetStatus{
			Phase:      string(st.Phase()),
			Refreshing: st.Refreshing(),
			Count:      st.Count,
			Error:      st.LastError,
		}
	}

	return layers
}

// RegionOptions lists the region filter choices, "All Regions" first.
func RegionOptions(regions []models.Region) []Option {
	opts := make([]Option, 0, len(regions)+1)
	opts = append(opts, Option{Value: "", Label: AllRegionsLabel})
	for _, r := range regions {
		opts = append(opts, Option{Value: strconv.FormatInt(r.ID, 10), Label: r.Name})
	}
	return opts
}

// DisplayTime renders an ISO-8601 timestamp in loc. Unparseable input is
// returned unchanged.
func DisplayTime(ts string, loc *time.Location) string {
	t, ok := models.ParseTimestamp(ts)
	if !ok {
		return ts
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayLayout)
}

// AlertText is the display line for a crossing.
func AlertText(c models.Crossing, loc *time.Location) string {
	return fmt.Sprintf("%s %s region %d at %s", c.AssetID, c.CrossingType, c.RegionID, DisplayTime(c.CrossingTime, loc))
}

func projectAlerts(snap view.Snapshot, loc *time.Location) AlertsPanel {
	st := snap.StatusOf(view.Crossings)
	panel := AlertsPanel{
		Title: AlertsTitle,
		Lines: make([]AlertLine, 0, len(snap.Crossings)),
	}

	if !st.Loaded {
		if st.Phase() == view.PhaseFailed {
			panel.State, panel.Message = AlertsFailed, AlertsFailedMessage
		} else {
			panel.State, panel.Message = AlertsLoading, AlertsLoadingMessage
		}
		return panel
	}

	panel.Stale = st.LastError != ""
	if len(snap.Crossings) == 0 {
		panel.State, panel.Message = AlertsEmpty, AlertsEmptyMessage
		return panel
	}

	panel.State = AlertsReady
	for _, c := range snap.Crossings {
		panel.Lines = append(panel.Lines, AlertLine{
			ID:           c.ID,
			AssetID:      c.AssetID,
			CrossingType: c.CrossingType,
			RegionID:     c.RegionID,
			Time:         DisplayTime(c.CrossingTime, loc),
			Text:         AlertText(c, loc),
			Class:        "crossing-" + strings.ToLower(string(c.CrossingType)),
		})
	}
	return panel
}

// ringToLatLng swaps storage order (lon, lat) to render order. The ring's
// closing vertex is kept.
func ringToLatLng(r orb.Ring) []LatLng {
	out := make([]LatLng, len(r))
	for i, p := range r {
		out[i] = LatLng{p.Lat(), p.Lon()}
	}
	return out
}

func lineToLatLng(ls orb.LineString) []LatLng {
	out := make([]LatLng, len(ls))
	for i, p := range ls {
		out[i] = LatLng{p.Lat(), p.Lon()}
	}
	return out
}

// boundToLatLng returns the south-west and north-east corners.
func boundToLatLng(b orb.Bound) [2]LatLng {
	return [2]LatLng{
		{b.Min.Lat(), b.Min.Lon()},
		{b.Max.Lat(), b.Max.Lon()},
	}
}
