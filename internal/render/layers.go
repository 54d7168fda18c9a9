// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package render

import (
	"github.com/tomtom215/assetwatch/internal/models"
)

// LatLng is a point in render order: latitude first.
type LatLng [2]float64

// Lat returns the latitude.
func (p LatLng) Lat() float64 { return p[0] }

// Lon returns the longitude.
func (p LatLng) Lon() float64 { return p[1] }

// Style carries the vector-layer drawing options.
type Style struct {
	Color       string  `json:"color"`
	Weight      int     `json:"weight,omitempty"`
	FillOpacity float64 `json:"fill_opacity,omitempty"`
}

var (
	// RegionStyle draws region overlays.
	RegionStyle = Style{Color: "blue", FillOpacity: 0.1}
	// TrackStyle draws the selected asset's track.
	TrackStyle = Style{Color: "red", Weight: 3}
)

// Center is a map view instruction.
type Center struct {
	At   LatLng `json:"at"`
	Zoom int    `json:"zoom"`
}

// Polygon is a region overlay.
type Polygon struct {
	RegionID int64    `json:"region_id"`
	Name     string   `json:"name"`
	Vertices []LatLng `json:"vertices"`
	Style    Style    `json:"style"`
}

// Marker is one asset position on the map.
type Marker struct {
	ID        int64            `json:"id"`
	AssetID   string           `json:"asset_id"`
	AssetType models.AssetType `json:"asset_type"`
	At        LatLng           `json:"at"`
	Icon      Icon             `json:"icon"`
	Popup     string           `json:"popup"`
	Selected  bool             `json:"selected,omitempty"`

	OnClick func(assetID string) `json:"-"`
}

// Click reports the marker's asset id to its handler, if any.
func (m Marker) Click() {
	if m.OnClick != nil {
		m.OnClick(m.AssetID)
	}
}

// Polyline is the selected asset's historical track.
type Polyline struct {
	AssetID string    `json:"asset_id"`
	Path    []LatLng  `json:"path"`
	Bounds  [2]LatLng `json:"bounds"`
	Style   Style     `json:"style"`
}

// Row is one line of the positions table.
type Row struct {
	ID         int64            `json:"id"`
	AssetID    string           `json:"asset_id"`
	AssetType  models.AssetType `json:"asset_type"`
	Time       string           `json:"time"`
	Latitude   float64          `json:"latitude"`
	Longitude  float64          `json:"longitude"`
	SpeedKnots *float64         `json:"speed_knots,omitempty"`
	// Region names the first loaded region containing the position.
	Region   string `json:"region,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

// AlertsState is the display state of the crossings panel.
type AlertsState string

const (
	AlertsLoading AlertsState = "loading"
	AlertsFailed  AlertsState = "failed"
	AlertsEmpty   AlertsState = "empty"
	AlertsReady   AlertsState = "ready"
)

const (
	AlertsTitle          = "Recent Boundary Crossings"
	AlertsEmptyMessage   = "No recent boundary crossings"
	AlertsLoadingMessage = "Loading crossings..."
	AlertsFailedMessage  = "Crossings could not be loaded"
)

// AlertLine is one crossing in the alerts panel.
type AlertLine struct {
	ID           int64               `json:"id"`
	AssetID      string              `json:"asset_id"`
	CrossingType models.CrossingType `json:"crossing_type"`
	RegionID     int64               `json:"region_id"`
	Time         string              `json:"time"`
	Text         string              `json:"text"`
	Class        string              `json:"class"`
}

// AlertsPanel is the crossings list. Message is set for every state except
// ready. Stale is set when a refresh failed and older lines are still shown.
type AlertsPanel struct {
	Title   string      `json:"title"`
	State   AlertsState `json:"state"`
	Message string      `json:"message,omitempty"`
	Stale   bool        `json:"stale,omitempty"`
	Lines   []AlertLine `json:"lines"`
}

// Option is a select-box entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DatasetStatus is the rendered fetch state of one dataset.
type DatasetStatus struct {
	Phase      string `json:"phase"`
	Refreshing bool   `json:"refreshing,omitempty"`
	Count      int    `json:"count"`
	Error      string `json:"error,omitempty"`
}

// Layers is everything the page needs to draw the map view.
type Layers struct {
	View          Center                   `json:"view"`
	Regions       []Polygon                `json:"regions"`
	Markers       []Marker                 `json:"markers"`
	Track         *Polyline                `json:"track,omitempty"`
	CenterOn      *Center                  `json:"center_on,omitempty"`
	Rows          []Row                    `json:"rows"`
	Alerts        AlertsPanel              `json:"alerts"`
	RegionOptions []Option                 `json:"region_options"`
	Status        map[string]DatasetStatus `json:"status"`
}
