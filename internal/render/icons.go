// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package render

import "github.com/tomtom215/assetwatch/internal/models"

const (
	markerBaseURL = "https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/"
	shadowURL     = "https://cdnjs.cloudflare.com/ajax/libs/leaflet/0.7.7/images/marker-shadow.png"
)

// Icon describes a marker image.
type Icon struct {
	Name        string `json:"name"`
	URL         string `json:"icon_url"`
	ShadowURL   string `json:"shadow_url"`
	Size        [2]int `json:"icon_size"`
	Anchor      [2]int `json:"icon_anchor"`
	PopupAnchor [2]int `json:"popup_anchor"`
	ShadowSize  [2]int `json:"shadow_size"`
}

func colorIcon(color string) Icon {
	return Icon{
		Name:        color,
		URL:         markerBaseURL + "marker-icon-" + color + ".png",
		ShadowURL:   shadowURL,
		Size:        [2]int{25, 41},
		Anchor:      [2]int{12, 41},
		PopupAnchor: [2]int{1, -34},
		ShadowSize:  [2]int{41, 41},
	}
}

var (
	// IconVessel marks VESSEL positions.
	IconVessel = colorIcon("blue")
	// IconAircraft marks AIRCRAFT positions.
	IconAircraft = colorIcon("red")
	// IconVehicle marks VEHICLE positions.
	IconVehicle = colorIcon("green")

	// IconDefault is the mapping library's stock marker.
	IconDefault = Icon{
		Name:        "default",
		URL:         "https://cdnjs.cloudflare.com/ajax/libs/leaflet/0.7.7/images/marker-icon.png",
		ShadowURL:   shadowURL,
		Size:        [2]int{25, 41},
		Anchor:      [2]int{12, 41},
		PopupAnchor: [2]int{1, -34},
		ShadowSize:  [2]int{41, 41},
	}
)

// IconFor returns the marker icon for an asset type. Unknown types get
// IconDefault.
func IconFor(t models.AssetType) Icon {
	switch t {
	case models.AssetVessel:
		return IconVessel
	case models.AssetAircraft:
		return IconAircraft
	case models.AssetVehicle:
		return IconVehicle
	default:
		return IconDefault
	}
}
