// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package view

import (
	"time"

	"github.com/tomtom215/assetwatch/internal/models"
)

// Phase is the user-visible state of a dataset.
type Phase string

const (
	PhaseIdle    Phase = "idle"    // never requested
	PhaseLoading Phase = "loading" // requested, nothing usable yet
	PhaseReady   Phase = "ready"   // last completed fetch succeeded
	PhaseFailed  Phase = "failed"  // last completed fetch failed
)

// Status tracks the fetch lifecycle of one dataset.
type Status struct {
	Loaded    bool      `json:"loaded"`
	InFlight  int       `json:"in_flight"`
	LastError string    `json:"last_error,omitempty"`
	FailedAt  time.Time `json:"failed_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	Count     int       `json:"count"`
}

// Phase derives the display phase. A dataset with no successful load and a
// fetch outstanding is loading, even after an earlier failure. Otherwise the
// outcome of the last completed fetch decides. A loaded dataset with zero
// items is ready, not idle.
func (s Status) Phase() Phase {
	switch {
	case s.InFlight > 0 && !s.Loaded:
		return PhaseLoading
	case s.LastError != "":
		return PhaseFailed
	case s.Loaded:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

// Refreshing reports whether a fetch is outstanding for a dataset that
// already holds data.
func (s Status) Refreshing() bool {
	return s.Loaded && s.InFlight > 0
}

// Snapshot is an immutable copy of the view state handed to the renderer.
type Snapshot struct {
	Positions        []models.Position
	Regions          []models.Region
	Crossings        []models.Crossing
	SelectedTrack    *models.Track
	SelectedPosition *models.Position
	SelectedAssetID  string
	Status           map[Dataset]Status
}

// StatusOf returns the status for d, or the zero Status.
func (s Snapshot) StatusOf(d Dataset) Status {
	return s.Status[d]
}
