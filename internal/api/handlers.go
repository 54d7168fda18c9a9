// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package api

import (
	"time"

	"github.com/tomtom215/assetwatch/internal/backend"
	"github.com/tomtom215/assetwatch/internal/coordinator"
	"github.com/tomtom215/assetwatch/internal/filter"
	"github.com/tomtom215/assetwatch/internal/render"
	"github.com/tomtom215/assetwatch/internal/view"
)

// Handler serves the view API.
type Handler struct {
	coord   *coordinator.Coordinator
	filters *filter.State
	view    *view.State
	writer  backend.PositionWriter
	render  render.Options

	startTime time.Time
	version   string
}

// HandlerDeps collects the components a Handler serves.
type HandlerDeps struct {
	Coordinator *coordinator.Coordinator
	Filters     *filter.State
	View        *view.State

	// Writer forwards position reports. Nil disables POST /positions.
	Writer backend.PositionWriter

	Render  render.Options
	Version string
}

// NewHandler creates a new Handler.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		coord:     deps.Coordinator,
		filters:   deps.Filters,
		view:      deps.View,
		writer:    deps.Writer,
		render:    deps.Render,
		startTime: time.Now(),
		version:   deps.Version,
	}
}
