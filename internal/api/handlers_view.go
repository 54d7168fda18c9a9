// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/assetwatch/internal/backend"
	"github.com/tomtom215/assetwatch/internal/coordinator"
	"github.com/tomtom215/assetwatch/internal/logging"
	"github.com/tomtom215/assetwatch/internal/models"
	"github.com/tomtom215/assetwatch/internal/query"
	"github.com/tomtom215/assetwatch/internal/render"
	"github.com/tomtom215/assetwatch/internal/validation"
)

// SelectionResponse acknowledges a marker click.
type SelectionResponse struct {
	SelectedAssetID string `json:"selected_asset_id"`
	TrackPending    bool   `json:"track_pending"`
}

// RowSelectionResponse is returned when a table row is selected.
type RowSelectionResponse struct {
	Position models.Position `json:"position"`
	CenterOn render.Center   `json:"center_on"`
}

// RefreshResponse acknowledges a refresh request.
type RefreshResponse struct {
	Dataset string `json:"dataset"`
	Queued  bool   `json:"queued"`
}

// View returns the projected layers. The first call activates the map view.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	h.coord.Activate(r.Context())
	NewResponseWriter(w, r).Success(render.Project(h.view.Snapshot(), h.render))
}

// MarkerClick dispatches a click on the marker of assetID. The asset must be
// on the map; its track is fetched in the background.
func (h *Handler) MarkerClick(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	assetID := chi.URLParam(r, "assetID")

	var clickErr error
	opts := h.render
	opts.OnMarkerClick = func(id string) {
		clickErr = h.coord.SelectAsset(r.Context(), id)
	}

	layers := render.Project(h.view.Snapshot(), opts)
	for _, m := range layers.Markers {
		if m.AssetID != assetID {
			continue
		}
		m.Click()
		if clickErr != nil {
			rw.BadRequest(clickErr.Error())
			return
		}
		rw.Accepted(SelectionResponse{SelectedAssetID: assetID, TrackPending: true})
		return
	}

	rw.NotFound("No marker for asset " + assetID)
}

// SelectRow selects a positions table row by position id.
func (h *Handler) SelectRow(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := strconv.ParseInt(chi.URLParam(r, "positionID"), 10, 64)
	if err != nil {
		rw.BadRequest("positionID must be an integer")
		return
	}

	p, err := h.coord.SelectPosition(id)
	if errors.Is(err, coordinator.ErrPositionNotFound) {
		rw.NotFound("Position not found")
		return
	}
	if err != nil {
		rw.InternalError(err.Error())
		return
	}

	rw.Success(RowSelectionResponse{
		Position: p,
		CenterOn: render.Center{At: render.LatLng{p.Latitude, p.Longitude}, Zoom: h.render.SelectZoom},
	})
}

// Refresh re-fetches positions for the committed filters.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.refresh(w, r, "positions", h.coord.Refresh)
}

// RefreshAlerts re-fetches the crossings list.
func (h *Handler) RefreshAlerts(w http.ResponseWriter, r *http.Request) {
	h.refresh(w, r, "crossings", h.coord.RefreshAlerts)
}

// AlertsFilter returns the filter applied to the alerts panel.
func (h *Handler) AlertsFilter(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(alertsFilterResponse(h.coord.AlertsFilter()))
}

// SetAlertsFilter replaces the alerts panel filter and re-fetches crossings.
func (h *Handler) SetAlertsFilter(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req AlertsFilterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	f := query.CrossingFilter{
		AssetID:   req.AssetID,
		RegionID:  req.RegionID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.coord.SetAlertsFilter(r.Context(), f); err != nil {
		if errors.Is(err, coordinator.ErrRefreshThrottled) {
			rw.TooManyRequests("Refresh throttled, try again shortly")
			return
		}
		rw.InternalError(err.Error())
		return
	}
	rw.Accepted(alertsFilterResponse(f))
}

func alertsFilterResponse(f query.CrossingFilter) AlertsFilterRequest {
	return AlertsFilterRequest{
		AssetID:   f.AssetID,
		RegionID:  f.RegionID,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
	}
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request, dataset string, fn func(context.Context) error) {
	rw := NewResponseWriter(w, r)
	if err := fn(r.Context()); err != nil {
		if errors.Is(err, coordinator.ErrRefreshThrottled) {
			rw.TooManyRequests("Refresh throttled, try again shortly")
			return
		}
		rw.InternalError(err.Error())
		return
	}
	rw.Accepted(RefreshResponse{Dataset: dataset, Queued: true})
}

// CreatePosition validates a position report and forwards it to the backend.
// Positions are refreshed afterwards, and crossings too when the report
// caused any.
func (h *Handler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.writer == nil {
		rw.ServiceUnavailable("Position writes are not configured")
		return
	}

	var req models.NewPosition
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.writer.CreatePosition(r.Context(), &req)
	if err != nil {
		var fe *backend.FetchError
		if errors.As(err, &fe) && fe.Kind == backend.KindHTTP && fe.StatusCode >= 400 && fe.StatusCode < 500 {
			rw.BadRequest(fe.Error())
			return
		}
		rw.ExternalServiceError("backend", err)
		return
	}

	log := logging.Ctx(r.Context())
	if err := h.coord.Refresh(r.Context()); err != nil {
		log.Debug().Err(err).Msg("Positions refresh after write skipped")
	}
	if len(created.RegionCrossings) > 0 {
		if err := h.coord.RefreshAlerts(r.Context()); err != nil {
			log.Debug().Err(err).Msg("Crossings refresh after write skipped")
		}
	}

	rw.Created(created)
}

// writeFilterError maps filter edit failures to responses.
func writeFilterError(rw *ResponseWriter, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	rw.BadRequest(err.Error())
}
