// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/assetwatch/internal/models"
)

// FiltersResponse shows both criteria sets.
type FiltersResponse struct {
	Pending   models.FilterCriteria `json:"pending"`
	Committed models.FilterCriteria `json:"committed"`
	Dirty     bool                  `json:"dirty"`
}

func (h *Handler) filtersResponse() FiltersResponse {
	return FiltersResponse{
		Pending:   h.filters.Pending(),
		Committed: h.filters.Committed(),
		Dirty:     h.filters.Dirty(),
	}
}

// Filters returns the pending and committed criteria.
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.filtersResponse())
}

// EditFilter sets one pending field. Nothing is fetched until Apply.
func (h *Handler) EditFilter(w http.ResponseWriter, r *http.Request) {
	var req FilterEditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rw := NewResponseWriter(w, r)
	if err := h.filters.Edit(req.Field, req.Value); err != nil {
		writeFilterError(rw, err)
		return
	}
	rw.Success(h.filtersResponse())
}

// ToggleAssetType adds or removes an asset type from the pending selection.
func (h *Handler) ToggleAssetType(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	t, ok := models.ParseAssetType(chi.URLParam(r, "type"))
	if !ok {
		rw.BadRequest("Unknown asset type: " + chi.URLParam(r, "type"))
		return
	}
	h.filters.ToggleAssetType(t)
	rw.Success(h.filtersResponse())
}

// ApplyFilters commits the pending criteria. The positions fetch it triggers
// completes in the background.
func (h *Handler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	h.filters.Apply()
	NewResponseWriter(w, r).Accepted(h.filtersResponse())
}

// ClearFilters resets both criteria sets and refetches unfiltered positions.
func (h *Handler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	h.filters.Clear()
	NewResponseWriter(w, r).Accepted(h.filtersResponse())
}
