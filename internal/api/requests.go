// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package api

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/assetwatch/internal/validation"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// FilterEditRequest is the body of PATCH /api/v1/filters/pending. An empty
// value clears the field.
type FilterEditRequest struct {
	Field string `json:"field" validate:"required,max=32"`
	Value string `json:"value" validate:"max=256"`
}

// decodeBody decodes a JSON body into dst and validates it. It writes the
// error response itself and reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	rw := NewResponseWriter(w, r)

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		rw.BadRequest(fmt.Sprintf("Invalid request body: %v", err))
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// AlertsFilterRequest is the body of PUT /api/v1/alerts/filter. Empty fields
// are not sent to the backend.
type AlertsFilterRequest struct {
	AssetID   string `json:"asset_id" validate:"max=64"`
	RegionID  string `json:"region_id" validate:"omitempty,regionid"`
	StartTime string `json:"start_time" validate:"omitempty,iso8601"`
	EndTime   string `json:"end_time" validate:"omitempty,iso8601"`
}
