// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/assetwatch/internal/view"
)

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Uptime    float64           `json:"uptime_seconds"`
	Activated bool              `json:"activated"`
	Datasets  map[string]string `json:"datasets,omitempty"`
}

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:    "alive",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Activated: h.coord.Activated(),
	})
}

// HealthReady reports ready once the view has been activated. Dataset
// phases are included for diagnosis; a failed dataset does not make the
// service unready since its previous data is still served.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := HealthStatus{
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Activated: h.coord.Activated(),
		Datasets:  make(map[string]string, len(view.Datasets)),
	}
	for _, d := range view.Datasets {
		status.Datasets[string(d)] = string(h.view.Status(d).Phase())
	}

	if !status.Activated {
		status.Status = "starting"
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Map view not yet activated", status)
		return
	}
	status.Status = "ready"
	rw.Success(status)
}
