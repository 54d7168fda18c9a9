// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramCount extracts the sample count from a histogram child.
func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	h, ok := o.(prometheus.Histogram)
	if !ok {
		t.Fatalf("observer %T is not a histogram", o)
	}
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordBackendFetch(t *testing.T) {
	before := testutil.ToFloat64(BackendFetchTotal.WithLabelValues("positions", "http"))
	RecordBackendFetch("positions", "http", 20*time.Millisecond)
	after := testutil.ToFloat64(BackendFetchTotal.WithLabelValues("positions", "http"))

	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestRecordBackendFetch_ObservesDuration(t *testing.T) {
	before := histogramCount(t, BackendFetchDuration.WithLabelValues("crossings"))
	RecordBackendFetch("crossings", "success", 15*time.Millisecond)
	if got := histogramCount(t, BackendFetchDuration.WithLabelValues("crossings")) - before; got != 1 {
		t.Errorf("duration samples delta = %d, want 1", got)
	}
}

func TestTrackFetchInFlight(t *testing.T) {
	g := BackendFetchInFlight.WithLabelValues("track")
	start := testutil.ToFloat64(g)

	TrackFetchInFlight("track", true)
	TrackFetchInFlight("track", true)
	if got := testutil.ToFloat64(g) - start; got != 2 {
		t.Errorf("in-flight delta = %v, want 2", got)
	}
	TrackFetchInFlight("track", false)
	TrackFetchInFlight("track", false)
	if got := testutil.ToFloat64(g); got != start {
		t.Errorf("in-flight = %v, want %v", got, start)
	}
}

func TestRecordDatasetApplied(t *testing.T) {
	RecordDatasetApplied("regions", 7)

	if got := testutil.ToFloat64(ViewDatasetItems.WithLabelValues("regions")); got != 7 {
		t.Errorf("items = %v, want 7", got)
	}
	if got := testutil.ToFloat64(ViewDatasetLastUpdate.WithLabelValues("regions")); got <= 0 {
		t.Errorf("last update not set: %v", got)
	}
}

func TestRecordRefresh(t *testing.T) {
	tests := []struct {
		name     string
		accepted bool
		label    string
	}{
		{"accepted", true, "accepted"},
		{"throttled", false, "throttled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RefreshRequests.WithLabelValues("manual", tt.label)
			before := testutil.ToFloat64(c)
			RecordRefresh("manual", tt.accepted)
			if testutil.ToFloat64(c)-before != 1 {
				t.Errorf("counter %s did not increase", tt.label)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	c := APIRequestsTotal.WithLabelValues("GET", "/api/v1/view", "200")
	before := testutil.ToFloat64(c)
	RecordAPIRequest("GET", "/api/v1/view", "200", 5*time.Millisecond)
	if testutil.ToFloat64(c)-before != 1 {
		t.Error("api request counter did not increase")
	}

	TrackActiveRequest(true)
	TrackActiveRequest(false)
}
