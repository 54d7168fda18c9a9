// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/assetwatch/internal/config"
	"github.com/tomtom215/assetwatch/internal/metrics"
	"github.com/tomtom215/assetwatch/internal/models"
	"github.com/tomtom215/assetwatch/internal/query"
)

// Dataset labels used for metrics and logs.
const (
	DatasetPositions = "positions"
	DatasetRegions   = "regions"
	DatasetCrossings = "crossings"
	DatasetTrack     = "track"
)

// errMissingPositions marks a positions body whose positions array is
// absent or null.
var errMissingPositions = errors.New("response has no positions array")

// maxErrorBody caps how much of an error response is kept as the reason.
const maxErrorBody = 512

// Fetcher defines the read operations the coordinator needs from the
// backend. Both Client and CircuitBreakerClient implement it.
type Fetcher interface {
	ListPositions(ctx context.Context, params query.Params) ([]models.Position, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
	ListCrossings(ctx context.Context, limit int, f query.CrossingFilter) ([]models.Crossing, error)
	GetTrack(ctx context.Context, assetID, startTime, endTime string) (*models.Track, error)
}

// PositionWriter submits position reports to the backend.
type PositionWriter interface {
	CreatePosition(ctx context.Context, p *models.NewPosition) (*models.CreatedPosition, error)
}

// Backend is the full backend surface used by the server.
type Backend interface {
	Fetcher
	PositionWriter
}

// Ensure Client implements Backend
var _ Backend = (*Client)(nil)

// Client talks to the tracking backend's REST API. Every call issues exactly
// one request; there is no retry and no de-duplication.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. A zero cfg.Timeout leaves requests
// unbounded apart from the caller's context.
func NewClient(cfg *config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// BaseURL returns the normalized backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPositions fetches positions matching params.
//
// GET /api/positions?limit&asset_type&start_time&end_time&region_id
func (c *Client) ListPositions(ctx context.Context, params query.Params) ([]models.Position, error) {
	const endpoint = "/api/positions"

	var env positionsEnvelope
	if err := c.getJSON(ctx, DatasetPositions, endpoint, params.Values(), &env); err != nil {
		return nil, err
	}
	if env.Positions == nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: KindDecode, Err: errMissingPositions}
	}
	return *env.Positions, nil
}

// ListRegions fetches every region with its boundary.
//
// GET /api/regions
func (c *Client) ListRegions(ctx context.Context) ([]models.Region, error) {
	var payload []regionPayload
	if err := c.getJSON(ctx, DatasetRegions, "/api/regions", nil, &payload); err != nil {
		return nil, err
	}

	regions := make([]models.Region, 0, len(payload))
	for i := range payload {
		r, err := payload[i].toModel()
		if err != nil {
			return nil, &FetchError{Endpoint: "/api/regions", Kind: KindDecode, Reason: "invalid boundary", Err: err}
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// ListCrossings fetches the most recent crossings, optionally narrowed by
// asset, region or time. A non-positive limit leaves the backend default in
// effect.
//
// GET /api/crossings?limit&asset_id&region_id&start_time&end_time
func (c *Client) ListCrossings(ctx context.Context, limit int, f query.CrossingFilter) ([]models.Crossing, error) {
	var payload []crossingPayload
	if err := c.getJSON(ctx, DatasetCrossings, "/api/crossings", query.CrossingParams(limit, f), &payload); err != nil {
		return nil, err
	}

	crossings := make([]models.Crossing, 0, len(payload))
	for i := range payload {
		crossings = append(crossings, payload[i].toModel())
	}
	return crossings, nil
}

// GetTrack fetches the historical path of one asset within the time window.
// Empty bounds are omitted, so two empty strings fetch the whole history.
//
// GET /api/positions/{assetID}/track?start_time&end_time
func (c *Client) GetTrack(ctx context.Context, assetID, startTime, endTime string) (*models.Track, error) {
	endpoint := "/api/positions/" + url.PathEscape(assetID) + "/track"

	var payload trackPayload
	if err := c.getJSON(ctx, DatasetTrack, endpoint, query.TrackParams(startTime, endTime), &payload); err != nil {
		return nil, err
	}
	track, err := payload.toModel(assetID)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Kind: KindDecode, Reason: "invalid track", Err: err}
	}
	return track, nil
}

// CreatePosition submits a new position report. The response lists any
// region crossings the report caused.
//
// POST /api/positions
func (c *Client) CreatePosition(ctx context.Context, p *models.NewPosition) (*models.CreatedPosition, error) {
	const endpoint = "/api/positions"

	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode position: %w", err)
	}

	start := time.Now()
	resp, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, bytes.NewReader(body))
	if err != nil {
		metrics.RecordBackendFetch("create_position", string(KindNetwork), time.Since(start))
		return nil, &FetchError{Endpoint: endpoint, Kind: KindNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(endpoint, resp); err != nil {
		metrics.RecordBackendFetch("create_position", string(KindHTTP), time.Since(start))
		return nil, err
	}

	var created models.CreatedPosition
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		metrics.RecordBackendFetch("create_position", string(KindDecode), time.Since(start))
		return nil, &FetchError{Endpoint: endpoint, Kind: KindDecode, Err: err}
	}
	for i := range created.RegionCrossings {
		ev := &created.RegionCrossings[i]
		ev.CrossingType = models.NormalizeCrossingType(string(ev.CrossingType))
	}

	metrics.RecordBackendFetch("create_position", "success", time.Since(start))
	return &created, nil
}

// getJSON performs one GET and decodes the JSON body into out, recording
// fetch metrics under dataset.
func (c *Client) getJSON(ctx context.Context, dataset, endpoint string, params url.Values, out interface{}) (err error) {
	start := time.Now()
	metrics.TrackFetchInFlight(dataset, true)
	defer func() {
		metrics.TrackFetchInFlight(dataset, false)
		result := "success"
		var fe *FetchError
		if errors.As(err, &fe) {
			result = string(fe.Kind)
		}
		metrics.RecordBackendFetch(dataset, result, time.Since(start))
	}()

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Kind: KindNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(endpoint, resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Endpoint: endpoint, Kind: KindDecode, Err: err}
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, body io.Reader) (*http.Response, error) {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

// checkStatus turns a non-2xx response into a KindHTTP FetchError carrying
// the start of the response body as the reason.
func checkStatus(endpoint string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	reason := strings.TrimSpace(string(body))
	if err != nil || reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return &FetchError{
		Endpoint:   endpoint,
		Kind:       KindHTTP,
		StatusCode: resp.StatusCode,
		Reason:     reason,
		Err:        fmt.Errorf("status %d", resp.StatusCode),
	}
}
