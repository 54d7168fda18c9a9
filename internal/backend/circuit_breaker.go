// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package backend

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/assetwatch/internal/config"
	"github.com/tomtom215/assetwatch/internal/logging"
	"github.com/tomtom215/assetwatch/internal/metrics"
	"github.com/tomtom215/assetwatch/internal/models"
	"github.com/tomtom215/assetwatch/internal/query"
)

// Ensure CircuitBreakerClient implements Backend
var _ Backend = (*CircuitBreakerClient)(nil)

// CircuitBreakerClient wraps Client with a circuit breaker. While open it
// rejects calls immediately with a KindNetwork FetchError; it never retries.
//
// Only network and 5xx failures count against the breaker. A 4xx or a
// malformed body says nothing about backend availability.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewCircuitBreakerClient wraps client using the thresholds in cfg.
func NewCircuitBreakerClient(client *Client, cfg *config.CircuitBreakerConfig) *CircuitBreakerClient {
	cbName := "backend-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	minRequests := cfg.MinRequests
	failureRatio := cfg.FailureRatio

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			trip := ratio >= failureRatio
			if trip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", ratio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},

		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var fe *FetchError
			if errors.As(err, &fe) {
				switch fe.Kind {
				case KindDecode:
					return true
				case KindHTTP:
					return fe.StatusCode < 500
				}
			}
			return errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := from.String(), to.String()
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: cbName}
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// execute runs fn through the breaker. Rejections become KindNetwork
// FetchErrors so callers see a single error type.
func (cbc *CircuitBreakerClient) execute(endpoint string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Str("endpoint", endpoint).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, &FetchError{Endpoint: endpoint, Kind: KindNetwork, Reason: "circuit breaker open", Err: err}
		}
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(cbc.cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// ListPositions wraps Client.ListPositions with circuit breaker protection.
func (cbc *CircuitBreakerClient) ListPositions(ctx context.Context, params query.Params) ([]models.Position, error) {
	return castResult[[]models.Position](cbc.execute("/api/positions", func() (interface{}, error) {
		return cbc.client.ListPositions(ctx, params)
	}))
}

// ListRegions wraps Client.ListRegions with circuit breaker protection.
func (cbc *CircuitBreakerClient) ListRegions(ctx context.Context) ([]models.Region, error) {
	return castResult[[]models.Region](cbc.execute("/api/regions", func() (interface{}, error) {
		return cbc.client.ListRegions(ctx)
	}))
}

// ListCrossings wraps Client.ListCrossings with circuit breaker protection.
func (cbc *CircuitBreakerClient) ListCrossings(ctx context.Context, limit int, f query.CrossingFilter) ([]models.Crossing, error) {
	return castResult[[]models.Crossing](cbc.execute("/api/crossings", func() (interface{}, error) {
		return cbc.client.ListCrossings(ctx, limit, f)
	}))
}

// GetTrack wraps Client.GetTrack with circuit breaker protection.
func (cbc *CircuitBreakerClient) GetTrack(ctx context.Context, assetID, startTime, endTime string) (*models.Track, error) {
	return castResult[*models.Track](cbc.execute("/api/positions/"+assetID+"/track", func() (interface{}, error) {
		return cbc.client.GetTrack(ctx, assetID, startTime, endTime)
	}))
}

// CreatePosition wraps Client.CreatePosition with circuit breaker protection.
func (cbc *CircuitBreakerClient) CreatePosition(ctx context.Context, p *models.NewPosition) (*models.CreatedPosition, error) {
	return castResult[*models.CreatedPosition](cbc.execute("/api/positions", func() (interface{}, error) {
		return cbc.client.CreatePosition(ctx, p)
	}))
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// New builds the Backend described by cfg: a plain Client, wrapped in a
// CircuitBreakerClient when the breaker is enabled.
func New(cfg *config.BackendConfig) Backend {
	client := NewClient(cfg)
	if !cfg.CircuitBreaker.Enabled {
		return client
	}
	return NewCircuitBreakerClient(client, &cfg.CircuitBreaker)
}
