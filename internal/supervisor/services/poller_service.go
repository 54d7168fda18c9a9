// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package services

import (
	"context"
	"fmt"
)

// StartStopper is a component with a Start/Stop lifecycle, such as the
// positions poller.
type StartStopper interface {
	Start(ctx context.Context) error
	Stop()
}

// PollerService adapts a StartStopper to suture's Serve pattern: Start,
// wait for cancellation, Stop.
type PollerService struct {
	poller StartStopper
	name   string
}

// NewPollerService wraps poller.
func NewPollerService(poller StartStopper) *PollerService {
	return &PollerService{
		poller: poller,
		name:   "positions-poller",
	}
}

// Serve implements suture.Service. A Start failure is returned so the
// supervisor restarts the service with backoff.
func (s *PollerService) Serve(ctx context.Context) error {
	if err := s.poller.Start(ctx); err != nil {
		return fmt.Errorf("poller start failed: %w", err)
	}

	<-ctx.Done()
	s.poller.Stop()
	return ctx.Err()
}

// String implements fmt.Stringer for suture's logs.
func (s *PollerService) String() string {
	return s.name
}
