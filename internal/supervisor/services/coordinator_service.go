// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package services

import (
	"context"
)

// Coordinator is the lifecycle surface of the sync coordinator.
type Coordinator interface {
	Activate(ctx context.Context)
	Close()
}

// CoordinatorService activates the map view when the tree starts and
// cancels outstanding fetches when it stops.
type CoordinatorService struct {
	coord Coordinator
	name  string
}

// NewCoordinatorService wraps coord.
func NewCoordinatorService(coord Coordinator) *CoordinatorService {
	return &CoordinatorService{
		coord: coord,
		name:  "sync-coordinator",
	}
}

// Serve implements suture.Service. Activate is idempotent, so a restart
// does not repeat the mount fetches.
func (s *CoordinatorService) Serve(ctx context.Context) error {
	s.coord.Activate(ctx)
	<-ctx.Done()
	s.coord.Close()
	return ctx.Err()
}

// String implements fmt.Stringer for suture's logs.
func (s *CoordinatorService) String() string {
	return s.name
}
