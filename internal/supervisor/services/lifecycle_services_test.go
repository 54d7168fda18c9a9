// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var (
	_ suture.Service = (*PollerService)(nil)
	_ suture.Service = (*CoordinatorService)(nil)
)

type fakePoller struct {
	startErr error
	starts   atomic.Int32
	stops    atomic.Int32
}

func (p *fakePoller) Start(context.Context) error {
	p.starts.Add(1)
	return p.startErr
}

func (p *fakePoller) Stop() { p.stops.Add(1) }

type fakeCoordinator struct {
	activations atomic.Int32
	closes      atomic.Int32
	activated   chan struct{}
}

func (c *fakeCoordinator) Activate(context.Context) {
	c.activations.Add(1)
	select {
	case c.activated <- struct{}{}:
	default:
	}
}

func (c *fakeCoordinator) Close() { c.closes.Add(1) }

func TestPollerService_StartsAndStops(t *testing.T) {
	p := &fakePoller{}
	svc := NewPollerService(p)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
	if p.starts.Load() != 1 || p.stops.Load() != 1 {
		t.Errorf("starts=%d stops=%d, want 1 each", p.starts.Load(), p.stops.Load())
	}
	if svc.String() != "positions-poller" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestPollerService_StartFailure(t *testing.T) {
	startErr := errors.New("poller already running")
	p := &fakePoller{startErr: startErr}

	err := NewPollerService(p).Serve(context.Background())
	if !errors.Is(err, startErr) {
		t.Errorf("expected wrapped start error, got %v", err)
	}
	if p.stops.Load() != 0 {
		t.Error("Stop should not be called after a failed Start")
	}
}

func TestCoordinatorService_ActivateThenClose(t *testing.T) {
	c := &fakeCoordinator{activated: make(chan struct{}, 1)}
	svc := NewCoordinatorService(c)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	select {
	case <-c.activated:
	case <-time.After(time.Second):
		t.Fatal("coordinator was not activated")
	}
	if c.closes.Load() != 0 {
		t.Error("Close called before shutdown")
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
	if c.closes.Load() != 1 {
		t.Errorf("closes = %d, want 1", c.closes.Load())
	}
	if svc.String() != "sync-coordinator" {
		t.Errorf("String() = %q", svc.String())
	}
}
