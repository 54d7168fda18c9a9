// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/assetwatch/internal/logging"
)

// Poller periodically re-fetches positions through the coordinator.
type Poller struct {
	coord    *Coordinator
	interval time.Duration
	log      zerolog.Logger

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoller creates a poller. It does nothing until Start is called.
func NewPoller(coord *Coordinator, interval time.Duration) *Poller {
	return &Poller{
		coord:    coord,
		interval: interval,
		log:      logging.WithComponent("poller"),
	}
}

// Start begins the polling loop. Calling Start on a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = true
	p.stopChan = make(chan struct{})
	p.mu.Unlock()

	p.log.Info().Dur("interval", p.interval).Msg("Starting positions poller")

	p.wg.Add(1)
	go p.pollLoop(ctx)
	return nil
}

// Stop stops the polling loop and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopChan)
	p.mu.Unlock()

	p.wg.Wait()
	p.log.Info().Msg("Positions poller stopped")
}

// IsRunning reports whether the loop is active.
func (p *Poller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Poller) pollLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		case <-ticker.C:
			if p.coord.Activated() {
				p.coord.Poll(ctx)
			}
		}
	}
}
