// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package coordinator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/tomtom215/assetwatch/internal/backend"
	"github.com/tomtom215/assetwatch/internal/filter"
	"github.com/tomtom215/assetwatch/internal/logging"
	"github.com/tomtom215/assetwatch/internal/metrics"
	"github.com/tomtom215/assetwatch/internal/models"
	"github.com/tomtom215/assetwatch/internal/query"
	"github.com/tomtom215/assetwatch/internal/view"
)

var (
	// ErrPositionNotFound is returned by SelectPosition for an id that is not
	// in the current positions.
	ErrPositionNotFound = errors.New("position not found")

	// ErrRefreshThrottled is returned when manual refreshes exceed the
	// configured rate.
	ErrRefreshThrottled = errors.New("refresh throttled")

	// ErrEmptyAssetID is returned by SelectAsset for an empty id.
	ErrEmptyAssetID = errors.New("asset id is required")
)

// Options tunes the coordinator.
type Options struct {
	PositionsLimit int
	CrossingsLimit int

	// RefreshRate (per second) and RefreshBurst bound manual refreshes.
	// A zero rate disables throttling.
	RefreshRate  float64
	RefreshBurst int
}

// Coordinator turns filter commits and user interactions into backend
// fetches and applies the results to the view state.
//
// All fetches run on their own goroutine; no method blocks on the network.
// Superseded fetches are not cancelled. Whether a late result may overwrite a
// newer one is decided by the view state's ordering mode.
type Coordinator struct {
	fetcher backend.Fetcher
	filters *filter.State
	view    *view.State
	opts    Options
	limiter *rate.Limiter

	alertsMu     sync.Mutex
	alertsFilter query.CrossingFilter

	activateOnce sync.Once
	activated    atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New wires a coordinator and registers it for filter commits.
func New(fetcher backend.Fetcher, filters *filter.State, state *view.State, opts Options) *Coordinator {
	if opts.PositionsLimit <= 0 {
		opts.PositionsLimit = query.DefaultLimit
	}
	limit := rate.Inf
	if opts.RefreshRate > 0 {
		limit = rate.Limit(opts.RefreshRate)
	}
	if opts.RefreshBurst < 1 {
		opts.RefreshBurst = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		fetcher: fetcher,
		filters: filters,
		view:    state,
		opts:    opts,
		limiter: rate.NewLimiter(limit, opts.RefreshBurst),
		ctx:     ctx,
		cancel:  cancel,
	}

	filters.OnCommit(c.onCommit)
	return c
}

// Activate performs the mount-time fetches: regions and crossings, then
// positions for the committed criteria. Only the first call has any effect.
func (c *Coordinator) Activate(ctx context.Context) {
	c.activateOnce.Do(func() {
		ctx = logging.ContextWithNewCorrelationID(ctx)
		logging.Ctx(ctx).Info().Msg("Activating map view")

		c.fetchRegions(ctx)
		c.fetchCrossings(ctx)
		c.fetchPositions(ctx, c.filters.Committed(), "activate")
		c.activated.Store(true)
	})
}

// Activated reports whether Activate has run.
func (c *Coordinator) Activated() bool {
	return c.activated.Load()
}

// SelectAsset records the clicked marker's asset and fetches its track over
// the committed time window. The selection is visible immediately; the track
// replaces the previous one when it arrives.
func (c *Coordinator) SelectAsset(ctx context.Context, assetID string) error {
	if assetID == "" {
		return ErrEmptyAssetID
	}
	c.view.SelectAsset(assetID)

	committed := c.filters.Committed()
	ctx = logging.ContextWithNewCorrelationID(ctx)
	ticket := c.view.Begin(view.Track)
	c.spawn(ctx, func(fctx context.Context) {
		track, err := c.fetcher.GetTrack(fctx, assetID, committed.StartTime, committed.EndTime)
		if err != nil {
			c.fail(fctx, ticket, err)
			return
		}
		if c.view.ApplyTrack(ticket, track) {
			logging.Ctx(fctx).Debug().Str("asset_id", assetID).Int("points", len(track.Path)).Msg("Track applied")
		}
	})
	return nil
}

// SelectPosition selects a table row. No fetch is made.
func (c *Coordinator) SelectPosition(id int64) (models.Position, error) {
	p, ok := c.view.SelectPosition(id)
	if !ok {
		return models.Position{}, ErrPositionNotFound
	}
	return p, nil
}

// Refresh re-fetches positions for the committed criteria.
func (c *Coordinator) Refresh(ctx context.Context) error {
	if !c.allow("manual") {
		return ErrRefreshThrottled
	}
	c.fetchPositions(logging.ContextWithNewCorrelationID(ctx), c.filters.Committed(), "refresh")
	return nil
}

// RefreshAlerts re-fetches the crossings shown in the alerts panel.
func (c *Coordinator) RefreshAlerts(ctx context.Context) error {
	if !c.allow("manual") {
		return ErrRefreshThrottled
	}
	c.fetchCrossings(logging.ContextWithNewCorrelationID(ctx))
	return nil
}

// SetAlertsFilter replaces the filter applied to the alerts panel and
// re-fetches crossings with it. It shares the manual refresh budget.
func (c *Coordinator) SetAlertsFilter(ctx context.Context, f query.CrossingFilter) error {
	if !c.allow("manual") {
		return ErrRefreshThrottled
	}
	c.alertsMu.Lock()
	c.alertsFilter = f
	c.alertsMu.Unlock()

	c.fetchCrossings(logging.ContextWithNewCorrelationID(ctx))
	return nil
}

// AlertsFilter returns the filter currently applied to crossings fetches.
func (c *Coordinator) AlertsFilter() query.CrossingFilter {
	c.alertsMu.Lock()
	defer c.alertsMu.Unlock()
	return c.alertsFilter
}

// Poll re-fetches positions on behalf of the poller. It is skipped while a
// positions fetch is still outstanding.
func (c *Coordinator) Poll(ctx context.Context) bool {
	if c.view.Status(view.Positions).InFlight > 0 {
		metrics.RecordRefresh("poller", false)
		logging.Ctx(ctx).Debug().Msg("Skipping poll: positions fetch still outstanding")
		return false
	}
	metrics.RecordRefresh("poller", true)
	c.fetchPositions(logging.ContextWithNewCorrelationID(ctx), c.filters.Committed(), "poll")
	return true
}

// Wait blocks until every dispatched fetch has settled.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Close cancels outstanding fetches and waits for them to settle.
func (c *Coordinator) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *Coordinator) onCommit(action filter.CommitAction, committed models.FilterCriteria) {
	ctx := logging.ContextWithNewCorrelationID(c.ctx)
	c.fetchPositions(ctx, committed, string(action))
}

func (c *Coordinator) allow(source string) bool {
	ok := c.limiter.Allow()
	metrics.RecordRefresh(source, ok)
	return ok
}

func (c *Coordinator) fetchPositions(ctx context.Context, criteria models.FilterCriteria, reason string) {
	params := query.BuildWithLimit(criteria, c.opts.PositionsLimit)
	ticket := c.view.Begin(view.Positions)

	logging.Ctx(ctx).Debug().
		Str("reason", reason).
		Str("query", params.Encode()).
		Uint64("seq", ticket.Seq).
		Msg("Fetching positions")

	c.spawn(ctx, func(fctx context.Context) {
		positions, err := c.fetcher.ListPositions(fctx, params)
		if err != nil {
			c.fail(fctx, ticket, err)
			return
		}
		if !c.view.ApplyPositions(ticket, positions) {
			logging.Ctx(fctx).Debug().Uint64("seq", ticket.Seq).Msg("Discarded stale positions")
		}
	})
}

func (c *Coordinator) fetchRegions(ctx context.Context) {
	ticket := c.view.Begin(view.Regions)
	c.spawn(ctx, func(fctx context.Context) {
		regions, err := c.fetcher.ListRegions(fctx)
		if err != nil {
			c.fail(fctx, ticket, err)
			return
		}
		c.view.ApplyRegions(ticket, regions)
	})
}

func (c *Coordinator) fetchCrossings(ctx context.Context) {
	ticket := c.view.Begin(view.Crossings)
	limit := c.opts.CrossingsLimit
	f := c.AlertsFilter()
	c.spawn(ctx, func(fctx context.Context) {
		crossings, err := c.fetcher.ListCrossings(fctx, limit, f)
		if err != nil {
			c.fail(fctx, ticket, err)
			return
		}
		c.view.ApplyCrossings(ticket, crossings)
	})
}

func (c *Coordinator) fail(ctx context.Context, ticket view.Ticket, err error) {
	if !c.view.Fail(ticket, err) {
		return
	}
	log := logging.Ctx(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		log.Debug().Str("dataset", string(ticket.Dataset)).Msg("Fetch cancelled")
	case backend.IsKind(err, backend.KindDecode):
		// the backend answered but the payload no longer matches its contract
		log.Error().Err(err).Str("dataset", string(ticket.Dataset)).Msg("Malformed backend response; keeping previous data")
	default:
		log.Warn().Err(err).Str("dataset", string(ticket.Dataset)).Msg("Fetch failed; keeping previous data")
	}
}

// spawn runs fn on its own goroutine with a context that keeps ctx's values
// but is cancelled only by Close, never by the caller.
func (c *Coordinator) spawn(ctx context.Context, fn func(context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		stop := context.AfterFunc(c.ctx, cancel)
		defer func() {
			stop()
			cancel()
		}()
		fn(fctx)
	}()
}
