// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package services provides suture.Service wrappers for assetwatch components.

Each wrapper translates a component's lifecycle into suture's
Serve(ctx) error pattern:

  - HTTPServerService: ListenAndServe / Shutdown of the view API
  - CoordinatorService: Activate on start, Close on stop
  - PollerService: Start / Stop of the positions poller

Serve returns ctx.Err() on a normal shutdown and a wrapped error when the
component fails, which tells the supervisor to restart it with backoff.
*/
package services
