// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

/*
Package supervisor runs assetwatch's long-lived services under a suture
supervisor tree.

	assetwatch (root)
	├── sync-layer
	│   ├── sync-coordinator   activates the view, cancels fetches on stop
	│   └── positions-poller   optional periodic positions refresh
	└── api-layer
	    └── view-api           HTTP server

A service that returns an error is restarted with backoff. After
FailureThreshold failures within the decay window the supervisor waits
FailureBackoff before trying again. Supervisor events are logged through
sutureslog into the process zerolog logger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddSyncService(services.NewCoordinatorService(coord))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
