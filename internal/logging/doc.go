// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

// Package logging provides the process-wide zerolog logger.
//
// Call Init once from main with the configured level and format. Packages
// log through the package-level helpers (Info, Warn, Err) or through a
// component logger from WithComponent. Request handlers use Ctx so that
// request_id and correlation_id are attached automatically.
//
// Always terminate event chains with Msg or Send:
//
//	logging.Info().Str("dataset", "regions").Int("count", n).Msg("Dataset applied")
package logging
