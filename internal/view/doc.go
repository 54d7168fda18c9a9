// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

// Package view holds the synchronized datasets (positions, regions,
// crossings and the selected asset's track) together with the current
// selection.
//
// Fetch results are applied through tickets obtained from Begin. By default
// the last result to arrive wins regardless of dispatch order. In ordered
// mode a result is dropped when a newer fetch for the same dataset has been
// dispatched, which makes the view reflect the most recent request.
//
// A failed fetch never clears data; it is recorded in the dataset Status so
// that "failed", "loading" and "loaded but empty" stay distinguishable.
package view
