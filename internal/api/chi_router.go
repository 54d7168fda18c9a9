// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/assetwatch/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses the default middleware config.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is handled
	r.Use(RequestLogging())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.With(router.chiMiddleware.RateLimitInteractive(), middleware.Compression).Get("/view", router.handler.View)

		r.Route("/filters", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Get("/", router.handler.Filters)
			r.Patch("/pending", router.handler.EditFilter)
			r.Post("/pending/asset-types/{type}", router.handler.ToggleAssetType)
			r.Post("/apply", router.handler.ApplyFilters)
			r.Post("/clear", router.handler.ClearFilters)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitInteractive())
			r.Post("/markers/{assetID}/click", router.handler.MarkerClick)
			r.Post("/rows/{positionID}/select", router.handler.SelectRow)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Post("/refresh", router.handler.Refresh)
			r.Post("/alerts/refresh", router.handler.RefreshAlerts)
			r.Get("/alerts/filter", router.handler.AlertsFilter)
			r.Put("/alerts/filter", router.handler.SetAlertsFilter)
			r.Post("/positions", router.handler.CreatePosition)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	return r
}
