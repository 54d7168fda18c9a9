// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateBackend,
		c.validateSync,
		c.validateMap,
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateBackend() error {
	if c.Backend.BaseURL == "" {
		return errors.New("BACKEND_URL is required")
	}
	if err := validateHTTPURL(c.Backend.BaseURL, "BACKEND_URL"); err != nil {
		return err
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must not be negative, got %v", c.Backend.Timeout)
	}
	if c.Backend.PositionsLimit < 1 {
		return fmt.Errorf("POSITIONS_LIMIT must be at least 1, got %d", c.Backend.PositionsLimit)
	}
	if c.Backend.CrossingsLimit < 1 {
		return fmt.Errorf("CROSSINGS_LIMIT must be at least 1, got %d", c.Backend.CrossingsLimit)
	}
	return c.validateCircuitBreaker()
}

func (c *Config) validateCircuitBreaker() error {
	cb := c.Backend.CircuitBreaker
	if !cb.Enabled {
		return nil
	}
	if cb.FailureRatio <= 0 || cb.FailureRatio > 1 {
		return fmt.Errorf("circuit breaker failure ratio must be in (0, 1], got %v", cb.FailureRatio)
	}
	if cb.Timeout <= 0 {
		return fmt.Errorf("circuit breaker timeout must be positive, got %v", cb.Timeout)
	}
	return nil
}

func (c *Config) validateSync() error {
	if c.Sync.PollInterval < 0 {
		return fmt.Errorf("POLL_INTERVAL must not be negative, got %v", c.Sync.PollInterval)
	}
	if c.Sync.PollInterval > 0 && c.Sync.PollInterval < time.Second {
		return fmt.Errorf("POLL_INTERVAL must be at least 1s when enabled, got %v", c.Sync.PollInterval)
	}
	if c.Sync.RefreshRate <= 0 {
		return fmt.Errorf("REFRESH_RATE must be positive, got %v", c.Sync.RefreshRate)
	}
	if c.Sync.RefreshBurst < 1 {
		return fmt.Errorf("REFRESH_BURST must be at least 1, got %d", c.Sync.RefreshBurst)
	}
	return nil
}

func (c *Config) validateMap() error {
	if c.Map.CenterLatitude < -90 || c.Map.CenterLatitude > 90 {
		return fmt.Errorf("MAP_CENTER_LATITUDE must be between -90 and 90, got %v", c.Map.CenterLatitude)
	}
	if c.Map.CenterLongitude < -180 || c.Map.CenterLongitude > 180 {
		return fmt.Errorf("MAP_CENTER_LONGITUDE must be between -180 and 180, got %v", c.Map.CenterLongitude)
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 22 {
		return fmt.Errorf("MAP_ZOOM must be between 0 and 22, got %d", c.Map.Zoom)
	}
	if c.Map.SelectZoom < 0 || c.Map.SelectZoom > 22 {
		return fmt.Errorf("MAP_SELECT_ZOOM must be between 0 and 22, got %d", c.Map.SelectZoom)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return errors.New("CORS_ORIGINS must list at least one origin (use * to allow all)")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
