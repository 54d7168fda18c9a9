// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Backend  BackendConfig  `koanf:"backend"`
	Sync     SyncConfig     `koanf:"sync"`
	Map      MapConfig      `koanf:"map"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// BackendConfig holds connection settings for the tracking backend.
type BackendConfig struct {
	// BaseURL is the backend origin, e.g. http://localhost:8000. Endpoint
	// paths (/api/positions, ...) are appended to it.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration `koanf:"timeout"`

	// PositionsLimit is sent as limit on every positions query.
	PositionsLimit int `koanf:"positions_limit"`

	// CrossingsLimit is sent as limit on the crossings query.
	CrossingsLimit int `koanf:"crossings_limit"`

	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig controls the optional breaker in front of the backend.
// The breaker never retries; it only rejects calls while open.
type CircuitBreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`  // allowed through while half-open
	Interval     time.Duration `koanf:"interval"`      // closed-state count reset
	Timeout      time.Duration `koanf:"timeout"`       // open -> half-open delay
	MinRequests  uint32        `koanf:"min_requests"`  // before the ratio is considered
	FailureRatio float64       `koanf:"failure_ratio"` // trips at or above this ratio
}

// SyncConfig controls how datasets are refreshed and reconciled.
type SyncConfig struct {
	// OrderedResponses discards responses older than the latest dispatched
	// request per dataset. When false, the last response to arrive wins.
	OrderedResponses bool `koanf:"ordered_responses"`

	// PollInterval re-fetches positions periodically. Zero disables polling.
	PollInterval time.Duration `koanf:"poll_interval"`

	// RefreshRate and RefreshBurst throttle manual refreshes (tokens per second).
	RefreshRate  float64 `koanf:"refresh_rate"`
	RefreshBurst int     `koanf:"refresh_burst"`
}

// MapConfig holds initial map viewport settings.
type MapConfig struct {
	CenterLatitude  float64 `koanf:"center_latitude"`
	CenterLongitude float64 `koanf:"center_longitude"`
	Zoom            int     `koanf:"zoom"`
	SelectZoom      int     `koanf:"select_zoom"`

	// TimeZone is the IANA zone used for display timestamps. Empty means
	// the process local zone.
	TimeZone string `koanf:"time_zone"`
}

// Location resolves TimeZone, falling back to time.Local.
func (m MapConfig) Location() *time.Location {
	if m.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(m.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ServerConfig holds view API listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds CORS and rate limit settings for the view API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load loads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
