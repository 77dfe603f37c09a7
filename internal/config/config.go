// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

// Package config provides layered configuration for the preference engine
// using Koanf v2: struct defaults, then an optional YAML file, then
// environment variables, with clear precedence (env > file > defaults).
package config

import (
	"time"
)

// Config is the root configuration for the service.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Engine   EngineConfig   `koanf:"engine"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	// Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port.
	// Default: 8080
	Port int `koanf:"port"`

	// Timeout is the per-request timeout applied to handlers.
	// Default: 30s
	Timeout time.Duration `koanf:"timeout"`

	// Environment is the deployment mode: development or production.
	// Default: development
	Environment string `koanf:"environment"`
}

// DatasetConfig holds cutoff-table dataset settings.
type DatasetConfig struct {
	// Path is the location of the cutoff CSV file.
	// Default: /data/cutoffs.csv
	Path string `koanf:"path"`

	// Year labels the admission year the cutoff table describes.
	// Informational only; surfaced in dataset stats.
	// Default: 0 (unset)
	Year int `koanf:"year"`

	// ReloadEnabled allows the reload endpoint to rebuild the dataset
	// from Path at runtime.
	// Default: true
	ReloadEnabled bool `koanf:"reload_enabled"`
}

// CatalogConfig holds the closed value sets a query is validated against.
// Each list is matched case-insensitively; "All" is the wildcard accepted
// for quota, category, and seat type (never for round).
type CatalogConfig struct {
	// Quotas is the accepted quota set.
	Quotas []string `koanf:"quotas"`

	// Categories is the accepted reservation category set.
	Categories []string `koanf:"categories"`

	// SeatTypes is the accepted seat type set.
	SeatTypes []string `koanf:"seat_types"`

	// Rounds is the accepted admission round set.
	Rounds []int `koanf:"rounds"`
}

// EngineConfig holds preference-engine tuning and query limits.
type EngineConfig struct {
	// DefaultStretchMargin widens the rank window below the student's rank
	// when the query does not set one.
	// Default: 1000
	DefaultStretchMargin int `koanf:"default_stretch_margin"`

	// DefaultSafeMargin widens the rank window above the student's rank
	// when the query does not set one.
	// Default: 3000
	DefaultSafeMargin int `koanf:"default_safe_margin"`

	// MaxRank is the largest student rank a query may carry.
	// Default: 200000
	MaxRank int `koanf:"max_rank"`

	// MaxStretchMargin caps the per-query stretch margin.
	// Default: 5000
	MaxStretchMargin int `koanf:"max_stretch_margin"`

	// MaxSafeMargin caps the per-query safe margin.
	// Default: 10000
	MaxSafeMargin int `koanf:"max_safe_margin"`

	// MaxWindow caps the combined width of the rank window.
	// Default: 15000
	MaxWindow int `koanf:"max_window"`

	// CacheEnabled turns on the in-memory response cache.
	// Default: true
	CacheEnabled bool `koanf:"cache_enabled"`

	// CacheTTL is how long a cached preference list stays valid.
	// Default: 5m
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheMaxEntries bounds the cache size.
	// Default: 1000
	CacheMaxEntries int `koanf:"cache_max_entries"`
}

// SecurityConfig holds API protection settings.
type SecurityConfig struct {
	// RateLimitReqs is the number of requests allowed per window per client.
	// Default: 100
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window.
	// Default: 1m
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled turns off rate limiting entirely.
	// Default: false
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`

	// CORSOrigins lists allowed CORS origins.
	// Default: ["*"]
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file:line in log output.
	// Default: false
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with all default values applied.
// Defaults are loaded first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Dataset: DatasetConfig{
			Path:          "/data/cutoffs.csv",
			Year:          0,
			ReloadEnabled: true,
		},
		Catalog: CatalogConfig{
			Quotas: []string{
				"All", "General", "Ladies", "PWD", "Defense",
				"TFWS", "EWS", "Orphan", "Minority",
			},
			Categories: []string{
				"All", "Open", "SC", "ST", "VJ", "NT1", "NT2", "NT3",
				"OBC", "SEBC",
			},
			SeatTypes: []string{
				"All", "State Level", "Home University",
				"Other than Home University",
			},
			Rounds: []int{1, 2, 3},
		},
		Engine: EngineConfig{
			DefaultStretchMargin: 1000,
			DefaultSafeMargin:    3000,
			MaxRank:              200000,
			MaxStretchMargin:     5000,
			MaxSafeMargin:        10000,
			MaxWindow:            15000,
			CacheEnabled:         true,
			CacheTTL:             5 * time.Minute,
			CacheMaxEntries:      1000,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// DefaultConfig returns a fresh Config populated with defaults.
// Intended for tests and programmatic construction.
func DefaultConfig() *Config {
	return defaultConfig()
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Catalog.Quotas = append([]string(nil), c.Catalog.Quotas...)
	clone.Catalog.Categories = append([]string(nil), c.Catalog.Categories...)
	clone.Catalog.SeatTypes = append([]string(nil), c.Catalog.SeatTypes...)
	clone.Catalog.Rounds = append([]int(nil), c.Catalog.Rounds...)
	clone.Security.CORSOrigins = append([]string(nil), c.Security.CORSOrigins...)
	return &clone
}
