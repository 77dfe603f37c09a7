// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values the service cannot run with.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}

	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}

	if len(c.Catalog.Quotas) == 0 {
		return fmt.Errorf("catalog.quotas must not be empty")
	}
	if len(c.Catalog.Categories) == 0 {
		return fmt.Errorf("catalog.categories must not be empty")
	}
	if len(c.Catalog.SeatTypes) == 0 {
		return fmt.Errorf("catalog.seat_types must not be empty")
	}
	if len(c.Catalog.Rounds) == 0 {
		return fmt.Errorf("catalog.rounds must not be empty")
	}
	for _, r := range c.Catalog.Rounds {
		if r < 1 {
			return fmt.Errorf("catalog.rounds entries must be >= 1, got %d", r)
		}
	}

	e := c.Engine
	if e.DefaultStretchMargin < 0 {
		return fmt.Errorf("engine.default_stretch_margin must be >= 0, got %d", e.DefaultStretchMargin)
	}
	if e.DefaultSafeMargin < 0 {
		return fmt.Errorf("engine.default_safe_margin must be >= 0, got %d", e.DefaultSafeMargin)
	}
	if e.MaxRank < 1 {
		return fmt.Errorf("engine.max_rank must be >= 1, got %d", e.MaxRank)
	}
	if e.MaxStretchMargin < 0 {
		return fmt.Errorf("engine.max_stretch_margin must be >= 0, got %d", e.MaxStretchMargin)
	}
	if e.MaxSafeMargin < 0 {
		return fmt.Errorf("engine.max_safe_margin must be >= 0, got %d", e.MaxSafeMargin)
	}
	if e.MaxWindow < 1 {
		return fmt.Errorf("engine.max_window must be >= 1, got %d", e.MaxWindow)
	}
	if e.DefaultStretchMargin > e.MaxStretchMargin {
		return fmt.Errorf("engine.default_stretch_margin %d exceeds engine.max_stretch_margin %d",
			e.DefaultStretchMargin, e.MaxStretchMargin)
	}
	if e.DefaultSafeMargin > e.MaxSafeMargin {
		return fmt.Errorf("engine.default_safe_margin %d exceeds engine.max_safe_margin %d",
			e.DefaultSafeMargin, e.MaxSafeMargin)
	}
	if e.CacheEnabled {
		if e.CacheTTL <= 0 {
			return fmt.Errorf("engine.cache_ttl must be positive when cache is enabled, got %v", e.CacheTTL)
		}
		if e.CacheMaxEntries < 1 {
			return fmt.Errorf("engine.cache_max_entries must be >= 1 when cache is enabled, got %d", e.CacheMaxEntries)
		}
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be >= 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
		}
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
