// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints, for both successful and error responses.
//
// Status field values:
//   - "success": Request completed, see Data field
//   - "error": Request failed, see Error field
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total_candidates": 42, "preferences": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-29T12:00:00Z",
//	    "query_time_ms": 3,
//	    "cached": false
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields.
//
// QueryTimeMS is the engine execution time in milliseconds; it is 0 and
// Cached is true when the response was served from the engine cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the structured error payload.
//
// Common codes:
//   - VALIDATION_ERROR: malformed request body or parameters
//   - INVALID_QUERY: query fails the engine's semantic checks
//   - DATA_UNAVAILABLE: cutoff dataset not loaded or unreadable
//   - NOT_FOUND: unknown route
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
