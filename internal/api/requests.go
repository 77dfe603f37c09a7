// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

// requests.go - HTTP request bodies with go-playground/validator tags.
// These structs are validated before a query reaches the preference engine,
// which applies a second, config-aware round of validation (catalog membership,
// configurable rank and margin caps).
package api

// PreferenceRequest is the request body for POST /api/v1/preferences.
//
// Fields:
//   - StudentRank: MHTCET merit rank of the candidate (required)
//   - Quota: admission quota, e.g. "General" or the "All" wildcard (required)
//   - Category: reservation category, e.g. "Open", "OBC" (required)
//   - SeatType: seat allocation pool, e.g. "State Level" (required)
//   - Round: CAP round number (required)
//   - StretchMargin: how far above the rank to reach for ambitious picks (0 = server default)
//   - SafeMargin: how far below the rank to include safe picks (0 = server default)
//   - MinProbability: drop candidates scored below this tier value (0 keeps everything)
type PreferenceRequest struct {
	StudentRank    int    `json:"student_rank" validate:"required,min=1"`
	Quota          string `json:"quota" validate:"required,min=1,max=64"`
	Category       string `json:"category" validate:"required,min=1,max=64"`
	SeatType       string `json:"seat_type" validate:"required,min=1,max=64"`
	Round          int    `json:"round" validate:"required,min=1"`
	StretchMargin  int    `json:"stretch_margin" validate:"min=0"`
	SafeMargin     int    `json:"safe_margin" validate:"min=0"`
	MinProbability int    `json:"min_probability" validate:"min=0,max=100"`
}
