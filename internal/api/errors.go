// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

// Package api provides HTTP handlers for the MHTCET preference engine.
//
// errors.go - Common API error definitions
package api

import "errors"

// Common API errors
var (
	// ErrReloadDisabled indicates dataset reload is disabled in config
	ErrReloadDisabled = errors.New("dataset reload is disabled")
)
