// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package engine

import (
	"errors"
)

// ErrInvalidQuery is returned when a preference query fails semantic
// validation (rank out of range, unknown quota, oversized window).
// An eligible-but-empty result is not an error.
var ErrInvalidQuery = errors.New("invalid preference query")
