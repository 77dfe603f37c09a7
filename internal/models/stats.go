// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package models

import (
	"time"
)

// DatasetStats summarizes the currently loaded cutoff snapshot.
type DatasetStats struct {
	// Records is the number of rows loaded successfully.
	Records int `json:"records"`

	// SkippedRows counts malformed source rows dropped during load.
	SkippedRows int `json:"skipped_rows"`

	// Colleges is the number of distinct college codes.
	Colleges int `json:"colleges"`

	// Branches is the number of distinct branch names.
	Branches int `json:"branches"`

	// Year is the admission year the table describes (0 if unset).
	Year int `json:"year,omitempty"`

	// Source is the file path the snapshot was loaded from.
	Source string `json:"source"`

	// LoadedAt is when the snapshot was built.
	LoadedAt time.Time `json:"loaded_at"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	DatasetLoaded bool      `json:"dataset_loaded"`
	Records       int       `json:"records"`
	Uptime        string    `json:"uptime"`
	Timestamp     time.Time `json:"timestamp"`
}
