// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

// Package models defines the data types shared across the dataset, engine,
// and API layers: cutoff records, preference queries and results, dataset
// statistics, and the standard API response envelope.
package models

// CutoffRecord is one row of the historical cutoff table: the closing rank
// at which a (college, branch) seat was last allotted for a given quota,
// category, seat type, and admission round.
//
// Records are immutable once loaded. Text fields are stored trimmed;
// matching against them is case-insensitive.
type CutoffRecord struct {
	// Serial is the 1-based position of the row in the source file,
	// counting only rows that loaded successfully.
	Serial int `json:"serial"`

	// CollegeCode uniquely identifies the institute (DTE code).
	CollegeCode string `json:"college_code"`

	// CollegeName is the institute's display name.
	CollegeName string `json:"college_name"`

	// BranchCode identifies the course within the institute.
	BranchCode string `json:"branch_code"`

	// BranchName is the course's display name.
	BranchName string `json:"branch_name"`

	// CategoryCode is the composite seat designation printed on the
	// allotment list (e.g. "GOPENS"). Informational; matching uses the
	// decomposed Quota/Category/SeatType fields.
	CategoryCode string `json:"category_code"`

	// Quota is the admission quota (General, Ladies, TFWS, ...).
	Quota string `json:"quota"`

	// Category is the reservation category (Open, OBC, SC, ...).
	Category string `json:"category"`

	// SeatType is the allocation region (State Level, Home University,
	// Other than Home University).
	SeatType string `json:"seat_type"`

	// CutoffRank is the closing rank. Always > 0.
	CutoffRank int `json:"cutoff_rank"`

	// CutoffPercentile is the closing percentile, in [0, 100].
	CutoffPercentile float64 `json:"cutoff_percentile"`

	// Round is the CAP allotment round this cutoff belongs to.
	Round int `json:"round"`
}
