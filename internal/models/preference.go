// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package models

// WildcardFilter is the value that matches every quota, category, or seat
// type in a query. Round never accepts the wildcard.
const WildcardFilter = "All"

// PreferenceQuery describes one candidate's request for a preference list.
//
// StretchMargin and SafeMargin define the rank window
// [max(1, rank-stretch), rank+safe], boundaries inclusive. A zero margin
// means "use the configured default".
type PreferenceQuery struct {
	// StudentRank is the candidate's merit rank. Must be > 0.
	StudentRank int `json:"student_rank"`

	// Quota filters records by admission quota. "All" matches every quota.
	Quota string `json:"quota"`

	// Category filters records by reservation category. "All" matches
	// every category.
	Category string `json:"category"`

	// SeatType filters records by allocation region. "All" matches every
	// seat type.
	SeatType string `json:"seat_type"`

	// Round selects the CAP allotment round. Matched exactly.
	Round int `json:"round"`

	// StretchMargin extends the window toward better (numerically lower)
	// ranks. 0 selects the configured default.
	StretchMargin int `json:"stretch_margin"`

	// SafeMargin extends the window toward worse (numerically higher)
	// ranks. 0 selects the configured default.
	SafeMargin int `json:"safe_margin"`

	// MinProbability drops scored candidates below this tier value.
	// 0 keeps everything.
	MinProbability int `json:"min_probability"`
}

// ScoredCandidate is one (college, branch) option in the generated list.
type ScoredCandidate struct {
	// Preference is the 1-based position in the final ordered list.
	Preference int `json:"preference"`

	CollegeCode      string  `json:"college_code"`
	CollegeName      string  `json:"college_name"`
	BranchCode       string  `json:"branch_code"`
	BranchName       string  `json:"branch_name"`
	CategoryCode     string  `json:"category_code"`
	Quota            string  `json:"quota"`
	Category         string  `json:"category"`
	SeatType         string  `json:"seat_type"`
	CutoffRank       int     `json:"cutoff_rank"`
	CutoffPercentile float64 `json:"cutoff_percentile"`
	Round            int     `json:"round"`

	// Margin is cutoff rank minus student rank; positive means the
	// student outranks the historical cutoff.
	Margin int `json:"margin"`

	// Probability is the tier value, one of {95,85,75,65,40,25,10,0}.
	Probability int `json:"probability"`

	// Chance is the tier's display label.
	Chance string `json:"chance"`
}

// TierBucket is one row of the probability distribution histogram.
type TierBucket struct {
	Probability int    `json:"probability"`
	Label       string `json:"label"`
	Count       int    `json:"count"`
}

// PreferenceList is the assembled result of a preference query.
type PreferenceList struct {
	// Preferences is ordered ascending by cutoff rank, ties broken by
	// college code then branch code, numbered 1..N.
	Preferences []ScoredCandidate `json:"preferences"`

	// Distribution always contains all eight tiers in descending
	// probability order, including zero-count buckets.
	Distribution []TierBucket `json:"distribution"`

	// TotalEligible is the number of records that survived the
	// eligibility filter, before the probability threshold.
	TotalEligible int `json:"total_eligible"`

	// TotalCandidates is the number of preferences returned.
	TotalCandidates int `json:"total_candidates"`

	// StudentRank echoes the query.
	StudentRank int `json:"student_rank"`

	// Round echoes the query.
	Round int `json:"round"`
}
