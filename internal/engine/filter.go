// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package engine

import (
	"strings"

	"github.com/JARAWA/MHTCET/internal/models"
)

// normalize prepares a filter value or record field for comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isWildcard reports whether a query filter value matches everything.
func isWildcard(s string) bool {
	return normalize(s) == normalize(models.WildcardFilter)
}

// window computes the inclusive eligibility window for a student rank.
// The lower bound never goes below rank 1.
func window(studentRank, stretch, safe int) (lo, hi int) {
	lo = studentRank - stretch
	if lo < 1 {
		lo = 1
	}
	hi = studentRank + safe
	return lo, hi
}

// matches applies the categorical filters of a query to one record.
// Quota, category, and seat type honor the "All" wildcard; round is
// always exact.
func matches(rec *models.CutoffRecord, q *models.PreferenceQuery) bool {
	if rec.Round != q.Round {
		return false
	}
	if !isWildcard(q.Quota) && normalize(rec.Quota) != normalize(q.Quota) {
		return false
	}
	if !isWildcard(q.Category) && normalize(rec.Category) != normalize(q.Category) {
		return false
	}
	if !isWildcard(q.SeatType) && normalize(rec.SeatType) != normalize(q.SeatType) {
		return false
	}
	return true
}

// filterEligible returns the records matching the query's categorical
// filters whose cutoff rank falls in [lo, hi], preserving source order.
// An empty result is a valid outcome.
func filterEligible(records []models.CutoffRecord, q *models.PreferenceQuery, lo, hi int) []models.CutoffRecord {
	eligible := make([]models.CutoffRecord, 0, 64)
	for i := range records {
		rec := &records[i]
		if rec.CutoffRank < lo || rec.CutoffRank > hi {
			continue
		}
		if !matches(rec, q) {
			continue
		}
		eligible = append(eligible, *rec)
	}
	return eligible
}
