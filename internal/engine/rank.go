// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package engine

import (
	"sort"

	"github.com/JARAWA/MHTCET/internal/models"
)

// assemble scores the eligible records, applies the probability threshold,
// orders the survivors, and numbers them.
//
// Ordering is ascending by cutoff rank; ties break by college code, then
// branch code (byte order of the normalized codes). Preference numbers are
// dense, 1-based, assigned after sorting.
func assemble(eligible []models.CutoffRecord, q *models.PreferenceQuery) *models.PreferenceList {
	list := &models.PreferenceList{
		Distribution:  emptyDistribution(),
		TotalEligible: len(eligible),
		StudentRank:   q.StudentRank,
		Round:         q.Round,
	}

	candidates := make([]models.ScoredCandidate, 0, len(eligible))
	for i := range eligible {
		rec := &eligible[i]
		margin := Margin(rec.CutoffRank, q.StudentRank)
		tier := Score(margin)
		if tier.Probability < q.MinProbability {
			continue
		}
		candidates = append(candidates, models.ScoredCandidate{
			CollegeCode:      rec.CollegeCode,
			CollegeName:      rec.CollegeName,
			BranchCode:       rec.BranchCode,
			BranchName:       rec.BranchName,
			CategoryCode:     rec.CategoryCode,
			Quota:            rec.Quota,
			Category:         rec.Category,
			SeatType:         rec.SeatType,
			CutoffRank:       rec.CutoffRank,
			CutoffPercentile: rec.CutoffPercentile,
			Round:            rec.Round,
			Margin:           margin,
			Probability:      tier.Probability,
			Chance:           tier.Label,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := &candidates[i], &candidates[j]
		if a.CutoffRank != b.CutoffRank {
			return a.CutoffRank < b.CutoffRank
		}
		ac, bc := normalize(a.CollegeCode), normalize(b.CollegeCode)
		if ac != bc {
			return ac < bc
		}
		return normalize(a.BranchCode) < normalize(b.BranchCode)
	})

	for i := range candidates {
		candidates[i].Preference = i + 1
		for j := range list.Distribution {
			if list.Distribution[j].Probability == candidates[i].Probability {
				list.Distribution[j].Count++
				break
			}
		}
	}

	list.Preferences = candidates
	list.TotalCandidates = len(candidates)
	return list
}
