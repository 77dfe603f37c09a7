// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package engine

import (
	"github.com/JARAWA/MHTCET/internal/models"
)

// Tier is one step of the admission-probability scale.
type Tier struct {
	// MinMargin is the smallest margin (cutoff rank minus student rank)
	// that still lands in this tier.
	MinMargin int

	// Probability is the tier's fixed percentage value.
	Probability int

	// Label is the tier's display text, returned verbatim.
	Label string
}

// tiers maps margin to probability, scanned top-down with first match
// winning. The table is strictly descending in both MinMargin and
// Probability, which makes the mapping a monotonic step function. The final
// entry catches everything below the last threshold.
//
// A margin of exactly zero lands in the 65% tier: a student at the
// historical cutoff was the last one admitted that year.
var tiers = []Tier{
	{MinMargin: 800, Probability: 95, Label: "Very High Chance"},
	{MinMargin: 300, Probability: 85, Label: "High Chance"},
	{MinMargin: 100, Probability: 75, Label: "Decent Margin"},
	{MinMargin: 0, Probability: 65, Label: "Close to Cutoff"},
	{MinMargin: -200, Probability: 40, Label: "Very Close but Below Cutoff"},
	{MinMargin: -500, Probability: 25, Label: "Close but Below Cutoff"},
	{MinMargin: -1500, Probability: 10, Label: "Moderate Gap"},
	{MinMargin: minMarginFloor, Probability: 0, Label: "Large Gap (effectively no chance)"},
}

// minMarginFloor guarantees the last tier is total over int margins.
const minMarginFloor = -1 << 62

// Margin returns the student's headroom against a cutoff rank. Positive
// means the student's rank is numerically better than the cutoff.
func Margin(cutoffRank, studentRank int) int {
	return cutoffRank - studentRank
}

// Score maps a margin to its probability tier. Pure and total.
func Score(margin int) Tier {
	for _, t := range tiers {
		if margin >= t.MinMargin {
			return t
		}
	}
	// Unreachable: the last tier's floor admits every int.
	return tiers[len(tiers)-1]
}

// Tiers returns the full scale in descending probability order.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// emptyDistribution returns all eight buckets with zero counts, in
// descending probability order.
func emptyDistribution() []models.TierBucket {
	dist := make([]models.TierBucket, len(tiers))
	for i, t := range tiers {
		dist[i] = models.TierBucket{Probability: t.Probability, Label: t.Label}
	}
	return dist
}
