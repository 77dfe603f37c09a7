// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package engine

import (
	"testing"
)

func TestScoreTierBoundaries(t *testing.T) {
	tests := []struct {
		margin    int
		wantProb  int
		wantLabel string
	}{
		{100000, 95, "Very High Chance"},
		{800, 95, "Very High Chance"},
		{799, 85, "High Chance"},
		{300, 85, "High Chance"},
		{299, 75, "Decent Margin"},
		{100, 75, "Decent Margin"},
		{99, 65, "Close to Cutoff"},
		{1, 65, "Close to Cutoff"},
		{0, 65, "Close to Cutoff"},
		{-1, 40, "Very Close but Below Cutoff"},
		{-200, 40, "Very Close but Below Cutoff"},
		{-201, 25, "Close but Below Cutoff"},
		{-500, 25, "Close but Below Cutoff"},
		{-501, 10, "Moderate Gap"},
		{-1500, 10, "Moderate Gap"},
		{-1501, 0, "Large Gap (effectively no chance)"},
		{-100000, 0, "Large Gap (effectively no chance)"},
	}

	for _, tt := range tests {
		tier := Score(tt.margin)
		if tier.Probability != tt.wantProb {
			t.Errorf("Score(%d).Probability = %d, want %d", tt.margin, tier.Probability, tt.wantProb)
		}
		if tier.Label != tt.wantLabel {
			t.Errorf("Score(%d).Label = %q, want %q", tt.margin, tier.Label, tt.wantLabel)
		}
	}
}

func TestScoreMonotonicNonDecreasing(t *testing.T) {
	prev := -1
	for margin := -5000; margin <= 5000; margin++ {
		p := Score(margin).Probability
		if p < prev {
			t.Fatalf("probability decreased at margin %d: %d -> %d", margin, prev, p)
		}
		prev = p
	}
}

func TestScoreOnlyFixedValues(t *testing.T) {
	valid := map[int]bool{95: true, 85: true, 75: true, 65: true, 40: true, 25: true, 10: true, 0: true}
	for margin := -10000; margin <= 10000; margin += 7 {
		p := Score(margin).Probability
		if !valid[p] {
			t.Fatalf("Score(%d) = %d, not a tier value", margin, p)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	for _, margin := range []int{-3000, -42, 0, 42, 3000} {
		a, b := Score(margin), Score(margin)
		if a != b {
			t.Errorf("Score(%d) not deterministic: %+v vs %+v", margin, a, b)
		}
	}
}

func TestMarginSign(t *testing.T) {
	// Student rank 1000 against cutoff 1800: student is better, positive margin.
	if got := Margin(1800, 1000); got != 800 {
		t.Errorf("Margin(1800, 1000) = %d, want 800", got)
	}
	// Student rank 2000 against cutoff 1800: student is worse, negative margin.
	if got := Margin(1800, 2000); got != -200 {
		t.Errorf("Margin(1800, 2000) = %d, want -200", got)
	}
}

func TestTiersDescendingAndComplete(t *testing.T) {
	ts := Tiers()
	if len(ts) != 8 {
		t.Fatalf("tiers = %d, want 8", len(ts))
	}
	for i := 1; i < len(ts); i++ {
		if ts[i].Probability >= ts[i-1].Probability {
			t.Errorf("tier probabilities not strictly descending at %d", i)
		}
		if ts[i].MinMargin >= ts[i-1].MinMargin {
			t.Errorf("tier thresholds not strictly descending at %d", i)
		}
	}
}
