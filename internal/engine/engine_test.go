// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package engine

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/JARAWA/MHTCET/internal/config"
	"github.com/JARAWA/MHTCET/internal/dataset"
	"github.com/JARAWA/MHTCET/internal/logging"
	"github.com/JARAWA/MHTCET/internal/models"
)

// mockProvider serves a fixed record slice or a fixed error.
type mockProvider struct {
	records []models.CutoffRecord
	err     error
}

func (m *mockProvider) Records() ([]models.CutoffRecord, error) {
	return m.records, m.err
}

func newTestEngine(t *testing.T, records []models.CutoffRecord) *Engine {
	t.Helper()
	cfg := config.DefaultConfig()
	var buf bytes.Buffer
	return New(cfg.Engine, cfg.Catalog, &mockProvider{records: records}, logging.NewTestLogger(&buf))
}

func baseQuery() models.PreferenceQuery {
	return models.PreferenceQuery{
		StudentRank: 5000,
		Quota:       "General",
		Category:    "Open",
		SeatType:    "State Level",
		Round:       1,
	}
}

func TestGenerateOrdersByCutoffRank(t *testing.T) {
	records := []models.CutoffRecord{
		rec("3012", "301224", "General", "Open", "State Level", 6000, 1),
		rec("1002", "100237", "General", "Open", "State Level", 4500, 1),
		rec("2008", "200819", "General", "Open", "State Level", 5200, 1),
	}
	e := newTestEngine(t, records)

	res, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	list := res.List
	if list.TotalCandidates != 3 {
		t.Fatalf("candidates = %d, want 3", list.TotalCandidates)
	}
	wantOrder := []int{4500, 5200, 6000}
	for i, want := range wantOrder {
		if list.Preferences[i].CutoffRank != want {
			t.Errorf("position %d cutoff = %d, want %d", i, list.Preferences[i].CutoffRank, want)
		}
		if list.Preferences[i].Preference != i+1 {
			t.Errorf("position %d preference = %d, want %d", i, list.Preferences[i].Preference, i+1)
		}
	}
}

func TestGenerateTieBreaksByCollegeThenBranch(t *testing.T) {
	records := []models.CutoffRecord{
		rec("2000", "B", "General", "Open", "State Level", 5000, 1),
		rec("1000", "Z", "General", "Open", "State Level", 5000, 1),
		rec("1000", "A", "General", "Open", "State Level", 5000, 1),
	}
	e := newTestEngine(t, records)

	res, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got := make([][2]string, 0, 3)
	for _, p := range res.List.Preferences {
		got = append(got, [2]string{p.CollegeCode, p.BranchCode})
	}
	want := [][2]string{{"1000", "A"}, {"1000", "Z"}, {"2000", "B"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie-break order = %v, want %v", got, want)
	}
}

func TestGenerateTwoRecordScenario(t *testing.T) {
	// Student at rank 5000: cutoff 4200 is above their reach (margin -800,
	// tier 10), cutoff 7000 is comfortable (margin 2000, tier 95). The list
	// still orders by cutoff rank, so the riskier seat comes first.
	records := []models.CutoffRecord{
		rec("9001", "1", "General", "Open", "State Level", 7000, 1),
		rec("1001", "1", "General", "Open", "State Level", 4200, 1),
	}
	e := newTestEngine(t, records)

	res, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	prefs := res.List.Preferences
	if len(prefs) != 2 {
		t.Fatalf("candidates = %d, want 2", len(prefs))
	}
	if prefs[0].CutoffRank != 4200 || prefs[0].Probability != 10 {
		t.Errorf("first = rank %d prob %d, want 4200/10", prefs[0].CutoffRank, prefs[0].Probability)
	}
	if prefs[1].CutoffRank != 7000 || prefs[1].Probability != 95 {
		t.Errorf("second = rank %d prob %d, want 7000/95", prefs[1].CutoffRank, prefs[1].Probability)
	}
}

func TestGenerateMarginZeroScoresSixtyFive(t *testing.T) {
	records := []models.CutoffRecord{
		rec("1002", "1", "General", "Open", "State Level", 5000, 1),
	}
	e := newTestEngine(t, records)

	res, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	p := res.List.Preferences[0]
	if p.Margin != 0 || p.Probability != 65 || p.Chance != "Close to Cutoff" {
		t.Errorf("margin-zero candidate = %+v, want margin 0, prob 65, Close to Cutoff", p)
	}
}

func TestGenerateThresholdDropsBelowMinProbability(t *testing.T) {
	// Margin -300 scores tier 25; threshold 50 must drop it and return an
	// empty list, not an error.
	records := []models.CutoffRecord{
		rec("1002", "1", "General", "Open", "State Level", 4700, 1),
	}
	e := newTestEngine(t, records)

	q := baseQuery()
	q.MinProbability = 50
	res, err := e.Generate(context.Background(), q)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.List.TotalCandidates != 0 {
		t.Errorf("candidates = %d, want 0", res.List.TotalCandidates)
	}
	if res.List.TotalEligible != 1 {
		t.Errorf("eligible = %d, want 1", res.List.TotalEligible)
	}
	if len(res.List.Preferences) != 0 {
		t.Errorf("preferences must be empty, got %v", res.List.Preferences)
	}
}

func TestGenerateDistributionCoversAllTiers(t *testing.T) {
	records := []models.CutoffRecord{
		rec("A", "1", "General", "Open", "State Level", 6000, 1), // margin 1000 -> 95
		rec("B", "1", "General", "Open", "State Level", 5400, 1), // margin 400 -> 85
		rec("C", "1", "General", "Open", "State Level", 5400, 1), // margin 400 -> 85
		rec("D", "1", "General", "Open", "State Level", 4900, 1), // margin -100 -> 40
	}
	e := newTestEngine(t, records)

	res, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	dist := res.List.Distribution
	if len(dist) != 8 {
		t.Fatalf("distribution buckets = %d, want 8", len(dist))
	}
	counts := map[int]int{}
	for _, b := range dist {
		counts[b.Probability] = b.Count
	}
	if counts[95] != 1 || counts[85] != 2 || counts[40] != 1 {
		t.Errorf("distribution counts = %v", counts)
	}
	if counts[75] != 0 || counts[0] != 0 {
		t.Errorf("zero-count buckets must be present with count 0: %v", counts)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	records := []models.CutoffRecord{
		rec("3012", "2", "General", "Open", "State Level", 6000, 1),
		rec("1002", "1", "General", "Open", "State Level", 4500, 1),
	}
	cfg := config.DefaultConfig()
	cfg.Engine.CacheEnabled = false
	var buf bytes.Buffer
	e := New(cfg.Engine, cfg.Catalog, &mockProvider{records: records}, logging.NewTestLogger(&buf))

	first, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.List, second.List) {
		t.Error("repeated queries must produce identical lists")
	}
}

func TestGenerateAppliesDefaultMargins(t *testing.T) {
	// Default window for rank 5000 is [4000, 8000]. 3900 must be excluded,
	// 4000 included.
	records := []models.CutoffRecord{
		rec("A", "1", "General", "Open", "State Level", 3900, 1),
		rec("B", "1", "General", "Open", "State Level", 4000, 1),
		rec("C", "1", "General", "Open", "State Level", 8000, 1),
		rec("D", "1", "General", "Open", "State Level", 8001, 1),
	}
	e := newTestEngine(t, records)

	res, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0)
	for _, p := range res.List.Preferences {
		got = append(got, p.CollegeCode)
	}
	if !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("default window selection = %v, want [B C]", got)
	}
}

func TestGenerateInvalidQueries(t *testing.T) {
	e := newTestEngine(t, nil)

	tests := []struct {
		name   string
		mutate func(*models.PreferenceQuery)
	}{
		{"zero rank", func(q *models.PreferenceQuery) { q.StudentRank = 0 }},
		{"negative rank", func(q *models.PreferenceQuery) { q.StudentRank = -5 }},
		{"rank over max", func(q *models.PreferenceQuery) { q.StudentRank = 200001 }},
		{"stretch over cap", func(q *models.PreferenceQuery) { q.StretchMargin = 5001 }},
		{"safe over cap", func(q *models.PreferenceQuery) { q.SafeMargin = 10001 }},
		{"negative stretch", func(q *models.PreferenceQuery) { q.StretchMargin = -1 }},
		{"min probability over 100", func(q *models.PreferenceQuery) { q.MinProbability = 101 }},
		{"unknown quota", func(q *models.PreferenceQuery) { q.Quota = "Management" }},
		{"unknown category", func(q *models.PreferenceQuery) { q.Category = "XYZ" }},
		{"unknown seat type", func(q *models.PreferenceQuery) { q.SeatType = "Private" }},
		{"unknown round", func(q *models.PreferenceQuery) { q.Round = 4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuery()
			tt.mutate(&q)
			_, err := e.Generate(context.Background(), q)
			if !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("err = %v, want ErrInvalidQuery", err)
			}
		})
	}
}

func TestGenerateCombinedWindowCap(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Engine.MaxWindow = 6000
	var buf bytes.Buffer
	e := New(cfg.Engine, cfg.Catalog, &mockProvider{}, logging.NewTestLogger(&buf))

	q := baseQuery()
	q.StretchMargin = 2000
	q.SafeMargin = 4001
	if _, err := e.Generate(context.Background(), q); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("combined window over cap: err = %v, want ErrInvalidQuery", err)
	}

	q.SafeMargin = 4000
	if _, err := e.Generate(context.Background(), q); err != nil {
		t.Errorf("combined window at cap must be accepted: %v", err)
	}
}

func TestGenerateMaxWindowNote(t *testing.T) {
	// stretch 5000 + safe 10000 = 15000 is exactly the default cap and
	// must be accepted.
	records := []models.CutoffRecord{
		rec("A", "1", "General", "Open", "State Level", 5000, 1),
	}
	e := newTestEngine(t, records)
	q := baseQuery()
	q.StudentRank = 20000
	q.StretchMargin = 5000
	q.SafeMargin = 9999
	if _, err := e.Generate(context.Background(), q); err != nil {
		t.Errorf("window at cap must be accepted: %v", err)
	}
}

func TestGenerateDataUnavailablePassthrough(t *testing.T) {
	cfg := config.DefaultConfig()
	var buf bytes.Buffer
	e := New(cfg.Engine, cfg.Catalog, &mockProvider{err: dataset.ErrDataUnavailable}, logging.NewTestLogger(&buf))

	_, err := e.Generate(context.Background(), baseQuery())
	if !errors.Is(err, dataset.ErrDataUnavailable) {
		t.Errorf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestGenerateEmptyDatasetMatch(t *testing.T) {
	e := newTestEngine(t, []models.CutoffRecord{
		rec("A", "1", "Ladies", "Open", "State Level", 5000, 1),
	})

	res, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if res.List.TotalCandidates != 0 || res.List.TotalEligible != 0 {
		t.Errorf("quota mismatch must exclude everything: %+v", res.List)
	}
}

func TestGenerateCacheHitAndClear(t *testing.T) {
	records := []models.CutoffRecord{
		rec("A", "1", "General", "Open", "State Level", 5500, 1),
	}
	e := newTestEngine(t, records)

	first, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first call must not be cached")
	}

	second, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second call must hit the cache")
	}
	if !reflect.DeepEqual(first.List, second.List) {
		t.Error("cached list must equal fresh list")
	}

	// Mutating the returned copy must not poison the cache.
	second.List.Preferences[0].CollegeCode = "mutated"
	third, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	if third.List.Preferences[0].CollegeCode != "A" {
		t.Error("cache returned a shared slice")
	}

	e.ClearCache()
	fourth, err := e.Generate(context.Background(), baseQuery())
	if err != nil {
		t.Fatal(err)
	}
	if fourth.Cached {
		t.Error("ClearCache must force recomputation")
	}

	requests, hits, errCount := e.Stats()
	if requests != 4 || hits != 2 || errCount != 0 {
		t.Errorf("stats = %d/%d/%d, want 4/2/0", requests, hits, errCount)
	}
}

func TestGenerateContextCanceled(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Generate(ctx, baseQuery()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
