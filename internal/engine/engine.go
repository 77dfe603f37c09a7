// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

// Package engine implements the preference-generation pipeline: eligibility
// filtering over the cutoff snapshot, probability scoring, and ordered list
// assembly. The pipeline is deterministic: the same query against the same
// snapshot always yields the same list.
package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/JARAWA/MHTCET/internal/config"
	"github.com/JARAWA/MHTCET/internal/models"
)

// DataProvider supplies the current cutoff records. Implemented by the
// dataset store; the interface keeps the engine free of storage imports.
type DataProvider interface {
	// Records returns the active snapshot's records. The engine treats
	// the slice as read-only.
	Records() ([]models.CutoffRecord, error)
}

// Result wraps a generated preference list with execution metadata.
type Result struct {
	List      *models.PreferenceList
	Cached    bool
	LatencyMS int64
}

// Engine generates preference lists. Safe for concurrent use.
type Engine struct {
	cfg     config.EngineConfig
	catalog config.CatalogConfig
	logger  zerolog.Logger

	provider DataProvider

	// Cache (simple TTL map, bounded by cfg.CacheMaxEntries)
	cache   map[string]cacheEntry
	cacheMu sync.RWMutex

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	errorCount   atomic.Int64
}

// cacheEntry holds a cached preference list.
type cacheEntry struct {
	list      *models.PreferenceList
	expiresAt time.Time
}

// New creates a preference engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg config.EngineConfig, catalog config.CatalogConfig, provider DataProvider, logger zerolog.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		catalog:  catalog,
		logger:   logger.With().Str("component", "engine").Logger(),
		provider: provider,
		cache:    make(map[string]cacheEntry),
	}
}

// Generate runs the full pipeline for one query: validate, apply margin
// defaults, filter, score, threshold, order, number.
//
// A query that matches nothing yields an empty list, not an error.
// ErrInvalidQuery covers semantic failures; dataset errors pass through
// from the provider.
func (e *Engine) Generate(ctx context.Context, q models.PreferenceQuery) (*Result, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.applyDefaults(&q)
	if err := e.validateQuery(&q); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	if list := e.checkCache(cacheKey(&q)); list != nil {
		e.cacheHits.Add(1)
		return &Result{List: list, Cached: true}, nil
	}

	records, err := e.provider.Records()
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("load records: %w", err)
	}

	lo, hi := window(q.StudentRank, q.StretchMargin, q.SafeMargin)
	eligible := filterEligible(records, &q, lo, hi)
	list := assemble(eligible, &q)

	e.storeCache(cacheKey(&q), list)

	latency := time.Since(start).Milliseconds()
	e.logger.Debug().
		Int("student_rank", q.StudentRank).
		Int("round", q.Round).
		Int("eligible", list.TotalEligible).
		Int("returned", list.TotalCandidates).
		Int64("latency_ms", latency).
		Msg("preference list generated")

	return &Result{List: list, Cached: false, LatencyMS: latency}, nil
}

// applyDefaults fills zero margins from configuration.
func (e *Engine) applyDefaults(q *models.PreferenceQuery) {
	if q.StretchMargin == 0 {
		q.StretchMargin = e.cfg.DefaultStretchMargin
	}
	if q.SafeMargin == 0 {
		q.SafeMargin = e.cfg.DefaultSafeMargin
	}
}

// validateQuery enforces the engine's semantic contract on a query.
func (e *Engine) validateQuery(q *models.PreferenceQuery) error {
	if q.StudentRank < 1 {
		return fmt.Errorf("%w: student rank must be >= 1, got %d", ErrInvalidQuery, q.StudentRank)
	}
	if q.StudentRank > e.cfg.MaxRank {
		return fmt.Errorf("%w: student rank %d exceeds maximum %d", ErrInvalidQuery, q.StudentRank, e.cfg.MaxRank)
	}
	if q.StretchMargin < 0 || q.StretchMargin > e.cfg.MaxStretchMargin {
		return fmt.Errorf("%w: stretch margin %d outside [0, %d]", ErrInvalidQuery, q.StretchMargin, e.cfg.MaxStretchMargin)
	}
	if q.SafeMargin < 0 || q.SafeMargin > e.cfg.MaxSafeMargin {
		return fmt.Errorf("%w: safe margin %d outside [0, %d]", ErrInvalidQuery, q.SafeMargin, e.cfg.MaxSafeMargin)
	}
	if q.StretchMargin+q.SafeMargin > e.cfg.MaxWindow {
		return fmt.Errorf("%w: combined window %d exceeds maximum %d",
			ErrInvalidQuery, q.StretchMargin+q.SafeMargin, e.cfg.MaxWindow)
	}
	if q.MinProbability < 0 || q.MinProbability > 100 {
		return fmt.Errorf("%w: min probability %d outside [0, 100]", ErrInvalidQuery, q.MinProbability)
	}

	if !containsFold(e.catalog.Quotas, q.Quota) {
		return fmt.Errorf("%w: unknown quota %q", ErrInvalidQuery, q.Quota)
	}
	if !containsFold(e.catalog.Categories, q.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidQuery, q.Category)
	}
	if !containsFold(e.catalog.SeatTypes, q.SeatType) {
		return fmt.Errorf("%w: unknown seat type %q", ErrInvalidQuery, q.SeatType)
	}
	if !containsInt(e.catalog.Rounds, q.Round) {
		return fmt.Errorf("%w: unknown round %d", ErrInvalidQuery, q.Round)
	}
	return nil
}

// containsFold reports whether set contains val, case-insensitively.
func containsFold(set []string, val string) bool {
	n := normalize(val)
	for _, s := range set {
		if normalize(s) == n {
			return true
		}
	}
	return false
}

func containsInt(set []int, val int) bool {
	for _, v := range set {
		if v == val {
			return true
		}
	}
	return false
}

// cacheKey derives the cache key from every field that affects the result.
func cacheKey(q *models.PreferenceQuery) string {
	return fmt.Sprintf("pref:%d:%s:%s:%s:%d:%d:%d:%d",
		q.StudentRank, normalize(q.Quota), normalize(q.Category),
		normalize(q.SeatType), q.Round, q.StretchMargin, q.SafeMargin,
		q.MinProbability)
}

// checkCache returns a copy of a valid cached list, or nil.
func (e *Engine) checkCache(key string) *models.PreferenceList {
	if !e.cfg.CacheEnabled {
		return nil
	}

	e.cacheMu.RLock()
	defer e.cacheMu.RUnlock()

	entry, ok := e.cache[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	return copyList(entry.list)
}

// copyList copies a cached list so callers cannot mutate the cached value.
func copyList(list *models.PreferenceList) *models.PreferenceList {
	out := *list
	out.Preferences = make([]models.ScoredCandidate, len(list.Preferences))
	copy(out.Preferences, list.Preferences)
	out.Distribution = make([]models.TierBucket, len(list.Distribution))
	copy(out.Distribution, list.Distribution)
	return &out
}

// storeCache stores a list, evicting expired entries when at capacity.
func (e *Engine) storeCache(key string, list *models.PreferenceList) {
	if !e.cfg.CacheEnabled {
		return
	}

	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if len(e.cache) >= e.cfg.CacheMaxEntries {
		now := time.Now()
		for k, entry := range e.cache {
			if now.After(entry.expiresAt) {
				delete(e.cache, k)
			}
		}
		// Still full after expiry sweep: drop the new entry rather than
		// grow unbounded.
		if len(e.cache) >= e.cfg.CacheMaxEntries {
			return
		}
	}

	e.cache[key] = cacheEntry{
		list:      copyList(list),
		expiresAt: time.Now().Add(e.cfg.CacheTTL),
	}
}

// ClearCache drops all cached lists. Called after a dataset reload so stale
// results never outlive the snapshot they were computed from.
func (e *Engine) ClearCache() {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	e.cache = make(map[string]cacheEntry)
	e.logger.Debug().Msg("cache cleared")
}

// Stats reports engine counters.
func (e *Engine) Stats() (requests, cacheHits, errors int64) {
	return e.requestCount.Load(), e.cacheHits.Load(), e.errorCount.Load()
}
