// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package dataset

import (
	"sync"
	"sync/atomic"

	"github.com/JARAWA/MHTCET/internal/logging"
	"github.com/JARAWA/MHTCET/internal/models"
)

// Store holds the current cutoff snapshot. Reads are lock-free; Reload
// builds a complete replacement snapshot before swapping it in, so a
// failed reload leaves the previous snapshot serving.
type Store struct {
	path string
	year int

	snap     atomic.Pointer[Snapshot]
	reloadMu sync.Mutex
}

// NewStore creates a Store that loads from path. The store is empty until
// the first Reload.
func NewStore(path string, year int) *Store {
	return &Store{path: path, year: year}
}

// Reload reads the source file and atomically swaps in the new snapshot.
// On error the currently served snapshot is unchanged.
func (s *Store) Reload() (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := LoadFile(s.path, s.year)
	if err != nil {
		return nil, err
	}

	s.snap.Store(snap)
	logging.Info().
		Int("records", snap.Stats.Records).
		Int("skipped_rows", snap.Stats.SkippedRows).
		Int("colleges", snap.Stats.Colleges).
		Str("source", s.path).
		Msg("cutoff snapshot loaded")
	return snap, nil
}

// Snapshot returns the current snapshot, or ErrDataUnavailable when
// nothing has been loaded yet.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, ErrDataUnavailable
	}
	return snap, nil
}

// Loaded reports whether a snapshot is being served.
func (s *Store) Loaded() bool {
	return s.snap.Load() != nil
}

// Stats returns the current snapshot's statistics.
func (s *Store) Stats() (models.DatasetStats, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return models.DatasetStats{}, err
	}
	return snap.Stats, nil
}

// Branches returns the sorted distinct branch names of the current snapshot.
func (s *Store) Branches() ([]string, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Branches, nil
}

// Records returns the current snapshot's records. Callers must treat the
// slice as read-only.
func (s *Store) Records() ([]models.CutoffRecord, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Records, nil
}
