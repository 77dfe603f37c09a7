// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package api

import (
	"net/http"
	"time"

	"github.com/JARAWA/MHTCET/internal/logging"
	"github.com/JARAWA/MHTCET/internal/metrics"
	"github.com/JARAWA/MHTCET/internal/models"
)

// DatasetStats handles GET /api/v1/dataset/stats.
func (h *Handler) DatasetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE", "Cutoff dataset is not available", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     stats,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// ReloadDataset handles POST /api/v1/dataset/reload.
//
// Reload rebuilds a complete snapshot before swapping it in, so a failed
// reload keeps serving the previous snapshot. The engine cache is cleared
// only after a successful swap.
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	if !h.config.Dataset.ReloadEnabled {
		respondError(w, http.StatusForbidden, "RELOAD_DISABLED", "Dataset reload is disabled", ErrReloadDisabled)
		return
	}

	snap, err := h.store.Reload()
	if err != nil {
		metrics.RecordDatasetLoad(0, 0, err)
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE", "Failed to reload cutoff dataset", err)
		return
	}
	metrics.RecordDatasetLoad(snap.Stats.Records, snap.Stats.SkippedRows, nil)

	h.engine.ClearCache()

	logging.Ctx(r.Context()).Info().
		Int("records", snap.Stats.Records).
		Int("skipped_rows", snap.Stats.SkippedRows).
		Msg("Dataset reloaded")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     snap.Stats,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
