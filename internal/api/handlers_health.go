// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package api

import (
	"net/http"
	"time"

	"github.com/JARAWA/MHTCET/internal/models"
)

// Health handles GET /api/v1/health.
//
// The service is "healthy" when a cutoff snapshot is loaded and "degraded"
// otherwise. A degraded service still answers catalog and health requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	loaded := h.store.Loaded()

	status := "healthy"
	records := 0
	if stats, err := h.store.Stats(); err == nil {
		records = stats.Records
	} else {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       h.version,
		DatasetLoaded: loaded,
		Records:       records,
		Uptime:        time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:     time.Now(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
