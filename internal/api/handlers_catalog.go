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

// Quotas handles GET /api/v1/catalog/quotas.
func (h *Handler) Quotas(w http.ResponseWriter, r *http.Request) {
	respondCatalog(w, "quotas", h.config.Catalog.Quotas)
}

// Categories handles GET /api/v1/catalog/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	respondCatalog(w, "categories", h.config.Catalog.Categories)
}

// SeatTypes handles GET /api/v1/catalog/seat-types.
func (h *Handler) SeatTypes(w http.ResponseWriter, r *http.Request) {
	respondCatalog(w, "seat_types", h.config.Catalog.SeatTypes)
}

// Rounds handles GET /api/v1/catalog/rounds.
func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string][]int{"rounds": h.config.Catalog.Rounds},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Branches handles GET /api/v1/catalog/branches.
// The branch list is derived from the loaded dataset, so it returns 503
// until a dataset has been loaded.
func (h *Handler) Branches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.store.Branches()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE", "Cutoff dataset is not available", err)
		return
	}

	respondCatalog(w, "branches", branches)
}

func respondCatalog(w http.ResponseWriter, key string, values []string) {
	// Copy so callers can never mutate config-owned slices through the response path.
	out := make([]string, len(values))
	copy(out, values)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string][]string{key: out},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
