// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/JARAWA/MHTCET/internal/dataset"
	"github.com/JARAWA/MHTCET/internal/engine"
	"github.com/JARAWA/MHTCET/internal/logging"
	"github.com/JARAWA/MHTCET/internal/metrics"
	"github.com/JARAWA/MHTCET/internal/models"
)

// GeneratePreferences handles POST /api/v1/preferences.
//
// It validates the request body, runs the preference engine and returns the
// ordered preference list with its probability distribution. An empty list is
// a normal 200 response, not an error.
func (h *Handler) GeneratePreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req PreferenceRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		metrics.RecordPreferenceQuery("invalid_query", time.Since(start), 0, false)
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordPreferenceQuery("invalid_query", time.Since(start), 0, false)
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	query := models.PreferenceQuery{
		StudentRank:    req.StudentRank,
		Quota:          req.Quota,
		Category:       req.Category,
		SeatType:       req.SeatType,
		Round:          req.Round,
		StretchMargin:  req.StretchMargin,
		SafeMargin:     req.SafeMargin,
		MinProbability: req.MinProbability,
	}

	result, err := h.engine.Generate(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidQuery):
			metrics.RecordPreferenceQuery("invalid_query", time.Since(start), 0, false)
			respondError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error(), nil)
		case errors.Is(err, dataset.ErrDataUnavailable):
			metrics.RecordPreferenceQuery("data_unavailable", time.Since(start), 0, false)
			respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE", "Cutoff dataset is not available", err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			metrics.RecordPreferenceQuery("error", time.Since(start), 0, false)
			respondError(w, http.StatusServiceUnavailable, "INTERNAL_ERROR", "Request canceled", err)
		default:
			metrics.RecordPreferenceQuery("error", time.Since(start), 0, false)
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate preferences", err)
		}
		return
	}

	metrics.RecordPreferenceQuery("success", time.Since(start), len(result.List.Preferences), result.Cached)

	logging.Ctx(r.Context()).Debug().
		Int("student_rank", query.StudentRank).
		Int("preferences", len(result.List.Preferences)).
		Bool("cached", result.Cached).
		Msg("Preference list generated")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result.List,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: result.LatencyMS,
			Cached:      result.Cached,
		},
	})
}
