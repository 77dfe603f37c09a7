// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package api

import (
	"time"

	"github.com/JARAWA/MHTCET/internal/config"
	"github.com/JARAWA/MHTCET/internal/dataset"
	"github.com/JARAWA/MHTCET/internal/engine"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	config    *config.Config
	store     *dataset.Store
	engine    *engine.Engine
	version   string
	startTime time.Time
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(cfg *config.Config, store *dataset.Store, eng *engine.Engine, version string) *Handler {
	return &Handler{
		config:    cfg,
		store:     store,
		engine:    eng,
		version:   version,
		startTime: time.Now(),
	}
}
