// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JARAWA/MHTCET/internal/config"
	"github.com/JARAWA/MHTCET/internal/middleware"
)

// NewRouter builds the HTTP routing tree for the service.
//
// Middleware order: request ID first so every later log line carries it,
// then real IP extraction (rate limiting keys on it), panic recovery,
// CORS, security headers and the request timeout from config. Prometheus
// metrics and rate limiting apply to the API group only, keeping /metrics
// itself out of the request counters.
func NewRouter(cfg *config.Config, h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}))
	r.Use(securityHeaders)
	r.Use(chimiddleware.Timeout(cfg.Server.Timeout))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Use(rateLimit(cfg))

		r.Post("/preferences", h.GeneratePreferences)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/quotas", h.Quotas)
			r.Get("/categories", h.Categories)
			r.Get("/seat-types", h.SeatTypes)
			r.Get("/rounds", h.Rounds)
			r.Get("/branches", h.Branches)
		})

		r.Route("/dataset", func(r chi.Router) {
			r.Get("/stats", h.DatasetStats)
			r.Post("/reload", h.ReloadDataset)
		})

		r.Get("/health", h.Health)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimit returns an IP-keyed limiter built from the security config,
// or a pass-through when rate limiting is disabled.
func rateLimit(cfg *config.Config) func(http.Handler) http.Handler {
	if cfg.Security.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
		}),
	)
}

// securityHeaders adds baseline security headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		next.ServeHTTP(w, r)
	})
}
