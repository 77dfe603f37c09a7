// MHTCET Preference Engine - College Preference List Generation
// Copyright 2026 JARAWA
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JARAWA/MHTCET

// Package metrics defines the Prometheus instrumentation for the service:
// API latency and throughput, engine pipeline metrics, dataset snapshot
// state, and cache efficiency. All collectors register via promauto and are
// exposed on /metrics.
package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Preference Engine Metrics
	PreferenceQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preference_queries_total",
			Help: "Total number of preference queries by outcome",
		},
		[]string{"outcome"}, // "success", "invalid_query", "data_unavailable", "error"
	)

	PreferenceQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "preference_query_duration_seconds",
			Help:    "Duration of preference list generation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PreferenceListSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "preference_list_size",
			Help:    "Number of candidates in generated preference lists",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// Engine Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_cache_hits_total",
			Help: "Total number of engine cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_cache_misses_total",
			Help: "Total number of engine cache misses",
		},
	)

	// Dataset Metrics
	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of cutoff records in the active snapshot",
		},
	)

	DatasetSkippedRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_skipped_rows",
			Help: "Number of malformed rows skipped in the last load",
		},
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Total number of dataset reload attempts",
		},
		[]string{"result"}, // "success", "failure"
	)

	DatasetLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_loaded_timestamp",
			Help: "Unix timestamp of the last successful dataset load",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordPreferenceQuery records one engine invocation.
func RecordPreferenceQuery(outcome string, duration time.Duration, listSize int, cached bool) {
	PreferenceQueries.WithLabelValues(outcome).Inc()
	if outcome != "success" {
		return
	}
	PreferenceQueryDuration.Observe(duration.Seconds())
	PreferenceListSize.Observe(float64(listSize))
	if cached {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordDatasetLoad updates dataset gauges after a reload attempt.
func RecordDatasetLoad(records, skipped int, err error) {
	if err != nil {
		DatasetReloads.WithLabelValues("failure").Inc()
		return
	}
	DatasetReloads.WithLabelValues("success").Inc()
	DatasetRecords.Set(float64(records))
	DatasetSkippedRows.Set(float64(skipped))
	DatasetLoadedTimestamp.Set(float64(time.Now().Unix()))
}

// SetAppInfo sets the version gauge and starts the uptime ticker. Call once
// at startup; the goroutine runs for the process lifetime.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
	start := time.Now()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			AppUptime.Set(time.Since(start).Seconds())
		}
	}()
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
