// ReelRank - Hybrid Movie Recommendation Engine
// Copyright 2026 Mithran Gowda (mithrangowda07)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mithrangowda07/reelrank

// Package metrics exposes Prometheus instrumentation for the engine:
// training duration and outcome, recommendation throughput and latency,
// and whether a trained bundle is currently live.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Training Metrics
	TrainDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelrank_train_duration_seconds",
			Help:    "Duration of model training in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"stage"}, // "content", "collaborative", "total"
	)

	TrainErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_train_errors_total",
			Help: "Total number of failed training runs",
		},
		[]string{"stage"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelrank_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
	)

	RecommendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_recommend_errors_total",
			Help: "Total number of failed recommendation requests",
		},
		[]string{"reason"}, // "not_ready", "invalid_parameter"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelrank_recommend_duration_seconds",
			Help:    "Recommendation request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendEmptyResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelrank_recommend_empty_results_total",
			Help: "Recommendation requests whose reference title matched nothing",
		},
	)

	// Bundle Metrics
	BundleReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelrank_bundle_ready",
			Help: "Whether a trained model bundle is live (1) or not (0)",
		},
	)

	BundleItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelrank_bundle_items",
			Help: "Number of catalog items in the live bundle",
		},
	)

	BundleUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelrank_bundle_users",
			Help: "Number of users in the live bundle",
		},
	)
)

// ObserveTrainStage records the duration of one training stage.
func ObserveTrainStage(stage string, start time.Time) {
	TrainDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
