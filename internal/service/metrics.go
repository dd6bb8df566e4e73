// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/akovalev/go-field-sync/internal/store"
)

// Sync pipeline metrics, exported on the facade's /metrics endpoint.
var (
	queueDepthGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fieldsync_queue_depth",
		Help: "Number of sync queue entries waiting for delivery.",
	})

	queueFailedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fieldsync_queue_failed_entries",
		Help: "Number of sync queue entries parked after exhausting retries.",
	})

	enqueuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldsync_enqueued_total",
		Help: "Entities buffered for later delivery, by kind.",
	}, []string{"kind"})

	deliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldsync_delivered_total",
		Help: "Entities successfully replayed to the central API, by kind.",
	}, []string{"kind"})

	rejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fieldsync_delivery_rejections_total",
		Help: "Replay attempts the central API judged and refused.",
	})

	drainDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fieldsync_drain_duration_seconds",
		Help:    "Duration of one reconciliation drain pass in seconds.",
		Buckets: prometheus.DefBuckets,
	})

	resolutionHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fieldsync_resolution_cache_hits_total",
		Help: "Parent id lookups answered from the resolution cache.",
	})

	resolutionMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fieldsync_resolution_cache_misses_total",
		Help: "Parent id lookups that had to read the local buffer.",
	})
)

// refreshQueueGauges reads the queue counters into the exported gauges.
// Failures are swallowed: gauges going briefly stale is preferable to
// failing the operation that happened to refresh them.
func refreshQueueGauges(ctx context.Context, queue store.QueueRepository) {
	if depth, err := queue.Depth(ctx); err == nil {
		queueDepthGauge.Set(float64(depth))
	}
	if failed, err := queue.FailedCount(ctx); err == nil {
		queueFailedGauge.Set(float64(failed))
	}
}
