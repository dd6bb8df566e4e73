// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	facadeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldsync_facade_requests_total",
		Help: "Requests served by the local facade, by route, method and status.",
	}, []string{"method", "route", "status"})

	facadeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fieldsync_facade_request_duration_seconds",
		Help:    "Facade request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// withMetrics records request counts and latencies for every facade route.
// The route label uses the chi pattern, never the raw path, to keep the
// label cardinality bounded.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		next.ServeHTTP(mw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		facadeRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(mw.status)).Inc()
		facadeRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
