package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withMetrics)
	router.Use(withGZip)

	// submission routes used by device software
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/records", h.submitRecord)
		r.Get("/api/v1/records/pending", h.listPendingRecords)
		r.Post("/api/v1/records/{ref}/attachments", h.submitAttachment)
	})

	// queue inspection and repair
	router.Group(func(r chi.Router) {
		r.Get("/api/v1/queue", h.listQueue)
		r.Get("/api/v1/queue/failed", h.listFailedQueue)
		r.Post("/api/v1/queue/{id}/requeue", h.requeueEntry)
		r.Delete("/api/v1/queue/{id}", h.discardEntry)
	})

	// agent introspection
	router.Group(func(r chi.Router) {
		r.Get("/api/v1/status", h.getStatus)
		r.Get("/api/v1/version", h.getAppVersion)
		r.Get("/api/v1/ping", h.ping)
	})

	// withGZip already negotiates compression for the whole router,
	// so the prometheus handler must not compress on its own
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{DisableCompression: true},
	))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
