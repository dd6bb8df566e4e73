package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/utils"
	"github.com/akovalev/go-field-sync/models"
)

func (h *Handler) listQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entries, err := h.services.Queue.List(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listQueue").Msg("error listing sync queue")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response := models.QueueListResponse{
		Entries: entries,
		Length:  len(entries),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listFailedQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entries, err := h.services.Queue.ListFailed(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listFailedQueue").Msg("error listing parked entries")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response := models.QueueListResponse{
		Entries: entries,
		Length:  len(entries),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) requeueEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entryID := chi.URLParam(r, "id")

	if err := h.services.Queue.Requeue(ctx, entryID); err != nil {
		log.Err(err).Str("func", "*Handler.requeueEntry").Str("entry_id", entryID).Msg("error requeueing entry")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) discardEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entryID := chi.URLParam(r, "id")

	if err := h.services.Queue.Discard(ctx, entryID); err != nil {
		log.Err(err).Str("func", "*Handler.discardEntry").Str("entry_id", entryID).Msg("error discarding entry")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
