package http

import (
	"net/http"

	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/utils"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	status, err := h.services.Queue.Status(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStatus").Msg("error reading sync status")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// ping lets device software verify the agent itself is alive. It says
// nothing about the uplink; that is what the status endpoint reports.
func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("pong"))
}
