package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/utils"
	"github.com/akovalev/go-field-sync/models"
)

// submissionStatus picks the success code for a submit response: 201 when the
// central API already owns the entity, 202 when it was buffered for replay.
func submissionStatus(response models.SubmitResponse) int {
	if response.Queued {
		return http.StatusAccepted
	}
	return http.StatusCreated
}

func (h *Handler) submitRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.RecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.submitRecord").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.Submit.SubmitRecord(ctx, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitRecord").Msg("error submitting cleaning record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, submissionStatus(response))
}

// listPendingRecords serves the device UI's "waiting on this device" view:
// every buffered record in its unsealed form, plus attachment metadata.
func (h *Handler) listPendingRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pending, err := h.services.Queue.ListPending(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPendingRecords").Msg("error listing pending records")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, pending, http.StatusOK)
}

func (h *Handler) submitAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	parentRef := chi.URLParam(r, "ref")

	var payload models.AttachmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.submitAttachment").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.Submit.SubmitAttachment(ctx, parentRef, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitAttachment").Str("parent_ref", parentRef).Msg("error submitting attachment")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, submissionStatus(response))
}
