package http

import (
	"net/http"

	"github.com/akovalev/go-field-sync/internal/utils"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfo.BuildInfo(r.Context())

	utils.WriteJSON(w, buildInfo, http.StatusOK)
}
