package http

import (
	"errors"
	"net/http"

	"github.com/akovalev/go-field-sync/internal/adapter"
	"github.com/akovalev/go-field-sync/internal/service"
	"github.com/akovalev/go-field-sync/internal/store"
	"github.com/akovalev/go-field-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrUnsupportedType:       http.StatusBadRequest,
	validators.ErrUnknownField:          http.StatusBadRequest,
	validators.ErrInvalidMachineID:      http.StatusBadRequest,
	validators.ErrInvalidOrganizationID: http.StatusBadRequest,
	validators.ErrMissingCleanedAt:      http.StatusBadRequest,
	validators.ErrCleanedAtInFuture:     http.StatusBadRequest,
	validators.ErrInvalidDuration:       http.StatusBadRequest,
	validators.ErrNegativeFuelUsed:      http.StatusBadRequest,

	validators.ErrMissingFileName:        http.StatusBadRequest,
	validators.ErrUnsupportedContentType: http.StatusBadRequest,
	validators.ErrEmptyAttachmentData:    http.StatusBadRequest,
	validators.ErrAttachmentTooLarge:     http.StatusRequestEntityTooLarge,

	service.ErrParentNotFound: http.StatusNotFound,

	// central API verdicts surfaced on the direct path
	adapter.ErrValidation:        http.StatusUnprocessableEntity,
	adapter.ErrConflict:          http.StatusConflict,
	adapter.ErrNotFound:          http.StatusNotFound,
	adapter.ErrUnauthorized:      http.StatusBadGateway,
	adapter.ErrRemoteUnavailable: http.StatusServiceUnavailable,

	store.ErrStorageUnavailable: http.StatusServiceUnavailable,
	store.ErrRecordNotFound:     http.StatusNotFound,
	store.ErrAttachmentNotFound: http.StatusNotFound,
	store.ErrEntryNotFound:      http.StatusNotFound,
	store.ErrAlreadyQueued:      http.StatusConflict,
	store.ErrFieldNotIndexed:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
