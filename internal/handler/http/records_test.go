package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akovalev/go-field-sync/internal/adapter"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/service"
	"github.com/akovalev/go-field-sync/internal/store"
	"github.com/akovalev/go-field-sync/internal/validators"
	"github.com/akovalev/go-field-sync/models"
)

// ─────────────────────────────────────────────
// Mock
// ─────────────────────────────────────────────

// mockSubmitService implements service.SubmitService with pluggable
// behaviour per method.
type mockSubmitService struct {
	submitRecordFn     func(ctx context.Context, payload models.RecordPayload) (models.SubmitResponse, error)
	submitAttachmentFn func(ctx context.Context, parentRef string, payload models.AttachmentPayload) (models.SubmitResponse, error)
}

func (m *mockSubmitService) SubmitRecord(ctx context.Context, payload models.RecordPayload) (models.SubmitResponse, error) {
	return m.submitRecordFn(ctx, payload)
}

func (m *mockSubmitService) SubmitAttachment(ctx context.Context, parentRef string, payload models.AttachmentPayload) (models.SubmitResponse, error) {
	return m.submitAttachmentFn(ctx, parentRef, payload)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerForSubmit(t *testing.T, svc service.SubmitService) *Handler {
	t.Helper()
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			Submit: svc,
		},
	}
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// withURLParam injects a chi route parameter so handler methods that read
// chi.URLParam can be called without going through the router.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleRecordPayload() models.RecordPayload {
	return models.RecordPayload{
		MachineID:      311,
		OrganizationID: 42,
		CleanedAt:      time.Date(2026, 8, 25, 6, 30, 0, 0, time.UTC),
		DurationHours:  decimal.NewFromFloat(1.5),
		FuelUsedLitres: decimal.NewFromFloat(12.4),
		Operator:       "j.larsen",
	}
}

func sampleAttachmentPayload() models.AttachmentPayload {
	return models.AttachmentPayload{
		FileName:    "net-before.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xFF, 0xD8, 0xFF, 0xE0},
	}
}

// ─────────────────────────────────────────────
// submitRecord
// ─────────────────────────────────────────────

func TestSubmitRecord_DirectDelivery(t *testing.T) {
	svc := &mockSubmitService{
		submitRecordFn: func(_ context.Context, payload models.RecordPayload) (models.SubmitResponse, error) {
			assert.Equal(t, int64(311), payload.MachineID)
			assert.Equal(t, int64(42), payload.OrganizationID)
			assert.True(t, payload.DurationHours.Equal(decimal.NewFromFloat(1.5)))
			return models.SubmitResponse{ServerID: 5001}, nil
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", encodeBody(t, sampleRecordPayload()))
	rec := httptest.NewRecorder()

	h.submitRecord(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.False(t, got.Queued)
	assert.Equal(t, int64(5001), got.ServerID)
	assert.Empty(t, got.TemporaryID)
}

func TestSubmitRecord_Buffered(t *testing.T) {
	svc := &mockSubmitService{
		submitRecordFn: func(_ context.Context, _ models.RecordPayload) (models.SubmitResponse, error) {
			return models.SubmitResponse{Queued: true, TemporaryID: "rec-7c1a"}, nil
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", encodeBody(t, sampleRecordPayload()))
	rec := httptest.NewRecorder()

	h.submitRecord(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var got models.SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.Queued)
	assert.Equal(t, "rec-7c1a", got.TemporaryID)
	assert.Zero(t, got.ServerID)
}

func TestSubmitRecord_InvalidJSON(t *testing.T) {
	h := newHandlerForSubmit(t, &mockSubmitService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", strings.NewReader(`{bad json}`))
	rec := httptest.NewRecorder()

	h.submitRecord(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON was passed")
}

func TestSubmitRecord_EmptyBody(t *testing.T) {
	h := newHandlerForSubmit(t, &mockSubmitService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.submitRecord(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitRecord_ValidationError(t *testing.T) {
	svc := &mockSubmitService{
		submitRecordFn: func(_ context.Context, _ models.RecordPayload) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, fmt.Errorf("validate record: %w", validators.ErrInvalidMachineID)
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", encodeBody(t, sampleRecordPayload()))
	rec := httptest.NewRecorder()

	h.submitRecord(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid machine id")
}

func TestSubmitRecord_StorageUnavailable(t *testing.T) {
	svc := &mockSubmitService{
		submitRecordFn: func(_ context.Context, _ models.RecordPayload) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, fmt.Errorf("buffer record: %w", store.ErrStorageUnavailable)
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", encodeBody(t, sampleRecordPayload()))
	rec := httptest.NewRecorder()

	h.submitRecord(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "local storage unavailable")
}

func TestSubmitRecord_RemoteRejection(t *testing.T) {
	svc := &mockSubmitService{
		submitRecordFn: func(_ context.Context, _ models.RecordPayload) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, fmt.Errorf("create record on remote: %w", adapter.ErrValidation)
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records", encodeBody(t, sampleRecordPayload()))
	rec := httptest.NewRecorder()

	h.submitRecord(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ─────────────────────────────────────────────
// submitAttachment
// ─────────────────────────────────────────────

func TestSubmitAttachment_DirectDelivery(t *testing.T) {
	svc := &mockSubmitService{
		submitAttachmentFn: func(_ context.Context, parentRef string, payload models.AttachmentPayload) (models.SubmitResponse, error) {
			assert.Equal(t, "5001", parentRef)
			assert.Equal(t, "net-before.jpg", payload.FileName)
			return models.SubmitResponse{ServerID: 9001}, nil
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/5001/attachments",
		encodeBody(t, sampleAttachmentPayload()))
	req = withURLParam(req, "ref", "5001")
	rec := httptest.NewRecorder()

	h.submitAttachment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(9001), got.ServerID)
}

func TestSubmitAttachment_BufferedUnderLocalParent(t *testing.T) {
	svc := &mockSubmitService{
		submitAttachmentFn: func(_ context.Context, parentRef string, _ models.AttachmentPayload) (models.SubmitResponse, error) {
			assert.Equal(t, "rec-7c1a", parentRef)
			return models.SubmitResponse{Queued: true, TemporaryID: "att-11b0"}, nil
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/rec-7c1a/attachments",
		encodeBody(t, sampleAttachmentPayload()))
	req = withURLParam(req, "ref", "rec-7c1a")
	rec := httptest.NewRecorder()

	h.submitAttachment(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var got models.SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.Queued)
	assert.Equal(t, "att-11b0", got.TemporaryID)
}

func TestSubmitAttachment_ParentNotFound(t *testing.T) {
	svc := &mockSubmitService{
		submitAttachmentFn: func(_ context.Context, _ string, _ models.AttachmentPayload) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, fmt.Errorf("resolve parent %q: %w", "rec-gone", service.ErrParentNotFound)
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/rec-gone/attachments",
		encodeBody(t, sampleAttachmentPayload()))
	req = withURLParam(req, "ref", "rec-gone")
	rec := httptest.NewRecorder()

	h.submitAttachment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "parent record not found")
}

func TestSubmitAttachment_InvalidJSON(t *testing.T) {
	h := newHandlerForSubmit(t, &mockSubmitService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/5001/attachments",
		strings.NewReader(`{bad json}`))
	req = withURLParam(req, "ref", "5001")
	rec := httptest.NewRecorder()

	h.submitAttachment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON was passed")
}

func TestSubmitAttachment_TooLarge(t *testing.T) {
	svc := &mockSubmitService{
		submitAttachmentFn: func(_ context.Context, _ string, _ models.AttachmentPayload) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, fmt.Errorf("validate attachment: %w", validators.ErrAttachmentTooLarge)
		},
	}

	h := newHandlerForSubmit(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/5001/attachments",
		encodeBody(t, sampleAttachmentPayload()))
	req = withURLParam(req, "ref", "5001")
	rec := httptest.NewRecorder()

	h.submitAttachment(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// ─────────────────────────────────────────────
// Via router: route params reach the handler
// ─────────────────────────────────────────────

func TestSubmitAttachment_ViaRouter_PassesRef(t *testing.T) {
	var gotRef string
	svc := &mockSubmitService{
		submitRecordFn: func(_ context.Context, _ models.RecordPayload) (models.SubmitResponse, error) {
			return models.SubmitResponse{}, nil
		},
		submitAttachmentFn: func(_ context.Context, parentRef string, _ models.AttachmentPayload) (models.SubmitResponse, error) {
			gotRef = parentRef
			return models.SubmitResponse{ServerID: 9001}, nil
		},
	}

	h := &Handler{
		logger:   logger.Nop(),
		services: &service.Services{Submit: svc, Queue: &mockQueueSvc{}, AppInfo: &mockAppInfoSvc{}},
	}
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/rec-7c1a/attachments",
		encodeBody(t, sampleAttachmentPayload()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "rec-7c1a", gotRef)
}
