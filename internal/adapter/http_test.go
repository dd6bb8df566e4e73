// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/models"
)

// newTestAdapter builds an httpRemoteAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpRemoteAdapter {
	t.Helper()
	log := logger.Nop()
	remoteCfg := config.AgentRemote{Address: serverURL}
	appCfg := config.AgentApp{DeviceToken: "device-token-123", HashKey: "testhashkey"}

	a, err := NewHTTPRemoteAdapter(remoteCfg, appCfg, log)
	require.NoError(t, err)
	return a.(*httpRemoteAdapter)
}

// ── CreateRecord ────────────────────────────────────────────────────────────

func TestCreateRecord_Success(t *testing.T) {
	req := models.CreateRecordRequest{
		ClientRef: "tmp-rec-1",
		Record:    models.RecordPayload{MachineID: 3, OrganizationID: 7, Operator: "K. Halvorsen"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/records", r.URL.Path)
		assert.Equal(t, "Bearer device-token-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Payload-Digest"))

		var got models.CreateRecordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "tmp-rec-1", got.ClientRef)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.CreateRecordResponse{ID: 1001})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateRecord(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1001), created.ID)
}

func TestCreateRecord_ValidationRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("cleaned_at is in the future"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateRecord(context.Background(), models.CreateRecordRequest{ClientRef: "tmp-rec-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrRemoteUnavailable)
}

func TestCreateRecord_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateRecord(context.Background(), models.CreateRecordRequest{ClientRef: "tmp-rec-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestCreateRecord_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateRecord(context.Background(), models.CreateRecordRequest{ClientRef: "tmp-rec-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestCreateRecord_MissingServerID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateRecord(context.Background(), models.CreateRecordRequest{ClientRef: "tmp-rec-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

// ── CreateAttachment ────────────────────────────────────────────────────────

func TestCreateAttachment_Success(t *testing.T) {
	req := models.CreateAttachmentRequest{
		ClientRef: "tmp-att-1",
		RecordID:  1001,
		Attachment: models.AttachmentPayload{
			FileName:    "ring4.jpg",
			ContentType: "image/jpeg",
			Data:        []byte{0xFF, 0xD8},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/records/1001/attachments", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Payload-Digest"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.CreateAttachmentResponse{ID: 2002})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateAttachment(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(2002), created.ID)
}

func TestCreateAttachment_UnresolvedParentRefusedLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the backend")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateAttachment(context.Background(), models.CreateAttachmentRequest{ClientRef: "tmp-att-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not resolved")
}

func TestCreateAttachment_UnknownRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("record not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateAttachment(context.Background(), models.CreateAttachmentRequest{ClientRef: "tmp-att-1", RecordID: 9999})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		assert.Equal(t, "Bearer device-token-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Health(context.Background()))
}

func TestHealth_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestHealth_ExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token expired"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host and port", raw: "backend.fleet.local:443", want: "http://backend.fleet.local:443"},
		{name: "full https url", raw: "https://backend.fleet.local/", want: "https://backend.fleet.local"},
		{name: "with whitespace", raw: "  http://10.0.0.5:8080  ", want: "http://10.0.0.5:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "only whitespace", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_TrimsWhitespace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  device-token  ")
	assert.Equal(t, "device-token", a.Token())
}
