// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/utils"
	"github.com/akovalev/go-field-sync/models"
)

// payloadDigestHeader carries an HMAC-SHA256 digest of the submitted
// payload so the backend can verify integrity end to end.
const payloadDigestHeader = "X-Payload-Digest"

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	hashKey string
	token   string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAdapter]. It normalises and validates the base URL from
// remoteCfg.Address, configures the underlying HTTP client, initialises the
// shared HMAC hasher pool used for payload digests, and stores the device
// token from appCfg. The token's claims are peeked (not verified; the
// backend owns the signature) so the device identity shows up in the logs.
//
// Returns an error if remoteCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAdapter(remoteCfg config.AgentRemote, appCfg config.AgentApp, logger *logger.Logger) (RemoteAdapter, error) {
	client := utils.NewHTTPClient(remoteCfg.RequestTimeout)
	baseURL, err := normalizeBaseURL(remoteCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote address: %w", err)
	}

	client.SetBaseURL(baseURL)

	utils.InitHasherPool(appCfg.HashKey)

	if claims, claimsErr := utils.ParseDeviceClaims(appCfg.DeviceToken); claimsErr != nil {
		logger.Warn().Str("func", "NewHTTPRemoteAdapter").Msg("device token claims are not readable")
	} else {
		logger.Info().
			Str("func", "NewHTTPRemoteAdapter").
			Str("device_id", claims.DeviceID).
			Int64("org_id", claims.OrgID).
			Msg("remote adapter configured for device")
	}

	adapter := &httpRemoteAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}
	adapter.SetToken(appCfg.DeviceToken)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRemoteAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteAdapter]. It returns the device bearer token
// currently held by the adapter, or an empty string if none has been set.
func (h *httpRemoteAdapter) Token() string {
	return h.token
}

// CreateRecord implements [RemoteAdapter]. It computes a payload digest
// over req.Record and POSTs the request to POST /api/v1/records. The
// backend deduplicates on req.ClientRef, so re-sending a record whose
// confirmation was lost yields the same server id instead of a duplicate.
func (h *httpRemoteAdapter) CreateRecord(ctx context.Context, req models.CreateRecordRequest) (models.CreateRecordResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(payloadDigestHeader, computePayloadDigest(req.Record)).
		SetBody(req).
		Post("/api/v1/records")
	if err != nil {
		return models.CreateRecordResponse{}, transportErr("create record request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateRecordResponse{}, err
	}

	var created models.CreateRecordResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.CreateRecordResponse{}, fmt.Errorf("decode create record response: %w", err)
	}
	if created.ID == 0 {
		return models.CreateRecordResponse{}, fmt.Errorf("create record: backend returned no id")
	}

	return created, nil
}

// CreateAttachment implements [RemoteAdapter]. It computes a payload digest
// over req.Attachment and POSTs the request to
// POST /api/v1/records/{id}/attachments using the server-assigned record id
// from req.RecordID. A zero record id is refused locally: the queue must
// resolve the parent before an attachment is ever offered for delivery.
func (h *httpRemoteAdapter) CreateAttachment(ctx context.Context, req models.CreateAttachmentRequest) (models.CreateAttachmentResponse, error) {
	if req.RecordID == 0 {
		return models.CreateAttachmentResponse{}, fmt.Errorf("create attachment: server record id is not resolved yet")
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(payloadDigestHeader, computePayloadDigest(req.Attachment)).
		SetBody(req).
		Post(fmt.Sprintf("/api/v1/records/%d/attachments", req.RecordID))
	if err != nil {
		return models.CreateAttachmentResponse{}, transportErr("create attachment request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateAttachmentResponse{}, err
	}

	var created models.CreateAttachmentResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.CreateAttachmentResponse{}, fmt.Errorf("decode create attachment response: %w", err)
	}

	return created, nil
}

// Health implements [RemoteAdapter]. It GETs the backend health endpoint
// GET /api/v1/health. The probe carries the device token so an expired
// token shows up as [ErrUnauthorized] here before it fails a real upload.
func (h *httpRemoteAdapter) Health(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/v1/health")
	if err != nil {
		return transportErr("health request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func computePayloadDigest(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}
