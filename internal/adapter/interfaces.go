// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

// Package adapter provides the transport layer for communicating with the
// fleet backend.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync
// services from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. The one distinction that matters to the reconciliation
// worker is [ErrRemoteUnavailable] (timeouts, refused connections, 5xx)
// versus everything else: unavailability halts a drain pass and costs no
// retry budget, any other rejection burns one attempt.
package adapter

import (
	"context"

	"github.com/akovalev/go-field-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines transport-agnostic communication with the fleet
// backend. Implementations are responsible for serialisation, device-token
// header management, payload digests and mapping transport-level errors to
// the sentinel values defined in this package.
type RemoteAdapter interface {
	// SetToken stores the device bearer token attached to all subsequent
	// requests. The constructor calls it with the configured token; tests
	// use it to exercise the adapter with known credentials.
	SetToken(token string)

	// Token returns the device bearer token currently stored in the
	// adapter, or an empty string if no token has been set yet.
	Token() string

	// CreateRecord submits one net-cleaning record. The client reference
	// travels with the request so the backend can deduplicate a record it
	// already accepted when the confirmation was lost in transit. On
	// success the server-assigned id is returned.
	CreateRecord(ctx context.Context, req models.CreateRecordRequest) (models.CreateRecordResponse, error)

	// CreateAttachment submits one photo attachment under the
	// server-assigned record id in req.RecordID. Never call this before
	// the parent record's id is known.
	CreateAttachment(ctx context.Context, req models.CreateAttachmentRequest) (models.CreateAttachmentResponse, error)

	// Health performs a cheap reachability check against the backend.
	// A nil return means the backend answered; the connectivity monitor
	// owns the interpretation.
	Health(ctx context.Context) error
}
