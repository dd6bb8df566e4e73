// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package service

import (
	"fmt"

	"github.com/akovalev/go-field-sync/internal/crypto"
	"github.com/akovalev/go-field-sync/models"
)

// Conversions between the in-memory form of buffered entities
// ([models.PendingRecord], [models.PendingAttachment]) and their at-rest
// form ([models.SealedRecord], [models.SealedAttachment]). Only the payload
// goes through the sealer; the indexed columns travel in the clear.

func sealRecord(sealer crypto.PayloadSealer, record models.PendingRecord) (models.SealedRecord, error) {
	blob, err := sealer.Seal(record.Payload)
	if err != nil {
		return models.SealedRecord{}, fmt.Errorf("seal record payload: %w", err)
	}

	return models.SealedRecord{
		TempID:    record.TempID,
		ServerID:  record.ServerID,
		OrgID:     record.OrgID,
		Blob:      blob,
		Synced:    record.Synced,
		CreatedAt: record.CreatedAt,
	}, nil
}

func unsealRecord(sealer crypto.PayloadSealer, sealed models.SealedRecord) (models.PendingRecord, error) {
	var payload models.RecordPayload
	if err := sealer.Open(sealed.Blob, &payload); err != nil {
		return models.PendingRecord{}, fmt.Errorf("unseal record payload: %w", err)
	}

	return models.PendingRecord{
		TempID:    sealed.TempID,
		ServerID:  sealed.ServerID,
		OrgID:     sealed.OrgID,
		Payload:   payload,
		Synced:    sealed.Synced,
		CreatedAt: sealed.CreatedAt,
	}, nil
}

func sealAttachment(sealer crypto.PayloadSealer, attachment models.PendingAttachment) (models.SealedAttachment, error) {
	blob, err := sealer.Seal(attachment.Payload)
	if err != nil {
		return models.SealedAttachment{}, fmt.Errorf("seal attachment payload: %w", err)
	}

	return models.SealedAttachment{
		TempID:       attachment.TempID,
		ServerID:     attachment.ServerID,
		ParentTempID: attachment.ParentTempID,
		Blob:         blob,
		Synced:       attachment.Synced,
		CreatedAt:    attachment.CreatedAt,
	}, nil
}

func unsealAttachment(sealer crypto.PayloadSealer, sealed models.SealedAttachment) (models.PendingAttachment, error) {
	var payload models.AttachmentPayload
	if err := sealer.Open(sealed.Blob, &payload); err != nil {
		return models.PendingAttachment{}, fmt.Errorf("unseal attachment payload: %w", err)
	}

	return models.PendingAttachment{
		TempID:       sealed.TempID,
		ServerID:     sealed.ServerID,
		ParentTempID: sealed.ParentTempID,
		Payload:      payload,
		Synced:       sealed.Synced,
		CreatedAt:    sealed.CreatedAt,
	}, nil
}
