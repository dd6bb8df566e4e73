// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/akovalev/go-field-sync/internal/adapter"
	"github.com/akovalev/go-field-sync/internal/connectivity"
	"github.com/akovalev/go-field-sync/internal/crypto"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/store"
	"github.com/akovalev/go-field-sync/internal/utils"
	"github.com/akovalev/go-field-sync/internal/validators"
	"github.com/akovalev/go-field-sync/models"
)

type submitService struct {
	records     store.RecordRepository
	attachments store.AttachmentRepository
	queue       store.QueueRepository
	remote      adapter.RemoteAdapter
	sealer      crypto.PayloadSealer
	monitor     connectivity.Monitor
	resolution  *resolutionCache
	trigger     DrainTrigger
	validator   validators.Validator
	ids         *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewSubmitService builds the write path of the agent. resolution is shared
// with the reconciliation worker, which populates it as records deliver;
// trigger is poked after every enqueue so buffered work does not wait for
// the fallback ticker.
func NewSubmitService(
	storages *store.Storages,
	remote adapter.RemoteAdapter,
	sealer crypto.PayloadSealer,
	monitor connectivity.Monitor,
	resolution *resolutionCache,
	trigger DrainTrigger,
	logger *logger.Logger,
) SubmitService {
	return &submitService{
		records:     storages.Records,
		attachments: storages.Attachments,
		queue:       storages.Queue,
		remote:      remote,
		sealer:      sealer,
		monitor:     monitor,
		resolution:  resolution,
		trigger:     trigger,
		validator:   validators.NewPayloadValidator(),
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// SubmitRecord implements [SubmitService].
func (s *submitService) SubmitRecord(ctx context.Context, payload models.RecordPayload) (models.SubmitResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.SubmitResponse{}, fmt.Errorf("validate record: %w", err)
	}

	tempID := s.ids.Generate()

	if s.monitor.State().Online {
		created, err := s.remote.CreateRecord(ctx, models.CreateRecordRequest{ClientRef: tempID, Record: payload})
		s.monitor.ReportOutcome(err)
		if err == nil {
			return models.SubmitResponse{ServerID: created.ID}, nil
		}
		if !errors.Is(err, adapter.ErrRemoteUnavailable) {
			// the backend answered and refused; buffering would only
			// replay the same refusal
			return models.SubmitResponse{}, fmt.Errorf("create record on remote: %w", err)
		}
		log.Info().
			Str("func", "submitService.SubmitRecord").
			Str("temp_id", tempID).
			Msg("remote unavailable, buffering record")
	}

	if err := s.bufferRecord(ctx, tempID, payload); err != nil {
		return models.SubmitResponse{}, err
	}

	s.trigger.Poke()

	return models.SubmitResponse{Queued: true, TemporaryID: tempID}, nil
}

// SubmitAttachment implements [SubmitService].
func (s *submitService) SubmitAttachment(ctx context.Context, parentRef string, payload models.AttachmentPayload) (models.SubmitResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.SubmitResponse{}, fmt.Errorf("validate attachment: %w", err)
	}

	parent, err := s.resolveParentRef(ctx, parentRef)
	if err != nil {
		return models.SubmitResponse{}, err
	}

	tempID := s.ids.Generate()

	// direct delivery needs the parent's server id; an attachment of a
	// still-buffered record always goes through the queue
	if parent.serverID != 0 && s.monitor.State().Online {
		created, err := s.remote.CreateAttachment(ctx, models.CreateAttachmentRequest{
			ClientRef:  tempID,
			RecordID:   parent.serverID,
			Attachment: payload,
		})
		s.monitor.ReportOutcome(err)
		if err == nil {
			return models.SubmitResponse{ServerID: created.ID}, nil
		}
		if !errors.Is(err, adapter.ErrRemoteUnavailable) {
			return models.SubmitResponse{}, fmt.Errorf("create attachment on remote: %w", err)
		}
		log.Info().
			Str("func", "submitService.SubmitAttachment").
			Str("temp_id", tempID).
			Msg("remote unavailable, buffering attachment")
	}

	if err := s.bufferAttachment(ctx, tempID, parent, payload); err != nil {
		return models.SubmitResponse{}, err
	}

	s.trigger.Poke()

	return models.SubmitResponse{Queued: true, TemporaryID: tempID}, nil
}

// parentLink is the resolved identity of an attachment's parent record.
// serverID is zero while the parent is still buffered; tempID is empty when
// the caller referenced the parent by server id directly.
type parentLink struct {
	tempID   string
	serverID int64
}

func (s *submitService) resolveParentRef(ctx context.Context, parentRef string) (parentLink, error) {
	// a numeric reference is a server id the UI got from a direct
	// submission; buffered records are only ever addressed by UUID
	if id, err := strconv.ParseInt(parentRef, 10, 64); err == nil {
		if id <= 0 {
			return parentLink{}, fmt.Errorf("%w (ref=%s)", ErrParentNotFound, parentRef)
		}
		return parentLink{serverID: id}, nil
	}

	if serverID, ok := s.resolution.lookup(parentRef); ok {
		return parentLink{tempID: parentRef, serverID: serverID}, nil
	}

	record, err := s.records.GetByTempID(ctx, parentRef)
	if errors.Is(err, store.ErrRecordNotFound) {
		return parentLink{}, fmt.Errorf("%w (ref=%s)", ErrParentNotFound, parentRef)
	}
	if err != nil {
		return parentLink{}, fmt.Errorf("load parent record: %w", err)
	}

	return parentLink{tempID: parentRef, serverID: record.ServerID}, nil
}

func (s *submitService) bufferRecord(ctx context.Context, tempID string, payload models.RecordPayload) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	sealed, err := sealRecord(s.sealer, models.PendingRecord{
		TempID:    tempID,
		OrgID:     payload.OrganizationID,
		Payload:   payload,
		CreatedAt: now,
	})
	if err != nil {
		return err
	}

	if err := s.records.Upsert(ctx, sealed); err != nil {
		return fmt.Errorf("buffer record locally: %w", err)
	}

	if err := s.queue.Enqueue(ctx, models.QueueEntry{
		ID:         s.ids.Generate(),
		Kind:       models.KindRecord,
		TempID:     tempID,
		EnqueuedAt: now,
		Status:     models.StatusPending,
	}); err != nil {
		// take the buffered row back out so the failure leaves no trace
		if delErr := s.records.Delete(ctx, tempID); delErr != nil {
			log.Err(delErr).
				Str("func", "submitService.bufferRecord").
				Str("temp_id", tempID).
				Msg("failed to roll back buffered record after enqueue failure")
		}
		return fmt.Errorf("enqueue record: %w", err)
	}

	enqueuedTotal.WithLabelValues(string(models.KindRecord)).Inc()
	log.Info().
		Str("func", "submitService.bufferRecord").
		Str("temp_id", tempID).
		Msg("record buffered for sync")

	return nil
}

func (s *submitService) bufferAttachment(ctx context.Context, tempID string, parent parentLink, payload models.AttachmentPayload) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	sealed, err := sealAttachment(s.sealer, models.PendingAttachment{
		TempID:       tempID,
		ParentTempID: parent.tempID,
		Payload:      payload,
		CreatedAt:    now,
	})
	if err != nil {
		return err
	}

	if err := s.attachments.Upsert(ctx, sealed); err != nil {
		return fmt.Errorf("buffer attachment locally: %w", err)
	}

	if err := s.queue.Enqueue(ctx, models.QueueEntry{
		ID:             s.ids.Generate(),
		Kind:           models.KindAttachment,
		TempID:         tempID,
		ParentTempID:   parent.tempID,
		ParentServerID: parent.serverID,
		EnqueuedAt:     now,
		Status:         models.StatusPending,
	}); err != nil {
		if delErr := s.attachments.Delete(ctx, tempID); delErr != nil {
			log.Err(delErr).
				Str("func", "submitService.bufferAttachment").
				Str("temp_id", tempID).
				Msg("failed to roll back buffered attachment after enqueue failure")
		}
		return fmt.Errorf("enqueue attachment: %w", err)
	}

	enqueuedTotal.WithLabelValues(string(models.KindAttachment)).Inc()
	log.Info().
		Str("func", "submitService.bufferAttachment").
		Str("temp_id", tempID).
		Str("parent_temp_id", parent.tempID).
		Int64("parent_server_id", parent.serverID).
		Msg("attachment buffered for sync")

	return nil
}
