// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package service

import (
	"context"
	"fmt"

	"github.com/akovalev/go-field-sync/internal/connectivity"
	"github.com/akovalev/go-field-sync/internal/crypto"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/store"
	"github.com/akovalev/go-field-sync/models"
)

type queueService struct {
	records     store.RecordRepository
	attachments store.AttachmentRepository
	queue       store.QueueRepository
	sealer      crypto.PayloadSealer
	monitor     connectivity.Monitor
	trigger     DrainTrigger
	logger      *logger.Logger
}

func NewQueueService(
	storages *store.Storages,
	sealer crypto.PayloadSealer,
	monitor connectivity.Monitor,
	trigger DrainTrigger,
	logger *logger.Logger,
) QueueService {
	return &queueService{
		records:     storages.Records,
		attachments: storages.Attachments,
		queue:       storages.Queue,
		sealer:      sealer,
		monitor:     monitor,
		trigger:     trigger,
		logger:      logger,
	}
}

// Status implements [QueueService].
func (s *queueService) Status(ctx context.Context) (models.StatusResponse, error) {
	state := s.monitor.State()

	depth, err := s.queue.Depth(ctx)
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("count queued entries: %w", err)
	}

	failed, err := s.queue.FailedCount(ctx)
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("count parked entries: %w", err)
	}

	queueDepthGauge.Set(float64(depth))
	queueFailedGauge.Set(float64(failed))

	return models.StatusResponse{
		Online:      state.Online,
		Quality:     state.Quality,
		QueueDepth:  int(depth),
		FailedCount: int(failed),
	}, nil
}

// List implements [QueueService].
func (s *queueService) List(ctx context.Context) ([]models.QueueEntry, error) {
	entries, err := s.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list queue entries: %w", err)
	}

	return entries, nil
}

// ListFailed implements [QueueService].
func (s *queueService) ListFailed(ctx context.Context) ([]models.QueueEntry, error) {
	entries, err := s.queue.ListFailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parked entries: %w", err)
	}

	return entries, nil
}

// ListPending implements [QueueService]. Records come back through the
// indexed synced column, attachments through their parent reference, so
// the listing never has to scan sealed blobs to find its rows.
func (s *queueService) ListPending(ctx context.Context) (models.PendingListResponse, error) {
	sealedRecords, err := s.records.GetByField(ctx, "synced", false)
	if err != nil {
		return models.PendingListResponse{}, fmt.Errorf("list pending records: %w", err)
	}

	response := models.PendingListResponse{
		Records:     make([]models.PendingRecord, 0, len(sealedRecords)),
		Attachments: []models.PendingAttachment{},
	}

	for _, sealed := range sealedRecords {
		record, err := unsealRecord(s.sealer, sealed)
		if err != nil {
			return models.PendingListResponse{}, err
		}
		response.Records = append(response.Records, record)

		sealedAttachments, err := s.attachments.GetByParent(ctx, sealed.TempID)
		if err != nil {
			return models.PendingListResponse{}, fmt.Errorf("list attachments of record %s: %w", sealed.TempID, err)
		}

		for _, sealedAtt := range sealedAttachments {
			attachment, err := unsealAttachment(s.sealer, sealedAtt)
			if err != nil {
				return models.PendingListResponse{}, err
			}
			// the listing is an index, not a download; keep photo bytes
			// out of it
			attachment.Payload.Data = nil
			response.Attachments = append(response.Attachments, attachment)
		}
	}

	response.Length = len(response.Records)

	return response, nil
}

// Requeue implements [QueueService].
func (s *queueService) Requeue(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	if err := s.queue.Requeue(ctx, entryID); err != nil {
		return fmt.Errorf("requeue entry: %w", err)
	}

	log.Info().
		Str("func", "queueService.Requeue").
		Str("entry_id", entryID).
		Msg("parked entry returned to rotation")

	s.trigger.Poke()

	return nil
}

// Discard implements [QueueService]. The cascade removes dependents first
// and the entry itself last, so an interrupted discard leaves the entry in
// place and the operation can simply be repeated.
func (s *queueService) Discard(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	entry, err := s.queue.GetEntry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load entry for discard: %w", err)
	}

	switch entry.Kind {
	case models.KindRecord:
		if err := s.queue.DiscardByParent(ctx, entry.TempID); err != nil {
			return fmt.Errorf("discard dependent attachment entries: %w", err)
		}
		if err := s.attachments.DeleteByParent(ctx, entry.TempID); err != nil {
			return fmt.Errorf("delete buffered attachments: %w", err)
		}
		if err := s.records.Delete(ctx, entry.TempID); err != nil {
			return fmt.Errorf("delete buffered record: %w", err)
		}
	case models.KindAttachment:
		if err := s.attachments.Delete(ctx, entry.TempID); err != nil {
			return fmt.Errorf("delete buffered attachment: %w", err)
		}
	}

	if err := s.queue.Discard(ctx, entryID); err != nil {
		return fmt.Errorf("discard entry: %w", err)
	}

	log.Warn().
		Str("func", "queueService.Discard").
		Str("entry_id", entryID).
		Str("kind", string(entry.Kind)).
		Str("temp_id", entry.TempID).
		Msg("entry discarded by operator, buffered data dropped")

	refreshQueueGauges(ctx, s.queue)

	return nil
}
