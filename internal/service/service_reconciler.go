// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akovalev/go-field-sync/internal/adapter"
	"github.com/akovalev/go-field-sync/internal/connectivity"
	"github.com/akovalev/go-field-sync/internal/crypto"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/store"
	"github.com/akovalev/go-field-sync/models"
)

type reconcileService struct {
	records     store.RecordRepository
	attachments store.AttachmentRepository
	queue       store.QueueRepository
	remote      adapter.RemoteAdapter
	sealer      crypto.PayloadSealer
	monitor     connectivity.Monitor
	resolution  *resolutionCache
	delivered   *deliveredGuard
	maxRetries  int
	logger      *logger.Logger

	mu       sync.Mutex
	draining bool
}

// NewReconcileService builds the reconciliation worker. maxRetries is the
// rejection budget per entry; resolution is the shared temp-id cache the
// worker fills as records deliver.
func NewReconcileService(
	storages *store.Storages,
	remote adapter.RemoteAdapter,
	sealer crypto.PayloadSealer,
	monitor connectivity.Monitor,
	resolution *resolutionCache,
	maxRetries int,
	logger *logger.Logger,
) ReconcileService {
	return &reconcileService{
		records:     storages.Records,
		attachments: storages.Attachments,
		queue:       storages.Queue,
		remote:      remote,
		sealer:      sealer,
		monitor:     monitor,
		resolution:  resolution,
		delivered:   newDeliveredGuard(),
		maxRetries:  maxRetries,
		logger:      logger,
	}
}

// Drain implements [ReconcileService].
func (r *reconcileService) Drain(ctx context.Context) error {
	r.mu.Lock()
	if r.draining {
		r.mu.Unlock()
		r.logger.Debug().
			Str("func", "reconcileService.Drain").
			Msg("drain already in progress, trigger ignored")
		return nil
	}
	r.draining = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.draining = false
		r.mu.Unlock()
	}()

	start := time.Now()
	delivered, err := r.drainPass(ctx)
	drainDuration.Observe(time.Since(start).Seconds())
	refreshQueueGauges(ctx, r.queue)

	log := logger.FromContext(ctx)
	if err != nil {
		log.Info().
			Str("func", "reconcileService.Drain").
			Int("delivered", delivered).
			Dur("took", time.Since(start)).
			Str("halted_by", err.Error()).
			Msg("drain pass halted")
		return err
	}

	if delivered > 0 {
		log.Info().
			Str("func", "reconcileService.Drain").
			Int("delivered", delivered).
			Dur("took", time.Since(start)).
			Msg("drain pass finished")
	}

	return nil
}

// drainPass walks the queue oldest-first until nothing eligible remains.
// Entries that burn a retry in this pass are added to skip so each entry is
// attempted at most once per pass; its remaining budget belongs to future
// triggers.
func (r *reconcileService) drainPass(ctx context.Context) (int, error) {
	delivered := 0
	var skip []string

	for {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}

		entry, err := r.queue.PeekNext(ctx, skip...)
		if errors.Is(err, store.ErrQueueEmpty) {
			return delivered, nil
		}
		if err != nil {
			return delivered, fmt.Errorf("peek next entry: %w", err)
		}

		done, err := r.reconcileEntry(ctx, entry)
		if err != nil {
			return delivered, err
		}
		if done {
			delivered++
		} else {
			skip = append(skip, entry.ID)
		}
	}
}

// reconcileEntry moves one entry toward delivery. The boolean reports
// whether the entry left the queue; false with a nil error means the entry
// burned a retry and the pass should continue past it. A non-nil error
// halts the pass: either the remote became unreachable or the local buffer
// stopped cooperating.
func (r *reconcileService) reconcileEntry(ctx context.Context, entry models.QueueEntry) (bool, error) {
	if serverID, ok := r.delivered.lookup(entry.ID); ok {
		// accepted on an earlier pass; only the bookkeeping is left
		return r.settleEntry(ctx, entry, serverID)
	}

	serverID, callErr := r.submitEntry(ctx, entry)

	if errors.Is(callErr, adapter.ErrRemoteUnavailable) {
		return false, fmt.Errorf("remote unavailable: %w", callErr)
	}
	if errors.Is(callErr, store.ErrStorageUnavailable) {
		return false, fmt.Errorf("local buffer unavailable: %w", callErr)
	}
	if callErr != nil {
		// the backend (or the local unseal) judged this entry and refused;
		// burn one attempt and move on so one bad entry cannot dam the rest
		return false, r.recordRejection(ctx, entry, callErr)
	}

	r.delivered.remember(entry.ID, serverID)

	return r.settleEntry(ctx, entry, serverID)
}

// submitEntry loads the buffered entity, opens its sealed payload and
// submits it to the central API, returning the server-assigned id.
func (r *reconcileService) submitEntry(ctx context.Context, entry models.QueueEntry) (int64, error) {
	switch entry.Kind {
	case models.KindRecord:
		sealed, err := r.records.GetByTempID(ctx, entry.TempID)
		if err != nil {
			return 0, fmt.Errorf("load buffered record: %w", err)
		}

		record, err := unsealRecord(r.sealer, sealed)
		if err != nil {
			return 0, err
		}

		created, err := r.remote.CreateRecord(ctx, models.CreateRecordRequest{ClientRef: entry.TempID, Record: record.Payload})
		// only real remote calls are connectivity evidence; a local load
		// or unseal failure says nothing about the link
		r.monitor.ReportOutcome(err)
		if err != nil {
			return 0, err
		}
		return created.ID, nil

	case models.KindAttachment:
		sealed, err := r.attachments.GetByTempID(ctx, entry.TempID)
		if err != nil {
			return 0, fmt.Errorf("load buffered attachment: %w", err)
		}

		attachment, err := unsealAttachment(r.sealer, sealed)
		if err != nil {
			return 0, err
		}

		created, err := r.remote.CreateAttachment(ctx, models.CreateAttachmentRequest{
			ClientRef:  entry.TempID,
			RecordID:   entry.ParentServerID,
			Attachment: attachment.Payload,
		})
		r.monitor.ReportOutcome(err)
		if err != nil {
			return 0, err
		}
		return created.ID, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEntryKind, entry.Kind)
	}
}

// settleEntry performs the local bookkeeping of a delivered entry: server id
// backfill, dependent unblocking and removal from the queue. A buffered row
// that vanished underneath the queue parks the entry instead of halting the
// pass; every other failure halts, with the delivered guard remembering the
// accepted submission for the redo.
func (r *reconcileService) settleEntry(ctx context.Context, entry models.QueueEntry, serverID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if err := r.finishEntry(ctx, entry, serverID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) || errors.Is(err, store.ErrAttachmentNotFound) {
			log.Warn().
				Str("func", "reconcileService.settleEntry").
				Str("entry_id", entry.ID).
				Str("temp_id", entry.TempID).
				Msg("buffered entity vanished after delivery, parking entry")
			return false, r.recordRejection(ctx, entry, err)
		}
		return false, fmt.Errorf("settle delivered entry: %w", err)
	}

	r.delivered.forget(entry.ID)
	deliveredTotal.WithLabelValues(string(entry.Kind)).Inc()

	log.Info().
		Str("func", "reconcileService.settleEntry").
		Str("entry_id", entry.ID).
		Str("kind", string(entry.Kind)).
		Str("temp_id", entry.TempID).
		Int64("server_id", serverID).
		Msg("entry delivered")

	return true, nil
}

func (r *reconcileService) finishEntry(ctx context.Context, entry models.QueueEntry, serverID int64) error {
	switch entry.Kind {
	case models.KindRecord:
		if err := r.records.SetServerID(ctx, entry.TempID, serverID); err != nil {
			return fmt.Errorf("backfill record server id: %w", err)
		}
		// rewrite the parent reference on every queued attachment of this
		// record, which is what makes them eligible for delivery
		if err := r.queue.ResolveParent(ctx, entry.TempID, serverID); err != nil {
			return fmt.Errorf("unblock dependent attachments: %w", err)
		}
		r.resolution.remember(entry.TempID, serverID)

	case models.KindAttachment:
		if err := r.attachments.SetServerID(ctx, entry.TempID, serverID); err != nil {
			return fmt.Errorf("backfill attachment server id: %w", err)
		}
	}

	// a concurrent operator discard may have removed the entry already;
	// the goal state is reached either way
	if err := r.queue.MarkDone(ctx, entry.ID); err != nil && !errors.Is(err, store.ErrEntryNotFound) {
		return fmt.Errorf("mark entry done: %w", err)
	}

	return nil
}

// recordRejection burns one retry on the entry and reports whether it got
// parked. Storage trouble while recording the rejection halts the pass.
func (r *reconcileService) recordRejection(ctx context.Context, entry models.QueueEntry, cause error) error {
	log := logger.FromContext(ctx)

	rejectedTotal.Inc()

	updated, err := r.queue.MarkFailed(ctx, entry.ID, cause.Error(), r.maxRetries)
	if errors.Is(err, store.ErrEntryNotFound) {
		// discarded by the operator mid-flight
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark entry failed: %w", err)
	}

	if updated.Status == models.StatusFailed {
		log.Warn().
			Str("func", "reconcileService.recordRejection").
			Str("entry_id", entry.ID).
			Str("kind", string(entry.Kind)).
			Str("temp_id", entry.TempID).
			Int("retry_count", updated.RetryCount).
			Str("last_error", updated.LastError).
			Msg("entry parked after exhausting retries")
		return nil
	}

	log.Info().
		Str("func", "reconcileService.recordRejection").
		Str("entry_id", entry.ID).
		Int("retry_count", updated.RetryCount).
		Msg("delivery rejected, will retry")

	return nil
}
