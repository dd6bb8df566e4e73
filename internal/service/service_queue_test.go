// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/mock"
	"github.com/akovalev/go-field-sync/internal/store"
	"github.com/akovalev/go-field-sync/models"
)

type queueMocks struct {
	records     *mock.MockRecordRepository
	attachments *mock.MockAttachmentRepository
	queue       *mock.MockQueueRepository
	sealer      *mock.MockPayloadSealer
	monitor     *mock.MockMonitor
	trigger     *mock.MockDrainTrigger
}

func newTestQueueSvc(t *testing.T, ctrl *gomock.Controller) (QueueService, queueMocks) {
	t.Helper()

	m := queueMocks{
		records:     mock.NewMockRecordRepository(ctrl),
		attachments: mock.NewMockAttachmentRepository(ctrl),
		queue:       mock.NewMockQueueRepository(ctrl),
		sealer:      mock.NewMockPayloadSealer(ctrl),
		monitor:     mock.NewMockMonitor(ctrl),
		trigger:     mock.NewMockDrainTrigger(ctrl),
	}

	storages := &store.Storages{
		Records:     m.records,
		Attachments: m.attachments,
		Queue:       m.queue,
	}
	svc := NewQueueService(storages, m.sealer, m.monitor, m.trigger, logger.Nop())

	return svc, m
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestQueueStatus_CombinesMonitorAndCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	m.monitor.EXPECT().State().Return(models.ConnectivityState{Online: true, Quality: models.QualityModerate})
	m.queue.EXPECT().Depth(ctx).Return(int64(4), nil)
	m.queue.EXPECT().FailedCount(ctx).Return(int64(1), nil)

	got, err := svc.Status(ctx)

	require.NoError(t, err)
	assert.True(t, got.Online)
	assert.Equal(t, models.QualityModerate, got.Quality)
	assert.Equal(t, 4, got.QueueDepth)
	assert.Equal(t, 1, got.FailedCount)
}

func TestQueueStatus_DepthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	m.monitor.EXPECT().State().Return(models.ConnectivityState{Online: false, Quality: models.QualityUnknown})
	m.queue.EXPECT().Depth(ctx).Return(int64(0), store.ErrStorageUnavailable)

	_, err := svc.Status(ctx)

	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "count queued entries")
}

// ── List / ListFailed ────────────────────────────────────────────────────────

func TestQueueList_DelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.QueueEntry{
		{ID: "e1", Kind: models.KindRecord, TempID: "rec-1", Status: models.StatusPending},
		{ID: "e2", Kind: models.KindAttachment, TempID: "att-1", Status: models.StatusFailed},
	}
	m.queue.EXPECT().List(ctx).Return(entries, nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestQueueListFailed_DelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	parked := []models.QueueEntry{
		{ID: "e2", Kind: models.KindAttachment, TempID: "att-1", Status: models.StatusFailed, RetryCount: 5},
	}
	m.queue.EXPECT().ListFailed(ctx).Return(parked, nil)

	got, err := svc.ListFailed(ctx)

	require.NoError(t, err)
	assert.Equal(t, parked, got)
}

func TestQueueListFailed_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	m.queue.EXPECT().ListFailed(ctx).Return(nil, store.ErrStorageUnavailable)

	_, err := svc.ListFailed(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list parked entries")
}

// ── Requeue ──────────────────────────────────────────────────────────────────

func TestQueueRequeue_WakesWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	m.queue.EXPECT().Requeue(ctx, "e2").Return(nil)
	m.trigger.EXPECT().Poke()

	require.NoError(t, svc.Requeue(ctx, "e2"))
}

func TestQueueRequeue_UnknownEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	m.queue.EXPECT().Requeue(ctx, "ghost").Return(store.ErrEntryNotFound)

	err := svc.Requeue(ctx, "ghost")

	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrEntryNotFound)
}

// ── Discard ──────────────────────────────────────────────────────────────────

func TestQueueDiscard_RecordCascadesToDependents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	entry := models.QueueEntry{
		ID:         "e1",
		Kind:       models.KindRecord,
		TempID:     "rec-1",
		EnqueuedAt: time.Now().UTC(),
		Status:     models.StatusFailed,
	}

	// dependents go first and the entry itself last, so a crash in the
	// middle leaves a repeatable discard instead of an orphaned entry
	gomock.InOrder(
		m.queue.EXPECT().GetEntry(ctx, "e1").Return(entry, nil),
		m.queue.EXPECT().DiscardByParent(ctx, "rec-1").Return(nil),
		m.attachments.EXPECT().DeleteByParent(ctx, "rec-1").Return(nil),
		m.records.EXPECT().Delete(ctx, "rec-1").Return(nil),
		m.queue.EXPECT().Discard(ctx, "e1").Return(nil),
	)
	m.queue.EXPECT().Depth(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.queue.EXPECT().FailedCount(gomock.Any()).Return(int64(0), nil).AnyTimes()

	require.NoError(t, svc.Discard(ctx, "e1"))
}

func TestQueueDiscard_AttachmentDropsOnlyItself(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	entry := models.QueueEntry{
		ID:     "e2",
		Kind:   models.KindAttachment,
		TempID: "att-1",
		Status: models.StatusFailed,
	}

	gomock.InOrder(
		m.queue.EXPECT().GetEntry(ctx, "e2").Return(entry, nil),
		m.attachments.EXPECT().Delete(ctx, "att-1").Return(nil),
		m.queue.EXPECT().Discard(ctx, "e2").Return(nil),
	)
	m.queue.EXPECT().Depth(gomock.Any()).Return(int64(0), nil).AnyTimes()
	m.queue.EXPECT().FailedCount(gomock.Any()).Return(int64(0), nil).AnyTimes()

	require.NoError(t, svc.Discard(ctx, "e2"))
}

func TestQueueDiscard_UnknownEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	m.queue.EXPECT().GetEntry(ctx, "ghost").Return(models.QueueEntry{}, store.ErrEntryNotFound)

	err := svc.Discard(ctx, "ghost")

	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestQueueDiscard_InterruptedCascadeKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	entry := models.QueueEntry{ID: "e1", Kind: models.KindRecord, TempID: "rec-1", Status: models.StatusFailed}

	gomock.InOrder(
		m.queue.EXPECT().GetEntry(ctx, "e1").Return(entry, nil),
		m.queue.EXPECT().DiscardByParent(ctx, "rec-1").Return(nil),
		m.attachments.EXPECT().DeleteByParent(ctx, "rec-1").Return(store.ErrStorageUnavailable),
	)

	// queue.Discard must not run: the entry stays and the operator can
	// repeat the discard once storage is back
	err := svc.Discard(ctx, "e1")

	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "delete buffered attachments")
}

// ── ListPending ──────────────────────────────────────────────────────────────

func TestQueueListPending_UnsealsRecordsAndAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	sealedRec := models.SealedRecord{TempID: "rec-1", OrgID: 3, Blob: "blob-rec"}
	sealedAtt := models.SealedAttachment{TempID: "att-1", ParentTempID: "rec-1", Blob: "blob-att"}

	m.records.EXPECT().GetByField(ctx, "synced", false).Return([]models.SealedRecord{sealedRec}, nil)
	m.sealer.EXPECT().Open("blob-rec", gomock.Any()).DoAndReturn(
		func(_ string, target any) error {
			*(target.(*models.RecordPayload)) = models.RecordPayload{MachineID: 7, OrganizationID: 3}
			return nil
		})
	m.attachments.EXPECT().GetByParent(ctx, "rec-1").Return([]models.SealedAttachment{sealedAtt}, nil)
	m.sealer.EXPECT().Open("blob-att", gomock.Any()).DoAndReturn(
		func(_ string, target any) error {
			*(target.(*models.AttachmentPayload)) = models.AttachmentPayload{
				FileName:    "net.jpg",
				ContentType: "image/jpeg",
				Data:        []byte{0xFF, 0xD8},
			}
			return nil
		})

	got, err := svc.ListPending(ctx)

	require.NoError(t, err)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "rec-1", got.Records[0].TempID)
	assert.Equal(t, int64(7), got.Records[0].Payload.MachineID)
	assert.False(t, got.Records[0].Synced)

	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "rec-1", got.Attachments[0].ParentTempID)
	assert.Equal(t, "net.jpg", got.Attachments[0].Payload.FileName)
	assert.Nil(t, got.Attachments[0].Payload.Data, "listing must not carry photo bytes")

	assert.Equal(t, 1, got.Length)
}

func TestQueueListPending_EmptyBuffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	m.records.EXPECT().GetByField(ctx, "synced", false).Return(nil, nil)

	got, err := svc.ListPending(ctx)

	require.NoError(t, err)
	assert.Empty(t, got.Records)
	assert.Empty(t, got.Attachments)
	assert.Zero(t, got.Length)
}

func TestQueueListPending_UnsealFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	m.records.EXPECT().GetByField(ctx, "synced", false).
		Return([]models.SealedRecord{{TempID: "rec-1", Blob: "garbage"}}, nil)
	m.sealer.EXPECT().Open("garbage", gomock.Any()).Return(errors.New("auth tag mismatch"))

	_, err := svc.ListPending(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unseal record payload")
}
