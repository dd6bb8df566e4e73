// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package models

import "time"

// EntryKind discriminates the two mutation types the queue carries.
type EntryKind string

const (
	KindRecord     EntryKind = "record"
	KindAttachment EntryKind = "attachment"
)

// EntryStatus is the lifecycle state of a queue entry.
//
// Entries are born pending and leave the queue on successful replay.
// An entry whose retries are exhausted becomes failed and is excluded
// from draining until an operator requeues or discards it.
type EntryStatus string

const (
	StatusPending EntryStatus = "pending"
	StatusFailed  EntryStatus = "failed"
)

// QueueEntry is one unit of pending work: a single mutation that must
// eventually be replayed against the central API.
type QueueEntry struct {
	// ID identifies the entry itself, independent of the entity it points to.
	ID string `json:"id"`

	// Kind tells the reconciler which repository and which remote call
	// the entry maps to.
	Kind EntryKind `json:"kind"`

	// TempID references the buffered entity (record or attachment).
	TempID string `json:"temp_id"`

	// ParentTempID is set on attachment entries only: the temporary
	// identifier of the parent record. It makes the record-before-attachment
	// dependency structural instead of relying on insertion order.
	ParentTempID string `json:"parent_temp_id,omitempty"`

	// ParentServerID is backfilled on attachment entries once the parent
	// record has been delivered. An attachment entry is not eligible for
	// draining while this is zero.
	ParentServerID int64 `json:"parent_server_id,omitempty"`

	EnqueuedAt time.Time   `json:"enqueued_at"`
	RetryCount int         `json:"retry_count"`
	Status     EntryStatus `json:"status"`

	// LastError keeps the most recent rejection text for operator review.
	LastError string `json:"last_error,omitempty"`
}
