// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	resolutionCacheSize = 1024
	resolutionCacheTTL  = 30 * time.Minute

	deliveredGuardSize = 512
	deliveredGuardTTL  = 10 * time.Minute
)

// resolutionCache remembers temporary-id to server-id assignments of
// delivered records. The write path consults it when an attachment arrives
// for a record that already synced, sparing a buffer read per attachment.
// A miss is never wrong, only slower: the buffer row holds the same answer.
type resolutionCache struct {
	lru *expirable.LRU[string, int64]
}

func newResolutionCache() *resolutionCache {
	return &resolutionCache{
		lru: expirable.NewLRU[string, int64](resolutionCacheSize, nil, resolutionCacheTTL),
	}
}

func (c *resolutionCache) remember(tempID string, serverID int64) {
	c.lru.Add(tempID, serverID)
}

func (c *resolutionCache) lookup(tempID string) (int64, bool) {
	serverID, ok := c.lru.Get(tempID)
	if ok {
		resolutionHitsTotal.Inc()
		return serverID, true
	}
	resolutionMissesTotal.Inc()
	return 0, false
}

// deliveredGuard remembers queue entries the central API has already
// accepted whose local bookkeeping did not complete (the process was
// interrupted, or the buffer write failed). On the next pass the worker
// finds the entry still queued, sees it here and redoes only the
// bookkeeping instead of submitting again. The backend deduplicates on the
// client reference anyway; the guard just spares the round trip.
type deliveredGuard struct {
	lru *expirable.LRU[string, int64]
}

func newDeliveredGuard() *deliveredGuard {
	return &deliveredGuard{
		lru: expirable.NewLRU[string, int64](deliveredGuardSize, nil, deliveredGuardTTL),
	}
}

func (g *deliveredGuard) remember(entryID string, serverID int64) {
	g.lru.Add(entryID, serverID)
}

func (g *deliveredGuard) lookup(entryID string) (int64, bool) {
	return g.lru.Get(entryID)
}

func (g *deliveredGuard) forget(entryID string) {
	g.lru.Remove(entryID)
}
