// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

// Package connectivity maintains the agent's single source of truth for the
// state of the link to the central API.
//
// The [Monitor] aggregates two kinds of signals: active health probes driven
// by the [Prober] worker, and passive hints reported after real API calls by
// whichever component made them. Probes measure latency and feed the quality
// bucket; hints only flip the online flag, because a call that was going to
// happen anyway is free evidence while a probe costs a round trip.
//
// Until the first signal arrives the monitor fails open (online, quality
// unknown): a false "offline" would block legitimate direct submissions,
// while a false "online" is recovered by the sync queue.
package connectivity

import (
	"context"
	"time"

	"github.com/akovalev/go-field-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connectivity_mock.go -package=mock

// Monitor tracks online/offline state and link quality, and notifies
// subscribers on every transition. Implementations must be safe for
// concurrent use: the facade, the prober and the reconciliation worker all
// touch the monitor from their own goroutines.
type Monitor interface {
	// State returns the current connectivity snapshot.
	State() models.ConnectivityState

	// Subscribe registers listener to be invoked on every transition of
	// the online flag or the quality bucket. Notifications are
	// edge-triggered: a signal that does not change the state produces no
	// call. The returned function removes the subscription; calling it
	// more than once is harmless.
	Subscribe(listener func(models.ConnectivityState)) (unsubscribe func())

	// ReportProbe feeds the result of an active health probe: the round
	// trip latency and the error returned by the health call, nil when the
	// backend answered cleanly.
	ReportProbe(latency time.Duration, err error)

	// ReportOutcome feeds a passive hint from a real API call. Only the
	// error matters: transport-level unavailability flips the monitor
	// offline, any answer from the backend (including a rejection) proves
	// the link is up.
	ReportOutcome(err error)
}

// HealthPinger is the slice of the remote adapter the prober needs.
type HealthPinger interface {
	Health(ctx context.Context) error
}
