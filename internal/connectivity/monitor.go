// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package connectivity

import (
	"errors"
	"sync"
	"time"

	"github.com/akovalev/go-field-sync/internal/adapter"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/models"
)

// Latency ceilings for the quality buckets. A probe answered under the
// first ceiling is a good link, under the second a moderate one, anything
// slower is poor.
const (
	goodLatencyCeiling     = 300 * time.Millisecond
	moderateLatencyCeiling = time.Second
)

type monitor struct {
	logger *logger.Logger

	mu        sync.RWMutex
	state     models.ConnectivityState
	nextID    int
	listeners map[int]func(models.ConnectivityState)
}

// NewMonitor constructs a [Monitor] in the fail-open initial state:
// online with unknown quality.
func NewMonitor(logger *logger.Logger) Monitor {
	return &monitor{
		logger: logger,
		state: models.ConnectivityState{
			Online:  true,
			Quality: models.QualityUnknown,
		},
		listeners: make(map[int]func(models.ConnectivityState)),
	}
}

// State implements [Monitor].
func (m *monitor) State() models.ConnectivityState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Subscribe implements [Monitor]. The listener is invoked from whatever
// goroutine reported the signal that caused the transition, so listeners
// must be quick and must not block on the monitor itself.
func (m *monitor) Subscribe(listener func(models.ConnectivityState)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = listener
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// ReportProbe implements [Monitor]. An unavailability error marks the link
// offline; any answer from the backend (clean or a rejection) marks it
// online with the latency bucketed into a quality.
func (m *monitor) ReportProbe(latency time.Duration, err error) {
	if errors.Is(err, adapter.ErrRemoteUnavailable) {
		m.apply(models.ConnectivityState{Online: false, Quality: models.QualityUnknown})
		return
	}

	m.apply(models.ConnectivityState{Online: true, Quality: bucketLatency(latency)})
}

// ReportOutcome implements [Monitor]. Passive hints carry no latency
// measurement, so they leave the quality bucket alone while the link stays
// online and reset it to unknown on every online/offline flip.
func (m *monitor) ReportOutcome(err error) {
	if errors.Is(err, adapter.ErrRemoteUnavailable) {
		m.apply(models.ConnectivityState{Online: false, Quality: models.QualityUnknown})
		return
	}

	m.mu.RLock()
	next := models.ConnectivityState{Online: true, Quality: m.state.Quality}
	if !m.state.Online {
		next.Quality = models.QualityUnknown
	}
	m.mu.RUnlock()

	m.apply(next)
}

// apply installs next as the current state and notifies subscribers if
// anything changed. Listeners are invoked outside the lock so they may call
// State or Subscribe without deadlocking.
func (m *monitor) apply(next models.ConnectivityState) {
	m.mu.Lock()
	if m.state == next {
		m.mu.Unlock()
		return
	}
	prev := m.state
	m.state = next

	notify := make([]func(models.ConnectivityState), 0, len(m.listeners))
	for _, l := range m.listeners {
		notify = append(notify, l)
	}
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "monitor.apply").
		Bool("online", next.Online).
		Str("quality", string(next.Quality)).
		Bool("was_online", prev.Online).
		Msg("connectivity state changed")

	for _, l := range notify {
		l(next)
	}
}

func bucketLatency(latency time.Duration) models.Quality {
	switch {
	case latency < goodLatencyCeiling:
		return models.QualityGood
	case latency < moderateLatencyCeiling:
		return models.QualityModerate
	default:
		return models.QualityPoor
	}
}
