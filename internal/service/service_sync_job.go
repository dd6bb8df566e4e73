package service

import (
	"context"
	"sync"
	"time"

	"github.com/akovalev/go-field-sync/internal/connectivity"
	"github.com/akovalev/go-field-sync/models"
)

type syncJob struct {
	reconciler ReconcileService
	monitor    connectivity.Monitor
	interval   time.Duration

	poke chan struct{}

	mu          sync.Mutex
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

// NewSyncJob creates the worker that calls reconciler.Drain on three
// triggers: the connectivity monitor reporting the link back up, a Poke
// from the write path after an enqueue, and a fallback ticker every
// interval (default 5 minutes) that catches anything the edges missed.
// The job is idle until Start is called.
func NewSyncJob(reconciler ReconcileService, monitor connectivity.Monitor, interval time.Duration) SyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &syncJob{
		reconciler: reconciler,
		monitor:    monitor,
		interval:   interval,
		poke:       make(chan struct{}, 1),
	}
}

// Poke implements [SyncJob]. Safe to call from any goroutine, running or not.
func (j *syncJob) Poke() {
	select {
	case j.poke <- struct{}{}:
	default:
	}
}

// Start implements [SyncJob]. It stops any previously running loop,
// subscribes to connectivity transitions and launches the drain loop. One
// pass is requested immediately so work buffered across a restart does not
// wait for the first tick.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.unsubscribe = j.monitor.Subscribe(func(state models.ConnectivityState) {
		if state.Online {
			j.Poke()
		}
	})
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-j.poke:
			case <-t.C:
			}
			_ = j.reconciler.Drain(jobCtx)
		}
	}()

	j.Poke()
}

// Stop implements [SyncJob]. It drops the monitor subscription, cancels the
// loop's context and blocks until the goroutine has fully exited. Safe to
// call when the job is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	unsubscribe := j.unsubscribe
	j.cancel = nil
	j.unsubscribe = nil
	j.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
