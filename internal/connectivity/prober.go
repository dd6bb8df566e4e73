package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/akovalev/go-field-sync/internal/logger"
)

// Prober periodically calls the backend health endpoint and feeds the
// result to the monitor. It is the active half of connectivity detection;
// passive hints from real API calls arrive at the monitor directly.
type Prober struct {
	monitor  Monitor
	remote   HealthPinger
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProber creates a Prober that probes remote every interval and reports
// to monitor. The prober is idle until Start is called.
func NewProber(monitor Monitor, remote HealthPinger, interval time.Duration, logger *logger.Logger) *Prober {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Prober{
		monitor:  monitor,
		remote:   remote,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the probe loop. The first probe fires immediately so the
// monitor leaves its fail-open default as soon as possible; after that the
// loop ticks every interval. Any previously running loop is stopped first.
func (p *Prober) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		p.probeOnce(loopCtx)

		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				p.probeOnce(loopCtx)
			}
		}
	}()
}

// Stop signals the probe loop to exit and blocks until it has fully
// terminated. Safe to call when the prober is not running.
func (p *Prober) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *Prober) probeOnce(ctx context.Context) {
	start := time.Now()
	err := p.remote.Health(ctx)
	latency := time.Since(start)

	if ctx.Err() != nil {
		// shutdown, not a verdict on the link
		return
	}

	p.logger.Debug().
		Str("func", "Prober.probeOnce").
		Dur("latency", latency).
		Bool("ok", err == nil).
		Msg("health probe finished")

	p.monitor.ReportProbe(latency, err)
}
