package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates workers in start order.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// StartAll launches every worker in the order given to NewWorkers.
func (w *Workers) StartAll(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// StopAll stops every worker in reverse start order and blocks until
// each has terminated.
func (w *Workers) StopAll() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
