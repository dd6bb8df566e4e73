// Package workers provides abstractions for managing and running
// the agent's background workers.
// It defines the Worker interface and a Workers aggregate that starts
// and stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Start launches the worker's loop and returns immediately; Stop blocks
// until the loop has fully terminated.
//
// Implementations are expected to derive their loop lifetime from the
// context given to Start, and to make Stop safe to call when the worker
// is not running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // launch background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // signal the loop and wait for it to exit
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
