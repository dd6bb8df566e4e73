// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package agent

// Agent defines the minimal lifecycle contract for runnable agent
// processes.
type Agent interface {
	// Run starts the agent and blocks until exit.
	Run() error
}
