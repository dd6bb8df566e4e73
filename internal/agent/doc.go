// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

// Package agent implements the field sync agent process runtime.
//
// It wires the background workers, the loopback facade server and the
// optional interactive status screen into a single lifecycle: workers start
// first so the buffer can begin draining before the facade accepts new
// submissions, and stop last so an in-flight drain pass finishes cleanly.
package agent
