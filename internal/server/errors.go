// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package server

import "errors"

var (
	// errNoFacadeServer is returned when no listen address was configured,
	// leaving the agent with nothing for device software to talk to.
	errNoFacadeServer = errors.New("no facade server is created")
)
