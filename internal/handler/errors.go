// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package handler

import "errors"

// errNoFacadeAddress is returned by NewHandlers when the facade listen
// address is missing from the agent configuration. Device software could
// never reach the agent in that state, so this is treated as a fatal
// misconfiguration and causes the agent to fail at startup.
var errNoFacadeAddress = errors.New("no facade listen address configured")
