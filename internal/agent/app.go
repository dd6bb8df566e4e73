// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package agent

import (
	"context"
	"errors"
	"time"

	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/internal/server"
	"github.com/akovalev/go-field-sync/internal/tui"
	"github.com/akovalev/go-field-sync/internal/utils"
	"github.com/akovalev/go-field-sync/internal/workers"
)

// App owns the agent process lifecycle: background workers, the loopback
// facade server and, in interactive mode, the status screen.
type App struct {
	server  server.Server
	workers *workers.Workers
	ui      *tui.TUI
	cfg     *config.AgentConfig
	logger  *logger.Logger
}

// NewApp assembles the agent runtime. ui may be nil; it is required only
// when cfg selects interactive mode.
func NewApp(srv server.Server, wrk *workers.Workers, ui *tui.TUI, cfg *config.AgentConfig, logger *logger.Logger) (*App, error) {
	if srv == nil {
		return nil, errors.New("no facade server provided")
	}
	if wrk == nil {
		return nil, errors.New("no workers provided")
	}
	if cfg.App.TUIMode && ui == nil {
		return nil, errors.New("interactive mode requested but no status screen provided")
	}

	return &App{
		server:  srv,
		workers: wrk,
		ui:      ui,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Run starts the workers and serves until the process is told to stop.
//
// In daemon mode the facade server blocks in the foreground and its signal
// handling ends the process. In interactive mode the facade runs in the
// background while the status screen owns the terminal; quitting the screen
// shuts everything down.
func (a *App) Run() error {
	a.warnOnTokenExpiry()

	ctx := context.Background()

	a.workers.StartAll(ctx)
	defer a.workers.StopAll()

	if a.cfg.App.TUIMode {
		go a.server.RunServer()
		defer a.server.Shutdown()

		return a.ui.Run(ctx)
	}

	a.server.RunServer()
	return nil
}

// warnOnTokenExpiry reads the device token claims and logs a warning when
// the token runs out inside the configured window. A device in the field
// with an expired token can buffer but never deliver, so the operator
// should re-enroll before that happens.
func (a *App) warnOnTokenExpiry() {
	claims, err := utils.ParseDeviceClaims(a.cfg.App.DeviceToken)
	if err != nil {
		a.logger.Warn().Str("func", "*App.warnOnTokenExpiry").Msg("device token claims are not readable")
		return
	}

	if !utils.TokenExpiresWithin(claims, a.cfg.Workers.TokenWarnWindow) {
		return
	}

	event := a.logger.Warn().
		Str("func", "*App.warnOnTokenExpiry").
		Str("device_id", claims.DeviceID)
	if claims.ExpiresAt != nil {
		event = event.Time("expires_at", claims.ExpiresAt.Time)
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			event = event.Dur("remaining", remaining)
		}
	}
	event.Msg("device token expires soon, re-enroll the device")
}
