// Package tui renders the agent's interactive status screen: connectivity
// badge, queue counters and the list of entries parked after exhausting
// their retry budget, with keys to requeue or discard them.
//
// The screen is strictly an operator console over [service.QueueService];
// submissions still arrive through the loopback facade.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalev/go-field-sync/internal/service"
	"github.com/akovalev/go-field-sync/models"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, buildInfo models.AppBuildInfo) *TUI {
	return &TUI{services: services, buildInfo: buildInfo}
}

// Run displays the status screen and blocks until the operator quits.
// Quitting the screen is a normal exit, not an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.services.Queue, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
