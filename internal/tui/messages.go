package tui

import (
	"time"

	"github.com/akovalev/go-field-sync/models"
)

type tickMsg time.Time

type statusLoadedMsg struct {
	status  models.StatusResponse
	entries []models.QueueEntry
	err     error
}

type actionDoneMsg struct {
	verb string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
