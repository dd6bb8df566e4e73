// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package tui

import (
	"errors"

	"github.com/akovalev/go-field-sync/internal/store"
)

func humanizeAgentError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrStorageUnavailable):
		return "Локальное хранилище недоступно"
	case errors.Is(err, store.ErrEntryNotFound):
		return "Запись уже обработана"
	}

	return err.Error()
}
