// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package config

import "strings"

// validate checks the merged [StructuredConfig] for values that are wrong in
// any projection. Full requirements are checked on [AgentConfig], which knows
// what the runtime actually needs.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.MaxRetries < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *AgentConfig) validate() error {
	// An in-memory buffer would silently drop everything on restart,
	// defeating the whole point of the agent.
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.Address == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Facade.HTTPAddress == "" {
		return ErrInvalidFacadeConfigs
	}

	if cfg.Workers.ProbeInterval == 0 || cfg.Workers.DrainInterval == 0 || cfg.Workers.MaxRetries <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DeviceToken == "" || cfg.App.HashKey == "" || cfg.App.SealSecret == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
