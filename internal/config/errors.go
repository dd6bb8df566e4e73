package config

import "errors"

// Validation errors returned by [AgentConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid central API settings
	// (for example, missing base address or zero request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid buffer storage settings
	// (for example, empty DSN or an in-memory DSN, which would lose
	// buffered records on restart).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing device token, hash key, or seal secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background loop settings
	// (for example, zero probe interval or non-positive retry ceiling).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidFacadeConfigs indicates invalid facade server settings.
	ErrInvalidFacadeConfigs = errors.New("invalid facade configuration")
)
